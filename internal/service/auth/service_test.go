package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
	"github.com/workgrid-hq/hr-portal/internal/pkg/jwt"
	"github.com/workgrid-hq/hr-portal/internal/upstream"
)

const testSecret = "test-secret-key-for-sessions"

func newTestService(t *testing.T, handler http.HandlerFunc) (auth.AuthService, jwt.Service) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := upstream.NewClient(server.URL, 5*time.Second)
	jwtService := jwt.NewJWTService(testSecret, "1h")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAuthService(client, jwtService, logger), jwtService
}

func TestLogin_MintsPortalSession(t *testing.T) {
	svc, jwtService := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"up-tok","userId":"u-1","employeeId":"e-1","companyId":"c-1","role":"EMPLOYEE"}}`))
	})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@acme.test",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	assert.Equal(t, "u-1", resp.UserID)
	assert.Equal(t, "e-1", resp.EmployeeID)
	assert.Equal(t, "c-1", resp.CompanyID)
	assert.Equal(t, auth.RoleEmployee, resp.Role)

	// The minted token must round-trip back into the same session.
	token, err := jwtService.JWTAuth().Decode(resp.SessionToken)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	sess, err := jwtService.SessionFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "up-tok", sess.UpstreamToken)
	assert.Equal(t, "e-1", sess.EmployeeID)
	assert.Equal(t, auth.RoleEmployee, sess.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"INVALID_CREDENTIALS","message":"bad login"}}`))
	})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@acme.test",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_ValidationFailsBeforeUpstreamCall(t *testing.T) {
	called := false
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: ""})

	require.Error(t, err)
	assert.False(t, called)
}

func TestLogin_ResolvesMissingEmployeeIDByEmail(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/auth/login":
			_, _ = w.Write([]byte(`{"success":true,"data":{"token":"up-tok","userId":"u-1","companyId":"c-1","role":"EMPLOYEE"}}`))
		case "/api/v1/employees":
			_, _ = w.Write([]byte(`{"success":true,"data":[
				{"employeeId":"e-9","companyId":"c-1","name":"Jane","email":"JANE@acme.test","isActive":true},
				{"employeeId":"e-2","companyId":"c-1","name":"Bob","email":"bob@acme.test","isActive":true}
			]}`))
		default:
			t.Errorf("unexpected upstream call: %s", r.URL.Path)
		}
	})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@acme.test",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "e-9", resp.EmployeeID)
}

func TestLogin_AdminWithoutEmployeeProfile(t *testing.T) {
	employeesCalled := false
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/auth/login":
			_, _ = w.Write([]byte(`{"success":true,"data":{"token":"up-tok","userId":"u-1","companyId":"c-1","role":"COMPANY_ADMIN"}}`))
		case "/api/v1/employees":
			employeesCalled = true
		}
	})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@acme.test",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Empty(t, resp.EmployeeID)
	assert.Equal(t, auth.RoleCompanyAdmin, resp.Role)
	assert.False(t, employeesCalled)
}

func TestCheckEmail(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/checkEmail", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"registered":true}}`))
	})

	resp, err := svc.CheckEmail(context.Background(), auth.CheckEmailRequest{Email: "jane@acme.test"})

	require.NoError(t, err)
	assert.True(t, resp.Registered)
	assert.Equal(t, "jane@acme.test", resp.Email)
}

func TestRegisterCompany(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/registerCompany", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"up-tok","userId":"u-1","companyId":"c-new","role":"COMPANY_ADMIN"}}`))
	})

	resp, err := svc.RegisterCompany(context.Background(), auth.RegisterCompanyRequest{
		Email:       "founder@acme.test",
		CompanyName: "Acme",
		Domain:      "acme",
		Password:    "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "c-new", resp.CompanyID)
	assert.Equal(t, auth.RoleCompanyAdmin, resp.Role)
	assert.NotEmpty(t, resp.SessionToken)
}
