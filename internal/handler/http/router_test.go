package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workgrid-hq/hr-portal/internal/config"
	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
	"github.com/workgrid-hq/hr-portal/internal/pkg/jwt"
	assetService "github.com/workgrid-hq/hr-portal/internal/service/asset"
	attendanceService "github.com/workgrid-hq/hr-portal/internal/service/attendance"
	authService "github.com/workgrid-hq/hr-portal/internal/service/auth"
	employeeService "github.com/workgrid-hq/hr-portal/internal/service/employee"
	leaveService "github.com/workgrid-hq/hr-portal/internal/service/leave"
	"github.com/workgrid-hq/hr-portal/internal/upstream"
)

const routerTestSecret = "router-test-secret-key"

// fakeBackend is a minimal stand-in for the upstream HR backend.
func fakeBackend(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"up-tok","userId":"u-1","employeeId":"e-1","companyId":"c-1","role":"EMPLOYEE"}}`))
	})
	mux.HandleFunc("/api/v1/attendance/getEmployeeEvents", func(w http.ResponseWriter, r *http.Request) {
		today := time.Now().Format("2006-01-02")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"success":true,"data":[
			{"employeeId":"e-1","companyId":"c-1","eventType":"CLOCK_IN","eventTime":"%sT09:00:00Z"},
			{"employeeId":"e-1","companyId":"c-1","eventType":"CLOCK_OUT","eventTime":"%sT17:00:00Z"}
		]}`, today, today)
	})
	mux.HandleFunc("/api/v1/leave/types", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"lt-1","name":"Casual Leave","maxDaysPerYear":7}]}`))
	})
	mux.HandleFunc("/api/v1/leave", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestRouter(t *testing.T) http.Handler {
	backend := fakeBackend(t)

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	client := upstream.NewClient(backend.URL, 5*time.Second)
	jwtService := jwt.NewJWTService(routerTestSecret, "1h")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handlers := Handlers{
		Auth:       NewAuthHandler(authService.NewAuthService(client, jwtService, logger)),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(client)),
		Leave:      NewLeaveHandler(leaveService.NewLeaveService(client)),
		Employee:   NewEmployeeHandler(employeeService.NewEmployeeService(client)),
		Asset:      NewAssetHandler(assetService.NewAssetService(client)),
	}

	return NewRouter(cfg, jwtService, handlers)
}

func loginForToken(t *testing.T, router http.Handler) string {
	body := `{"email":"jane@acme.test","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload struct {
		Data auth.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.Data.SessionToken)
	return payload.Data.SessionToken
}

func TestRouter_LoginAndTodayStatus(t *testing.T) {
	router := newTestRouter(t)
	token := loginForToken(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/today", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			State       string  `json:"state"`
			HoursWorked float64 `json:"hours_worked"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "COMPLETED", payload.Data.State)
	assert.Equal(t, 8.0, payload.Data.HoursWorked)
}

func TestRouter_LeaveBalance(t *testing.T) {
	router := newTestRouter(t)
	token := loginForToken(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leave/balance", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload struct {
		Data struct {
			Year     int `json:"year"`
			Balances []struct {
				TypeName      string `json:"type_name"`
				RemainingDays int    `json:"remaining_days"`
			} `json:"balances"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, time.Now().Year(), payload.Data.Year)
	require.Len(t, payload.Data.Balances, 1)
	assert.Equal(t, "Casual Leave", payload.Data.Balances[0].TypeName)
	assert.Equal(t, 7, payload.Data.Balances[0].RemainingDays)
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/today", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AdminRoutesForbiddenForEmployee(t *testing.T) {
	router := newTestRouter(t)
	token := loginForToken(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Heartbeat(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
