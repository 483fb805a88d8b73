package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
	"github.com/workgrid-hq/hr-portal/internal/pkg/jwt"
	"github.com/workgrid-hq/hr-portal/internal/upstream"
)

type AuthServiceImpl struct {
	upstream *upstream.Client
	jwt      jwt.Service
	logger   *slog.Logger
}

func NewAuthService(client *upstream.Client, jwtService jwt.Service, logger *slog.Logger) auth.AuthService {
	return &AuthServiceImpl{
		upstream: client,
		jwt:      jwtService,
		logger:   logger,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	result, err := a.upstream.Login(ctx, req.Email, req.Password)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 401 {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("upstream login: %w", err)
	}

	sess := auth.Session{
		UpstreamToken: result.Token,
		UserID:        result.UserID,
		EmployeeID:    result.EmployeeID,
		CompanyID:     result.CompanyID,
		Role:          auth.Role(result.Role),
	}

	// Some accounts come back without an employee id even though an
	// employee record exists. Resolve it by email so self-service
	// endpoints work for them too.
	if sess.EmployeeID == "" && !sess.Role.IsAdmin() {
		employeeID, err := a.resolveEmployeeID(ctx, sess, req.Email)
		if err != nil {
			a.logger.Warn("employee profile resolution failed",
				slog.String("user_id", sess.UserID),
				slog.String("error", err.Error()),
			)
		}
		sess.EmployeeID = employeeID
	}

	return a.mintSession(sess)
}

// CheckEmail implements auth.AuthService.
func (a *AuthServiceImpl) CheckEmail(ctx context.Context, req auth.CheckEmailRequest) (auth.CheckEmailResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.CheckEmailResponse{}, err
	}

	registered, err := a.upstream.CheckEmail(ctx, req.Email)
	if err != nil {
		return auth.CheckEmailResponse{}, fmt.Errorf("upstream check email: %w", err)
	}

	return auth.CheckEmailResponse{
		Email:      req.Email,
		Registered: registered,
	}, nil
}

// RegisterCompany implements auth.AuthService.
func (a *AuthServiceImpl) RegisterCompany(ctx context.Context, req auth.RegisterCompanyRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	result, err := a.upstream.RegisterCompany(ctx, req.Email, req.CompanyName, req.Domain, req.Password)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("upstream register company: %w", err)
	}

	return a.mintSession(auth.Session{
		UpstreamToken: result.Token,
		UserID:        result.UserID,
		CompanyID:     result.CompanyID,
		Role:          auth.RoleCompanyAdmin,
	})
}

// RegisterEmployee implements auth.AuthService.
func (a *AuthServiceImpl) RegisterEmployee(ctx context.Context, req auth.RegisterEmployeeRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	result, err := a.upstream.RegisterEmployee(ctx, req.OTPCode, req.Email, req.Password)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("upstream register employee: %w", err)
	}

	sess := auth.Session{
		UpstreamToken: result.Token,
		UserID:        result.UserID,
		EmployeeID:    result.EmployeeID,
		CompanyID:     result.CompanyID,
		Role:          auth.RoleEmployee,
	}
	if sess.EmployeeID == "" {
		employeeID, err := a.resolveEmployeeID(ctx, sess, req.Email)
		if err == nil {
			sess.EmployeeID = employeeID
		}
	}

	return a.mintSession(sess)
}

func (a *AuthServiceImpl) resolveEmployeeID(ctx context.Context, sess auth.Session, email string) (string, error) {
	employees, err := a.upstream.Employees(ctx, sess.UpstreamToken, sess.CompanyID)
	if err != nil {
		return "", fmt.Errorf("list employees: %w", err)
	}

	for _, emp := range employees {
		if strings.EqualFold(emp.Email, email) {
			return emp.ID, nil
		}
	}
	return "", auth.ErrNoEmployeeProfile
}

func (a *AuthServiceImpl) mintSession(sess auth.Session) (auth.LoginResponse, error) {
	token, expiresAt, err := a.jwt.GenerateSessionToken(sess)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("mint session token: %w", err)
	}

	return auth.LoginResponse{
		SessionToken: token,
		ExpiresAt:    expiresAt,
		UserID:       sess.UserID,
		EmployeeID:   sess.EmployeeID,
		CompanyID:    sess.CompanyID,
		Role:         sess.Role,
	}, nil
}
