package auth

import (
	"context"
)

// AuthService defines the login and registration flows proxied to the
// upstream HR backend
type AuthService interface {
	// Login authenticates against the upstream backend and mints a
	// portal session token
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// CheckEmail asks the upstream backend whether an email is registered
	CheckEmail(ctx context.Context, req CheckEmailRequest) (CheckEmailResponse, error)

	// RegisterCompany creates a company plus its admin account upstream
	// and logs the admin in
	RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (LoginResponse, error)

	// RegisterEmployee redeems an invitation OTP upstream and logs the
	// new employee in
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) (LoginResponse, error)
}
