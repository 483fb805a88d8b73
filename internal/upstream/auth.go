package upstream

import (
	"context"
	"net/http"
)

// LoginResult is the upstream login response body. Role and IDs come
// from here rather than from decoding the token; the token is opaque to
// the portal.
type LoginResult struct {
	Token      string `json:"token"`
	UserID     string `json:"userId"`
	EmployeeID string `json:"employeeId,omitempty"`
	CompanyID  string `json:"companyId"`
	Role       string `json:"role"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", body, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

type checkEmailResult struct {
	Registered bool `json:"registered"`
}

func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	body := map[string]string{"email": email}

	var result checkEmailResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/checkEmail", "", body, &result); err != nil {
		return false, err
	}
	return result.Registered, nil
}

func (c *Client) RegisterCompany(ctx context.Context, email, companyName, domain, password string) (LoginResult, error) {
	body := map[string]string{
		"email":       email,
		"companyName": companyName,
		"domain":      domain,
		"password":    password,
	}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/registerCompany", "", body, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

func (c *Client) RegisterEmployee(ctx context.Context, otpCode, email, password string) (LoginResult, error) {
	body := map[string]string{
		"OTPCode":  otpCode,
		"email":    email,
		"password": password,
	}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/registerEmployee", "", body, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}
