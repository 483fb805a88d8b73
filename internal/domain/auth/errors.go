package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired session token")
	ErrSessionNotFound    = errors.New("no session found in request context")
	ErrNoEmployeeProfile  = errors.New("no employee profile linked to this account")
)
