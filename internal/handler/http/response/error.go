package response

import (
	"errors"
	"net/http"

	"github.com/workgrid-hq/hr-portal/internal/domain/asset"
	"github.com/workgrid-hq/hr-portal/internal/domain/attendance"
	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
	"github.com/workgrid-hq/hr-portal/internal/domain/employee"
	"github.com/workgrid-hq/hr-portal/internal/domain/leave"
	"github.com/workgrid-hq/hr-portal/internal/pkg/validator"
	"github.com/workgrid-hq/hr-portal/internal/upstream"
)

// HandleError maps domain and upstream errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Errors relayed from the HR backend keep their original status
	// class where it maps cleanly, everything else surfaces as 502.
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadRequest:
			BadRequest(w, apiErr.Message, nil)
		case http.StatusUnauthorized:
			Unauthorized(w, apiErr.Message)
		case http.StatusForbidden:
			Forbidden(w, apiErr.Message)
		case http.StatusNotFound:
			NotFound(w, apiErr.Message)
		case http.StatusConflict:
			Conflict(w, apiErr.Message)
		default:
			BadGateway(w, "HR backend request failed")
		}
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid session token")
	case errors.Is(err, auth.ErrSessionNotFound):
		Unauthorized(w, "Session not found")
	case errors.Is(err, auth.ErrNoEmployeeProfile):
		Forbidden(w, "No employee profile linked to this account")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Asset domain errors
	case errors.Is(err, asset.ErrAssetNotFound):
		NotFound(w, "Asset not found")
	case errors.Is(err, asset.ErrAssignmentNotFound):
		NotFound(w, "Asset assignment not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
