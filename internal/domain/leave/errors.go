package leave

import "errors"

// Leave domain errors
var (
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
	ErrRequestNotFound  = errors.New("leave request not found")
)
