package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidDateRange = errors.New("start_date must not be after end_date")
)
