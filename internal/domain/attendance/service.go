package attendance

import (
	"context"

	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
)

// AttendanceService exposes the employee's attendance views. Clock
// actions are pass-through commands to the upstream backend; the status
// views are derived locally from the raw event log.
type AttendanceService interface {
	// ClockIn asks the upstream backend to append a CLOCK_IN event
	ClockIn(ctx context.Context, sess auth.Session) error

	// ClockOut asks the upstream backend to append a CLOCK_OUT event
	ClockOut(ctx context.Context, sess auth.Session) error

	// TodayStatus derives the caller's current-day status from today's
	// events
	TodayStatus(ctx context.Context, sess auth.Session) (DayStatusResponse, error)

	// RangeSummary derives per-day summaries over a date range
	RangeSummary(ctx context.Context, sess auth.Session, filter RangeFilter) ([]DaySummaryResponse, error)
}
