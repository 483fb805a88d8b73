package attendance

import (
	"time"
)

type EventType string

const (
	EventClockIn  EventType = "CLOCK_IN"
	EventClockOut EventType = "CLOCK_OUT"
)

// Event is a single clock event as the upstream backend stores it.
// Events are append-only; the portal never mutates them. JSON tags match
// the upstream wire format.
type Event struct {
	ID         string    `json:"id,omitempty"`
	EmployeeID string    `json:"employeeId"`
	CompanyID  string    `json:"companyId"`
	Type       EventType `json:"eventType"`
	Time       time.Time `json:"eventTime"`
}

type DayState string

const (
	DayNotStarted DayState = "NOT_STARTED"
	DayInProgress DayState = "IN_PROGRESS"
	DayCompleted  DayState = "COMPLETED"
)

// DayStatus is the derived state of a single day. It has no lifecycle of
// its own; it is recomputed from the day's events on every read.
type DayStatus struct {
	Date         time.Time
	ClockInTime  *time.Time
	ClockOutTime *time.Time
	State        DayState
	HoursWorked  float64
	// Irregular is set when the latest clock-out precedes the latest
	// clock-in. The signed duration is kept as-is rather than clamped so
	// callers can surface the bad data.
	Irregular  bool
	EventCount int
}

type SummaryStatus string

const (
	SummaryPending    SummaryStatus = "PENDING"
	SummaryInProgress SummaryStatus = "IN_PROGRESS"
	SummaryCompleted  SummaryStatus = "COMPLETED"
)

// DaySummary is one day's row in a range summary. Unlike DayStatus it
// accounts for every clock-in/clock-out session in the day.
type DaySummary struct {
	Date         string
	ClockInTime  *time.Time
	ClockOutTime *time.Time
	HoursWorked  float64
	Status       SummaryStatus
	EventCount   int
}
