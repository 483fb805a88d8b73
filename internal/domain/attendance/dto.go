package attendance

import (
	"time"

	"github.com/workgrid-hq/hr-portal/internal/pkg/validator"
)

type RangeFilter struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var ok bool

	if validator.IsEmpty(f.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if start, ok = validator.IsValidDate(f.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(f.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if end, ok = validator.IsValidDate(f.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	if end.Before(start) {
		return ErrInvalidDateRange
	}

	return nil
}

// Window returns the filter's half-open time window [start, end+1d).
func (f *RangeFilter) Window() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(f.StartDate)
	end, _ := validator.IsValidDate(f.EndDate)
	return start, end.AddDate(0, 0, 1)
}

type DayStatusResponse struct {
	Date         string     `json:"date"`
	ClockInTime  *time.Time `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time"`
	State        DayState   `json:"state"`
	HoursWorked  float64    `json:"hours_worked"`
	Irregular    bool       `json:"irregular,omitempty"`
	EventCount   int        `json:"event_count"`
}

func ToDayStatusResponse(s DayStatus) DayStatusResponse {
	return DayStatusResponse{
		Date:         s.Date.Format("2006-01-02"),
		ClockInTime:  s.ClockInTime,
		ClockOutTime: s.ClockOutTime,
		State:        s.State,
		HoursWorked:  s.HoursWorked,
		Irregular:    s.Irregular,
		EventCount:   s.EventCount,
	}
}

type DaySummaryResponse struct {
	Date         string        `json:"date"`
	ClockInTime  *time.Time    `json:"clock_in_time"`
	ClockOutTime *time.Time    `json:"clock_out_time"`
	HoursWorked  float64       `json:"hours_worked"`
	Status       SummaryStatus `json:"status"`
	EventCount   int           `json:"event_count"`
}

func ToDaySummaryResponses(summaries []DaySummary) []DaySummaryResponse {
	out := make([]DaySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, DaySummaryResponse{
			Date:         s.Date,
			ClockInTime:  s.ClockInTime,
			ClockOutTime: s.ClockOutTime,
			HoursWorked:  s.HoursWorked,
			Status:       s.Status,
			EventCount:   s.EventCount,
		})
	}
	return out
}
