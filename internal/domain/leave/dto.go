package leave

import (
	"time"

	"github.com/workgrid-hq/hr-portal/internal/pkg/validator"
)

type ApplyRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var ok bool

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	if start, ok = validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if end, ok = validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
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

// TotalDays is the inclusive day span of the requested range, shown as a
// preview before the request is submitted.
func (r *ApplyRequest) TotalDays() int {
	start, ok1 := validator.IsValidDate(r.StartDate)
	end, ok2 := validator.IsValidDate(r.EndDate)
	if !ok1 || !ok2 {
		return 0
	}
	return InclusiveDays(start, end)
}

type DecisionRequest struct {
	LeaveID string `json:"-"`
	Reason  string `json:"reason,omitempty"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_id",
			Message: "leave_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID            string        `json:"id"`
	EmployeeID    string        `json:"employee_id"`
	LeaveTypeID   string        `json:"leave_type_id"`
	LeaveTypeName string        `json:"leave_type_name,omitempty"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	TotalDays     int           `json:"total_days"`
	Status        RequestStatus `json:"status"`
	Reason        string        `json:"reason,omitempty"`
	CreatedAt     *time.Time    `json:"created_at,omitempty"`
}

func ToRequestResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		LeaveTypeID:   r.LeaveTypeID,
		LeaveTypeName: r.LeaveTypeName,
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		TotalDays:     InclusiveDays(r.StartDate, r.EndDate),
		Status:        r.Status,
		Reason:        r.Reason,
	}
	if !r.CreatedAt.IsZero() {
		created := r.CreatedAt
		resp.CreatedAt = &created
	}
	return resp
}

func ToRequestResponses(requests []Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, ToRequestResponse(r))
	}
	return out
}

// BalanceResponse carries the per-type balances and the CL/EL category
// aggregates for the current year.
type BalanceResponse struct {
	Year       int               `json:"year"`
	Balances   []Balance         `json:"balances"`
	Aggregates CategoryAggregate `json:"aggregates"`
}
