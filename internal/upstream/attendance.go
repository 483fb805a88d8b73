package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/workgrid-hq/hr-portal/internal/domain/attendance"
)

type clockRequest struct {
	CompanyID  string `json:"companyId"`
	EmployeeID string `json:"employeeId"`
}

func (c *Client) ClockIn(ctx context.Context, token, companyID, employeeID string) error {
	body := clockRequest{CompanyID: companyID, EmployeeID: employeeID}
	return c.do(ctx, http.MethodPost, "/api/v1/attendance/clockin", token, body, nil)
}

func (c *Client) ClockOut(ctx context.Context, token, companyID, employeeID string) error {
	body := clockRequest{CompanyID: companyID, EmployeeID: employeeID}
	return c.do(ctx, http.MethodPost, "/api/v1/attendance/clockout", token, body, nil)
}

type eventsRequest struct {
	CompanyID  string `json:"companyId"`
	EmployeeID string `json:"employeeId"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
}

// EmployeeEvents fetches the raw clock event log for an employee. The
// window is half-open [start, end); the backend treats zero times as
// unbounded.
func (c *Client) EmployeeEvents(ctx context.Context, token, companyID, employeeID string, start, end time.Time) ([]attendance.Event, error) {
	body := eventsRequest{
		CompanyID:  companyID,
		EmployeeID: employeeID,
	}
	if !start.IsZero() {
		body.StartDate = start.Format(time.RFC3339)
	}
	if !end.IsZero() {
		body.EndDate = end.Format(time.RFC3339)
	}

	var events []attendance.Event
	if err := c.do(ctx, http.MethodPost, "/api/v1/attendance/getEmployeeEvents", token, body, &events); err != nil {
		return nil, err
	}
	return events, nil
}
