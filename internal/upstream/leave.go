package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/workgrid-hq/hr-portal/internal/domain/leave"
)

func (c *Client) LeaveTypes(ctx context.Context, token, companyID string) ([]leave.Type, error) {
	path := "/api/v1/leave/types?companyId=" + url.QueryEscape(companyID)

	var types []leave.Type
	if err := c.do(ctx, http.MethodGet, path, token, nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (c *Client) EmployeeLeaves(ctx context.Context, token, companyID, employeeID string) ([]leave.Request, error) {
	path := "/api/v1/leave?companyId=" + url.QueryEscape(companyID) + "&employeeId=" + url.QueryEscape(employeeID)

	var requests []leave.Request
	if err := c.do(ctx, http.MethodGet, path, token, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) AllLeaves(ctx context.Context, token, companyID string) ([]leave.Request, error) {
	path := "/api/v1/leave/admin/all?companyId=" + url.QueryEscape(companyID)

	var requests []leave.Request
	if err := c.do(ctx, http.MethodGet, path, token, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

type applyLeaveRequest struct {
	CompanyID   string `json:"companyId"`
	EmployeeID  string `json:"employeeId"`
	LeaveTypeID string `json:"leaveTypeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Reason      string `json:"reason"`
}

func (c *Client) ApplyLeave(ctx context.Context, token, companyID, employeeID, leaveTypeID, startDate, endDate, reason string) (leave.Request, error) {
	body := applyLeaveRequest{
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      reason,
	}

	var created leave.Request
	if err := c.do(ctx, http.MethodPost, "/api/v1/leave/apply", token, body, &created); err != nil {
		return leave.Request{}, err
	}
	return created, nil
}

type leaveDecisionRequest struct {
	CompanyID string `json:"companyId"`
	Reason    string `json:"reason,omitempty"`
}

func (c *Client) ApproveLeave(ctx context.Context, token, companyID, leaveID string) error {
	body := leaveDecisionRequest{CompanyID: companyID}
	return c.do(ctx, http.MethodPost, "/api/v1/leave/"+url.PathEscape(leaveID)+"/approve", token, body, nil)
}

func (c *Client) RejectLeave(ctx context.Context, token, companyID, leaveID, reason string) error {
	body := leaveDecisionRequest{CompanyID: companyID, Reason: reason}
	return c.do(ctx, http.MethodPost, "/api/v1/leave/"+url.PathEscape(leaveID)+"/reject", token, body, nil)
}

func (c *Client) CancelLeave(ctx context.Context, token, companyID, leaveID string) error {
	body := leaveDecisionRequest{CompanyID: companyID}
	return c.do(ctx, http.MethodPost, "/api/v1/leave/"+url.PathEscape(leaveID)+"/cancel", token, body, nil)
}
