package leave

import (
	"time"
)

// Type is a leave entitlement category as the upstream backend defines
// it. Reference data, read-only from the portal's perspective. JSON tags
// match the upstream wire format.
type Type struct {
	ID             string `json:"id"`
	Code           string `json:"code,omitempty"`
	Name           string `json:"name"`
	MaxDaysPerYear int    `json:"maxDaysPerYear"`
}

type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCancelled RequestStatus = "CANCELLED"
)

// Request is a leave request. Status transitions are owned entirely by
// the upstream backend; the portal only reads the current status.
type Request struct {
	ID            string        `json:"id"`
	EmployeeID    string        `json:"employeeId"`
	LeaveTypeID   string        `json:"leaveTypeId"`
	LeaveTypeName string        `json:"leaveTypeName,omitempty"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	Status        RequestStatus `json:"status"`
	Reason        string        `json:"reason,omitempty"`
	CreatedAt     time.Time     `json:"createdAt,omitempty"`
}

// Balance is the derived per-type usage for the current year.
type Balance struct {
	LeaveTypeID   string `json:"leave_type_id"`
	TypeName      string `json:"type_name"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}

// CategoryTotals sums balances across every type matching a coarse
// category.
type CategoryTotals struct {
	TotalDays     int `json:"total_days"`
	UsedDays      int `json:"used_days"`
	RemainingDays int `json:"remaining_days"`
}

// CategoryAggregate groups balances into casual-like (CL) and
// earned/annual-like (EL) buckets by name matching.
type CategoryAggregate struct {
	CL CategoryTotals `json:"cl"`
	EL CategoryTotals `json:"el"`
}
