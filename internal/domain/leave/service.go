package leave

import (
	"context"

	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
)

// LeaveService exposes leave self-service and the admin console. Every
// state change is a pass-through command to the upstream backend; the
// balance view is derived locally.
type LeaveService interface {
	// Types lists the company's leave types
	Types(ctx context.Context, sess auth.Session) ([]Type, error)

	// MyRequests lists the caller's leave requests
	MyRequests(ctx context.Context, sess auth.Session) ([]RequestResponse, error)

	// Apply submits a new leave request upstream
	Apply(ctx context.Context, sess auth.Session, req ApplyRequest) (RequestResponse, error)

	// Balance derives the caller's per-type balances plus CL/EL
	// aggregates for the current year
	Balance(ctx context.Context, sess auth.Session) (BalanceResponse, error)

	// AllRequests lists every leave request in the company (admin)
	AllRequests(ctx context.Context, sess auth.Session) ([]RequestResponse, error)

	// Approve approves a pending request (admin)
	Approve(ctx context.Context, sess auth.Session, req DecisionRequest) error

	// Reject rejects a pending request with a reason (admin)
	Reject(ctx context.Context, sess auth.Session, req DecisionRequest) error

	// Cancel cancels the caller's own pending request
	Cancel(ctx context.Context, sess auth.Session, req DecisionRequest) error
}
