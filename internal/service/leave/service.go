package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
	"github.com/workgrid-hq/hr-portal/internal/domain/leave"
	"github.com/workgrid-hq/hr-portal/internal/upstream"
)

type LeaveServiceImpl struct {
	upstream *upstream.Client
	now      func() time.Time
}

func NewLeaveService(client *upstream.Client) leave.LeaveService {
	return &LeaveServiceImpl{
		upstream: client,
		now:      time.Now,
	}
}

// Types implements leave.LeaveService.
func (s *LeaveServiceImpl) Types(ctx context.Context, sess auth.Session) ([]leave.Type, error) {
	types, err := s.upstream.LeaveTypes(ctx, sess.UpstreamToken, sess.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("fetch leave types: %w", err)
	}
	return types, nil
}

// MyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) MyRequests(ctx context.Context, sess auth.Session) ([]leave.RequestResponse, error) {
	if sess.EmployeeID == "" {
		return nil, auth.ErrNoEmployeeProfile
	}
	requests, err := s.upstream.EmployeeLeaves(ctx, sess.UpstreamToken, sess.CompanyID, sess.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("fetch leave requests: %w", err)
	}
	return leave.ToRequestResponses(requests), nil
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, sess auth.Session, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if sess.EmployeeID == "" {
		return leave.RequestResponse{}, auth.ErrNoEmployeeProfile
	}
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	created, err := s.upstream.ApplyLeave(ctx, sess.UpstreamToken, sess.CompanyID, sess.EmployeeID,
		req.LeaveTypeID, req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("apply leave: %w", err)
	}
	return leave.ToRequestResponse(created), nil
}

// Balance implements leave.LeaveService.
func (s *LeaveServiceImpl) Balance(ctx context.Context, sess auth.Session) (leave.BalanceResponse, error) {
	if sess.EmployeeID == "" {
		return leave.BalanceResponse{}, auth.ErrNoEmployeeProfile
	}

	types, err := s.upstream.LeaveTypes(ctx, sess.UpstreamToken, sess.CompanyID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("fetch leave types: %w", err)
	}

	requests, err := s.upstream.EmployeeLeaves(ctx, sess.UpstreamToken, sess.CompanyID, sess.EmployeeID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("fetch leave requests: %w", err)
	}

	year := s.now().Year()
	balances := ComputeBalances(requests, types, year)

	return leave.BalanceResponse{
		Year:       year,
		Balances:   balances,
		Aggregates: AggregateCategories(balances),
	}, nil
}

// AllRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) AllRequests(ctx context.Context, sess auth.Session) ([]leave.RequestResponse, error) {
	requests, err := s.upstream.AllLeaves(ctx, sess.UpstreamToken, sess.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("fetch company leave requests: %w", err)
	}
	return leave.ToRequestResponses(requests), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, sess auth.Session, req leave.DecisionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.upstream.ApproveLeave(ctx, sess.UpstreamToken, sess.CompanyID, req.LeaveID); err != nil {
		return fmt.Errorf("approve leave: %w", err)
	}
	return nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, sess auth.Session, req leave.DecisionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.upstream.RejectLeave(ctx, sess.UpstreamToken, sess.CompanyID, req.LeaveID, req.Reason); err != nil {
		return fmt.Errorf("reject leave: %w", err)
	}
	return nil
}

// Cancel implements leave.LeaveService.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, sess auth.Session, req leave.DecisionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.upstream.CancelLeave(ctx, sess.UpstreamToken, sess.CompanyID, req.LeaveID); err != nil {
		return fmt.Errorf("cancel leave: %w", err)
	}
	return nil
}
