package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/workgrid-hq/hr-portal/internal/domain/attendance"
	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
	"github.com/workgrid-hq/hr-portal/internal/upstream"
)

type AttendanceServiceImpl struct {
	upstream *upstream.Client
	now      func() time.Time
}

func NewAttendanceService(client *upstream.Client) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		upstream: client,
		now:      time.Now,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, sess auth.Session) error {
	if sess.EmployeeID == "" {
		return auth.ErrNoEmployeeProfile
	}
	if err := s.upstream.ClockIn(ctx, sess.UpstreamToken, sess.CompanyID, sess.EmployeeID); err != nil {
		return fmt.Errorf("clock in: %w", err)
	}
	return nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, sess auth.Session) error {
	if sess.EmployeeID == "" {
		return auth.ErrNoEmployeeProfile
	}
	if err := s.upstream.ClockOut(ctx, sess.UpstreamToken, sess.CompanyID, sess.EmployeeID); err != nil {
		return fmt.Errorf("clock out: %w", err)
	}
	return nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, sess auth.Session) (attendance.DayStatusResponse, error) {
	if sess.EmployeeID == "" {
		return attendance.DayStatusResponse{}, auth.ErrNoEmployeeProfile
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := s.upstream.EmployeeEvents(ctx, sess.UpstreamToken, sess.CompanyID, sess.EmployeeID, dayStart, dayEnd)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("fetch today's events: %w", err)
	}

	status := ComputeTodayStatus(events, dayStart)
	return attendance.ToDayStatusResponse(status), nil
}

// RangeSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RangeSummary(ctx context.Context, sess auth.Session, filter attendance.RangeFilter) ([]attendance.DaySummaryResponse, error) {
	if sess.EmployeeID == "" {
		return nil, auth.ErrNoEmployeeProfile
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end := filter.Window()
	events, err := s.upstream.EmployeeEvents(ctx, sess.UpstreamToken, sess.CompanyID, sess.EmployeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch range events: %w", err)
	}

	summaries := ComputeRangeSummary(events, start, end)
	return attendance.ToDaySummaryResponses(summaries), nil
}
