package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workgrid-hq/hr-portal/internal/domain/leave"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func testTypes() []leave.Type {
	return []leave.Type{
		{ID: "lt-casual", Name: "Casual Leave", MaxDaysPerYear: 7},
		{ID: "lt-earned", Name: "Earned Leave", MaxDaysPerYear: 14},
		{ID: "lt-sick", Name: "Sick Leave", MaxDaysPerYear: 10},
	}
}

func TestComputeBalances_ApprovedRequestConsumesDays(t *testing.T) {
	requests := []leave.Request{
		{
			LeaveTypeID: "lt-casual",
			StartDate:   date(2024, 3, 1),
			EndDate:     date(2024, 3, 3),
			Status:      leave.StatusApproved,
		},
	}

	balances := ComputeBalances(requests, testTypes(), 2024)

	require.Len(t, balances, 3)
	casual := balances[0]
	assert.Equal(t, "Casual Leave", casual.TypeName)
	assert.Equal(t, 7, casual.TotalDays)
	assert.Equal(t, 3, casual.UsedDays)
	assert.Equal(t, 4, casual.RemainingDays)
}

func TestComputeBalances_NonApprovedRequestsIgnored(t *testing.T) {
	requests := []leave.Request{
		{LeaveTypeID: "lt-casual", StartDate: date(2024, 3, 1), EndDate: date(2024, 3, 3), Status: leave.StatusPending},
		{LeaveTypeID: "lt-casual", StartDate: date(2024, 4, 1), EndDate: date(2024, 4, 2), Status: leave.StatusRejected},
		{LeaveTypeID: "lt-casual", StartDate: date(2024, 5, 1), EndDate: date(2024, 5, 1), Status: leave.StatusCancelled},
	}

	balances := ComputeBalances(requests, testTypes(), 2024)

	require.Len(t, balances, 3)
	assert.Zero(t, balances[0].UsedDays)
	assert.Equal(t, 7, balances[0].RemainingDays)
}

func TestComputeBalances_OtherYearsExcluded(t *testing.T) {
	requests := []leave.Request{
		{LeaveTypeID: "lt-casual", StartDate: date(2023, 12, 28), EndDate: date(2023, 12, 30), Status: leave.StatusApproved},
		{LeaveTypeID: "lt-casual", StartDate: date(2025, 1, 2), EndDate: date(2025, 1, 3), Status: leave.StatusApproved},
	}

	balances := ComputeBalances(requests, testTypes(), 2024)

	assert.Zero(t, balances[0].UsedDays)
}

func TestComputeBalances_RemainingClampedAtZero(t *testing.T) {
	requests := []leave.Request{
		{LeaveTypeID: "lt-casual", StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 10), Status: leave.StatusApproved},
	}

	balances := ComputeBalances(requests, testTypes(), 2024)

	assert.Equal(t, 10, balances[0].UsedDays)
	assert.Zero(t, balances[0].RemainingDays)
}

func TestComputeBalances_UnknownTypeBucket(t *testing.T) {
	requests := []leave.Request{
		{LeaveTypeID: "lt-gone", StartDate: date(2024, 2, 1), EndDate: date(2024, 2, 2), Status: leave.StatusApproved},
		{LeaveTypeID: "lt-also-gone", StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 1), Status: leave.StatusApproved},
	}

	balances := ComputeBalances(requests, testTypes(), 2024)

	require.Len(t, balances, 4)
	unknown := balances[3]
	assert.Equal(t, "Unknown", unknown.TypeName)
	assert.Zero(t, unknown.TotalDays)
	assert.Equal(t, 3, unknown.UsedDays)
	assert.Zero(t, unknown.RemainingDays)
}

func TestComputeBalances_SingleDayRequest(t *testing.T) {
	requests := []leave.Request{
		{LeaveTypeID: "lt-earned", StartDate: date(2024, 7, 15), EndDate: date(2024, 7, 15), Status: leave.StatusApproved},
	}

	balances := ComputeBalances(requests, testTypes(), 2024)

	assert.Equal(t, 1, balances[1].UsedDays)
	assert.Equal(t, 13, balances[1].RemainingDays)
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2024, 3, 1), date(2024, 3, 1), 1},
		{"three days", date(2024, 3, 1), date(2024, 3, 3), 3},
		{"end before start", date(2024, 3, 3), date(2024, 3, 1), 1},
		{"partial day rounds up", date(2024, 3, 1), time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leave.InclusiveDays(tt.start, tt.end))
		})
	}
}

func TestAggregateCategories(t *testing.T) {
	balances := []leave.Balance{
		{TypeName: "Casual Leave", TotalDays: 7, UsedDays: 3, RemainingDays: 4},
		{TypeName: "Earned Leave", TotalDays: 14, UsedDays: 2, RemainingDays: 12},
		{TypeName: "Sick Leave", TotalDays: 10, UsedDays: 1, RemainingDays: 9},
	}

	agg := AggregateCategories(balances)

	assert.Equal(t, 7, agg.CL.TotalDays)
	assert.Equal(t, 3, agg.CL.UsedDays)
	assert.Equal(t, 4, agg.CL.RemainingDays)
	assert.Equal(t, 14, agg.EL.TotalDays)
	assert.Equal(t, 2, agg.EL.UsedDays)
	assert.Equal(t, 12, agg.EL.RemainingDays)
}

func TestAggregateCategories_AnnualCountsAsEL(t *testing.T) {
	balances := []leave.Balance{
		{TypeName: "Annual Leave", TotalDays: 20, UsedDays: 5, RemainingDays: 15},
	}

	agg := AggregateCategories(balances)

	assert.Equal(t, 20, agg.EL.TotalDays)
	assert.Zero(t, agg.CL.TotalDays)
}

func TestAggregateCategories_CasualWinsOverEarned(t *testing.T) {
	// "cl" and "el" both match; the casual bucket takes it.
	balances := []leave.Balance{
		{TypeName: "Special CL/EL Pool", TotalDays: 5, UsedDays: 0, RemainingDays: 5},
	}

	agg := AggregateCategories(balances)

	assert.Equal(t, 5, agg.CL.TotalDays)
	assert.Zero(t, agg.EL.TotalDays)
}

func TestAggregateCategories_UnmatchedNamesExcluded(t *testing.T) {
	balances := []leave.Balance{
		{TypeName: "Maternity", TotalDays: 90, UsedDays: 0, RemainingDays: 90},
	}

	agg := AggregateCategories(balances)

	assert.Zero(t, agg.CL.TotalDays)
	assert.Zero(t, agg.EL.TotalDays)
}
