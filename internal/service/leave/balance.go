package leave

import (
	"strings"

	"github.com/workgrid-hq/hr-portal/internal/domain/leave"
)

// unknownTypeName labels usage whose leave type no longer exists in the
// company's reference data.
const unknownTypeName = "Unknown"

// ComputeBalances derives per-type balances for one calendar year.
// Only APPROVED requests starting in that year consume days; a request
// whose type is missing from types lands in a synthetic zero-quota
// bucket instead of being dropped.
func ComputeBalances(requests []leave.Request, types []leave.Type, year int) []leave.Balance {
	byID := make(map[string]*leave.Balance, len(types))
	ordered := make([]*leave.Balance, 0, len(types))
	for _, t := range types {
		b := &leave.Balance{
			LeaveTypeID: t.ID,
			TypeName:    t.Name,
			TotalDays:   t.MaxDaysPerYear,
		}
		byID[t.ID] = b
		ordered = append(ordered, b)
	}

	var unknown *leave.Balance
	for _, req := range requests {
		if req.Status != leave.StatusApproved {
			continue
		}
		if req.StartDate.Year() != year {
			continue
		}

		days := leave.InclusiveDays(req.StartDate, req.EndDate)

		b, ok := byID[req.LeaveTypeID]
		if !ok {
			if unknown == nil {
				unknown = &leave.Balance{
					LeaveTypeID: req.LeaveTypeID,
					TypeName:    unknownTypeName,
				}
				ordered = append(ordered, unknown)
			}
			unknown.UsedDays += days
			continue
		}
		b.UsedDays += days
	}

	balances := make([]leave.Balance, 0, len(ordered))
	for _, b := range ordered {
		remaining := b.TotalDays - b.UsedDays
		if remaining < 0 {
			remaining = 0
		}
		b.RemainingDays = remaining
		balances = append(balances, *b)
	}
	return balances
}

// AggregateCategories folds balances into the two headline buckets the
// dashboard shows, matching on the type name. A name can land in at
// most one bucket, casual wins when both patterns match, and a name
// matching neither is left out entirely.
func AggregateCategories(balances []leave.Balance) leave.CategoryAggregate {
	var agg leave.CategoryAggregate
	for _, b := range balances {
		name := strings.ToLower(b.TypeName)
		switch {
		case containsAny(name, "casual", "cas", "cl"):
			agg.CL.TotalDays += b.TotalDays
			agg.CL.UsedDays += b.UsedDays
			agg.CL.RemainingDays += b.RemainingDays
		case containsAny(name, "earn", "annual", "el"):
			agg.EL.TotalDays += b.TotalDays
			agg.EL.UsedDays += b.UsedDays
			agg.EL.RemainingDays += b.RemainingDays
		}
	}
	return agg
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
