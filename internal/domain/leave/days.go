package leave

import (
	"math"
	"time"
)

// InclusiveDays counts the days in [start, end] the way leave spans are
// charged: ceil of the elapsed days plus one, never less than a single
// day even when start equals end.
func InclusiveDays(start, end time.Time) int {
	if end.Before(start) {
		return 1
	}
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}
