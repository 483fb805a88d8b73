package attendance

import (
	"math"
	"sort"
	"time"

	"github.com/workgrid-hq/hr-portal/internal/domain/attendance"
)

// ComputeTodayStatus reconciles a single day's raw clock events into a
// dashboard status. Only the latest event of each type counts, so a
// re-clock-in after a mistaken one supersedes the earlier punch.
func ComputeTodayStatus(events []attendance.Event, day time.Time) attendance.DayStatus {
	status := attendance.DayStatus{
		Date:  day,
		State: attendance.DayNotStarted,
	}

	var latestIn, latestOut *attendance.Event
	for i := range events {
		ev := &events[i]
		if ev.Time.IsZero() {
			continue
		}
		switch ev.Type {
		case attendance.EventClockIn:
			if latestIn == nil || ev.Time.After(latestIn.Time) {
				latestIn = ev
			}
		case attendance.EventClockOut:
			if latestOut == nil || ev.Time.After(latestOut.Time) {
				latestOut = ev
			}
		default:
			// Unknown event types are skipped, not fatal.
			continue
		}
		status.EventCount++
	}

	if latestIn != nil {
		t := latestIn.Time
		status.ClockInTime = &t
		status.State = attendance.DayInProgress
	}
	if latestOut != nil {
		t := latestOut.Time
		status.ClockOutTime = &t
	}

	if latestIn != nil && latestOut != nil {
		status.State = attendance.DayCompleted
		hours := latestOut.Time.Sub(latestIn.Time).Hours()
		status.HoursWorked = hours
		if hours < 0 {
			// Last clock-out precedes the last clock-in. The signed
			// value is kept so the anomaly stays visible.
			status.Irregular = true
		}
	}

	return status
}

// ComputeRangeSummary builds per-day totals for a date range by
// pairing clock-ins with the next clock-out in chronological order.
// Unlike ComputeTodayStatus this credits every completed session, so
// split shifts accumulate.
func ComputeRangeSummary(events []attendance.Event, start, end time.Time) []attendance.DaySummary {
	byDay := make(map[string][]attendance.Event)
	for _, ev := range events {
		if ev.Time.IsZero() {
			continue
		}
		if !start.IsZero() && ev.Time.Before(start) {
			continue
		}
		if !end.IsZero() && !ev.Time.Before(end) {
			continue
		}
		key := ev.Time.Format("2006-01-02")
		byDay[key] = append(byDay[key], ev)
	}

	summaries := make([]attendance.DaySummary, 0, len(byDay))
	for date, dayEvents := range byDay {
		sort.Slice(dayEvents, func(i, j int) bool {
			return dayEvents[i].Time.Before(dayEvents[j].Time)
		})

		summary := attendance.DaySummary{
			Date:       date,
			Status:     attendance.SummaryPending,
			EventCount: len(dayEvents),
		}

		var openIn *time.Time
		var totalHours float64
		for i := range dayEvents {
			ev := dayEvents[i]
			switch ev.Type {
			case attendance.EventClockIn:
				t := ev.Time
				openIn = &t
				summary.ClockInTime = &t
			case attendance.EventClockOut:
				// A clock-out with no open session is a stray and
				// contributes nothing.
				if openIn == nil {
					continue
				}
				t := ev.Time
				totalHours += t.Sub(*openIn).Hours()
				summary.ClockOutTime = &t
				openIn = nil
			}
		}

		summary.HoursWorked = roundHours(totalHours)
		switch {
		case openIn != nil:
			summary.Status = attendance.SummaryInProgress
		case totalHours > 0:
			summary.Status = attendance.SummaryCompleted
		}

		summaries = append(summaries, summary)
	}

	// Newest day first.
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})

	return summaries
}

func roundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}
