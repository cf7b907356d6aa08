package domain

import (
	"time"
)

// RecurrenceType identifies how a task repeats.
type RecurrenceType string

const (
	RecurrenceNone   RecurrenceType = "none"
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceWeekly RecurrenceType = "weekly"
)

// Recurrence describes how a creation request expands into task instances.
// Days is only meaningful for weekly recurrence (time.Weekday, Sunday=0).
type Recurrence struct {
	Type RecurrenceType
	Days []time.Weekday
}

// None returns the non-recurring descriptor.
func None() Recurrence {
	return Recurrence{Type: RecurrenceNone}
}

// Daily returns the every-day descriptor.
func Daily() Recurrence {
	return Recurrence{Type: RecurrenceDaily}
}

// Weekly returns a descriptor repeating on the given weekdays.
func Weekly(days ...time.Weekday) Recurrence {
	return Recurrence{Type: RecurrenceWeekly, Days: days}
}

// IsRecurring returns true for daily and weekly descriptors.
func (r Recurrence) IsRecurring() bool {
	return r.Type == RecurrenceDaily || r.Type == RecurrenceWeekly
}

// OccursOn reports whether a weekly descriptor includes the given weekday.
func (r Recurrence) OccursOn(day time.Weekday) bool {
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}
	return false
}

// ExpandWindow computes the calendar days a recurring creation request
// generates instances for. The window is windowDays consecutive days
// starting at today's calendar day, inclusive.
//
//   - daily includes every day in the window
//   - weekly includes a day only if its weekday belongs to the descriptor
//   - a supplied deadline strictly after a candidate day excludes that
//     candidate (the caller marked such instances as already past due)
//
// The result is empty for a non-recurring descriptor. Expansion is pure
// computation over the supplied today value, so callers inject the clock.
func ExpandWindow(today time.Time, deadline *time.Time, r Recurrence, windowDays int) []time.Time {
	if !r.IsRecurring() {
		return nil
	}

	start := StartOfDay(today)
	days := make([]time.Time, 0, windowDays)

	for i := 0; i < windowDays; i++ {
		candidate := start.AddDate(0, 0, i)

		include := false
		switch r.Type {
		case RecurrenceDaily:
			include = true
		case RecurrenceWeekly:
			include = r.OccursOn(candidate.Weekday())
		}

		// Deadlines carry date-only semantics, so compare calendar days
		if deadline != nil && StartOfDay(*deadline).After(candidate) {
			include = false
		}

		if include {
			days = append(days, candidate)
		}
	}

	return days
}
