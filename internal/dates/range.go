package dates

import "time"

// Period names a recurrence window used to scope reports and budgets.
type Period string

// Supported periods.
const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodCustom  Period = "custom"
)

// ValidBudgetPeriod reports whether p may be used for a budget.
func ValidBudgetPeriod(p Period) bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Range is an inclusive span of calendar dates.
type Range struct {
	Start Date
	End   Date
}

// Contains reports whether d falls within the range, bounds included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Resolve computes the date range for a period relative to today.
//
//   - daily: today only.
//   - weekly: Sunday through Saturday of the current week.
//   - monthly: first through last calendar day of the current month.
//   - yearly: Jan 1 through Dec 31 of the current year.
//   - custom: the caller-supplied bounds; a missing bound collapses to today.
//
// An unknown or empty period defaults to monthly.
func Resolve(p Period, today Date, customStart, customEnd *Date) Range {
	switch p {
	case PeriodDaily:
		return Range{Start: today, End: today}
	case PeriodWeekly:
		start := today.AddDays(-int(today.Weekday()))
		return Range{Start: start, End: start.AddDays(6)}
	case PeriodYearly:
		return Range{
			Start: New(today.Year(), time.January, 1),
			End:   New(today.Year(), time.December, 31),
		}
	case PeriodCustom:
		r := Range{Start: today, End: today}
		if customStart != nil {
			r.Start = *customStart
		}
		if customEnd != nil {
			r.End = *customEnd
		}
		return r
	case PeriodMonthly:
		fallthrough
	default:
		start := New(today.Year(), today.Month(), 1)
		// Day zero of the next month is the last day of this one.
		return Range{Start: start, End: New(today.Year(), today.Month()+1, 0)}
	}
}
