// Package dates provides calendar-date handling for the ledger: a civil Date
// type with day granularity, lenient parsing of the formats that appear in
// imported data, and resolution of budget periods to inclusive date ranges.
package dates

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format is the canonical written form of a Date.
const Format = "2006-01-02"

// Date represents a calendar date with no time-of-day component.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime truncates t to its calendar date in t's location.
func FromTime(t time.Time) Date {
	return New(t.Date())
}

// Today returns the current date in the given location.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.Now().In(loc))
}

// time returns the canonical representation of the day: midnight UTC.
func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// AddDays returns a new Date shifted by the given number of days.
func (d Date) AddDays(days int) Date { return New(d.y, d.m, d.d+days) }

// Before reports whether d falls before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d falls after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date as yyyy-mm-dd.
func (d Date) String() string { return d.time().Format(Format) }

// parse layouts tried in order. A bare date is treated as the start of that
// day; datetime forms are truncated to their calendar date.
var layouts = []string{
	"2006-01-02",
	"2006-1-2",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// Parse normalizes any supported input representation to a Date. It accepts
// dash-delimited dates, dd/mm/yyyy slash-delimited dates, and combined
// date-time strings.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("invalid date: empty string")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: want yyyy-mm-dd, dd/mm/yyyy, or a datetime", s)
}

// MustParse is like Parse but panics on error. Intended for tests and
// compile-time constants.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON writes the date as a yyyy-mm-dd string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts any representation Parse understands, so data
// exported by older versions or hand-edited files round-trips.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
