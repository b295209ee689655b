// Package dates centralizes calendar-date handling for quotes and reports.
//
// Quote dates are stored as ISO YYYY-MM-DD strings. Older records may carry a
// full RFC3339 timestamp; both are accepted on read.
package dates

import (
	"strings"
	"time"
)

// Layout is the canonical on-disk date format.
const Layout = "2006-01-02"

// Format renders t as a calendar date in t's own location.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads an ISO date or RFC3339 timestamp.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(Layout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	// Anything longer that still starts with a date, e.g. "2024-05-01 10:00".
	if len(s) > len(Layout) {
		if t, err := time.Parse(Layout, s[:len(Layout)]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// InPeriod reports whether the date falls in the given month and year.
// Unparseable or empty dates are never in any period.
func InPeriod(s string, month time.Month, year int) bool {
	t, ok := Parse(s)
	if !ok {
		return false
	}
	return t.Month() == month && t.Year() == year
}

// Period identifies a calendar month.
type Period struct {
	Month time.Month `json:"month"`
	Year  int        `json:"year"`
}

func (p Period) Valid() bool {
	return p.Month >= time.January && p.Month <= time.December && p.Year > 0
}

// Contains reports whether the date s falls inside p.
func (p Period) Contains(s string) bool {
	return InPeriod(s, p.Month, p.Year)
}

// Previous returns the calendar month before p; January wraps to December of
// the prior year.
func (p Period) Previous() Period {
	if p.Month == time.January {
		return Period{Month: time.December, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: t.Month(), Year: t.Year()}
}
