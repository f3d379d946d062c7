// Package isodate handles the fixed-width yyyy-MM-dd strings used as
// calendar dates throughout the application. Because the format is
// zero-padded, plain string comparison orders dates chronologically.
package isodate

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the only accepted date format.
const Layout = time.DateOnly

var ErrInvalid = errors.New("invalid date")

// Parse validates s and returns it as midnight UTC.
func Parse(s string) (time.Time, error) {
	if len(s) != len(Layout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	return t, nil
}

// Valid reports whether s is a well-formed date.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Format renders t in its own location.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the calendar date of now in now's location.
func Today(now time.Time) string {
	return Format(now)
}

// MonthDays lists every date of the given month in order.
func MonthDays(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()

	days := make([]string, 0, last)
	for d := range last {
		days = append(days, Format(first.AddDate(0, 0, d)))
	}

	return days
}

// ParseMonth parses a yyyy-MM month string.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q", ErrInvalid, s)
	}

	return t.Year(), t.Month(), nil
}

// MonthRange returns the first and last date of the month containing t.
func MonthRange(t time.Time) (string, string) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)

	return Format(start), Format(end)
}
