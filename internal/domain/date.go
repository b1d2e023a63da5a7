package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for local dates.
const DateLayout = "2006-01-02"

// LocalDateOf returns the calendar date of t in loc.
func LocalDateOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string and returns it normalized.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// IsValidDate reports whether s is a well-formed calendar date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}
