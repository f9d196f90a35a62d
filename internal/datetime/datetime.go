// Package datetime parses and formats the naive local date-times used by
// deadlines and events.
//
// All values are minute precision and carry the UTC location, which stands in
// for "no zone": the calendar fields are exactly what the user typed.
package datetime

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	// StorageLayout is the full input form and the data-file form.
	StorageLayout = "2006-01-02 1504"

	// DisplayLayout renders a single instant for the user.
	DisplayLayout = "Jan 2 2006 1504"

	dateLayout        = "2006-01-02"
	displayDateLayout = "Jan 2 2006"
	timeLayout        = "1504"
)

// ErrInvalid is returned for any token that is not one of the accepted forms.
var ErrInvalid = errors.New("invalid date/time")

var (
	fullPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{4}$`)
	timePattern = regexp.MustCompile(`^\d{4}$`)
)

// ParseFull parses the "YYYY-MM-DD HHMM" form only.
func ParseFull(s string) (time.Time, error) {
	if !fullPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	t, err := time.ParseInLocation(StorageLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return t, nil
}

// Parse accepts either the full form or the time-only "HHMM" form.
// A time-only token takes its date from base.
func Parse(s string, base time.Time) (time.Time, error) {
	if timePattern.MatchString(s) {
		clock, err := time.ParseInLocation(timeLayout, s, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		y, m, d := base.Date()
		return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
	}
	return ParseFull(s)
}

// Display renders t as "Feb 4 2026 1800".
func Display(t time.Time) string {
	return t.Format(DisplayLayout)
}

// DisplayDate renders the date part of t as "Feb 4 2026".
func DisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// Clock renders the time part of t as "1800".
func Clock(t time.Time) string {
	return t.Format(timeLayout)
}

// Storage renders t as "2026-02-04 1800".
func Storage(t time.Time) string {
	return t.Format(StorageLayout)
}

// StorageDate renders the date part of t as "2026-02-04".
func StorageDate(t time.Time) string {
	return t.Format(dateLayout)
}

// In reinterprets the calendar fields of a naive value in loc.
func In(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
}
