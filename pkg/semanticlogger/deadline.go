package semanticlogger

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDeadline is returned by RemindToRemoveUnusedImplementationAfter
// when the deadline is not an ISO-8601 calendar date (YYYY-MM-DD).
var ErrInvalidDeadline = errors.New("invalid deadline date")

// now is the clock for deadline checks. Replaced in tests.
var now = time.Now

// parseDeadline parses a strict, zero-padded YYYY-MM-DD date. The result is
// a calendar date only; its location carries no meaning.
func parseDeadline(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDeadline, s, err)
	}
	return d, nil
}

// pastDeadline reports whether the calendar date of t is strictly after
// deadline. The deadline day itself does not count.
func pastDeadline(t, deadline time.Time) bool {
	return calendarDate(t).After(calendarDate(deadline))
}

// calendarDate drops the clock and zone of t, keeping the date as seen in t's
// own location.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
