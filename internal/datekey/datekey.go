package datekey

import (
	"errors"
	"time"
)

// Layout is the canonical date key format. Keys are always exactly
// 10 characters: an ISO-8601 calendar date with no time or zone part.
const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date key")

// Normalize validates input against the YYYY-MM-DD pattern and returns
// it unchanged as the canonical key. Calendrically impossible dates
// (month > 12, day past the end of the month, Feb 29 off leap years)
// are rejected along with anything that is not exactly the pattern.
func Normalize(input string) (string, error) {
	if len(input) != len(Layout) {
		return "", ErrInvalidDate
	}
	parsed, err := time.Parse(Layout, input)
	if err != nil {
		return "", ErrInvalidDate
	}
	// time.Parse tolerates some shapes that re-format differently
	// (it never rolls dates over, but this keeps the key literal).
	if parsed.Format(Layout) != input {
		return "", ErrInvalidDate
	}
	return input, nil
}

// Today returns the key for the local calendar date of the process clock.
func Today() string {
	return time.Now().Format(Layout)
}
