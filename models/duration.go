package models

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned when a duration spec cannot be parsed.
var ErrInvalidDuration = errors.New("invalid duration format")

// unitWidth is the fixed width of the trailing unit token. The parser
// slices the unit off the end rather than tokenizing, so the accepted
// literal must occupy exactly the last four characters of the spec
// (e.g. "2hour", "3days", "1week").
const unitWidth = 4

// ParseDuration parses an admin-supplied duration spec of the form
// "<integer><unit>". The magnitude must be a positive integer and the
// trailing four characters must equal one of the accepted unit
// literals, case-insensitive. Weeks are a fixed 7 days and months a
// fixed 30 days; the math is deliberately not calendar-aware.
func ParseDuration(spec string) (time.Duration, error) {
	if len(spec) <= unitWidth {
		return 0, ErrInvalidDuration
	}

	n, err := strconv.Atoi(spec[:len(spec)-unitWidth])
	if err != nil || n <= 0 {
		return 0, ErrInvalidDuration
	}

	switch strings.ToLower(spec[len(spec)-unitWidth:]) {
	case "hour", "hours":
		return time.Duration(n) * time.Hour, nil
	case "day", "days":
		return time.Duration(n) * 24 * time.Hour, nil
	case "week", "weeks":
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	case "month", "months":
		return time.Duration(n) * 30 * 24 * time.Hour, nil
	default:
		return 0, ErrInvalidDuration
	}
}
