// Package timestring converts compact duration notations like "1h30m" or
// "2d 4h" to and from time.Duration values.
package timestring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalid is returned for any syntax violation: empty input, unknown
	// unit letter, out-of-order or repeated units, trailing digits.
	ErrInvalid = errors.New("invalid timestring")

	// ErrTooLarge is returned when the total exceeds MaxDuration.
	ErrTooLarge = errors.New("timestring exceeds the maximum duration")
)

// MaxDuration is the sanity bound for parsed durations.
const MaxDuration = 5 * 365 * 24 * time.Hour

type unit struct {
	letter byte
	size   time.Duration
}

// Units must appear in this order, each at most once.
var units = []unit{
	{'w', 7 * 24 * time.Hour},
	{'d', 24 * time.Hour},
	{'h', time.Hour},
	{'m', time.Minute},
	{'s', time.Second},
}

func unitIndex(letter byte) int {
	for i, u := range units {
		if u.letter == letter {
			return i
		}
	}
	return -1
}

// Parse converts a timestring to a duration. Whitespace is stripped before
// parsing, so "1h 30m" and "1h30m" are equivalent.
func Parse(text string) (time.Duration, error) {
	s := strings.Join(strings.Fields(text), "")
	if s == "" {
		return 0, ErrInvalid
	}

	var total time.Duration
	next := 0
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i || i == len(s) {
			// Unit letter without a number, or trailing digits.
			return 0, ErrInvalid
		}

		value, err := strconv.ParseUint(s[start:i], 10, 64)
		if err != nil {
			// Only overflow is possible here.
			return 0, ErrTooLarge
		}

		idx := unitIndex(s[i])
		if idx < 0 {
			return 0, ErrInvalid
		}
		if idx < next {
			// Repeated unit or units out of the w > d > h > m > s order.
			return 0, ErrInvalid
		}
		next = idx + 1
		i++

		if value > uint64(MaxDuration/units[idx].size) {
			return 0, ErrTooLarge
		}
		total += time.Duration(value) * units[idx].size
		if total > MaxDuration {
			return 0, ErrTooLarge
		}
	}

	return total, nil
}

// Format renders a duration as a timestring. Zero-valued leading units are
// omitted, but minutes and seconds are always shown, so a 5 second duration
// formats as "0m 5s".
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := int64(d / time.Second)
	weeks := secs / 604800
	secs %= 604800
	days := secs / 86400
	secs %= 86400
	hours := secs / 3600
	secs %= 3600
	minutes := secs / 60
	seconds := secs % 60

	parts := make([]string, 0, 5)
	if weeks > 0 {
		parts = append(parts, fmt.Sprintf("%dw", weeks))
	}
	if days > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", minutes))
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}

// Validate parses a timestring and returns its canonical form.
func Validate(text string) (string, error) {
	d, err := Parse(text)
	if err != nil {
		return "", err
	}
	return Format(d), nil
}
