package itinerary

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var ErrInvalidClock = errors.New("invalid HH:MM time")

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ValidClock reports whether s is a zero-padded 24-hour HH:MM time.
// Stored schedules use this form; ParseClock is looser for query input.
func ValidClock(s string) bool {
	if !clockPattern.MatchString(s) {
		return false
	}
	_, err := ParseClock(s)
	return err == nil
}

// ParseClock converts an HH:MM 24-hour time into minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

// Span is the number of minutes from one clock time to the next occurrence
// of another. A later time on the clock is the same day, an earlier one the
// following day.
func Span(from, to string) (int, error) {
	start, err := ParseClock(from)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(to)
	if err != nil {
		return 0, err
	}
	diff := end - start
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff, nil
}

// Layover formats the wait between an arrival and the next departure,
// e.g. "1h 30m" or "45m". Dates are ignored; a departure earlier on the
// clock than the arrival is taken to be on the following day.
func Layover(arrivalTime, departureTime string) (string, error) {
	minutes, err := Span(arrivalTime, departureTime)
	if err != nil {
		return "", err
	}
	return FormatMinutes(minutes), nil
}

func FormatMinutes(total int) string {
	h, m := total/60, total%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
