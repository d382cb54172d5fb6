package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidClock reports whether s is a valid "HH:MM" clock time (00:00-23:59).
func ValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

// clockToMinutes converts "HH:MM" to minutes since midnight. Invalid input
// yields 0, matching the tolerant parsing used everywhere else in this package.
func clockToMinutes(s string) int {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0
	}
	return h*60 + m
}

// minutesToClock formats minutes since midnight as "HH:MM".
func minutesToClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// AdjustClock shifts a clock time by delta minutes, clamped to 00:00-23:59.
// Invalid input is returned unchanged.
func AdjustClock(s string, delta int) string {
	if !ValidClock(s) {
		return s
	}
	total := clockToMinutes(s) + delta
	if total < 0 {
		total = 0
	}
	if total > minutesPerDay-1 {
		total = minutesPerDay - 1
	}
	return minutesToClock(total)
}

// ClockInRange reports whether current is inside [start, end], where the
// window may wrap past midnight (end < start).
func ClockInRange(current, start, end string) bool {
	c := clockToMinutes(current)
	s := clockToMinutes(start)
	e := clockToMinutes(end)
	if e < s {
		return c >= s || c <= e
	}
	return s <= c && c <= e
}

// ClockDistance returns the minimal distance in minutes between two "HH:MM"
// clock times on the 24h circle.
func ClockDistance(a, b string) int {
	return circularDistance(clockToMinutes(a), clockToMinutes(b))
}

// circularDistance returns the minimal distance in minutes between two clock
// times on the 24h circle. Raw distances over 12 hours fold to the
// complementary direction.
func circularDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > minutesPerDay/2 {
		d = minutesPerDay - d
	}
	return d
}
