package model

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar-date form used everywhere in persisted state.
	DateLayout = "2006-01-02"
	// ClockLayout is the zero-padded wall-clock form. Lexicographic order on
	// these strings equals chronological order, which the projector and the
	// expiry sweeper rely on.
	ClockLayout = "15:04"
)

func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

func ClockString(t time.Time) string {
	return t.Format(ClockLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("model: invalid date %q: %w", s, err)
	}
	return t, nil
}

// ValidDate accepts only the zero-padded "YYYY-MM-DD" form. time.Parse alone
// would admit "2026-2-9", which breaks lexicographic date comparison.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return DateString(t) == s
}

// ValidClock accepts only the zero-padded "HH:mm" form. time.Parse alone
// would admit "9:30", which sorts after "18:00" lexicographically and is
// never less than any afternoon clock in the expiry comparison.
func ValidClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return false
	}
	return ClockString(t) == s
}

// MinuteOfDay converts an "HH:mm" clock string to its minute offset from
// midnight.
func MinuteOfDay(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("model: invalid clock %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
