package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidFrequency    = errors.New("model: invalid routine frequency")
	ErrInvalidClock        = errors.New("model: invalid clock time")
	ErrInvalidNotifyBefore = errors.New("model: notify-before must be non-negative")
)

// Routine is a recurring habit occurring at a fixed time of day.
type Routine struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Time        string    `json:"time"`
	Frequency   Frequency `json:"frequency"`
	// CompletedDates holds the calendar dates the routine was marked done,
	// each at most once.
	CompletedDates []string `json:"completedDates"`
	NotifyBefore   int      `json:"notifyBefore"`
	Color          string   `json:"color,omitempty"`
}

func (r Routine) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: routine id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("model: routine title is required")
	}
	if !ValidClock(r.Time) {
		return fmt.Errorf("%w: %q", ErrInvalidClock, r.Time)
	}
	if !r.Frequency.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, r.Frequency)
	}
	if r.NotifyBefore < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNotifyBefore, r.NotifyBefore)
	}
	seen := make(map[string]bool, len(r.CompletedDates))
	for _, d := range r.CompletedDates {
		if !ValidDate(d) {
			return fmt.Errorf("model: invalid completed date %q", d)
		}
		if seen[d] {
			return fmt.Errorf("model: duplicate completed date %q", d)
		}
		seen[d] = true
	}
	return nil
}

func (r Routine) CompletedOn(date string) bool {
	for _, d := range r.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// ToggleCompleted adds the date to CompletedDates if absent, otherwise removes
// it. Calling it twice with the same date is a round-trip back to the original
// state.
func (r *Routine) ToggleCompleted(date string) {
	for i, d := range r.CompletedDates {
		if d == date {
			r.CompletedDates = append(r.CompletedDates[:i], r.CompletedDates[i+1:]...)
			return
		}
	}
	r.CompletedDates = append(r.CompletedDates, date)
}

// Streak counts the consecutive completed days ending today or yesterday. A
// streak in progress (today done) and a streak not yet broken by today's
// inaction (yesterday done, today pending) both count; anything older returns
// zero.
func (r Routine) Streak(today time.Time) int {
	if len(r.CompletedDates) == 0 {
		return 0
	}
	done := make(map[string]bool, len(r.CompletedDates))
	for _, d := range r.CompletedDates {
		done[d] = true
	}

	cursor := today
	if !done[DateString(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
		if !done[DateString(cursor)] {
			return 0
		}
	}

	count := 0
	for done[DateString(cursor)] {
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}
