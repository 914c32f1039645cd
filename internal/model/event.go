package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDate = errors.New("model: invalid event date")

// Event is a one-off scheduled item tied to a single calendar date. EndTime is
// expected to follow StartTime within the same date, but that is not enforced.
type Event struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	NotifyBefore int    `json:"notifyBefore"`
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("model: event id is required")
	}
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("model: event title is required")
	}
	if !ValidDate(e.Date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, e.Date)
	}
	if !ValidClock(e.StartTime) {
		return fmt.Errorf("%w: start %q", ErrInvalidClock, e.StartTime)
	}
	if !ValidClock(e.EndTime) {
		return fmt.Errorf("%w: end %q", ErrInvalidClock, e.EndTime)
	}
	if e.NotifyBefore < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNotifyBefore, e.NotifyBefore)
	}
	return nil
}

// Expired reports whether the event lies entirely in the past: its date is
// before today, or it is dated today and its end time has passed. Both
// comparisons are lexicographic on zero-padded fields.
func (e Event) Expired(today, nowClock string) bool {
	if e.Date < today {
		return true
	}
	return e.Date == today && e.EndTime < nowClock
}
