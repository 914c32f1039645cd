package schedule

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/zenflow/internal/model"
)

// Reminder is a single notify-before crossing detected at a tick.
type Reminder struct {
	SourceID     string
	SourceKind   model.SourceKind
	Title        string
	Message      string
	NotifyBefore int
	At           time.Time
}

// TickResult carries everything one evaluation produced: reminders due this
// minute and events whose end has passed.
type TickResult struct {
	Reminders       []Reminder
	ExpiredEventIDs []string
}

func (t TickResult) Empty() bool {
	return len(t.Reminders) == 0 && len(t.ExpiredEventIDs) == 0
}

// EvaluateTick inspects routines and events against the current instant. A
// reminder fires iff the item's minute-of-day minus the current minute-of-day
// equals its notify-before value exactly; since minute-of-day strictly
// increases across ticks, the condition holds for at most one tick per item per
// day and no dedupe state is needed. Routines are checked on every day
// regardless of frequency, matching the projector's upstream behavior gap.
// Items with malformed clock strings never fire.
func EvaluateTick(routines []model.Routine, events []model.Event, now time.Time) TickResult {
	today := model.DateString(now)
	clock := model.ClockString(now)
	nowMinutes := now.Hour()*60 + now.Minute()

	var res TickResult
	for _, r := range routines {
		mins, err := model.MinuteOfDay(r.Time)
		if err != nil {
			continue
		}
		if mins-nowMinutes == r.NotifyBefore {
			res.Reminders = append(res.Reminders, Reminder{
				SourceID:     r.ID,
				SourceKind:   model.SourceRoutine,
				Title:        r.Title,
				Message:      fmt.Sprintf("Upcoming Routine: %s starts in %d minutes.", r.Title, r.NotifyBefore),
				NotifyBefore: r.NotifyBefore,
				At:           now,
			})
		}
	}
	for _, e := range events {
		if e.Date != today {
			if e.Expired(today, clock) {
				res.ExpiredEventIDs = append(res.ExpiredEventIDs, e.ID)
			}
			continue
		}
		mins, err := model.MinuteOfDay(e.StartTime)
		if err == nil && mins-nowMinutes == e.NotifyBefore {
			res.Reminders = append(res.Reminders, Reminder{
				SourceID:     e.ID,
				SourceKind:   model.SourceEvent,
				Title:        e.Title,
				Message:      fmt.Sprintf("Upcoming Event: %s starts in %d minutes.", e.Title, e.NotifyBefore),
				NotifyBefore: e.NotifyBefore,
				At:           now,
			})
		}
		if e.Expired(today, clock) {
			res.ExpiredEventIDs = append(res.ExpiredEventIDs, e.ID)
		}
	}
	return res
}
