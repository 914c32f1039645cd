package model

import (
	"sort"
	"time"
)

type SourceKind string

const (
	SourceRoutine SourceKind = "routine"
	SourceEvent   SourceKind = "event"
)

// Occurrence is a routine or event projected onto a concrete date. Occurrences
// are derived on demand and never persisted.
type Occurrence struct {
	SourceID     string
	SourceKind   SourceKind
	Title        string
	OccursAt     string
	NotifyBefore int
	Color        string
}

// ProjectForDate returns the scheduled items for a date, ordered ascending by
// time of day. Routines active on the date contribute at their daily time,
// events dated that day at their start time. The sort is stable, so items
// sharing a time keep concatenation order: routines before events.
func ProjectForDate(routines []Routine, events []Event, date time.Time) []Occurrence {
	dateStr := DateString(date)
	out := make([]Occurrence, 0, len(routines)+len(events))
	for _, r := range routines {
		if !r.Frequency.ActiveOn(date) {
			continue
		}
		out = append(out, Occurrence{
			SourceID:     r.ID,
			SourceKind:   SourceRoutine,
			Title:        r.Title,
			OccursAt:     r.Time,
			NotifyBefore: r.NotifyBefore,
			Color:        r.Color,
		})
	}
	for _, e := range events {
		if e.Date != dateStr {
			continue
		}
		out = append(out, Occurrence{
			SourceID:     e.ID,
			SourceKind:   SourceEvent,
			Title:        e.Title,
			OccursAt:     e.StartTime,
			NotifyBefore: e.NotifyBefore,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccursAt < out[j].OccursAt
	})
	return out
}
