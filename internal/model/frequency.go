package model

import "time"

type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekdays Frequency = "weekdays"
	FrequencyWeekly   Frequency = "weekly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekdays, FrequencyWeekly:
		return true
	default:
		return false
	}
}

// ActiveOn reports whether a routine with this frequency is scheduled to occur
// on the given date. Weekly routines are anchored to Monday; the anchor is not
// configurable per routine.
func (f Frequency) ActiveOn(date time.Time) bool {
	switch f {
	case FrequencyDaily:
		return true
	case FrequencyWeekdays:
		wd := date.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	case FrequencyWeekly:
		return date.Weekday() == time.Monday
	default:
		return false
	}
}
