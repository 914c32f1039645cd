package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/zenflow/internal/model"
)

func at(clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2026-02-09 "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRoutineFiresAtExactThreshold(t *testing.T) {
	routines := []model.Routine{
		{ID: "r-1", Title: "Standup", Time: "09:00", Frequency: model.FrequencyDaily, NotifyBefore: 10},
	}

	res := EvaluateTick(routines, nil, at("08:50"))
	if len(res.Reminders) != 1 {
		t.Fatalf("expected 1 reminder at 08:50, got %d", len(res.Reminders))
	}
	rem := res.Reminders[0]
	if rem.SourceKind != model.SourceRoutine || rem.SourceID != "r-1" {
		t.Fatalf("unexpected reminder source: %+v", rem)
	}
	if !strings.Contains(rem.Message, "Standup") || !strings.Contains(rem.Message, "10 minutes") {
		t.Fatalf("unexpected message: %q", rem.Message)
	}

	for _, clock := range []string{"08:49", "08:51", "09:00"} {
		if res := EvaluateTick(routines, nil, at(clock)); len(res.Reminders) != 0 {
			t.Fatalf("expected no reminder at %s, got %d", clock, len(res.Reminders))
		}
	}
}

func TestRoutineReminderIgnoresFrequency(t *testing.T) {
	// 2026-02-14 is a Saturday; the weekly routine is not active that day, yet
	// its reminder still fires. Upstream behavior, kept intact.
	saturday := time.Date(2026, 2, 14, 17, 30, 0, 0, time.UTC)
	routines := []model.Routine{
		{ID: "r-w", Title: "Weekly Review", Time: "18:00", Frequency: model.FrequencyWeekly, NotifyBefore: 30},
	}
	res := EvaluateTick(routines, nil, saturday)
	if len(res.Reminders) != 1 {
		t.Fatalf("expected reminder despite inactive frequency, got %d", len(res.Reminders))
	}
}

func TestEventFiresOnlyOnItsDate(t *testing.T) {
	events := []model.Event{
		{ID: "e-1", Title: "Dentist", Date: "2026-02-09", StartTime: "10:00", EndTime: "11:00", NotifyBefore: 30},
	}

	res := EvaluateTick(nil, events, at("09:30"))
	if len(res.Reminders) != 1 {
		t.Fatalf("expected 1 event reminder, got %d", len(res.Reminders))
	}
	if !strings.Contains(res.Reminders[0].Message, "Upcoming Event: Dentist starts in 30 minutes.") {
		t.Fatalf("unexpected message: %q", res.Reminders[0].Message)
	}

	// Same wall clock a day earlier: not that event's date, nothing fires.
	dayBefore := time.Date(2026, 2, 8, 9, 30, 0, 0, time.UTC)
	if res := EvaluateTick(nil, events, dayBefore); len(res.Reminders) != 0 {
		t.Fatalf("expected no reminder on other dates, got %d", len(res.Reminders))
	}
}

func TestMalformedTimesNeverFire(t *testing.T) {
	routines := []model.Routine{
		{ID: "r-bad", Title: "Broken", Time: "9am", Frequency: model.FrequencyDaily, NotifyBefore: 0},
	}
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 15, 30, 45} {
			now := time.Date(2026, 2, 9, h, m, 0, 0, time.UTC)
			if res := EvaluateTick(routines, nil, now); len(res.Reminders) != 0 {
				t.Fatalf("malformed time fired at %s", model.ClockString(now))
			}
		}
	}
}

func TestExpirySweep(t *testing.T) {
	events := []model.Event{
		{ID: "e-past", Title: "Past", Date: "2026-02-08", StartTime: "10:00", EndTime: "11:00"},
		{ID: "e-ended", Title: "Ended", Date: "2026-02-09", StartTime: "08:00", EndTime: "09:00"},
		{ID: "e-live", Title: "Live", Date: "2026-02-09", StartTime: "09:00", EndTime: "13:00"},
		{ID: "e-future", Title: "Future", Date: "2026-02-10", StartTime: "10:00", EndTime: "11:00"},
	}

	res := EvaluateTick(nil, events, at("12:00"))
	want := map[string]bool{"e-past": true, "e-ended": true}
	if len(res.ExpiredEventIDs) != len(want) {
		t.Fatalf("expected %d expirations, got %v", len(want), res.ExpiredEventIDs)
	}
	for _, id := range res.ExpiredEventIDs {
		if !want[id] {
			t.Fatalf("unexpected expiration: %s", id)
		}
	}
}

func TestExpiryScenarioDentist(t *testing.T) {
	events := []model.Event{
		{ID: "e-dentist", Title: "Dentist", Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00", NotifyBefore: 30},
	}

	dayAfter := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	if res := EvaluateTick(nil, events, dayAfter); len(res.ExpiredEventIDs) != 1 {
		t.Fatalf("expected removal on following day, got %v", res.ExpiredEventIDs)
	}

	sameDayMorning := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	if res := EvaluateTick(nil, events, sameDayMorning); len(res.ExpiredEventIDs) != 0 {
		t.Fatalf("expected retention same day before end, got %v", res.ExpiredEventIDs)
	}
}

func TestTickResultEmpty(t *testing.T) {
	if !(TickResult{}).Empty() {
		t.Fatal("zero result should be empty")
	}
	if (TickResult{ExpiredEventIDs: []string{"x"}}).Empty() {
		t.Fatal("result with expirations is not empty")
	}
}
