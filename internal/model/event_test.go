package model

import "testing"

func validEvent() Event {
	return Event{
		ID:           "evt-1",
		Title:        "Dentist",
		Date:         "2024-06-01",
		StartTime:    "10:00",
		EndTime:      "11:00",
		NotifyBefore: 30,
	}
}

func TestEventValidate(t *testing.T) {
	if err := validEvent().Validate(); err != nil {
		t.Fatalf("valid event rejected: %v", err)
	}

	e := validEvent()
	e.Date = "06/01/2024"
	if err := e.Validate(); err == nil {
		t.Fatal("expected error for malformed date")
	}

	e = validEvent()
	e.EndTime = "25:00"
	if err := e.Validate(); err == nil {
		t.Fatal("expected error for malformed end time")
	}

	// Unpadded hours must be rejected: "9:30" never compares less than an
	// afternoon clock, so such an event would dodge the same-day sweep.
	e = validEvent()
	e.EndTime = "9:30"
	if err := e.Validate(); err == nil {
		t.Fatal("expected error for unpadded end time")
	}

	// End before start is tolerated; only the format is checked.
	e = validEvent()
	e.StartTime = "11:00"
	e.EndTime = "10:00"
	if err := e.Validate(); err != nil {
		t.Fatalf("inverted times should pass validation: %v", err)
	}
}

func TestEventExpired(t *testing.T) {
	e := validEvent()

	cases := []struct {
		name  string
		today string
		clock string
		want  bool
	}{
		{"day after", "2024-06-02", "00:00", true},
		{"same day before end", "2024-06-01", "09:00", false},
		{"same day at end", "2024-06-01", "11:00", false},
		{"same day past end", "2024-06-01", "11:01", true},
		{"day before", "2024-05-31", "23:59", false},
	}
	for _, tc := range cases {
		if got := e.Expired(tc.today, tc.clock); got != tc.want {
			t.Fatalf("%s: got expired=%v want %v", tc.name, got, tc.want)
		}
	}
}
