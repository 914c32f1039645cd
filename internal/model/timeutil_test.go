package model

import (
	"testing"
	"time"
)

func TestMinuteOfDay(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"07:05", 425},
		{"09:00", 540},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := MinuteOfDay(tc.clock)
		if err != nil {
			t.Fatalf("MinuteOfDay(%q): %v", tc.clock, err)
		}
		if got != tc.want {
			t.Fatalf("MinuteOfDay(%q): got %d want %d", tc.clock, got, tc.want)
		}
	}

	if _, err := MinuteOfDay("9am"); err == nil {
		t.Fatal("expected error for malformed clock")
	}
}

func TestValidClockRequiresZeroPadding(t *testing.T) {
	cases := []struct {
		clock string
		want  bool
	}{
		{"09:30", true},
		{"00:00", true},
		{"23:59", true},
		{"9:30", false},
		{"09:3", false},
		{"24:00", false},
		{"09:60", false},
		{" 09:30", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidClock(tc.clock); got != tc.want {
			t.Fatalf("ValidClock(%q): got %v want %v", tc.clock, got, tc.want)
		}
	}
}

func TestValidDateRequiresZeroPadding(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2026-02-09", true},
		{"2026-2-9", false},
		{"2026-02-9", false},
		{"26-02-09", false},
		{"2026-13-01", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidDate(tc.date); got != tc.want {
			t.Fatalf("ValidDate(%q): got %v want %v", tc.date, got, tc.want)
		}
	}
}

func TestDateAndClockStrings(t *testing.T) {
	at := time.Date(2026, 2, 9, 8, 5, 42, 0, time.UTC)
	if got := DateString(at); got != "2026-02-09" {
		t.Fatalf("DateString: got %q", got)
	}
	if got := ClockString(at); got != "08:05" {
		t.Fatalf("ClockString: got %q", got)
	}
}
