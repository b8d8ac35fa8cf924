package domain

import (
	"testing"
	"time"
)

func TestStatusPredicates(t *testing.T) {
	if !StatusConfirmed.Attended() || !StatusConfirmedLate.Attended() {
		t.Fatal("confirmed statuses must count as attended")
	}
	for _, s := range []Status{StatusPending, StatusNoShow, StatusCancelled} {
		if s.Attended() {
			t.Fatalf("%s must not count as attended", s)
		}
	}

	for _, s := range []Status{StatusPending, StatusConfirmed, StatusConfirmedLate} {
		if !s.ConsumesCapacity() {
			t.Fatalf("%s must hold capacity", s)
		}
	}
	for _, s := range []Status{StatusNoShow, StatusCancelled} {
		if s.ConsumesCapacity() {
			t.Fatalf("%s must not hold capacity", s)
		}
	}

	if Status("WAITLISTED").Valid() {
		t.Fatal("unknown status accepted")
	}
}

func TestAgeAt(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		birth string
		want  int
	}{
		{"2000-06-10", 25}, // birthday today
		{"2000-06-11", 24}, // birthday tomorrow
		{"2000-06-09", 25},
		{"2000-12-31", 24},
		{"2025-01-01", 0},
		{"not-a-date", 0},
	}
	for _, tc := range cases {
		if got := AgeAt(tc.birth, today); got != tc.want {
			t.Errorf("AgeAt(%q) = %d, want %d", tc.birth, got, tc.want)
		}
	}
}
