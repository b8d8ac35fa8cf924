package timeslot

import (
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"3:00 PM", 15, 0},
		{"03:00 PM", 15, 0},
		{"12:00 PM", 12, 0}, // noon
		{"12:00 AM", 0, 0},  // midnight
		{"12:30 AM", 0, 30},
		{"9:15 AM", 9, 15},
		{"11:59 PM", 23, 59},
		{"1:00 am", 1, 0},
	}
	for _, tc := range cases {
		h, m, err := ParseClock(tc.in)
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.in, err)
			continue
		}
		if h != tc.hour || m != tc.minute {
			t.Errorf("ParseClock(%q) = %d:%02d, want %d:%02d", tc.in, h, m, tc.hour, tc.minute)
		}
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "3:00", "300 PM", "13:00 PM", "0:30 AM", "3:60 PM", "3:00 XM", "noon"} {
		if _, _, err := ParseClock(in); !errors.Is(err, ErrBadClock) {
			t.Errorf("ParseClock(%q) = %v, want ErrBadClock", in, err)
		}
	}
}

func TestSlotStart(t *testing.T) {
	got, err := SlotStart("2025-06-01", "3:00 PM", time.UTC)
	if err != nil {
		t.Fatalf("SlotStart: %v", err)
	}
	want := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("SlotStart = %v, want %v", got, want)
	}

	if _, err := SlotStart("01/06/2025", "3:00 PM", time.UTC); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestInPastBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	if InPast(now.Add(-4*time.Minute), now) {
		t.Fatal("slot 4 minutes ago is inside the tolerance")
	}
	if InPast(now.Add(-5*time.Minute), now) {
		t.Fatal("slot exactly 5 minutes ago is still admissible")
	}
	if !InPast(now.Add(-5*time.Minute-time.Second), now) {
		t.Fatal("slot beyond the tolerance must be rejected")
	}
	if InPast(now.Add(time.Hour), now) {
		t.Fatal("future slot flagged as past")
	}
}
