// Package timeslot turns the club's human slot representation — a
// calendar date plus a 12-hour clock string like "3:00 PM" — into a
// comparable instant.
package timeslot

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// PastTolerance absorbs client/server clock skew when rejecting slots
// that already passed.
const PastTolerance = 5 * time.Minute

var ErrBadClock = errors.New("unrecognized clock time")

// ParseClock converts "3:00 PM" to 24-hour (hour, minute). Hour "12"
// maps to zero before the AM/PM offset is applied, so "12:00 PM" is
// noon and "12:00 AM" is midnight.
func ParseClock(s string) (int, int, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return 0, 0, ErrBadClock
	}
	marker := strings.ToUpper(parts[1])
	if marker != "AM" && marker != "PM" {
		return 0, 0, ErrBadClock
	}
	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return 0, 0, ErrBadClock
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, ErrBadClock
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, ErrBadClock
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, ErrBadClock
	}
	if hour == 12 {
		hour = 0
	}
	if marker == "PM" {
		hour += 12
	}
	return hour, minute, nil
}

// SlotStart resolves a (date, clock) pair to its instant in loc.
func SlotStart(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc), nil
}

// InPast reports whether slot lies beyond the past-booking tolerance.
func InPast(slot, now time.Time) bool {
	return slot.Before(now.Add(-PastTolerance))
}
