package domain

import "time"

type Status string

const (
	StatusPending       Status = "PENDING"
	StatusConfirmed     Status = "CONFIRMED"
	StatusConfirmedLate Status = "CONFIRMED_LATE"
	StatusNoShow        Status = "NO_SHOW"
	StatusCancelled     Status = "CANCELLED"
)

// Attended reports whether the client actually showed up, on time or not.
func (s Status) Attended() bool {
	return s == StatusConfirmed || s == StatusConfirmedLate
}

// ConsumesCapacity reports whether a reservation in this status still
// holds a unit of slot capacity.
func (s Status) ConsumesCapacity() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusConfirmedLate
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusConfirmedLate, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}

type Kind string

const (
	KindCourt           Kind = "COURT"
	KindCourtInstructor Kind = "COURT_INSTRUCTOR"
)

func (k Kind) Valid() bool {
	return k == KindCourt || k == KindCourtInstructor
}

const (
	// CourtCapacity is the number of simultaneous non-cancelled
	// reservations one slot can hold, regardless of kind.
	CourtCapacity = 2
	// InstructorCapacity is the independent sub-limit on
	// COURT_INSTRUCTOR reservations per slot.
	InstructorCapacity = 2
	// GracePeriod is how long past the slot start a PENDING
	// reservation is still honored before it expires to NO_SHOW.
	GracePeriod = 15 * time.Minute
)

// CapacityStatuses are the statuses counted against slot capacity.
var CapacityStatuses = []Status{StatusPending, StatusConfirmed, StatusConfirmedLate}

// AttendedStatuses are the statuses meaning the client showed up.
var AttendedStatuses = []Status{StatusConfirmed, StatusConfirmedLate}

type Reservation struct {
	ID string `gorm:"primaryKey"`
	// Date and TimeSlot are the slot identity, stored exactly as booked
	// ("2025-06-01", "3:00 PM"). SlotStart is the parsed instant, kept
	// for ordering and expiry only.
	Date      string    `gorm:"index:idx_reservations_slot"`
	TimeSlot  string    `gorm:"index:idx_reservations_slot"`
	SlotStart time.Time `gorm:"index"`
	Code      string    `gorm:"uniqueIndex"`
	Kind      Kind      `gorm:"index"`
	Status    Status    `gorm:"index"`
	ClientID  string    `gorm:"index"`
	StaffID   *string
	ArrivedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
