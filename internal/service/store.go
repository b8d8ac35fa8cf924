package service

import (
	"context"
	"time"

	"github.com/Alexander2227/tennis-pro-system/internal/domain"
)

// SlotCount is the capacity ledger for one (date, timeSlot) pair.
type SlotCount struct {
	Total      int
	Instructor int
}

type PendingClass struct {
	Date      string      `json:"date"`
	TimeSlot  string      `json:"timeSlot"`
	Kind      domain.Kind `json:"kind"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
}

// TimelineRow is one analytics bucket: a time slot when the range is a
// single day, a date otherwise.
type TimelineRow struct {
	Label      string `json:"label"`
	Total      int    `json:"total"`
	Confirmed  int    `json:"confirmed"`
	Late       int    `json:"late"`
	NoShow     int    `json:"noShow"`
	Pending    int    `json:"pending"`
	Instructor int    `json:"instructor"`
}

type ActivityRow struct {
	Code      string        `json:"code"`
	Date      string        `json:"date"`
	TimeSlot  string        `json:"timeSlot"`
	Kind      domain.Kind   `json:"kind"`
	Status    domain.Status `json:"status"`
	ArrivedAt *time.Time    `json:"arrivedAt"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
}

type HistoryRow struct {
	Code        string        `json:"code"`
	Date        string        `json:"date"`
	TimeSlot    string        `json:"timeSlot"`
	Kind        domain.Kind   `json:"kind"`
	Status      domain.Status `json:"status"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Phone       string        `json:"phone"`
	BirthDate   string        `json:"birthDate"`
	Nationality string        `json:"nationality"`
	// Age is derived by the analytics service, not the store.
	Age int `json:"age"`
}

type ReportRow struct {
	Date      string
	TimeSlot  string
	FirstName string
	LastName  string
	Status    domain.Status
}

// ReservationStore is the storage contract for the booking lifecycle.
// Find methods return (nil, nil) when nothing matches.
type ReservationStore interface {
	// CreateReservation persists the client and reservation in one
	// transaction; returns ErrCodeTaken on a confirmation-code clash.
	CreateReservation(ctx context.Context, c *domain.Client, r *domain.Reservation) error
	CountSlot(ctx context.Context, date, timeSlot string) (SlotCount, error)
	FindByCode(ctx context.Context, code string) (*domain.Reservation, error)
	// SetStatus and RecordArrival are compare-and-swap writes: the
	// update applies only while the row is still in the from status.
	// They report false when another transition won the race.
	SetStatus(ctx context.Context, id string, from, to domain.Status) (bool, error)
	RecordArrival(ctx context.Context, id string, from, to domain.Status, staffID string, at time.Time) (bool, error)
	// ExpireOverdue flips PENDING reservations whose slot started
	// before cutoff to NO_SHOW. Idempotent.
	ExpireOverdue(ctx context.Context, cutoff time.Time) (int64, error)
	ListPending(ctx context.Context, limit int) ([]PendingClass, error)
}

// AnalyticsStore is the read-side contract. Implementations must bind
// every filter value as a query parameter.
type AnalyticsStore interface {
	ExpireOverdue(ctx context.Context, cutoff time.Time) (int64, error)
	QueryTimeline(ctx context.Context, from, to string, byTimeSlot bool, kind *domain.Kind, status *domain.Status) ([]TimelineRow, error)
	CountAttended(ctx context.Context, from, to time.Time, kind *domain.Kind) (int64, error)
	RecentActivity(ctx context.Context, limit int) ([]ActivityRow, error)
	SearchHistory(ctx context.Context, query, from, to string, limit int) ([]HistoryRow, error)
	ListRange(ctx context.Context, from, to string) ([]ReportRow, error)
}

// StaffStore holds operator accounts. ByEmail returns (nil, nil) when
// the email is unknown.
type StaffStore interface {
	Create(ctx context.Context, s *domain.Staff) error
	ByEmail(ctx context.Context, email string) (*domain.Staff, error)
	List(ctx context.Context) ([]domain.Staff, error)
	Delete(ctx context.Context, id string) error
}

// EventPublisher is satisfied by pkg/mq.Publisher; a nil publisher
// disables events.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
