package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Alexander2227/tennis-pro-system/internal/domain"
	"github.com/Alexander2227/tennis-pro-system/internal/timeslot"
)

const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
	codeAttempts = 5
)

type ClientInfo struct {
	FirstName   string
	LastName    string
	Phone       string
	BirthDate   string
	Nationality string
	NationalID  *string
	Passport    *string
}

type BookingSvc struct {
	store ReservationStore
	pub   EventPublisher
	loc   *time.Location
	now   func() time.Time

	// mu guards slots; each slot key gets its own admission mutex so
	// count-then-insert is a critical section per slot, while bookings
	// for different slots proceed concurrently.
	mu    sync.Mutex
	slots map[string]*sync.Mutex
}

func NewBookingSvc(store ReservationStore, pub EventPublisher, loc *time.Location) *BookingSvc {
	if loc == nil {
		loc = time.Local
	}
	return &BookingSvc{
		store: store,
		pub:   pub,
		loc:   loc,
		now:   time.Now,
		slots: make(map[string]*sync.Mutex),
	}
}

func (s *BookingSvc) slotLock(date, timeSlot string) *sync.Mutex {
	key := date + "|" + timeSlot
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.slots[key]
	if !ok {
		l = &sync.Mutex{}
		s.slots[key] = l
	}
	return l
}

// Create admits a booking through the time check and the capacity
// ledger, then persists it as PENDING and returns the confirmation code.
func (s *BookingSvc) Create(ctx context.Context, info ClientInfo, date, slot string, kind domain.Kind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown reservation kind %q", ErrInvalidInput, kind)
	}
	start, err := timeslot.SlotStart(date, slot, s.loc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if timeslot.InPast(start, s.now()) {
		return "", ErrPastSlot
	}

	lock := s.slotLock(date, slot)
	lock.Lock()
	defer lock.Unlock()

	counts, err := s.store.CountSlot(ctx, date, slot)
	if err != nil {
		return "", err
	}
	if counts.Total >= domain.CourtCapacity {
		return "", ErrCourtFull
	}
	if kind == domain.KindCourtInstructor && counts.Instructor >= domain.InstructorCapacity {
		return "", ErrInstructorBusy
	}

	client := &domain.Client{
		ID:          uuid.NewString(),
		FirstName:   info.FirstName,
		LastName:    info.LastName,
		Phone:       info.Phone,
		BirthDate:   info.BirthDate,
		Nationality: info.Nationality,
		NationalID:  info.NationalID,
		Passport:    info.Passport,
	}

	// Random codes alone do not guarantee uniqueness; the store's
	// unique index is the arbiter and collisions are retried.
	for attempt := 0; attempt < codeAttempts; attempt++ {
		r := &domain.Reservation{
			ID:        uuid.NewString(),
			Date:      date,
			TimeSlot:  slot,
			SlotStart: start,
			Code:      newCode(),
			Kind:      kind,
			Status:    domain.StatusPending,
			ClientID:  client.ID,
		}
		err := s.store.CreateReservation(ctx, client, r)
		if errors.Is(err, ErrCodeTaken) {
			continue
		}
		if err != nil {
			return "", err
		}
		s.publish(ctx, "reservation.created", map[string]any{
			"code": r.Code, "date": date, "time_slot": slot, "kind": kind,
		})
		return r.Code, nil
	}
	return "", fmt.Errorf("confirmation code space exhausted after %d attempts", codeAttempts)
}

// Cancel flips a PENDING reservation to CANCELLED. Terminal. The
// conditional write keeps a concurrent check-in or sweep from being
// overwritten: whoever transitions the row first wins.
func (s *BookingSvc) Cancel(ctx context.Context, code string) error {
	r, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if r == nil || r.Status != domain.StatusPending {
		return ErrNotFound
	}
	ok, err := s.store.SetStatus(ctx, r.ID, domain.StatusPending, domain.StatusCancelled)
	if err != nil {
		return err
	}
	if !ok {
		// Lost the race: the reservation is no longer pending.
		return ErrNotFound
	}
	s.publish(ctx, "reservation.cancelled", map[string]any{
		"code": r.Code, "date": r.Date, "time_slot": r.TimeSlot,
	})
	return nil
}

// CheckIn records an arrival. PENDING confirms on time, NO_SHOW
// confirms late; anything else is an invalid code. The expiry sweep
// runs first so an overdue booking is seen as NO_SHOW here, not as
// still pending. The arrival write is conditional on the status it
// read; if a concurrent sweep moved the row to NO_SHOW in between, the
// second attempt confirms it late.
func (s *BookingSvc) CheckIn(ctx context.Context, code, staffID string) (domain.Status, error) {
	now := s.now()
	if _, err := s.store.ExpireOverdue(ctx, now.Add(-domain.GracePeriod)); err != nil {
		return "", err
	}
	for attempt := 0; attempt < 2; attempt++ {
		r, err := s.store.FindByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if r == nil {
			return "", ErrInvalidCode
		}
		var to domain.Status
		switch r.Status {
		case domain.StatusPending:
			to = domain.StatusConfirmed
		case domain.StatusNoShow:
			to = domain.StatusConfirmedLate
		default:
			return "", ErrInvalidCode
		}
		ok, err := s.store.RecordArrival(ctx, r.ID, r.Status, to, staffID, now)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		s.publish(ctx, "reservation.checked_in", map[string]any{
			"code": r.Code, "status": to, "staff_id": staffID,
		})
		return to, nil
	}
	return "", ErrInvalidCode
}

// ListPending sweeps expired bookings, then returns the upcoming
// pending classes in slot order.
func (s *BookingSvc) ListPending(ctx context.Context) ([]PendingClass, error) {
	if _, err := s.store.ExpireOverdue(ctx, s.now().Add(-domain.GracePeriod)); err != nil {
		return nil, err
	}
	return s.store.ListPending(ctx, 20)
}

func (s *BookingSvc) publish(ctx context.Context, key string, v any) {
	if s.pub == nil {
		return
	}
	_ = s.pub.PublishJSON(ctx, key, v)
}

func newCode() string {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b)
}
