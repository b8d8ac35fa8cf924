package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Alexander2227/tennis-pro-system/internal/domain"
)

// memStore implements ReservationStore, AnalyticsStore and StaffStore
// in memory with the same contracts as the gorm repositories.
type memStore struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
	clients      map[string]*domain.Client
	staff        map[string]*domain.Staff
	seq          int

	// failCreates makes the next N creates report a code collision.
	failCreates int
}

func newMemStore() *memStore {
	return &memStore{
		clients: make(map[string]*domain.Client),
		staff:   make(map[string]*domain.Staff),
	}
}

// seed inserts a reservation directly, bypassing admission.
func (m *memStore) seed(r domain.Reservation, c domain.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	r.CreatedAt = time.Unix(int64(m.seq), 0)
	r.ClientID = c.ID
	m.reservations = append(m.reservations, &r)
	m.clients[c.ID] = &c
}

func (m *memStore) byCode(code string) *domain.Reservation {
	for _, r := range m.reservations {
		if r.Code == code {
			return r
		}
	}
	return nil
}

func (m *memStore) CreateReservation(_ context.Context, c *domain.Client, r *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreates > 0 {
		m.failCreates--
		return ErrCodeTaken
	}
	if m.byCode(r.Code) != nil {
		return ErrCodeTaken
	}
	m.seq++
	cc, rr := *c, *r
	rr.CreatedAt = time.Unix(int64(m.seq), 0)
	m.clients[cc.ID] = &cc
	m.reservations = append(m.reservations, &rr)
	return nil
}

func (m *memStore) CountSlot(_ context.Context, date, timeSlot string) (SlotCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out SlotCount
	for _, r := range m.reservations {
		if r.Date == date && r.TimeSlot == timeSlot && r.Status.ConsumesCapacity() {
			out.Total++
			if r.Kind == domain.KindCourtInstructor {
				out.Instructor++
			}
		}
	}
	return out, nil
}

func (m *memStore) FindByCode(_ context.Context, code string) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.byCode(code)
	if r == nil {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memStore) SetStatus(_ context.Context, id string, from, to domain.Status) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reservations {
		if r.ID == id && r.Status == from {
			r.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) RecordArrival(_ context.Context, id string, from, to domain.Status, staffID string, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reservations {
		if r.ID == id && r.Status == from {
			r.Status = to
			sid, t := staffID, at
			r.StaffID = &sid
			r.ArrivedAt = &t
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ExpireOverdue(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.reservations {
		if r.Status == domain.StatusPending && r.SlotStart.Before(cutoff) {
			r.Status = domain.StatusNoShow
			n++
		}
	}
	return n, nil
}

func (m *memStore) ListPending(_ context.Context, limit int) ([]PendingClass, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var pend []*domain.Reservation
	for _, r := range m.reservations {
		if r.Status == domain.StatusPending {
			pend = append(pend, r)
		}
	}
	sort.Slice(pend, func(i, j int) bool { return pend[i].SlotStart.Before(pend[j].SlotStart) })
	var out []PendingClass
	for _, r := range pend {
		if len(out) == limit {
			break
		}
		c := m.clients[r.ClientID]
		out = append(out, PendingClass{Date: r.Date, TimeSlot: r.TimeSlot, Kind: r.Kind, FirstName: c.FirstName, LastName: c.LastName})
	}
	return out, nil
}

func (m *memStore) QueryTimeline(_ context.Context, from, to string, byTimeSlot bool, kind *domain.Kind, status *domain.Status) ([]TimelineRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	buckets := make(map[string]*TimelineRow)
	for _, r := range m.reservations {
		if r.Date < from || r.Date > to || r.Status == domain.StatusCancelled {
			continue
		}
		if kind != nil && r.Kind != *kind {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		label := r.Date
		if byTimeSlot {
			label = r.TimeSlot
		}
		row, ok := buckets[label]
		if !ok {
			row = &TimelineRow{Label: label}
			buckets[label] = row
		}
		row.Total++
		switch r.Status {
		case domain.StatusConfirmed:
			row.Confirmed++
		case domain.StatusConfirmedLate:
			row.Late++
		case domain.StatusNoShow:
			row.NoShow++
		case domain.StatusPending:
			row.Pending++
		}
		if r.Kind == domain.KindCourtInstructor {
			row.Instructor++
		}
	}
	labels := make([]string, 0, len(buckets))
	for l := range buckets {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	out := make([]TimelineRow, 0, len(labels))
	for _, l := range labels {
		out = append(out, *buckets[l])
	}
	return out, nil
}

func (m *memStore) CountAttended(_ context.Context, from, to time.Time, kind *domain.Kind) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.reservations {
		if !r.Status.Attended() || r.ArrivedAt == nil {
			continue
		}
		if r.ArrivedAt.Before(from) || !r.ArrivedAt.Before(to) {
			continue
		}
		if kind != nil && r.Kind != *kind {
			continue
		}
		n++
	}
	return n, nil
}

func (m *memStore) RecentActivity(_ context.Context, limit int) ([]ActivityRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rs := append([]*domain.Reservation(nil), m.reservations...)
	sort.Slice(rs, func(i, j int) bool { return rs[i].CreatedAt.After(rs[j].CreatedAt) })
	var out []ActivityRow
	for _, r := range rs {
		if len(out) == limit {
			break
		}
		c := m.clients[r.ClientID]
		out = append(out, ActivityRow{
			Code: r.Code, Date: r.Date, TimeSlot: r.TimeSlot, Kind: r.Kind,
			Status: r.Status, ArrivedAt: r.ArrivedAt,
			FirstName: c.FirstName, LastName: c.LastName,
		})
	}
	return out, nil
}

func (m *memStore) SearchHistory(_ context.Context, query, from, to string, limit int) ([]HistoryRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []HistoryRow
	q := strings.ToLower(query)
	for _, r := range m.reservations {
		c := m.clients[r.ClientID]
		if q != "" && !strings.Contains(strings.ToLower(c.FirstName), q) && !strings.Contains(strings.ToLower(r.Code), q) {
			continue
		}
		if from != "" && r.Date < from {
			continue
		}
		if to != "" && r.Date > to {
			continue
		}
		out = append(out, HistoryRow{
			Code: r.Code, Date: r.Date, TimeSlot: r.TimeSlot, Kind: r.Kind, Status: r.Status,
			FirstName: c.FirstName, LastName: c.LastName, Phone: c.Phone,
			BirthDate: c.BirthDate, Nationality: c.Nationality,
		})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) ListRange(_ context.Context, from, to string) ([]ReportRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rs := append([]*domain.Reservation(nil), m.reservations...)
	sort.Slice(rs, func(i, j int) bool { return rs[i].SlotStart.Before(rs[j].SlotStart) })
	var out []ReportRow
	for _, r := range rs {
		if from != "" && r.Date < from {
			continue
		}
		if to != "" && r.Date > to {
			continue
		}
		c := m.clients[r.ClientID]
		out = append(out, ReportRow{Date: r.Date, TimeSlot: r.TimeSlot, FirstName: c.FirstName, LastName: c.LastName, Status: r.Status})
	}
	return out, nil
}

func (m *memStore) Create(_ context.Context, s *domain.Staff) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.staff {
		if existing.Email == s.Email {
			return ErrEmailTaken
		}
	}
	cp := *s
	m.staff[cp.ID] = &cp
	return nil
}

func (m *memStore) ByEmail(_ context.Context, email string) (*domain.Staff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.staff {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) List(_ context.Context) ([]domain.Staff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Staff
	for _, s := range m.staff {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.staff, id)
	return nil
}
