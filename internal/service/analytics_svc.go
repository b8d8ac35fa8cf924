package service

import (
	"context"
	"time"

	"github.com/Alexander2227/tennis-pro-system/internal/domain"
	"github.com/Alexander2227/tennis-pro-system/internal/timeslot"
)

type Range string

const (
	RangeToday Range = "today"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

type Totals struct {
	Reservations int `json:"reservations"`
	Confirmed    int `json:"confirmed"`
	Late         int `json:"late"`
	NoShow       int `json:"noShow"`
	Pending      int `json:"pending"`
	Instructor   int `json:"instructor"`
}

type AnalyticsReport struct {
	Timeline []TimelineRow `json:"timeline"`
	Totals   Totals        `json:"totals"`
}

type StaffMetrics struct {
	ClassesToday int64 `json:"classesToday"`
	ClassesWeek  int64 `json:"classesWeek"`
	CourtsWeek   int64 `json:"courtsWeek"`
}

// AnalyticsSvc derives rollups from the reservation ledger. Read-only:
// the only write it triggers is the idempotent expiry sweep, so the
// statuses it reports are current.
type AnalyticsSvc struct {
	store AnalyticsStore
	loc   *time.Location
	now   func() time.Time
}

func NewAnalyticsSvc(store AnalyticsStore, loc *time.Location) *AnalyticsSvc {
	if loc == nil {
		loc = time.Local
	}
	return &AnalyticsSvc{store: store, loc: loc, now: time.Now}
}

// Analytics buckets the range by time slot for a single day, by date
// otherwise. Totals are the sums of the timeline columns, so the two
// views always agree. Cancelled reservations never appear.
func (s *AnalyticsSvc) Analytics(ctx context.Context, rng Range, kind *domain.Kind, status *domain.Status) (*AnalyticsReport, error) {
	now := s.now().In(s.loc)
	if _, err := s.store.ExpireOverdue(ctx, now.Add(-domain.GracePeriod)); err != nil {
		return nil, err
	}

	today := now.Format(timeslot.DateLayout)
	from, to := today, today
	byTimeSlot := false
	switch rng {
	case RangeToday:
		byTimeSlot = true
	case RangeMonth:
		from = now.AddDate(0, 0, -30).Format(timeslot.DateLayout)
	default: // week
		from = now.AddDate(0, 0, -7).Format(timeslot.DateLayout)
	}

	rows, err := s.store.QueryTimeline(ctx, from, to, byTimeSlot, kind, status)
	if err != nil {
		return nil, err
	}
	var t Totals
	for _, r := range rows {
		t.Reservations += r.Total
		t.Confirmed += r.Confirmed
		t.Late += r.Late
		t.NoShow += r.NoShow
		t.Pending += r.Pending
		t.Instructor += r.Instructor
	}
	return &AnalyticsReport{Timeline: rows, Totals: t}, nil
}

// Metrics is the staff dashboard: attended classes today, attended in
// the last 7 days, and court-only attended in the last 7 days.
func (s *AnalyticsSvc) Metrics(ctx context.Context) (*StaffMetrics, error) {
	now := s.now().In(s.loc)
	if _, err := s.store.ExpireOverdue(ctx, now.Add(-domain.GracePeriod)); err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	weekStart := dayStart.AddDate(0, 0, -7)
	dayEnd := dayStart.AddDate(0, 0, 1)

	today, err := s.store.CountAttended(ctx, dayStart, dayEnd, nil)
	if err != nil {
		return nil, err
	}
	week, err := s.store.CountAttended(ctx, weekStart, dayEnd, nil)
	if err != nil {
		return nil, err
	}
	court := domain.KindCourt
	courts, err := s.store.CountAttended(ctx, weekStart, dayEnd, &court)
	if err != nil {
		return nil, err
	}
	return &StaffMetrics{ClassesToday: today, ClassesWeek: week, CourtsWeek: courts}, nil
}

// Activity returns the most recent reservations with client names.
func (s *AnalyticsSvc) Activity(ctx context.Context) ([]ActivityRow, error) {
	return s.store.RecentActivity(ctx, 10)
}

// History searches past reservations by client name or code substring
// and optional date bounds, annotating each row with the client's age.
func (s *AnalyticsSvc) History(ctx context.Context, query, from, to string) ([]HistoryRow, error) {
	rows, err := s.store.SearchHistory(ctx, query, from, to, 100)
	if err != nil {
		return nil, err
	}
	today := s.now().In(s.loc)
	for i := range rows {
		rows[i].Age = domain.AgeAt(rows[i].BirthDate, today)
	}
	return rows, nil
}

// ReportRows feeds the PDF export: all reservations in the date range
// in slot order.
func (s *AnalyticsSvc) ReportRows(ctx context.Context, from, to string) ([]ReportRow, error) {
	return s.store.ListRange(ctx, from, to)
}
