package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Alexander2227/tennis-pro-system/internal/domain"
	"github.com/Alexander2227/tennis-pro-system/internal/service"
)

type ReservationRepo struct{ db *gorm.DB }

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

func (r *ReservationRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Client{}, &domain.Reservation{})
}

// CreateReservation inserts the client and reservation in one txn so a
// confirmation-code clash rolls back both and nothing partial persists.
func (r *ReservationRepo) CreateReservation(ctx context.Context, c *domain.Client, res *domain.Reservation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Create(res).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return service.ErrCodeTaken
	}
	return err
}

func (r *ReservationRepo) CountSlot(ctx context.Context, date, timeSlot string) (service.SlotCount, error) {
	var rows []struct {
		Kind domain.Kind
		N    int
	}
	err := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Select("kind, COUNT(*) AS n").
		Where("date = ? AND time_slot = ? AND status IN ?", date, timeSlot, domain.CapacityStatuses).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return service.SlotCount{}, err
	}
	var out service.SlotCount
	for _, row := range rows {
		out.Total += row.N
		if row.Kind == domain.KindCourtInstructor {
			out.Instructor += row.N
		}
	}
	return out, nil
}

func (r *ReservationRepo) FindByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.WithContext(ctx).First(&res, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SetStatus transitions id from one status to another. The status guard
// in the WHERE clause makes concurrent transitions on the same row
// single-winner; RowsAffected == 0 means another one got there first.
func (r *ReservationRepo) SetStatus(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected == 1, res.Error
}

func (r *ReservationRepo) RecordArrival(ctx context.Context, id string, from, to domain.Status, staffID string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "staff_id": staffID, "arrived_at": at})
	return res.RowsAffected == 1, res.Error
}

func (r *ReservationRepo) ExpireOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("status = ? AND slot_start < ?", domain.StatusPending, cutoff).
		Update("status", domain.StatusNoShow)
	return res.RowsAffected, res.Error
}

func (r *ReservationRepo) ListPending(ctx context.Context, limit int) ([]service.PendingClass, error) {
	var out []service.PendingClass
	err := r.db.WithContext(ctx).Table("reservations").
		Select("reservations.date, reservations.time_slot, reservations.kind, clients.first_name, clients.last_name").
		Joins("JOIN clients ON clients.id = reservations.client_id").
		Where("reservations.status = ?", domain.StatusPending).
		Order("reservations.slot_start ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// QueryTimeline groups the range by time slot (single day) or by date.
// The grouping column comes from a closed switch; every filter value
// is bound as a parameter.
func (r *ReservationRepo) QueryTimeline(ctx context.Context, from, to string, byTimeSlot bool, kind *domain.Kind, status *domain.Status) ([]service.TimelineRow, error) {
	col := "date"
	if byTimeSlot {
		col = "time_slot"
	}
	sql := fmt.Sprintf(`SELECT %s AS label,
		COUNT(*) AS total,
		SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS confirmed,
		SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS late,
		SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS no_show,
		SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS pending,
		SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END) AS instructor
		FROM reservations
		WHERE date BETWEEN ? AND ? AND status <> ?`, col)
	args := []any{
		domain.StatusConfirmed, domain.StatusConfirmedLate,
		domain.StatusNoShow, domain.StatusPending,
		domain.KindCourtInstructor,
		from, to, domain.StatusCancelled,
	}
	if kind != nil {
		sql += " AND kind = ?"
		args = append(args, *kind)
	}
	if status != nil {
		sql += " AND status = ?"
		args = append(args, *status)
	}
	sql += fmt.Sprintf(" GROUP BY %s ORDER BY %s", col, col)

	var rows []service.TimelineRow
	err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

func (r *ReservationRepo) CountAttended(ctx context.Context, from, to time.Time, kind *domain.Kind) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("status IN ? AND arrived_at >= ? AND arrived_at < ?", domain.AttendedStatuses, from, to)
	if kind != nil {
		q = q.Where("kind = ?", *kind)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *ReservationRepo) RecentActivity(ctx context.Context, limit int) ([]service.ActivityRow, error) {
	var out []service.ActivityRow
	err := r.db.WithContext(ctx).Table("reservations").
		Select("reservations.code, reservations.date, reservations.time_slot, reservations.kind, reservations.status, reservations.arrived_at, clients.first_name, clients.last_name").
		Joins("JOIN clients ON clients.id = reservations.client_id").
		Order("reservations.created_at DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *ReservationRepo) SearchHistory(ctx context.Context, query, from, to string, limit int) ([]service.HistoryRow, error) {
	q := r.db.WithContext(ctx).Table("reservations").
		Select("reservations.code, reservations.date, reservations.time_slot, reservations.kind, reservations.status, clients.first_name, clients.last_name, clients.phone, clients.birth_date, clients.nationality").
		Joins("JOIN clients ON clients.id = reservations.client_id")
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("clients.first_name ILIKE ? OR reservations.code ILIKE ?", pattern, pattern)
	}
	if from != "" {
		q = q.Where("reservations.date >= ?", from)
	}
	if to != "" {
		q = q.Where("reservations.date <= ?", to)
	}
	var out []service.HistoryRow
	err := q.Order("reservations.date DESC").Limit(limit).Scan(&out).Error
	return out, err
}

func (r *ReservationRepo) ListRange(ctx context.Context, from, to string) ([]service.ReportRow, error) {
	q := r.db.WithContext(ctx).Table("reservations").
		Select("reservations.date, reservations.time_slot, reservations.status, clients.first_name, clients.last_name").
		Joins("JOIN clients ON clients.id = reservations.client_id")
	if from != "" {
		q = q.Where("reservations.date >= ?", from)
	}
	if to != "" {
		q = q.Where("reservations.date <= ?", to)
	}
	var out []service.ReportRow
	err := q.Order("reservations.date ASC, reservations.slot_start ASC").Scan(&out).Error
	return out, err
}
