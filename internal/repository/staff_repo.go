package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alexander2227/tennis-pro-system/internal/domain"
	"github.com/Alexander2227/tennis-pro-system/internal/service"
)

type StaffRepo struct{ db *gorm.DB }

func NewStaffRepo(db *gorm.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

func (r *StaffRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Staff{})
}

func (r *StaffRepo) Create(ctx context.Context, s *domain.Staff) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return service.ErrEmailTaken
	}
	return err
}

func (r *StaffRepo) ByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	var s domain.Staff
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepo) List(ctx context.Context) ([]domain.Staff, error) {
	var out []domain.Staff
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *StaffRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Staff{}, "id = ?", id).Error
}
