package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Alexander2227/tennis-pro-system/internal/domain"
	"github.com/Alexander2227/tennis-pro-system/pkg/auth"
	"github.com/google/uuid"
)

type StaffSvc struct {
	store    StaffStore
	tokenTTL time.Duration
}

func NewStaffSvc(store StaffStore, tokenTTL time.Duration) *StaffSvc {
	return &StaffSvc{store: store, tokenTTL: tokenTTL}
}

func (s *StaffSvc) Login(ctx context.Context, email, password string) (string, *domain.Staff, error) {
	u, err := s.store.ByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidLogin
	}
	token, err := auth.CreateStaffToken(u.ID, u.Name, string(u.Role), s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *StaffSvc) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.Staff, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.Staff{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: string(hash), Role: role}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *StaffSvc) List(ctx context.Context) ([]domain.Staff, error) {
	return s.store.List(ctx)
}

func (s *StaffSvc) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// EnsureDefaults seeds the two bootstrap accounts on an empty install
// so the club can log in right after first boot.
func (s *StaffSvc) EnsureDefaults(ctx context.Context) error {
	defaults := []struct {
		name, email, password string
		role                  domain.Role
	}{
		{"Administrator", "admin@tennis.pro", "12345", domain.RoleAdmin},
		{"Lead Instructor", "instructor@tennis.pro", "12345", domain.RoleInstructor},
	}
	for _, d := range defaults {
		existing, err := s.store.ByEmail(ctx, d.email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if _, err := s.Register(ctx, d.name, d.email, d.password, d.role); err != nil {
			return err
		}
	}
	return nil
}
