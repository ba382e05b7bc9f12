package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"salone/internal/domain"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) GetActive(ctx context.Context, id int64) (*domain.StaffMember, error) {
	var s domain.StaffMember
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FirstActive returns the earliest-created active member, used when a
// booking request names no staff.
func (r *StaffRepository) FirstActive(ctx context.Context) (*domain.StaffMember, error) {
	var s domain.StaffMember
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at asc").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) Create(ctx context.Context, s *domain.StaffMember) error {
	return r.db.WithContext(ctx).Create(s).Error
}
