package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"salone/internal/domain"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ForDay returns the entry for a day of week (0=Sunday..6=Saturday), or nil
// when none exists. A missing entry means closed.
func (r *ScheduleRepository) ForDay(ctx context.Context, dayOfWeek int) (*domain.WeeklySchedule, error) {
	var s domain.WeeklySchedule
	err := r.db.WithContext(ctx).Where("day_of_week = ?", dayOfWeek).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepository) Upsert(ctx context.Context, s *domain.WeeklySchedule) error {
	var existing domain.WeeklySchedule
	err := r.db.WithContext(ctx).Where("day_of_week = ?", s.DayOfWeek).First(&existing).Error
	if err == nil {
		s.ID = existing.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Save(s).Error
}
