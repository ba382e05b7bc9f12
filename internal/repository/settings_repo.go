package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"salone/internal/domain"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings singleton, creating it with defaults on first
// access.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.BusinessSettings, error) {
	var s domain.BusinessSettings
	err := r.db.WithContext(ctx).Order("id asc").First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	s = domain.DefaultSettings()
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *domain.BusinessSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
