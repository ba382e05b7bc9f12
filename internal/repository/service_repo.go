package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"salone/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// GetActive returns the service only if it exists and is active; nil
// otherwise.
func (r *ServiceRepository) GetActive(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
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

// ListActiveByCategory returns categories ordered by sort_order, each with
// its active services.
func (r *ServiceRepository) ListActiveByCategory(ctx context.Context) ([]domain.ServiceCategory, error) {
	var cats []domain.ServiceCategory
	err := r.db.WithContext(ctx).
		Preload("Services", "is_active = ?", true).
		Order("sort_order asc").
		Find(&cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}
