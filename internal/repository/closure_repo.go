package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"salone/internal/domain"
)

type ClosureRepository struct {
	db *gorm.DB
}

func NewClosureRepository(db *gorm.DB) *ClosureRepository {
	return &ClosureRepository{db: db}
}

// InRange returns closures overlapping [from, to).
func (r *ClosureRepository) InRange(ctx context.Context, from, to time.Time) ([]domain.Closure, error) {
	var out []domain.Closure
	err := r.db.WithContext(ctx).
		Where("start_at < ? AND end_at > ?", to, from).
		Order("start_at asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClosureRepository) Create(ctx context.Context, c *domain.Closure) error {
	return r.db.WithContext(ctx).Create(c).Error
}
