package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"salone/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// GetByID returns nil when the booking does not exist.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Staff").
		Preload("Customer").
		Where("id = ?", id).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ActiveForStaff returns non-cancelled bookings for one staff member whose
// [start_at, end_at) interval overlaps [from, to), with the booked service
// preloaded so the caller can apply that service's buffer.
func (r *BookingRepository) ActiveForStaff(ctx context.Context, staffID int64, from, to time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("staff_id = ? AND status <> ? AND start_at < ? AND end_at > ?",
			staffID, domain.BookingCancelled, to, from).
		Order("start_at asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// UpdateTimes moves a booking and stamps the new status in the same write.
func (r *BookingRepository) UpdateTimes(ctx context.Context, id string, startAt, endAt time.Time, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"start_at": startAt,
			"end_at":   endAt,
			"status":   status,
		}).Error
}
