package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"salone/internal/domain"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FindOrCreate deduplicates by phone or email: a matching customer is reused
// instead of inserting a duplicate row.
func (r *CustomerRepository) FindOrCreate(ctx context.Context, fullName, phone string, email *string) (*domain.Customer, error) {
	var c domain.Customer

	q := r.db.WithContext(ctx).Where("phone = ?", phone)
	if email != nil && *email != "" {
		q = r.db.WithContext(ctx).Where("phone = ? OR email = ?", phone, *email)
	}

	err := q.First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c = domain.Customer{FullName: fullName, Phone: phone, Email: email}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
