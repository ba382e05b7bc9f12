package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the per-entity repositories over one gorm handle so a single
// transaction can be threaded through all of them.
type Store struct {
	db *gorm.DB

	Settings  *SettingsRepository
	Schedule  *ScheduleRepository
	Services  *ServiceRepository
	Staff     *StaffRepository
	Customers *CustomerRepository
	Closures  *ClosureRepository
	Bookings  *BookingRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		Settings:  NewSettingsRepository(db),
		Schedule:  NewScheduleRepository(db),
		Services:  NewServiceRepository(db),
		Staff:     NewStaffRepository(db),
		Customers: NewCustomerRepository(db),
		Closures:  NewClosureRepository(db),
		Bookings:  NewBookingRepository(db),
	}
}

// InTx runs fn against a store scoped to one transaction. The availability
// recheck and the booking write must share this scope so a concurrent writer
// cannot slip between check and insert unobserved.
func (s *Store) InTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
