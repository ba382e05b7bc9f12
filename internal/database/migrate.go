package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"salone/internal/domain"
	"salone/internal/pkg/logger"
)

// booking_no_overlap is the last line of defense against double-booking: two
// transactions that both pass the in-app availability recheck cannot both
// commit overlapping rows for the same staff member.
const bookingNoOverlapSQL = `
ALTER TABLE bookings ADD CONSTRAINT booking_no_overlap
EXCLUDE USING gist (
    staff_id WITH =,
    tstzrange(start_at, end_at, '[)') WITH &&
) WHERE (status <> 'CANCELLED')`

// Migrate creates the schema. The exclusion constraint needs postgres; on
// sqlite (dev, tests) the transactional recheck is the only overlap guard.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.BusinessSettings{},
		&domain.WeeklySchedule{},
		&domain.ServiceCategory{},
		&domain.Service{},
		&domain.StaffMember{},
		&domain.Customer{},
		&domain.Closure{},
		&domain.Booking{},
	)
	if err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	var cnt int64
	err = db.Raw(
		`SELECT COUNT(1) FROM pg_constraint WHERE conname = 'booking_no_overlap'`,
	).Scan(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		if err := db.Exec(bookingNoOverlapSQL).Error; err != nil {
			logger.Log.Error("failed to create booking_no_overlap constraint", zap.Error(err))
			return err
		}
	}
	return nil
}
