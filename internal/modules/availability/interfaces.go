package availability

import (
	"context"
	"time"

	"salone/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BusinessSettings, error)
}

type ScheduleRepository interface {
	ForDay(ctx context.Context, dayOfWeek int) (*domain.WeeklySchedule, error)
}

type BookingRepository interface {
	ActiveForStaff(ctx context.Context, staffID int64, from, to time.Time) ([]domain.Booking, error)
}

type ClosureRepository interface {
	InRange(ctx context.Context, from, to time.Time) ([]domain.Closure, error)
}

// CatalogLookup resolves identifiers to active records; implemented by the
// catalog module, which owns the not-found error contracts.
type CatalogLookup interface {
	ActiveService(ctx context.Context, id int64) (*domain.Service, error)
	ActiveStaff(ctx context.Context, id int64) (*domain.StaffMember, error)
}
