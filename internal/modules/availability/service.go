package availability

import (
	"context"
	"time"

	"salone/internal/domain"
	"salone/internal/modules/catalog"
	"salone/internal/pkg/civil"
	"salone/internal/repository"
)

type Query struct {
	ServiceID int64
	StaffID   int64 // 0 picks the earliest-created active member
	Date      string
}

// Result carries the computed slots plus the resolved records so the booking
// transaction can reuse them without re-reading.
type Result struct {
	Slots    []string
	Timezone string
	Location *time.Location
	Service  *domain.Service
	Staff    *domain.StaffMember
	Settings *domain.BusinessSettings
}

type Service struct {
	settings SettingsRepository
	schedule ScheduleRepository
	catalog  CatalogLookup
	bookings BookingRepository
	closures ClosureRepository

	// Now is the clock used for lead-time and past-slot cuts.
	Now func() time.Time
}

func NewService(
	settings SettingsRepository,
	schedule ScheduleRepository,
	lookup CatalogLookup,
	bookings BookingRepository,
	closures ClosureRepository,
) *Service {
	return &Service{
		settings: settings,
		schedule: schedule,
		catalog:  lookup,
		bookings: bookings,
		closures: closures,
		Now:      time.Now,
	}
}

// NewFromStore builds the service over one store scope, so the booking
// transaction can recompute availability against its own transaction.
func NewFromStore(st *repository.Store) *Service {
	return NewService(
		st.Settings,
		st.Schedule,
		catalog.NewService(st.Services, st.Staff),
		st.Bookings,
		st.Closures,
	)
}

// ForDate computes the bookable slots for one service/staff/date.
func (s *Service) ForDate(ctx context.Context, q Query) (*Result, error) {
	date, err := civil.ParseDate(q.Date)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	loc, err := civil.LoadZone(settings.Timezone)
	if err != nil {
		return nil, err
	}

	svc, err := s.catalog.ActiveService(ctx, q.ServiceID)
	if err != nil {
		return nil, err
	}
	staff, err := s.catalog.ActiveStaff(ctx, q.StaffID)
	if err != nil {
		return nil, err
	}

	sched, err := s.schedule.ForDay(ctx, date.DayOfWeek(loc))
	if err != nil {
		return nil, err
	}

	// Day window for the storage range queries, in local civil bounds.
	dayStart := date.In(civil.TimeOfDay{}, loc)
	dayEnd := date.In(civil.TimeOfDay{Hour: 23, Minute: 59}, loc)

	bookings, err := s.bookings.ActiveForStaff(ctx, staff.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	closures, err := s.closures.InRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots, err := ComputeSlots(SlotInputs{
		Date:     date,
		Loc:      loc,
		Now:      s.Now(),
		Service:  *svc,
		Settings: *settings,
		Schedule: sched,
		Bookings: bookings,
		Closures: closures,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Slots:    slots,
		Timezone: settings.Timezone,
		Location: loc,
		Service:  svc,
		Staff:    staff,
		Settings: settings,
	}, nil
}

// HasSlot reports whether time (HH:mm) is in the computed set.
func (r *Result) HasSlot(t string) bool {
	for _, s := range r.Slots {
		if s == t {
			return true
		}
	}
	return false
}
