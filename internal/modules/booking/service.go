package booking

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"salone/internal/domain"
	"salone/internal/modules/availability"
	"salone/internal/pkg/civil"
	"salone/internal/repository"
)

// Service runs the booking lifecycle. Every operation recomputes
// availability inside its transaction before writing; the storage-level
// booking_no_overlap constraint is the final arbiter when two writers race.
type Service struct {
	store *repository.Store
	now   func() time.Time
}

func NewService(store *repository.Store) *Service {
	return &Service{store: store, now: time.Now}
}

type Result struct {
	Booking  *domain.Booking
	Timezone string
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*Result, error) {
	var out Result
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		avail := availability.NewFromStore(tx)
		avail.Now = s.now

		res, err := avail.ForDate(ctx, availability.Query{
			ServiceID: req.ServiceID,
			StaffID:   req.StaffID,
			Date:      req.Date,
		})
		if err != nil {
			return err
		}
		if !res.HasSlot(req.Time) {
			return ErrSlotUnavailable
		}

		startT, err := civil.ParseTime(req.Time)
		if err != nil {
			return err
		}
		date, err := civil.ParseDate(req.Date)
		if err != nil {
			return err
		}
		startAt := date.In(startT, res.Location)
		endAt := startAt.Add(time.Duration(res.Service.DurationMin) * time.Minute)

		customer, err := tx.Customers.FindOrCreate(ctx, req.FullName, req.Phone, req.Email)
		if err != nil {
			return err
		}

		b := &domain.Booking{
			ID:          uuid.NewString(),
			ServiceID:   res.Service.ID,
			StaffID:     res.Staff.ID,
			CustomerID:  customer.ID,
			StartAt:     startAt,
			EndAt:       endAt,
			Status:      domain.BookingConfirmed,
			CancelToken: uuid.NewString(),
			Notes:       req.Notes,
		}
		if err := tx.Bookings.Create(ctx, b); err != nil {
			return translateOverlap(err)
		}

		b.Service = res.Service
		b.Staff = res.Staff
		b.Customer = customer
		out = Result{Booking: b, Timezone: res.Timezone}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) GetDetail(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.store.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// Cancel is idempotent on already-cancelled bookings and otherwise enforces
// the minimum-notice window from settings.
func (s *Service) Cancel(ctx context.Context, id, token string) (*domain.Booking, error) {
	var out *domain.Booking
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		settings, err := tx.Settings.Get(ctx)
		if err != nil {
			return err
		}

		b, err := tx.Bookings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}
		if !tokenMatches(b.CancelToken, token) {
			return ErrInvalidToken
		}
		if b.Status == domain.BookingCancelled {
			out = b
			return nil
		}

		minutesToStart := b.StartAt.Sub(s.now()).Minutes()
		if minutesToStart < float64(settings.CancelLimitHours*60) {
			return ErrCancelWindowExpired
		}

		if err := tx.Bookings.UpdateStatus(ctx, b.ID, domain.BookingCancelled); err != nil {
			return err
		}
		b.Status = domain.BookingCancelled
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reschedule moves a booking to a new date/time. The duration comes from the
// service row associated with the booking, so an edited catalog never
// silently changes an existing appointment's length. There is deliberately
// no minimum-notice window here, unlike Cancel.
func (s *Service) Reschedule(ctx context.Context, id, token, newDate, newTime string) (*Result, error) {
	var out Result
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		b, err := tx.Bookings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}
		if !tokenMatches(b.CancelToken, token) {
			return ErrInvalidToken
		}
		if !b.Status.CanTransitionTo(domain.BookingRescheduled) {
			return ErrAlreadyCancelled
		}

		avail := availability.NewFromStore(tx)
		avail.Now = s.now

		res, err := avail.ForDate(ctx, availability.Query{
			ServiceID: b.ServiceID,
			StaffID:   b.StaffID,
			Date:      newDate,
		})
		if err != nil {
			return err
		}
		if !res.HasSlot(newTime) {
			return ErrSlotUnavailable
		}

		startT, err := civil.ParseTime(newTime)
		if err != nil {
			return err
		}
		date, err := civil.ParseDate(newDate)
		if err != nil {
			return err
		}

		duration := res.Service.DurationMin
		if b.Service != nil {
			duration = b.Service.DurationMin
		}
		startAt := date.In(startT, res.Location)
		endAt := startAt.Add(time.Duration(duration) * time.Minute)

		err = tx.Bookings.UpdateTimes(ctx, b.ID, startAt, endAt, domain.BookingRescheduled)
		if err != nil {
			return translateOverlap(err)
		}

		b.StartAt = startAt
		b.EndAt = endAt
		b.Status = domain.BookingRescheduled
		out = Result{Booking: b, Timezone: res.Timezone}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func tokenMatches(expected, got string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}

// translateOverlap maps the postgres exclusion violation on
// booking_no_overlap to ErrSlotUnavailable; a concurrent writer won the
// race. Everything else propagates unmodified.
func translateOverlap(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if (pgErr.Code == "23P01" || pgErr.Code == "23505") &&
			pgErr.ConstraintName == "booking_no_overlap" {
			return ErrSlotUnavailable
		}
	}
	return err
}
