package availability

import (
	"time"

	"salone/internal/domain"
	"salone/internal/pkg/civil"
)

// SlotStep is the fixed candidate granularity.
const SlotStep = 15 * time.Minute

// window is a half-open instant interval [Start, End).
type window struct {
	Start time.Time
	End   time.Time
}

func (w window) overlaps(start, end time.Time) bool {
	return start.Before(w.End) && end.After(w.Start)
}

// dayWindow is one resolved operating day.
type dayWindow struct {
	Open  time.Time
	Close time.Time
	Lunch *window
}

// resolveDay turns a calendar date into the day's operating window, or nil
// when the salon is closed (no schedule row, closed flag, or missing times).
func resolveDay(
	date civil.Date,
	loc *time.Location,
	sched *domain.WeeklySchedule,
	settings domain.BusinessSettings,
) (*dayWindow, error) {
	if sched == nil || sched.IsClosed || sched.OpenTime == nil || sched.CloseTime == nil {
		return nil, nil
	}

	openT, err := civil.ParseTime(*sched.OpenTime)
	if err != nil {
		return nil, err
	}
	closeT, err := civil.ParseTime(*sched.CloseTime)
	if err != nil {
		return nil, err
	}

	dw := &dayWindow{
		Open:  date.In(openT, loc),
		Close: date.In(closeT, loc),
	}

	lunch, err := resolveLunch(date, loc, sched, settings)
	if err != nil {
		return nil, err
	}
	dw.Lunch = lunch
	return dw, nil
}

// resolveLunch applies the override chain: a complete day-specific window
// wins outright; otherwise the global default applies when lunch is enabled.
func resolveLunch(
	date civil.Date,
	loc *time.Location,
	sched *domain.WeeklySchedule,
	settings domain.BusinessSettings,
) (*window, error) {
	var start, end *string
	switch {
	case sched.LunchStart != nil && sched.LunchEnd != nil:
		start, end = sched.LunchStart, sched.LunchEnd
	case settings.LunchEnabled && settings.LunchStart != nil && settings.LunchEnd != nil:
		start, end = settings.LunchStart, settings.LunchEnd
	default:
		return nil, nil
	}

	startT, err := civil.ParseTime(*start)
	if err != nil {
		return nil, err
	}
	endT, err := civil.ParseTime(*end)
	if err != nil {
		return nil, err
	}
	return &window{Start: date.In(startT, loc), End: date.In(endT, loc)}, nil
}

// SlotInputs carries everything ComputeSlots needs; it touches no storage.
type SlotInputs struct {
	Date     civil.Date
	Loc      *time.Location
	Now      time.Time
	Service  domain.Service
	Settings domain.BusinessSettings
	Schedule *domain.WeeklySchedule
	Bookings []domain.Booking // non-cancelled, same staff, service preloaded
	Closures []domain.Closure
}

// ComputeSlots walks the operating window in SlotStep increments and returns
// the bookable start times as local HH:mm strings, in chronological order.
//
// A candidate occupies [cursor, cursor+duration+buffer); an existing booking
// occupies [startAt, endAt+itsBuffer). Buffers extend only the end of a
// block, so a slot may start the moment a prior booking's buffer elapses.
func ComputeSlots(in SlotInputs) ([]string, error) {
	day, err := resolveDay(in.Date, in.Loc, in.Schedule, in.Settings)
	if err != nil {
		return nil, err
	}
	slots := []string{}
	if day == nil {
		return slots, nil
	}

	leadLimit := in.Now.Add(time.Duration(in.Settings.LeadTimeMin) * time.Minute)
	buffer := time.Duration(in.Service.EffectiveBuffer(in.Settings)) * time.Minute
	duration := time.Duration(in.Service.DurationMin) * time.Minute

	for cursor := day.Open; cursor.Before(day.Close); cursor = cursor.Add(SlotStep) {
		serviceEnd := cursor.Add(duration)
		blockEnd := serviceEnd.Add(buffer)

		if blockEnd.After(day.Close) {
			continue
		}
		if cursor.Before(in.Now) {
			continue
		}
		if cursor.Before(leadLimit) {
			continue
		}
		if day.Lunch != nil && day.Lunch.overlaps(cursor, blockEnd) {
			continue
		}
		if anyClosureOverlaps(in.Closures, cursor, blockEnd) {
			continue
		}
		if anyBookingOverlaps(in.Bookings, in.Settings, cursor, blockEnd) {
			continue
		}

		slots = append(slots, civil.TimeOf(cursor, in.Loc).String())
	}
	return slots, nil
}

func anyClosureOverlaps(closures []domain.Closure, start, end time.Time) bool {
	for _, c := range closures {
		if (window{Start: c.StartAt, End: c.EndAt}).overlaps(start, end) {
			return true
		}
	}
	return false
}

func anyBookingOverlaps(bookings []domain.Booking, settings domain.BusinessSettings, start, end time.Time) bool {
	for _, b := range bookings {
		bookingBuffer := settings.DefaultBufferMin
		if b.Service != nil {
			bookingBuffer = b.Service.EffectiveBuffer(settings)
		}
		occupied := window{
			Start: b.StartAt,
			End:   b.EndAt.Add(time.Duration(bookingBuffer) * time.Minute),
		}
		if occupied.overlaps(start, end) {
			return true
		}
	}
	return false
}
