// Package civil converts between the salon's wall-clock time and absolute
// instants. All business-rule comparisons happen on instants; dates and
// HH:mm strings only appear at the edges (API, weekly schedule rows).
package civil

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"
)

var (
	ErrInvalidTimeZone  = errors.New("unknown time zone")
	ErrInvalidCivilTime = errors.New("invalid date or time")
)

// Date is a calendar date with no attached zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// TimeOfDay is a wall-clock time with no attached zone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidCivilTime
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// ParseTime parses an HH:mm string.
func ParseTime(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidCivilTime
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// LoadZone resolves an IANA zone name, e.g. "Europe/Rome".
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidTimeZone
	}
	return loc, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// In interprets the date+time as wall-clock time in loc and returns the
// corresponding instant. DST transitions resolve the way time.Date does:
// a time inside a spring-forward gap is pushed past the gap.
func (d Date) In(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, 0, 0, loc)
}

// DateOf projects an instant onto a calendar date in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	lt := t.In(loc)
	return Date{Year: lt.Year(), Month: lt.Month(), Day: lt.Day()}
}

// TimeOf projects an instant onto a wall-clock time in loc.
func TimeOf(t time.Time, loc *time.Location) TimeOfDay {
	lt := t.In(loc)
	return TimeOfDay{Hour: lt.Hour(), Minute: lt.Minute()}
}

// DayOfWeek returns the weekday (0=Sunday..6=Saturday) of the date in loc.
// Evaluated at midday so a zone offset can never shift it across midnight.
func (d Date) DayOfWeek(loc *time.Location) int {
	midday := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, loc)
	return int(midday.In(loc).Weekday())
}
