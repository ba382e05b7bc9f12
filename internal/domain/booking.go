package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed   BookingStatus = "CONFIRMED"
	BookingCancelled   BookingStatus = "CANCELLED"
	BookingRescheduled BookingStatus = "RESCHEDULED"
)

// CanTransitionTo implements the booking state machine. CANCELLED is
// terminal; RESCHEDULED may be rescheduled again or cancelled.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingConfirmed, BookingRescheduled:
		return next == BookingCancelled || next == BookingRescheduled
	default:
		return false
	}
}

// Booking uses uuid identifiers: the ID appears in customer-facing links and
// the CancelToken is the sole credential for cancel/reschedule.
type Booking struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	ServiceID   int64         `json:"service_id" gorm:"index"`
	StaffID     int64         `json:"staff_id" gorm:"index"`
	CustomerID  int64         `json:"customer_id" gorm:"index"`
	StartAt     time.Time     `json:"start_at" gorm:"index"`
	EndAt       time.Time     `json:"end_at" gorm:"index"`
	Status      BookingStatus `json:"status" gorm:"index"`
	CancelToken string        `json:"-" gorm:"uniqueIndex"`
	Notes       *string       `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Service  *Service     `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Staff    *StaffMember `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	Customer *Customer    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Booking) TableName() string { return "bookings" }
