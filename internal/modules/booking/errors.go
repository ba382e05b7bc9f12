package booking

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidToken        = errors.New("invalid cancel token")
	ErrSlotUnavailable     = errors.New("slot not available")
	ErrCancelWindowExpired = errors.New("cancellation window expired")
	ErrAlreadyCancelled    = errors.New("booking already cancelled")
)
