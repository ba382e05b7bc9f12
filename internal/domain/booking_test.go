package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingRescheduled, true},
		{BookingRescheduled, BookingCancelled, true},
		{BookingRescheduled, BookingRescheduled, true},
		{BookingCancelled, BookingRescheduled, false},
		{BookingCancelled, BookingCancelled, false},
		{BookingConfirmed, BookingConfirmed, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestEffectiveBuffer(t *testing.T) {
	settings := BusinessSettings{DefaultBufferMin: 10}

	five := 5
	assert.Equal(t, 5, Service{BufferMin: &five}.EffectiveBuffer(settings))

	zero := 0
	assert.Equal(t, 0, Service{BufferMin: &zero}.EffectiveBuffer(settings))

	assert.Equal(t, 10, Service{}.EffectiveBuffer(settings))
}
