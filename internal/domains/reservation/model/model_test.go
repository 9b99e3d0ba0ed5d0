package model_test

import (
	"testing"
	"time"

	"lodge/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
)

func date(day int) time.Time {
	return time.Date(2026, 6, day, 0, 0, 0, 0, time.UTC)
}

func TestReservation_Overlaps(t *testing.T) {
	// Stay on June 1st and 2nd, checking out the morning of the 3rd.
	reservation := model.Reservation{
		RoomID:   3,
		CheckIn:  date(1),
		CheckOut: date(3),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{
			name:     "window fully inside the stay",
			checkIn:  date(1),
			checkOut: date(2),
			want:     true,
		},
		{
			name:     "window straddles the checkout day",
			checkIn:  date(2),
			checkOut: date(4),
			want:     true,
		},
		{
			name:     "window covers the whole stay",
			checkIn:  date(1),
			checkOut: date(10),
			want:     true,
		},
		{
			name:     "window starts on the checkout day",
			checkIn:  date(3),
			checkOut: date(5),
			want:     false,
		},
		{
			name:     "window ends on the check-in day",
			checkIn:  time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC),
			checkOut: date(1),
			want:     false,
		},
		{
			name:     "window entirely after the stay",
			checkIn:  date(10),
			checkOut: date(12),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.Overlaps(tt.checkIn, tt.checkOut))
		})
	}
}
