package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_PaymentState(t *testing.T) {
	tests := []struct {
		name    string
		booking Booking
		want    PaymentStatus
	}{
		{
			name:    "cancelled wins over everything",
			booking: Booking{Status: StatusCancelled, TotalAmount: 1000, AdvancePaid: 400, BalanceDue: 600},
			want:    PaymentCancelled,
		},
		{
			name:    "settled when balance paid off",
			booking: Booking{Status: StatusConfirmed, TotalAmount: 1000, AdvancePaid: 1000, BalanceDue: 0},
			want:    PaymentSettled,
		},
		{
			name:    "advance when partially paid",
			booking: Booking{Status: StatusPending, TotalAmount: 1000, AdvancePaid: 400, BalanceDue: 600},
			want:    PaymentAdvance,
		},
		{
			name:    "pending when nothing paid",
			booking: Booking{Status: StatusPending, TotalAmount: 1000, AdvancePaid: 0, BalanceDue: 1000},
			want:    PaymentPending,
		},
		{
			name:    "zero-amount booking stays pending even with zero balance",
			booking: Booking{Status: StatusConfirmed, TotalAmount: 0, AdvancePaid: 0, BalanceDue: 0},
			want:    PaymentPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.PaymentState())
		})
	}
}

func TestBooking_Overlaps(t *testing.T) {
	b := Booking{StartMinute: 600, EndMinute: 660}

	assert.True(t, b.Overlaps(615, 645))
	assert.True(t, b.Overlaps(590, 610))
	assert.True(t, b.Overlaps(650, 700))
	assert.True(t, b.Overlaps(600, 660))

	// Adjacent ranges do not overlap
	assert.False(t, b.Overlaps(540, 600))
	assert.False(t, b.Overlaps(660, 720))
}

func TestCountConflicts(t *testing.T) {
	bookings := []*Booking{
		{StartMinute: 600, EndMinute: 630, Status: StatusConfirmed},
		{StartMinute: 630, EndMinute: 660, Status: StatusPending},
		{StartMinute: 660, EndMinute: 690, Status: StatusCancelled},
		{StartMinute: 690, EndMinute: 720, Status: StatusHeld},
	}

	// Overlaps the first two active bookings
	assert.Equal(t, 2, CountConflicts(615, 645, bookings))

	// Cancelled booking never blocks the slot
	assert.Equal(t, 0, CountConflicts(660, 690, bookings))

	// Held booking occupies the slot
	assert.Equal(t, 1, CountConflicts(690, 720, bookings))

	// Adjacent range is free
	assert.Equal(t, 0, CountConflicts(720, 750, bookings))
}

func TestBooking_StatusPredicates(t *testing.T) {
	cancelled := Booking{Status: StatusCancelled}
	assert.True(t, cancelled.IsCancelled())
	assert.True(t, cancelled.IsTerminal())
	assert.False(t, cancelled.IsActive())

	held := Booking{Status: StatusHeld}
	assert.False(t, held.IsCancelled())
	assert.True(t, held.IsActive())

	pending := Booking{Status: StatusPending}
	assert.True(t, pending.IsActive())
	assert.False(t, pending.IsTerminal())
}
