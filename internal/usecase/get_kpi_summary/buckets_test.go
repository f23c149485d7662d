package get_kpi_summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
)

func TestSummarize_EmptySet(t *testing.T) {
	resp := summarize(nil)

	assert.Equal(t, Bucket{}, resp.Advanced)
	assert.Equal(t, Bucket{}, resp.Paid)
	assert.Equal(t, Bucket{}, resp.Settlement)
	assert.Equal(t, Bucket{}, resp.Pending)
	assert.Equal(t, Bucket{}, resp.Total)
}

func TestSummarize_FullySettledAppearsInPaidAndSettlement(t *testing.T) {
	bookings := []*domain.Booking{
		{Status: domain.StatusConfirmed, TotalAmount: 1000, AdvancePaid: 1000, BalanceDue: 0},
	}

	resp := summarize(bookings)

	assert.Equal(t, Bucket{Count: 1, Amount: 1000}, resp.Paid)
	assert.Equal(t, Bucket{Count: 1, Amount: 1000}, resp.Settlement)

	// Полностью погашенное бронирование не считается авансовым
	assert.Equal(t, Bucket{}, resp.Advanced)
	assert.Equal(t, Bucket{}, resp.Pending)
	assert.Equal(t, Bucket{Count: 1, Amount: 1000}, resp.Total)
}

func TestSummarize_Buckets(t *testing.T) {
	bookings := []*domain.Booking{
		// Аванс: считается в advanced (по авансу) и settlement (по авансу)
		{Status: domain.StatusPending, TotalAmount: 1000, AdvancePaid: 400, BalanceDue: 600},
		// Погашено: paid (по чеку) и settlement (по авансу)
		{Status: domain.StatusCompleted, TotalAmount: 2000, AdvancePaid: 2000, BalanceDue: 0},
		// Без оплаты: pending (по чеку)
		{Status: domain.StatusConfirmed, TotalAmount: 500, AdvancePaid: 0, BalanceDue: 500},
		// Отменено: только в total
		{Status: domain.StatusCancelled, TotalAmount: 700, AdvancePaid: 0, BalanceDue: 700},
	}

	resp := summarize(bookings)

	assert.Equal(t, Bucket{Count: 1, Amount: 400}, resp.Advanced)
	assert.Equal(t, Bucket{Count: 1, Amount: 2000}, resp.Paid)
	assert.Equal(t, Bucket{Count: 2, Amount: 2400}, resp.Settlement)
	assert.Equal(t, Bucket{Count: 1, Amount: 500}, resp.Pending)
	assert.Equal(t, Bucket{Count: 4, Amount: 4200}, resp.Total)
}

func TestSummarize_HeldBookingCountsByPaymentState(t *testing.T) {
	bookings := []*domain.Booking{
		{Status: domain.StatusHeld, TotalAmount: 300, AdvancePaid: 100, BalanceDue: 200},
	}

	resp := summarize(bookings)

	assert.Equal(t, Bucket{Count: 1, Amount: 100}, resp.Advanced)
	assert.Equal(t, Bucket{Count: 1, Amount: 100}, resp.Settlement)
	assert.Equal(t, Bucket{Count: 1, Amount: 300}, resp.Total)
}
