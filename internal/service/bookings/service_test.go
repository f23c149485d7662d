package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	bookingRepo "github.com/salonix/SLX-BookingEngine/internal/infra/storage/booking"
	"github.com/salonix/SLX-BookingEngine/internal/service/bookings/models"
	"github.com/salonix/SLX-BookingEngine/pkg/ptr"
)

// fakeBookingRepo in-memory репозиторий, воспроизводящий семантику хранилища
type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if filter.StaffID != nil && b.StaffID != *filter.StaffID {
			continue
		}
		if !filter.IncludeCancelled && b.IsCancelled() {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdatePayment(_ context.Context, id int64, advancePaid, balanceDue float64, paymentMode *string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.AdvancePaid = advancePaid
	b.BalanceDue = balanceDue
	if paymentMode != nil {
		b.PaymentMode = paymentMode
	}
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, remark string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancelRemark = &remark
	b.CancelledAt = &now
	b.AdvancePaid = 0
	b.BalanceDue = b.TotalAmount
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		StaffID:      1,
		BookingDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartMinute:  600,
		EndMinute:    660,
		CustomerName: "Anna",
		TotalAmount:  1000,
		AdvancePaid:  0,
		BalanceDue:   1000,
		Status:       domain.StatusPending,
	}
}

func TestService_Cancel_ResetsFinancials(t *testing.T) {
	booking := newTestBooking(1)
	booking.AdvancePaid = 400
	booking.BalanceDue = 600
	repo := newFakeBookingRepo(booking)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{Remark: "no show"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, 0.0, resp.AdvancePaid)
	assert.Equal(t, 1000.0, resp.BalanceDue)
	assert.Equal(t, string(domain.PaymentCancelled), resp.PaymentStatus)
	require.NotNil(t, resp.CancelRemark)
	assert.Equal(t, "no show", *resp.CancelRemark)
}

func TestService_Cancel_RemarkGuard(t *testing.T) {
	repo := newFakeBookingRepo(newTestBooking(1))
	svc := NewService(repo, nopLogger{})

	// Две буквы после trim - слишком коротко
	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{Remark: " ok "})
	assert.ErrorIs(t, err, ErrInvalidRemark)

	// Ровно три символа проходят
	_, err = svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{Remark: "n/a"})
	assert.NoError(t, err)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	booking := newTestBooking(1)
	booking.Status = domain.StatusCancelled
	repo := newFakeBookingRepo(booking)
	svc := NewService(repo, nopLogger{})

	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{Remark: "duplicate"})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestService_RecordPayment(t *testing.T) {
	t.Run("partial payment moves to advance state", func(t *testing.T) {
		repo := newFakeBookingRepo(newTestBooking(1))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.RecordPayment(context.Background(), 1, &models.RecordPaymentRequest{Amount: 400, Mode: "cash"})
		require.NoError(t, err)

		assert.Equal(t, 400.0, resp.AdvancePaid)
		assert.Equal(t, 600.0, resp.BalanceDue)
		assert.Equal(t, string(domain.PaymentAdvance), resp.PaymentStatus)
		require.NotNil(t, resp.PaymentMode)
		assert.Equal(t, "cash", *resp.PaymentMode)
	})

	t.Run("overpayment clamps to total", func(t *testing.T) {
		booking := newTestBooking(1)
		booking.AdvancePaid = 800
		booking.BalanceDue = 200
		repo := newFakeBookingRepo(booking)
		svc := NewService(repo, nopLogger{})

		resp, err := svc.RecordPayment(context.Background(), 1, &models.RecordPaymentRequest{Amount: 500, Mode: "card"})
		require.NoError(t, err)

		assert.Equal(t, 1000.0, resp.AdvancePaid)
		assert.Equal(t, 0.0, resp.BalanceDue)
		assert.Equal(t, string(domain.PaymentSettled), resp.PaymentStatus)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		repo := newFakeBookingRepo(newTestBooking(1))
		svc := NewService(repo, nopLogger{})

		_, err := svc.RecordPayment(context.Background(), 1, &models.RecordPaymentRequest{Amount: -10, Mode: "cash"})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("positive amount requires mode", func(t *testing.T) {
		repo := newFakeBookingRepo(newTestBooking(1))
		svc := NewService(repo, nopLogger{})

		_, err := svc.RecordPayment(context.Background(), 1, &models.RecordPaymentRequest{Amount: 100})
		assert.ErrorIs(t, err, ErrMissingPaymentMode)
	})

	t.Run("cancelled booking rejected", func(t *testing.T) {
		booking := newTestBooking(1)
		booking.Status = domain.StatusCancelled
		repo := newFakeBookingRepo(booking)
		svc := NewService(repo, nopLogger{})

		_, err := svc.RecordPayment(context.Background(), 1, &models.RecordPaymentRequest{Amount: 100, Mode: "cash"})
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := NewService(repo, nopLogger{})

		_, err := svc.RecordPayment(context.Background(), 42, &models.RecordPaymentRequest{Amount: 100, Mode: "cash"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Settle(t *testing.T) {
	t.Run("with allocations", func(t *testing.T) {
		booking := newTestBooking(1)
		booking.AdvancePaid = 500
		booking.BalanceDue = 500
		repo := newFakeBookingRepo(booking)
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Settle(context.Background(), 1, &models.SettleBookingRequest{
			Allocations: map[string]float64{"cash": 300, "card": 200},
		})
		require.NoError(t, err)

		assert.False(t, resp.WasClamped)
		assert.Equal(t, 1000.0, resp.Booking.AdvancePaid)
		assert.Equal(t, 0.0, resp.Booking.BalanceDue)
		assert.Equal(t, string(domain.PaymentSettled), resp.Booking.PaymentStatus)
		require.NotNil(t, resp.Booking.PaymentMode)
		assert.Equal(t, "card+cash", *resp.Booking.PaymentMode)
	})

	t.Run("allocation exceeding balance is clamped", func(t *testing.T) {
		booking := newTestBooking(1)
		booking.AdvancePaid = 500
		booking.BalanceDue = 500
		repo := newFakeBookingRepo(booking)
		svc := NewService(repo, nopLogger{})

		// card просит 400, но после cash=300 остается только 200
		resp, err := svc.Settle(context.Background(), 1, &models.SettleBookingRequest{
			Allocations: map[string]float64{"cash": 300, "card": 400},
		})
		require.NoError(t, err)

		// Урезание не блокирует погашение, но доходит до клиента
		assert.True(t, resp.WasClamped)
		assert.Equal(t, 0.0, resp.Booking.BalanceDue)
	})

	t.Run("without allocations reuses existing mode", func(t *testing.T) {
		booking := newTestBooking(1)
		booking.AdvancePaid = 400
		booking.BalanceDue = 600
		booking.PaymentMode = ptr.Ptr("cash")
		repo := newFakeBookingRepo(booking)
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Settle(context.Background(), 1, &models.SettleBookingRequest{})
		require.NoError(t, err)
		assert.False(t, resp.WasClamped)
		assert.Equal(t, string(domain.PaymentSettled), resp.Booking.PaymentStatus)
	})

	t.Run("without allocations and without mode", func(t *testing.T) {
		repo := newFakeBookingRepo(newTestBooking(1))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Settle(context.Background(), 1, &models.SettleBookingRequest{})
		assert.ErrorIs(t, err, ErrMissingPaymentMode)
	})

	t.Run("zero amount in allocation rejected", func(t *testing.T) {
		repo := newFakeBookingRepo(newTestBooking(1))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Settle(context.Background(), 1, &models.SettleBookingRequest{
			Allocations: map[string]float64{"cash": 0},
		})
		assert.ErrorIs(t, err, ErrInvalidAllocation)
	})
}

func TestService_Hold(t *testing.T) {
	repo := newFakeBookingRepo(newTestBooking(1))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Hold(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusHeld), resp.Status)

	// Финансовые поля не меняются
	assert.Equal(t, 0.0, resp.AdvancePaid)
	assert.Equal(t, 1000.0, resp.BalanceDue)
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("settled booking confirmed without warning", func(t *testing.T) {
		booking := newTestBooking(1)
		booking.AdvancePaid = 1000
		booking.BalanceDue = 0
		repo := newFakeBookingRepo(booking)
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)

		assert.False(t, resp.RequiresConfirmation)
		require.NotNil(t, resp.Booking)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Booking.Status)
	})

	t.Run("unpaid booking requires confirmation", func(t *testing.T) {
		repo := newFakeBookingRepo(newTestBooking(1))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)

		assert.True(t, resp.RequiresConfirmation)
		assert.Equal(t, string(domain.AdvisoryConfirmNoPayment), resp.Advisory)
		assert.Nil(t, resp.Booking)

		// Статус молча не меняется
		stored, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, stored.Status)
	})

	t.Run("partial balance requires confirmation", func(t *testing.T) {
		booking := newTestBooking(1)
		booking.AdvancePaid = 400
		booking.BalanceDue = 600
		repo := newFakeBookingRepo(booking)
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
		require.NoError(t, err)

		assert.True(t, resp.RequiresConfirmation)
		assert.Equal(t, string(domain.AdvisoryConfirmPartialBalance), resp.Advisory)
	})

	t.Run("acknowledged request proceeds", func(t *testing.T) {
		repo := newFakeBookingRepo(newTestBooking(1))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			Status:       "confirmed",
			Acknowledged: true,
		})
		require.NoError(t, err)

		assert.False(t, resp.RequiresConfirmation)
		require.NotNil(t, resp.Booking)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Booking.Status)
	})

	t.Run("cancelled requires dedicated transition", func(t *testing.T) {
		repo := newFakeBookingRepo(newTestBooking(1))
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("held requires dedicated transition", func(t *testing.T) {
		repo := newFakeBookingRepo(newTestBooking(1))
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "held"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := newFakeBookingRepo(newTestBooking(1))
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
