package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	bookingRepo "github.com/salonix/SLX-BookingEngine/internal/infra/storage/booking"
	"github.com/salonix/SLX-BookingEngine/internal/integrations/staffdirectory"
)

// fakeBookingRepo in-memory репозиторий, воспроизводящий семантику хранилища
// включая отклонение пересечений на вставке (exclusion constraint)
type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
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
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	for _, existing := range r.bookings {
		if existing.StaffID == booking.StaffID &&
			existing.BookingDate.Equal(booking.BookingDate) &&
			existing.IsActive() &&
			existing.Overlaps(booking.StartMinute, booking.EndMinute) {
			return nil, bookingRepo.ErrSlotConflict
		}
	}

	r.nextID++
	created := *booking
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.bookings = append(r.bookings, &created)
	return &created, nil
}

type fakeStaffClient struct {
	staff map[int64]*staffdirectory.Staff
}

func (c *fakeStaffClient) GetStaff(_ context.Context, staffID int64) (*staffdirectory.Staff, error) {
	staff, ok := c.staff[staffID]
	if !ok {
		return nil, staffdirectory.ErrStaffNotFound
	}
	return staff, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	client := &fakeStaffClient{staff: map[int64]*staffdirectory.Staff{
		1: {ID: 1, Name: "Ivan", IsActive: true},
		2: {ID: 2, Name: "Olga", IsActive: false},
	}}
	return NewUseCase(repo, client, fakeTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		StaffID:      1,
		Date:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartMinute:  600,
		EndMinute:    630,
		CustomerName: "Anna",
		TotalAmount:  0,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.RequiresConfirmation)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, string(domain.StatusPending), resp.Booking.Status)
	assert.Equal(t, 0.0, resp.Booking.AdvancePaid)
	assert.Equal(t, string(domain.PaymentPending), resp.Booking.PaymentStatus)
}

func TestExecute_AdjacentBookingsAllowed(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	first := validRequest()
	first.StartMinute = 600
	first.EndMinute = 630

	second := validRequest()
	second.StartMinute = 630
	second.EndMinute = 660

	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), second)
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
}

func TestExecute_OverlapRejected(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	first := validRequest()
	first.StartMinute = 600
	first.EndMinute = 630
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	overlapping := validRequest()
	overlapping.StartMinute = 615
	overlapping.EndMinute = 645

	_, err = uc.Execute(context.Background(), overlapping)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:          100,
			StaffID:     1,
			BookingDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			StartMinute: 600,
			EndMinute:   630,
			Status:      domain.StatusCancelled,
		},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
}

func TestExecute_OtherStaffDoesNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:          100,
			StaffID:     7,
			BookingDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			StartMinute: 600,
			EndMinute:   630,
			Status:      domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
}

func TestExecute_CommitGuard(t *testing.T) {
	t.Run("unacknowledged non-zero amount requires confirmation", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo)

		req := validRequest()
		req.TotalAmount = 1500

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.True(t, resp.RequiresConfirmation)
		assert.Equal(t, domain.AdvisoryConfirmNoPayment, resp.Advisory)
		assert.Nil(t, resp.Booking)

		// Запись не сохранена
		assert.Empty(t, repo.bookings)
	})

	t.Run("acknowledged request proceeds", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo)

		req := validRequest()
		req.TotalAmount = 1500
		req.Acknowledged = true

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.False(t, resp.RequiresConfirmation)
		assert.Equal(t, domain.AdvisoryConfirmNoPayment, resp.Advisory)
		require.NotNil(t, resp.Booking)
		assert.Equal(t, 1500.0, resp.Booking.BalanceDue)
	})

	t.Run("zero amount needs no confirmation", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.False(t, resp.RequiresConfirmation)
		assert.Equal(t, domain.AdvisoryNone, resp.Advisory)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "zero staff id", mutate: func(r *Request) { r.StaffID = 0 }, wantErr: ErrInvalidInput},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "start equals end", mutate: func(r *Request) { r.EndMinute = r.StartMinute }, wantErr: ErrInvalidRange},
		{name: "start after end", mutate: func(r *Request) { r.StartMinute = 700 }, wantErr: ErrInvalidRange},
		{name: "negative start", mutate: func(r *Request) { r.StartMinute = -10 }, wantErr: ErrInvalidRange},
		{name: "end past midnight", mutate: func(r *Request) { r.EndMinute = 1441 }, wantErr: ErrInvalidRange},
		{name: "empty customer name", mutate: func(r *Request) { r.CustomerName = "  " }, wantErr: ErrInvalidInput},
		{name: "negative amount", mutate: func(r *Request) { r.TotalAmount = -1 }, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_StaffChecks(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	unknown := validRequest()
	unknown.StaffID = 99
	_, err := uc.Execute(context.Background(), unknown)
	assert.ErrorIs(t, err, ErrStaffNotFound)

	inactive := validRequest()
	inactive.StaffID = 2
	_, err = uc.Execute(context.Background(), inactive)
	assert.ErrorIs(t, err, ErrStaffInactive)
}

func TestExecute_NonOverlapInvariantAfterCreates(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	ranges := [][2]int{{600, 630}, {630, 660}, {615, 645}, {660, 720}, {700, 730}}
	for _, r := range ranges {
		req := validRequest()
		req.StartMinute = r[0]
		req.EndMinute = r[1]
		_, _ = uc.Execute(context.Background(), req)
	}

	// После любой последовательности попыток активные бронирования мастера
	// на дату попарно не пересекаются
	for i, a := range repo.bookings {
		for j, b := range repo.bookings {
			if i == j || !a.IsActive() || !b.IsActive() {
				continue
			}
			assert.False(t, a.Overlaps(b.StartMinute, b.EndMinute),
				"bookings %d and %d overlap", a.ID, b.ID)
		}
	}
}
