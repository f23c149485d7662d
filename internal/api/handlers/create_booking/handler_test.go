package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	"github.com/salonix/SLX-BookingEngine/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *create_booking.Response
	err  error

	gotRequest *create_booking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	f.gotRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postBooking(t *testing.T, handler *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &create_booking.Response{
		Booking: &create_booking.CreatedBooking{
			ID:          1,
			StaffID:     1,
			BookingDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			StartMinute: 600,
			EndMinute:   630,
			Status:      string(domain.StatusPending),
		},
	}}
	handler := NewHandler(uc, nopLogger{})

	rec := postBooking(t, handler, CreateBookingRequest{
		StaffID:      1,
		Date:         "2026-03-10",
		StartMinute:  600,
		EndMinute:    630,
		CustomerName: "Anna",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotRequest)
	assert.Equal(t, int64(1), uc.gotRequest.StaffID)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), uc.gotRequest.Date)
}

func TestHandle_RequiresConfirmation(t *testing.T) {
	uc := &fakeUseCase{resp: &create_booking.Response{
		RequiresConfirmation: true,
		Advisory:             domain.AdvisoryConfirmNoPayment,
	}}
	handler := NewHandler(uc, nopLogger{})

	rec := postBooking(t, handler, CreateBookingRequest{
		StaffID:      1,
		Date:         "2026-03-10",
		StartMinute:  600,
		EndMinute:    630,
		CustomerName: "Anna",
		TotalAmount:  1500,
	})

	// Подтверждение - не создание: 200, а не 201
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.RequiresConfirmation)
	assert.Equal(t, string(domain.AdvisoryConfirmNoPayment), resp.Advisory)
	assert.Nil(t, resp.Booking)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "slot conflict", err: create_booking.ErrSlotConflict, wantStatus: http.StatusConflict},
		{name: "staff not found", err: create_booking.ErrStaffNotFound, wantStatus: http.StatusNotFound},
		{name: "staff inactive", err: create_booking.ErrStaffInactive, wantStatus: http.StatusBadRequest},
		{name: "invalid range", err: create_booking.ErrInvalidRange, wantStatus: http.StatusBadRequest},
		{name: "internal", err: create_booking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := postBooking(t, handler, CreateBookingRequest{
				StaffID:      1,
				Date:         "2026-03-10",
				StartMinute:  600,
				EndMinute:    630,
				CustomerName: "Anna",
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidDate(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := postBooking(t, handler, CreateBookingRequest{
		StaffID:      1,
		Date:         "10.03.2026",
		StartMinute:  600,
		EndMinute:    630,
		CustomerName: "Anna",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
