package hold_booking

import (
	"context"

	"github.com/salonix/SLX-BookingEngine/internal/service/bookings/models"
)

type BookingService interface {
	Hold(ctx context.Context, bookingID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
