package get_availability

import (
	"context"
	"time"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	"github.com/salonix/SLX-BookingEngine/internal/integrations/staffdirectory"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// StaffDirectoryClient интерфейс клиента для StaffDirectory
type StaffDirectoryClient interface {
	GetStaff(ctx context.Context, staffID int64) (*staffdirectory.Staff, error)
	ListActiveStaff(ctx context.Context) ([]*staffdirectory.Staff, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Движок не читает системные часы напрямую: "сегодня" всегда приходит снаружи
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
