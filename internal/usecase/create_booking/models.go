package create_booking

import (
	"time"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	StaffID       int64     // ID мастера
	Date          time.Time // Дата бронирования (без времени)
	StartMinute   int       // Минута дня начала, [0, 1440)
	EndMinute     int       // Минута дня конца, start < end
	CustomerName  string    // Имя клиента (только для отображения)
	CustomerPhone *string   // Телефон клиента (опционально)
	TotalAmount   float64   // Сумма чека, >= 0

	// Acknowledged подтверждение advisory-сигнала commit guard
	// Без подтверждения бронирование с непогашенным чеком не сохраняется,
	// а возвращается RequiresConfirmation
	Acknowledged bool
}

// Response модель ответа на создание бронирования
type Response struct {
	// RequiresConfirmation true, когда commit guard требует явного
	// подтверждения и запись НЕ была сохранена. Advisory содержит
	// сигнал для пользователя; повторный запрос с Acknowledged=true
	// завершает операцию.
	RequiresConfirmation bool
	Advisory             domain.Advisory

	Booking *CreatedBooking // nil, пока требуется подтверждение
}

// CreatedBooking данные созданного бронирования
type CreatedBooking struct {
	ID            int64
	StaffID       int64
	BookingDate   time.Time
	StartMinute   int
	EndMinute     int
	CustomerName  string
	CustomerPhone *string
	TotalAmount   float64
	AdvancePaid   float64
	BalanceDue    float64
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
