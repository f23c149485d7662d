package models

import (
	"errors"
	"time"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	"github.com/salonix/SLX-BookingEngine/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// RecordPaymentRequest запрос на запись платежа по бронированию
type RecordPaymentRequest struct {
	Amount float64 `json:"amount"`
	Mode   string  `json:"mode"`
}

// SettleBookingRequest запрос на полное погашение остатка
// Allocations - распределение погашаемого остатка по способам оплаты
type SettleBookingRequest struct {
	Allocations map[string]float64 `json:"allocations"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Remark string `json:"remark"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
// Acknowledged - подтверждение предупреждения о незакрытом платеже;
// без него перевод в финальный статус при непогашенном остатке не проходит
type UpdateStatusRequest struct {
	Status       string `json:"status"`
	Acknowledged bool   `json:"acknowledged,omitempty"`
}

// ListBookingsRequest запрос на получение бронирований с фильтрацией
type ListBookingsRequest struct {
	StaffID          *int64     `json:"staffId,omitempty"`          // Фильтр по мастеру (опционально)
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StaffID:          r.StaffID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
// PaymentStatus всегда вычисляется из статуса и финансовых полей, не хранится
type BookingResponse struct {
	ID            int64   `json:"id"`
	StaffID       int64   `json:"staffId"`
	BookingDate   string  `json:"bookingDate"` // "2026-03-15"
	StartTime     string  `json:"startTime"`   // "10:00"
	EndTime       string  `json:"endTime"`     // "10:30"
	StartMinute   int     `json:"startMinute"`
	EndMinute     int     `json:"endMinute"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	TotalAmount float64 `json:"totalAmount"`
	AdvancePaid float64 `json:"advancePaid"`
	BalanceDue  float64 `json:"balanceDue"`

	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMode   *string `json:"paymentMode,omitempty"`

	CancelRemark *string `json:"cancelRemark,omitempty"`
	CancelledAt  *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// UpdateStatusResponse ответ на обновление статуса бронирования
// RequiresConfirmation=true означает, что статус НЕ был изменен:
// клиент должен повторить запрос с acknowledged=true
type UpdateStatusResponse struct {
	RequiresConfirmation bool             `json:"requiresConfirmation"`
	Advisory             string           `json:"advisory,omitempty"`
	Booking              *BookingResponse `json:"booking,omitempty"`
}

// SettleBookingResponse ответ на погашение остатка
// WasClamped - запрошенное распределение было урезано до остатка;
// не ошибка, сигнал для предупреждения в UI
type SettleBookingResponse struct {
	Booking    *BookingResponse `json:"booking"`
	WasClamped bool             `json:"wasClamped,omitempty"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	startTime, _ := types.FromMinutes(b.StartMinute)
	endTime, _ := types.FromMinutes(b.EndMinute)

	resp := &BookingResponse{
		ID:            b.ID,
		StaffID:       b.StaffID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     startTime.String(),
		EndTime:       endTime.String(),
		StartMinute:   b.StartMinute,
		EndMinute:     b.EndMinute,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		TotalAmount:   b.TotalAmount,
		AdvancePaid:   b.AdvancePaid,
		BalanceDue:    b.BalanceDue,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentState()),
		PaymentMode:   b.PaymentMode,
		CancelRemark:  b.CancelRemark,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusHeld,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
