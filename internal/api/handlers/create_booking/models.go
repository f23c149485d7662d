package create_booking

import (
	"time"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	createBooking "github.com/salonix/SLX-BookingEngine/internal/usecase/create_booking"
	"github.com/salonix/SLX-BookingEngine/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StaffID       int64   `json:"staffId"`
	Date          string  `json:"date"` // "2026-03-10"
	StartMinute   int     `json:"startMinute"`
	EndMinute     int     `json:"endMinute"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	TotalAmount   float64 `json:"totalAmount"`
	Acknowledged  bool    `json:"acknowledged,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	RequiresConfirmation bool             `json:"requiresConfirmation"`
	Advisory             string           `json:"advisory,omitempty"`
	Booking              *BookingResponse `json:"booking,omitempty"`
}

// BookingResponse HTTP модель созданного бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	StaffID       int64   `json:"staffId"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	StartMinute   int     `json:"startMinute"`
	EndMinute     int     `json:"endMinute"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	TotalAmount   float64 `json:"totalAmount"`
	AdvancePaid   float64 `json:"advancePaid"`
	BalanceDue    float64 `json:"balanceDue"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		StaffID:       r.StaffID,
		Date:          date,
		StartMinute:   r.StartMinute,
		EndMinute:     r.EndMinute,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		TotalAmount:   r.TotalAmount,
		Acknowledged:  r.Acknowledged,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{
		RequiresConfirmation: resp.RequiresConfirmation,
		Advisory:             string(resp.Advisory),
	}

	if resp.Booking != nil {
		startTime, _ := types.FromMinutes(resp.Booking.StartMinute)
		endTime, _ := types.FromMinutes(resp.Booking.EndMinute)

		out.Booking = &BookingResponse{
			ID:            resp.Booking.ID,
			StaffID:       resp.Booking.StaffID,
			BookingDate:   resp.Booking.BookingDate.Format(domain.DateFormat),
			StartTime:     startTime.String(),
			EndTime:       endTime.String(),
			StartMinute:   resp.Booking.StartMinute,
			EndMinute:     resp.Booking.EndMinute,
			CustomerName:  resp.Booking.CustomerName,
			CustomerPhone: resp.Booking.CustomerPhone,
			TotalAmount:   resp.Booking.TotalAmount,
			AdvancePaid:   resp.Booking.AdvancePaid,
			BalanceDue:    resp.Booking.BalanceDue,
			Status:        resp.Booking.Status,
			PaymentStatus: resp.Booking.PaymentStatus,
			CreatedAt:     resp.Booking.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     resp.Booking.UpdatedAt.Format(time.RFC3339),
		}
	}

	return out
}
