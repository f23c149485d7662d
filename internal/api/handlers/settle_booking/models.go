package settle_booking

import (
	"github.com/salonix/SLX-BookingEngine/internal/service/bookings/models"
)

// SettleBookingRequest HTTP request model
type SettleBookingRequest struct {
	Allocations map[string]float64 `json:"allocations,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SettleBookingRequest) ToServiceRequest() *models.SettleBookingRequest {
	return &models.SettleBookingRequest{
		Allocations: r.Allocations,
	}
}
