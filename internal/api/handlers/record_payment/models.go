package record_payment

import (
	"github.com/salonix/SLX-BookingEngine/internal/service/bookings/models"
)

// RecordPaymentRequest HTTP request model
type RecordPaymentRequest struct {
	Amount float64 `json:"amount"`
	Mode   string  `json:"mode,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RecordPaymentRequest) ToServiceRequest() *models.RecordPaymentRequest {
	return &models.RecordPaymentRequest{
		Amount: r.Amount,
		Mode:   r.Mode,
	}
}
