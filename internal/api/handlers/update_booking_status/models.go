package update_booking_status

import (
	"github.com/salonix/SLX-BookingEngine/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
// acknowledged=true подтверждает предупреждение о незакрытом платеже
type UpdateStatusRequest struct {
	Status       string `json:"status"`
	Acknowledged bool   `json:"acknowledged"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status:       r.Status,
		Acknowledged: r.Acknowledged,
	}
}
