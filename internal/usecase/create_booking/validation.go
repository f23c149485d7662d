package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
)

// validateRequest валидирует запрос на создание бронирования
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staff_id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartMinute < 0 || req.EndMinute > domain.MinutesPerDay {
		return fmt.Errorf("%w: time range must be within [0, %d]", ErrInvalidRange, domain.MinutesPerDay)
	}

	if req.StartMinute >= req.EndMinute {
		return fmt.Errorf("%w: start_minute must be before end_minute", ErrInvalidRange)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer_name must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.TotalAmount < 0 {
		return fmt.Errorf("%w: total_amount must not be negative", ErrInvalidInput)
	}

	return nil
}
