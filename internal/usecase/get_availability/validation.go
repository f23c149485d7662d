package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	for _, id := range req.StaffIDs {
		if id <= 0 {
			return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
		}
	}

	return nil
}
