package get_availability

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден в StaffDirectory
	ErrStaffNotFound = errors.New("get_availability: staff member not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
