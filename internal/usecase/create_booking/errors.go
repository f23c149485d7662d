package create_booking

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден в StaffDirectory
	ErrStaffNotFound = errors.New("create_booking: staff member not found")

	// ErrStaffInactive возвращается при попытке бронирования к неактивному мастеру
	ErrStaffInactive = errors.New("create_booking: staff member is inactive")

	// ErrInvalidRange возвращается при некорректном временном диапазоне (start >= end)
	ErrInvalidRange = errors.New("create_booking: invalid time range")

	// ErrSlotConflict возвращается, когда диапазон пересекается с активным
	// бронированием того же мастера на ту же дату
	ErrSlotConflict = errors.New("create_booking: slot conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
