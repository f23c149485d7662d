package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled возвращается при попытке изменить отмененное бронирование
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrInvalidAmount возвращается при отрицательной сумме платежа
	ErrInvalidAmount = errors.New("payment amount must not be negative")

	// ErrMissingPaymentMode возвращается, когда платеж записывается без способа оплаты
	ErrMissingPaymentMode = errors.New("payment mode is required")

	// ErrInvalidRemark возвращается, когда причина отмены короче 3 символов
	ErrInvalidRemark = errors.New("cancellation remark is too short")

	// ErrInvalidAllocation возвращается при некорректном распределении оплаты по способам
	ErrInvalidAllocation = errors.New("invalid payment allocation")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
