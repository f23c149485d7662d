package payments

import "errors"

var (
	// ErrEmptyMode возвращается при пустом названии способа оплаты
	ErrEmptyMode = errors.New("payments: payment mode is empty")

	// ErrIncompleteMode возвращается при попытке добавить новый способ оплаты,
	// пока уже выбранный способ остается с нулевой суммой
	ErrIncompleteMode = errors.New("payments: fill the selected payment mode before adding another")

	// ErrAllocationExceedsDue возвращается, когда сумма распределения превышает остаток к оплате
	ErrAllocationExceedsDue = errors.New("payments: allocation exceeds outstanding balance")
)
