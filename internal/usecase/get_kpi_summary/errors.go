package get_kpi_summary

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("get_kpi_summary: invalid input")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_kpi_summary: internal error")
)
