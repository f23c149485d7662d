package payments

import (
	"sort"
	"strings"
)

// Allocation распределение сумм по способам оплаты в рамках одного
// действия погашения. Инвариант после любой операции: сумма всех
// значений не превышает остаток к оплате (totalDue)
type Allocation map[string]float64

// SetResult результат установки суммы для способа оплаты
type SetResult struct {
	// Amount фактически установленная сумма (после клэмпа)
	Amount float64

	// WasClamped признак того, что запрошенная сумма была урезана до
	// допустимого остатка. Не ошибка - сигнал для предупреждения в UI
	WasClamped bool
}

// Total возвращает сумму всех распределенных значений
func (a Allocation) Total() float64 {
	total := 0.0
	for _, amount := range a {
		total += amount
	}
	return total
}

// Modes возвращает отсортированный список способов оплаты
func (a Allocation) Modes() []string {
	modes := make([]string, 0, len(a))
	for mode := range a {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}

// Label возвращает человекочитаемую метку распределения ("card+cash")
func (a Allocation) Label() string {
	return strings.Join(a.Modes(), "+")
}

// SetModeAmount устанавливает сумму для способа оплаты, не позволяя общей
// сумме превысить остаток к оплате
//
// Запрошенная сумма урезается до max(totalDue - суммы остальных способов, 0);
// отрицательные значения приводятся к нулю. Урезание не является ошибкой и
// возвращается через SetResult.WasClamped.
//
// Добавление НОВОГО способа, пока уже выбранный способ остается с нулевой
// суммой, запрещено (ErrIncompleteMode) - сначала нужно заполнить выбранный
// способ. Правило защищает от молчаливо "пустых" строк оплаты.
//
// Исходное распределение не изменяется, возвращается новая копия.
func SetModeAmount(alloc Allocation, mode string, requestedAmount, totalDue float64) (Allocation, SetResult, error) {
	if strings.TrimSpace(mode) == "" {
		return nil, SetResult{}, ErrEmptyMode
	}

	if _, exists := alloc[mode]; !exists {
		for _, amount := range alloc {
			if amount == 0 {
				return nil, SetResult{}, ErrIncompleteMode
			}
		}
	}

	otherTotal := 0.0
	for m, amount := range alloc {
		if m != mode {
			otherTotal += amount
		}
	}

	allowed := totalDue - otherTotal
	if allowed < 0 {
		allowed = 0
	}

	clamped := requestedAmount
	if clamped < 0 {
		clamped = 0
	}
	if clamped > allowed {
		clamped = allowed
	}

	next := cloneAllocation(alloc)
	next[mode] = clamped

	return next, SetResult{
		Amount:     clamped,
		WasClamped: clamped < requestedAmount,
	}, nil
}

// RemoveMode удаляет способ оплаты из распределения целиком
// Исходное распределение не изменяется, возвращается новая копия
func RemoveMode(alloc Allocation, mode string) Allocation {
	next := cloneAllocation(alloc)
	delete(next, mode)
	return next
}

// Validate проверяет готовность распределения к применению:
// хотя бы один способ, без пустых меток и нулевых сумм,
// общая сумма в пределах остатка к оплате
func Validate(alloc Allocation, totalDue float64) error {
	if len(alloc) == 0 {
		return ErrEmptyMode
	}

	for mode, amount := range alloc {
		if strings.TrimSpace(mode) == "" {
			return ErrEmptyMode
		}
		if amount <= 0 {
			return ErrIncompleteMode
		}
	}

	if alloc.Total() > totalDue {
		return ErrAllocationExceedsDue
	}

	return nil
}

func cloneAllocation(alloc Allocation) Allocation {
	next := make(Allocation, len(alloc)+1)
	for mode, amount := range alloc {
		next[mode] = amount
	}
	return next
}
