package get_availability

import (
	"time"

	"github.com/salonix/SLX-BookingEngine/pkg/types"
)

// Request модель запроса на расчет доступности
type Request struct {
	Date     time.Time // Дата для расчета (без времени)
	StaffIDs []int64   // Мастера для проверки; пусто - весь активный ростер
}

// Response модель ответа с доступностью по мастерам
type Response struct {
	Date time.Time // Дата, на которую запрашивалась доступность

	// DayHasAvailability true, если хотя бы у одного мастера есть
	// хотя бы один свободный блок
	DayHasAvailability bool

	Staff []StaffAvailability // Доступность по каждому мастеру
}

// StaffAvailability доступность одного мастера на день
type StaffAvailability struct {
	StaffID         int64
	StaffName       string
	HasAvailability bool
	FreeBlocks      []FreeBlock
}

// FreeBlock свободный 30-минутный блок
type FreeBlock struct {
	Index     int              // Индекс блока в сутках [0, 48)
	StartTime types.TimeString // Время начала блока ("10:00")
	EndTime   types.TimeString // Время конца блока ("10:30")
	Label     string           // Человекочитаемая метка ("10:00 AM - 10:30 AM")
}
