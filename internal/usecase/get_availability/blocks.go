package get_availability

import (
	"time"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
)

// pastBlockCutoff вычисляет минуту дня, раньше которой блоки считаются
// недоступными независимо от занятости
//
// Правило прошедших блоков действует ТОЛЬКО когда запрошенная дата
// совпадает с "сегодня": блок, начинающийся строго раньше текущего
// времени (округленного вниз до границы 30 минут), недоступен.
// Для любой другой даты правило не применяется: прошедшие дни целиком
// исключает вызывающая сторона, будущие оцениваются чисто по занятости.
//
// Примеры (сегодня, текущее время 10:05):
// - Блок 09:30-10:00 -> недоступен, даже если не занят
// - Блок 10:00-10:30 -> доступен, если не занят
func pastBlockCutoff(date, now time.Time) int {
	if !isSameDay(date, now) {
		return 0
	}
	return domain.FloorToBlockStart(now.Hour()*60 + now.Minute())
}

// freeBlocksForStaff возвращает упорядоченный список свободных блоков
// мастера на день
//
// Блок свободен, если он не начинается раньше cutoff и ни одно активное
// бронирование не пересекается с ним по полуоткрытому интервалу.
// Отмененные бронирования слот не блокируют.
func freeBlocksForStaff(bookings []*domain.Booking, cutoff int) []domain.TimeBlock {
	// cutoff выровнен по границе блока (pastBlockCutoff), поэтому первый
	// кандидат - блок, начинающийся ровно с cutoff
	firstIdx := 0
	if cutoff > 0 {
		idx, err := domain.BlockContaining(cutoff)
		if err != nil {
			return []domain.TimeBlock{}
		}
		firstIdx = idx
	}

	blocks := domain.EnumerateBlocks()
	free := make([]domain.TimeBlock, 0, domain.BlocksPerDay-firstIdx)

	for _, block := range blocks[firstIdx:] {
		if domain.CountConflicts(block.StartMinute, block.EndMinute, bookings) == 0 {
			free = append(free, block)
		}
	}

	return free
}

// groupByStaff группирует бронирования по мастеру
func groupByStaff(bookings []*domain.Booking) map[int64][]*domain.Booking {
	grouped := make(map[int64][]*domain.Booking)
	for _, b := range bookings {
		grouped[b.StaffID] = append(grouped[b.StaffID], b)
	}
	return grouped
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
