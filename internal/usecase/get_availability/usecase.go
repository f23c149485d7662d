package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	staffClient "github.com/salonix/SLX-BookingEngine/internal/integrations/staffdirectory"
	"github.com/salonix/SLX-BookingEngine/pkg/types"
)

// UseCase use case расчета доступности слотов по ростеру
// Чистая функция над снапшотом бронирований: не кэширует, не мутирует,
// повторный вызов с теми же данными дает тот же результат
type UseCase struct {
	bookingRepo  BookingRepository
	staffClient  StaffDirectoryClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	staffClient StaffDirectoryClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		staffClient:  staffClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет расчет доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, staff=%v", req.Date.Format(domain.DateFormat), req.StaffIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Разрешаем состав мастеров
	roster, err := uc.resolveStaff(ctx, req.StaffIDs)
	if err != nil {
		return nil, err
	}

	// Пустой состав - доступность доказать нечем
	if len(roster) == 0 {
		uc.logger.Info("GetAvailability: empty roster for date=%s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:               req.Date,
			DayHasAvailability: false,
			Staff:              []StaffAvailability{},
		}, nil
	}

	// 4. Получаем активные бронирования на дату одним запросом
	filter := domain.BookingsFilter{
		StartDate:        &req.Date,
		EndDate:          &req.Date,
		IncludeCancelled: false, // Отмененные слот не блокируют
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	byStaff := groupByStaff(bookings)
	cutoff := pastBlockCutoff(req.Date, now)

	// 5. Вычисляем свободные блоки для каждого мастера
	response := &Response{
		Date:  req.Date,
		Staff: make([]StaffAvailability, len(roster)),
	}

	for i, staff := range roster {
		free := freeBlocksForStaff(byStaff[staff.ID], cutoff)

		response.Staff[i] = StaffAvailability{
			StaffID:         staff.ID,
			StaffName:       staff.Name,
			HasAvailability: len(free) > 0,
			FreeBlocks:      toFreeBlocks(free),
		}

		if len(free) > 0 {
			response.DayHasAvailability = true
		}
	}

	uc.logger.Info("GetAvailability: date=%s, staff=%d, dayHasAvailability=%t",
		req.Date.Format(domain.DateFormat), len(roster), response.DayHasAvailability)

	return response, nil
}

// resolveStaff возвращает мастеров для проверки
// Пустой список ID означает весь активный ростер; явно указанные ID
// разрешаются через StaffDirectory независимо от флага активности
func (uc *UseCase) resolveStaff(ctx context.Context, staffIDs []int64) ([]*staffClient.Staff, error) {
	if len(staffIDs) == 0 {
		roster, err := uc.staffClient.ListActiveStaff(ctx)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to list active staff: %v", err)
			return nil, fmt.Errorf("%w: failed to list active staff: %v", ErrInternal, err)
		}
		return roster, nil
	}

	roster := make([]*staffClient.Staff, 0, len(staffIDs))
	for _, id := range staffIDs {
		staff, err := uc.staffClient.GetStaff(ctx, id)
		if err != nil {
			if errors.Is(err, staffClient.ErrStaffNotFound) {
				uc.logger.Warn("GetAvailability: staff id=%d not found", id)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GetAvailability: failed to get staff id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		roster = append(roster, staff)
	}

	return roster, nil
}

func toFreeBlocks(blocks []domain.TimeBlock) []FreeBlock {
	result := make([]FreeBlock, len(blocks))
	for i, block := range blocks {
		startTime, _ := types.FromMinutes(block.StartMinute)
		endTime, _ := types.FromMinutes(block.EndMinute)

		result[i] = FreeBlock{
			Index:     block.Index,
			StartTime: startTime,
			EndTime:   endTime,
			Label:     block.Label(),
		}
	}
	return result
}
