package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	bookingRepo "github.com/salonix/SLX-BookingEngine/internal/infra/storage/booking"
	staffClient "github.com/salonix/SLX-BookingEngine/internal/integrations/staffdirectory"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	staffClient StaffDirectoryClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	staffClient StaffDirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		staffClient: staffClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка конфликта слотов выполняется в сериализуемой транзакции над
// заблокированным (FOR UPDATE) дневным снапшотом; exclusion constraint в БД
// отклоняет пересечение, даже если параллельный клиент успел записаться
// между чтением и вставкой.
//
// Перед сохранением срабатывает commit guard: чек без аванса требует явного
// подтверждения пользователя. Сигнал advisory - не ошибка; запись
// откладывается до повторного запроса с Acknowledged=true.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: staff=%d, date=%s, range=[%d,%d), amount=%.2f",
		req.StaffID, req.Date.Format(domain.DateFormat), req.StartMinute, req.EndMinute, req.TotalAmount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем мастера через StaffDirectory
	staff, err := uc.staffClient.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffClient.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	if !staff.IsActive {
		uc.logger.Warn("CreateBooking: staff id=%d is inactive", req.StaffID)
		return nil, ErrStaffInactive
	}

	// 3. Commit guard: новое бронирование создается с нулевым авансом,
	// поэтому ненулевой чек требует подтверждения "сохранить без оплаты"
	advisory := domain.CommitGuard(req.TotalAmount, 0, req.TotalAmount)
	if advisory != domain.AdvisoryNone && !req.Acknowledged {
		uc.logger.Info("CreateBooking: advisory %s requires confirmation, staff=%d", advisory, req.StaffID)
		return &Response{
			RequiresConfirmation: true,
			Advisory:             advisory,
		}, nil
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем проверку конфликта и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем активные бронирования мастера на дату с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			StaffID:          &req.StaffID,
			StartDate:        &req.Date,
			EndDate:          &req.Date,
			IncludeCancelled: false, // Отмененные слот не блокируют
		}

		existing, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.2. Проверяем пересечение полуоткрытых интервалов
		// Смежные бронирования ([10:00,10:30) и [10:30,11:00)) легальны
		if conflicts := domain.CountConflicts(req.StartMinute, req.EndMinute, existing); conflicts > 0 {
			uc.logger.Warn("CreateBooking: %d conflicting bookings for staff=%d, date=%s",
				conflicts, req.StaffID, req.Date.Format(domain.DateFormat))
			return ErrSlotConflict
		}

		// 4.3. Создаем бронирование
		booking := &domain.Booking{
			StaffID:       req.StaffID,
			BookingDate:   req.Date,
			StartMinute:   req.StartMinute,
			EndMinute:     req.EndMinute,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			TotalAmount:   req.TotalAmount,
			AdvancePaid:   0,
			BalanceDue:    req.TotalAmount,
			Status:        domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Exclusion constraint - последняя линия защиты от гонки
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateBooking: slot conflict rejected by store, staff=%d", req.StaffID)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		Advisory: advisory,
		Booking: &CreatedBooking{
			ID:            result.ID,
			StaffID:       result.StaffID,
			BookingDate:   result.BookingDate,
			StartMinute:   result.StartMinute,
			EndMinute:     result.EndMinute,
			CustomerName:  result.CustomerName,
			CustomerPhone: result.CustomerPhone,
			TotalAmount:   result.TotalAmount,
			AdvancePaid:   result.AdvancePaid,
			BalanceDue:    result.BalanceDue,
			Status:        string(result.Status),
			PaymentStatus: string(result.PaymentState()),
			CreatedAt:     result.CreatedAt,
			UpdatedAt:     result.UpdatedAt,
		},
	}, nil
}
