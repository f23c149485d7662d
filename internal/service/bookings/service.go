package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	bookingRepo "github.com/salonix/SLX-BookingEngine/internal/infra/storage/booking"
	"github.com/salonix/SLX-BookingEngine/internal/service/bookings/models"
	"github.com/salonix/SLX-BookingEngine/internal/service/payments"
)

// Service сервис жизненного цикла бронирований
// Все переходы статуса и платежного состояния проходят через него;
// производный PaymentStatus никогда не хранится, только вычисляется
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.fetch(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по мастеру, периоду, статусу и включению отмененных
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.StaffID != nil {
		logMsg += fmt.Sprintf(", staff=%d", *req.StaffID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// RecordPayment записывает платеж по бронированию
// Аванс прижимается к чеку: advance' = min(advance + amount, total),
// остаток пересчитывается: balance' = max(total - advance', 0).
// Для ненулевой суммы обязателен способ оплаты.
func (s *Service) RecordPayment(ctx context.Context, bookingID int64, req *models.RecordPaymentRequest) (*models.BookingResponse, error) {
	s.logger.Info("RecordPayment: booking id=%d, amount=%.2f, mode=%q", bookingID, req.Amount, req.Mode)

	if req.Amount < 0 {
		s.logger.Warn("RecordPayment: negative amount %.2f for booking id=%d", req.Amount, bookingID)
		return nil, ErrInvalidAmount
	}

	mode := strings.TrimSpace(req.Mode)
	if req.Amount > 0 && mode == "" {
		s.logger.Warn("RecordPayment: missing payment mode for booking id=%d", bookingID)
		return nil, ErrMissingPaymentMode
	}

	booking, err := s.fetch(ctx, "RecordPayment", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsTerminal() {
		s.logger.Warn("RecordPayment: booking id=%d is cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}

	advancePaid := booking.AdvancePaid + req.Amount
	if advancePaid > booking.TotalAmount {
		advancePaid = booking.TotalAmount
	}

	balanceDue := booking.TotalAmount - advancePaid
	if balanceDue < 0 {
		balanceDue = 0
	}

	paymentMode := booking.PaymentMode
	if req.Amount > 0 {
		paymentMode = &mode
	}

	if err := s.bookingRepo.UpdatePayment(ctx, bookingID, advancePaid, balanceDue, paymentMode); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("RecordPayment: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: RecordPayment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RecordPayment: booking id=%d advance=%.2f balance=%.2f", bookingID, advancePaid, balanceDue)
	return s.refetch(ctx, "RecordPayment", bookingID)
}

// Settle полностью погашает остаток по бронированию
// Погашаемый остаток распределяется по способам оплаты через правила
// распределения (клэмп к остатку, запрет пустых строк оплаты); после
// применения advance = total, balance = 0. Урезание запрошенных сумм не
// блокирует погашение, но возвращается клиенту через WasClamped.
func (s *Service) Settle(ctx context.Context, bookingID int64, req *models.SettleBookingRequest) (*models.SettleBookingResponse, error) {
	s.logger.Info("Settle: booking id=%d, modes=%d", bookingID, len(req.Allocations))

	booking, err := s.fetch(ctx, "Settle", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsTerminal() {
		s.logger.Warn("Settle: booking id=%d is cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}

	paymentMode := booking.PaymentMode
	wasClamped := false

	if len(req.Allocations) > 0 {
		alloc, clamped, err := s.buildAllocation(req.Allocations, booking.BalanceDue)
		if err != nil {
			s.logger.Warn("Settle: invalid allocation for booking id=%d: %v", bookingID, err)
			return nil, err
		}
		if clamped {
			s.logger.Warn("Settle: allocation clamped to balance for booking id=%d", bookingID)
		}
		label := alloc.Label()
		paymentMode = &label
		wasClamped = clamped
	} else if paymentMode == nil {
		// Погашение без единого способа оплаты невозможно
		s.logger.Warn("Settle: missing payment mode for booking id=%d", bookingID)
		return nil, ErrMissingPaymentMode
	}

	if err := s.bookingRepo.UpdatePayment(ctx, bookingID, booking.TotalAmount, 0, paymentMode); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Settle: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Settle - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Settle: booking id=%d fully settled, mode=%s", bookingID, *paymentMode)

	settled, err := s.refetch(ctx, "Settle", bookingID)
	if err != nil {
		return nil, err
	}

	return &models.SettleBookingResponse{
		Booking:    settled,
		WasClamped: wasClamped,
	}, nil
}

// Hold переводит бронирование в статус "held" - запись паркуется без
// подтверждения. Финансовые поля не меняются, слот остается занятым.
func (s *Service) Hold(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("Hold: booking id=%d", bookingID)

	booking, err := s.fetch(ctx, "Hold", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsTerminal() {
		s.logger.Warn("Hold: booking id=%d is cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusHeld); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Hold: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Hold - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Hold: booking id=%d held", bookingID)
	return s.refetch(ctx, "Hold", bookingID)
}

// Cancel отменяет бронирование
// Отмена терминальна и намеренно сбрасывает финансы: advance_paid = 0,
// balance_due = total_amount - собранный аванс перестает числиться за
// бронированием, весь чек остается номинальным остатком для сверки
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: booking id=%d", bookingID)

	remark := strings.TrimSpace(req.Remark)
	if utf8.RuneCountInString(remark) < domain.MinCancelRemarkLength {
		s.logger.Warn("Cancel: remark too short for booking id=%d", bookingID)
		return nil, ErrInvalidRemark
	}
	if utf8.RuneCountInString(remark) > domain.MaxCancelRemarkLength {
		s.logger.Warn("Cancel: remark too long for booking id=%d", bookingID)
		return nil, ErrInvalidRemark
	}

	booking, err := s.fetch(ctx, "Cancel", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsTerminal() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, remark); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)
	return s.refetch(ctx, "Cancel", bookingID)
}

// UpdateStatus обновляет статус бронирования по ожидаемому пути
// pending -> confirmed -> completed. Статусы held и cancelled ставятся
// только через Hold и Cancel.
//
// Перед финализацией проверяется платежное состояние: при непогашенном
// остатке или отсутствии аванса статус не меняется, клиенту возвращается
// предупреждение. Повторный запрос с acknowledged=true проходит.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.UpdateStatusResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	if newStatus == domain.StatusCancelled || newStatus == domain.StatusHeld {
		s.logger.Warn("UpdateStatus: status=%s must go through dedicated transition for booking id=%d",
			newStatus, bookingID)
		return nil, ErrInvalidStatus
	}

	booking, err := s.fetch(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsTerminal() {
		s.logger.Warn("UpdateStatus: booking id=%d is cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}

	advisory := domain.CommitGuard(booking.TotalAmount, booking.AdvancePaid, booking.BalanceDue)
	if advisory != domain.AdvisoryNone && !req.Acknowledged {
		s.logger.Info("UpdateStatus: booking id=%d requires confirmation: advisory=%s", bookingID, advisory)
		return &models.UpdateStatusResponse{
			RequiresConfirmation: true,
			Advisory:             string(advisory),
		}, nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, newStatus)

	updated, err := s.refetch(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return nil, err
	}

	return &models.UpdateStatusResponse{Booking: updated}, nil
}

// Вспомогательные методы

// buildAllocation применяет суммы запроса через правила распределения
// Способы применяются в отсортированном порядке для детерминизма.
// Второе возвращаемое значение - была ли хотя бы одна сумма урезана.
func (s *Service) buildAllocation(requested map[string]float64, balanceDue float64) (payments.Allocation, bool, error) {
	modes := make([]string, 0, len(requested))
	for mode := range requested {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	alloc := payments.Allocation{}
	wasClamped := false
	for _, mode := range modes {
		next, result, err := payments.SetModeAmount(alloc, mode, requested[mode], balanceDue)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrInvalidAllocation, err)
		}
		if result.WasClamped {
			wasClamped = true
		}
		alloc = next
	}

	if err := payments.Validate(alloc, balanceDue); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidAllocation, err)
	}

	return alloc, wasClamped, nil
}

func (s *Service) fetch(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) refetch(ctx context.Context, op string, id int64) (*models.BookingResponse, error) {
	booking, err := s.fetch(ctx, op, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}
