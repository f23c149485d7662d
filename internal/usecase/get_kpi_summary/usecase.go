package get_kpi_summary

import (
	"context"
	"fmt"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
)

// UseCase use case получения сводки KPI
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения сводки KPI
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetKpiSummary: validation failed: %v", err)
		return nil, err
	}

	// Сводка пересчитывается по всему видимому набору, включая отмененные
	filter := domain.BookingsFilter{
		StaffID:          req.StaffID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		IncludeCancelled: true,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetKpiSummary: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp := summarize(bookings)

	uc.logger.Info("GetKpiSummary: %d bookings, total amount %.2f", resp.Total.Count, resp.Total.Amount)

	return resp, nil
}

func validateRequest(req *Request) error {
	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staff_id must be positive", ErrInvalidInput)
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidInput)
	}

	return nil
}
