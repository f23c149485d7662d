package create_booking

import (
	"errors"
	"net/http"

	"github.com/salonix/SLX-BookingEngine/internal/api/handlers"
	"github.com/salonix/SLX-BookingEngine/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgStaffNotFound      = "мастер не найден"
	msgStaffInactive      = "мастер неактивен"
	msgSlotConflict       = "слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
//
// Если чек требует подтверждения (advisory), возвращается 200 с
// requiresConfirmation=true и без сохранения; клиент повторяет запрос
// с acknowledged=true.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, create_booking.ErrInvalidInput),
			errors.Is(err, create_booking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, create_booking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, create_booking.ErrStaffInactive):
			h.logger.Warn("POST /bookings - Staff inactive: staff_id=%d", req.StaffID)
			handlers.RespondBadRequest(w, msgStaffInactive)

		case errors.Is(err, create_booking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: staff_id=%d, date=%s, range=[%d,%d)",
				req.StaffID, req.Date, req.StartMinute, req.EndMinute)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	if result.RequiresConfirmation {
		h.logger.Info("POST /bookings - Confirmation required: staff_id=%d, advisory=%s",
			req.StaffID, result.Advisory)
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d", result.Booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
