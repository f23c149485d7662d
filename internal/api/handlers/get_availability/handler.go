package get_availability

import (
	"errors"
	"net/http"

	"github.com/salonix/SLX-BookingEngine/internal/api/handlers"
	"github.com/salonix/SLX-BookingEngine/internal/usecase/get_availability"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgStaffNotFound = "мастер не найден"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (обязательный, YYYY-MM-DD), staffIds (опционально, через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	staffIDsStr := r.URL.Query().Get("staffIds")

	req, err := ToUseCaseRequest(dateStr, staffIDsStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, get_availability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, get_availability.ErrStaffNotFound):
			h.logger.Warn("GET /availability - Staff not found: %v", err)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /availability - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability computed: date=%s, staff_count=%d",
		dateStr, len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, response)
}
