package get_kpi_summary

import (
	"errors"
	"net/http"

	"github.com/salonix/SLX-BookingEngine/internal/api/handlers"
	"github.com/salonix/SLX-BookingEngine/internal/usecase/get_kpi_summary"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase KpiSummaryUseCase
	logger  Logger
}

func NewHandler(useCase KpiSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/kpi/summary
// Query params: staffId, startDate, endDate (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req, err := ToUseCaseRequest(
		query.Get("staffId"),
		query.Get("startDate"),
		query.Get("endDate"),
	)
	if err != nil {
		h.logger.Warn("GET /kpi/summary - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, get_kpi_summary.ErrInvalidInput):
			h.logger.Warn("GET /kpi/summary - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /kpi/summary - Failed to compute summary: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /kpi/summary - Summary computed: total_count=%d", result.Total.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
