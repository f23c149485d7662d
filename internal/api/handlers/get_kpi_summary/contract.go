package get_kpi_summary

import (
	"context"

	"github.com/salonix/SLX-BookingEngine/internal/usecase/get_kpi_summary"
)

type KpiSummaryUseCase interface {
	Execute(ctx context.Context, req *get_kpi_summary.Request) (*get_kpi_summary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
