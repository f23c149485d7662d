package get_kpi_summary

import (
	"strconv"
	"time"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	"github.com/salonix/SLX-BookingEngine/internal/usecase/get_kpi_summary"
)

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(staffIDStr, startDateStr, endDateStr string) (*get_kpi_summary.Request, error) {
	req := &get_kpi_summary.Request{}

	if staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &staffID
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}
