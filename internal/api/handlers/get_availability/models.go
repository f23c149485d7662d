package get_availability

import (
	"strconv"
	"strings"
	"time"

	"github.com/salonix/SLX-BookingEngine/internal/domain"
	getAvailability "github.com/salonix/SLX-BookingEngine/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date               string              `json:"date"`
	DayHasAvailability bool                `json:"dayHasAvailability"`
	Staff              []StaffAvailability `json:"staff"`
}

// StaffAvailability доступность одного мастера
type StaffAvailability struct {
	StaffID         int64       `json:"staffId"`
	StaffName       string      `json:"staffName"`
	HasAvailability bool        `json:"hasAvailability"`
	FreeBlocks      []FreeBlock `json:"freeBlocks"`
}

// FreeBlock свободный 30-минутный блок
type FreeBlock struct {
	Index     int    `json:"index"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	staff := make([]StaffAvailability, len(resp.Staff))
	for i, s := range resp.Staff {
		blocks := make([]FreeBlock, len(s.FreeBlocks))
		for j, block := range s.FreeBlocks {
			blocks[j] = FreeBlock{
				Index:     block.Index,
				StartTime: block.StartTime.String(),
				EndTime:   block.EndTime.String(),
				Label:     block.Label,
			}
		}

		staff[i] = StaffAvailability{
			StaffID:         s.StaffID,
			StaffName:       s.StaffName,
			HasAvailability: s.HasAvailability,
			FreeBlocks:      blocks,
		}
	}

	return &AvailabilityResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		DayHasAvailability: resp.DayHasAvailability,
		Staff:              staff,
	}
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(dateStr, staffIDsStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailability.Request{
		Date: date,
	}

	// Парсим staffIds если указаны (через запятую)
	if staffIDsStr != "" {
		parts := strings.Split(staffIDsStr, ",")
		staffIDs := make([]int64, 0, len(parts))
		for _, part := range parts {
			staffID, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, err
			}
			staffIDs = append(staffIDs, staffID)
		}
		req.StaffIDs = staffIDs
	}

	return req, nil
}
