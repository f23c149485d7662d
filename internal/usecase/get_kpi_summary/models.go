package get_kpi_summary

import "time"

// Request запрос на получение сводки KPI
type Request struct {
	StaffID   *int64     `json:"staff_id,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// Bucket агрегат по одной категории: количество бронирований и сумма
type Bucket struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// Response сводка KPI по видимому набору бронирований
type Response struct {
	Advanced   Bucket `json:"advanced"`
	Paid       Bucket `json:"paid"`
	Settlement Bucket `json:"settlement"`
	Pending    Bucket `json:"pending"`
	Total      Bucket `json:"total"`
}
