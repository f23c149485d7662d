package get_kpi_summary

import "github.com/salonix/SLX-BookingEngine/internal/domain"

// summarize раскладывает набор бронирований по категориям KPI.
//
// Категории advanced/paid/settlement пересекаются намеренно: settlement
// отвечает на вопрос "сколько денег уже собрано", а не "в каком платежном
// состоянии бронирование". Total считает все видимые записи, включая
// отмененные; остальные категории отмененные не учитывают.
func summarize(bookings []*domain.Booking) *Response {
	resp := &Response{}

	for _, b := range bookings {
		resp.Total.Count++
		resp.Total.Amount += b.TotalAmount

		if b.IsCancelled() {
			continue
		}

		switch b.PaymentState() {
		case domain.PaymentSettled:
			resp.Paid.Count++
			resp.Paid.Amount += b.TotalAmount
		case domain.PaymentAdvance:
			resp.Advanced.Count++
			resp.Advanced.Amount += b.AdvancePaid
		case domain.PaymentPending:
			resp.Pending.Count++
			resp.Pending.Amount += b.TotalAmount
		}

		if b.AdvancePaid > 0 {
			resp.Settlement.Count++
			resp.Settlement.Amount += b.AdvancePaid
		}
	}

	return resp
}
