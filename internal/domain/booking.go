package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusHeld      BookingStatus = "held"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus is derived from the booking financials and status.
// It is never stored; recompute it after every transition.
type PaymentStatus string

const (
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentSettled   PaymentStatus = "settled"
	PaymentAdvance   PaymentStatus = "advance"
	PaymentPending   PaymentStatus = "pending"
)

// Booking represents an appointment booking in the system
type Booking struct {
	ID          int64
	StaffID     int64
	BookingDate time.Time
	StartMinute int // minute of day, [0, 1440)
	EndMinute   int // minute of day, start < end, half-open [start, end)

	// Display-only customer data
	CustomerName  string
	CustomerPhone *string

	TotalAmount float64
	AdvancePaid float64
	BalanceDue  float64

	Status      BookingStatus
	PaymentMode *string

	CancelRemark *string
	CancelledAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive returns true if the booking still occupies its slot.
// Held bookings are active: parking a record does not release the slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsTerminal returns true if no further status transitions are allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled
}

// PaymentState derives the payment status from the three primitives
// (Status, TotalAmount, AdvancePaid). Kept computed to avoid drift.
func (b *Booking) PaymentState() PaymentStatus {
	switch {
	case b.Status == StatusCancelled:
		return PaymentCancelled
	case b.BalanceDue <= 0 && b.TotalAmount > 0:
		return PaymentSettled
	case b.AdvancePaid > 0 && b.AdvancePaid < b.TotalAmount:
		return PaymentAdvance
	default:
		return PaymentPending
	}
}

// Overlaps reports whether the half-open range [start, end) intersects
// the booking's own range. Touching boundaries do not overlap, so
// adjacent bookings are legal.
func (b *Booking) Overlaps(start, end int) bool {
	return b.StartMinute < end && b.EndMinute > start
}

// CountConflicts counts non-cancelled bookings whose range intersects
// the half-open candidate range [start, end). A cancelled booking never
// blocks a slot.
func CountConflicts(start, end int, bookings []*Booking) int {
	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			count++
		}
	}
	return count
}

// BookingsFilter filters bookings for listing, availability and KPI queries
type BookingsFilter struct {
	StaffID          *int64         // optional, nil = all staff
	StartDate        *time.Time     // optional period start
	EndDate          *time.Time     // optional period end
	Status           *BookingStatus // optional exact status
	IncludeCancelled bool           // include cancelled bookings in the result
}
