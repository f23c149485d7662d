package domain

import "errors"

// Time grid constants
const (
	BlockDurationMinutes = 30
	BlocksPerDay         = 48
	MinutesPerDay        = 1440
)

// Business validation constants
const (
	MinCancelRemarkLength = 3
	MaxCancelRemarkLength = 500
	MaxCustomerNameLength = 200
	MaxPaymentModeLength  = 50

	// MoneyEpsilon tolerance for "no payment collected" checks on float amounts
	MoneyEpsilon = 0.005
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

var (
	// ErrInvalidMinute returned when a minute of day is outside [0, 1440)
	ErrInvalidMinute = errors.New("domain: minute of day out of range [0, 1440)")

	// ErrInvalidBlockIndex returned when a block index is outside [0, 48)
	ErrInvalidBlockIndex = errors.New("domain: block index out of range [0, 48)")
)

// InactiveStatuses lists statuses excluded from slot occupancy checks
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that occupy a slot
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusHeld,
}
