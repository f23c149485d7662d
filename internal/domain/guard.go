package domain

// Advisory is a pre-commit signal requiring explicit user confirmation.
// Advisories never block an operation by themselves; the caller must
// acknowledge them before the write proceeds.
type Advisory string

const (
	AdvisoryNone                  Advisory = ""
	AdvisoryConfirmNoPayment      Advisory = "confirm_no_payment"
	AdvisoryConfirmPartialBalance Advisory = "confirm_partial_balance"
)

// CommitGuard evaluates the pre-commit advisory for a booking write with
// a status other than held/cancelled. A priced booking with no advance
// collected asks for the no-payment confirmation; a remaining balance
// asks for the partial-balance confirmation.
func CommitGuard(totalAmount, advancePaid, balanceDue float64) Advisory {
	if totalAmount > 0 && advancePaid < MoneyEpsilon {
		return AdvisoryConfirmNoPayment
	}
	if balanceDue > 0 {
		return AdvisoryConfirmPartialBalance
	}
	return AdvisoryNone
}
