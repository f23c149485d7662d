package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitGuard(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		advance float64
		balance float64
		want    Advisory
	}{
		{name: "no payment collected", total: 1000, advance: 0, balance: 1000, want: AdvisoryConfirmNoPayment},
		{name: "near-zero advance treated as no payment", total: 1000, advance: 0.001, balance: 999.999, want: AdvisoryConfirmNoPayment},
		{name: "partial balance outstanding", total: 1000, advance: 400, balance: 600, want: AdvisoryConfirmPartialBalance},
		{name: "fully settled", total: 1000, advance: 1000, balance: 0, want: AdvisoryNone},
		{name: "zero amount booking", total: 0, advance: 0, balance: 0, want: AdvisoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommitGuard(tt.total, tt.advance, tt.balance))
		})
	}
}
