package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/simaogato/networth-backend/internal/domain"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		cur    domain.Currency
		want   string
	}{
		{"USD groups thousands", "1234.5", domain.CurrencyUSD, "$1,234.50"},
		{"USD rounds to cents", "0.005", domain.CurrencyUSD, "$0.01"},
		{"MYR uses ringgit symbol", "1234567.891", domain.CurrencyMYR, "RM1,234,567.89"},
		{"zero", "0", domain.CurrencyMYR, "RM0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.amount), tt.cur))
		})
	}
}

func TestFormatMYR(t *testing.T) {
	assert.Equal(t, Format(decimal.NewFromInt(42), domain.CurrencyMYR), FormatMYR(decimal.NewFromInt(42)))
}
