package currency

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/networth-backend/internal/domain"
)

func TestConvert(t *testing.T) {
	rate := decimal.RequireFromString("4.0")

	tests := []struct {
		name   string
		amount decimal.Decimal
		from   domain.Currency
		to     domain.Currency
		want   decimal.Decimal
	}{
		{"USD to MYR multiplies by rate", decimal.NewFromInt(1500), domain.CurrencyUSD, domain.CurrencyMYR, decimal.NewFromInt(6000)},
		{"MYR to USD divides by rate", decimal.NewFromInt(6000), domain.CurrencyMYR, domain.CurrencyUSD, decimal.NewFromInt(1500)},
		{"USD to USD is identity", decimal.RequireFromString("12.34"), domain.CurrencyUSD, domain.CurrencyUSD, decimal.RequireFromString("12.34")},
		{"MYR to MYR is identity", decimal.NewFromInt(7), domain.CurrencyMYR, domain.CurrencyMYR, decimal.NewFromInt(7)},
		{"zero amount", decimal.Zero, domain.CurrencyUSD, domain.CurrencyMYR, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.amount, tt.from, tt.to, rate)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestConvert_InvalidRate(t *testing.T) {
	for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
		_, err := Convert(decimal.NewFromInt(100), domain.CurrencyUSD, domain.CurrencyMYR, rate)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidRate))

		var rateErr *domain.InvalidRateError
		require.True(t, errors.As(err, &rateErr))
		assert.True(t, rateErr.Rate.Equal(rate))
	}
}

func TestConvert_IdentityIgnoresRate(t *testing.T) {
	got, err := Convert(decimal.NewFromInt(100), domain.CurrencyMYR, domain.CurrencyMYR, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)))
}

func TestConvert_RoundTrip(t *testing.T) {
	tolerance := decimal.RequireFromString("0.000000001")
	amounts := []string{"1", "0.01", "1234.5678", "99999999.99", "3.333333"}
	rates := []string{"4.0", "4.4721", "3", "0.0001", "1234.5"}

	for _, a := range amounts {
		for _, r := range rates {
			x := decimal.RequireFromString(a)
			rate := decimal.RequireFromString(r)

			myr, err := Convert(x, domain.CurrencyUSD, domain.CurrencyMYR, rate)
			require.NoError(t, err)
			back, err := Convert(myr, domain.CurrencyMYR, domain.CurrencyUSD, rate)
			require.NoError(t, err)

			assert.True(t, back.Sub(x).Abs().LessThanOrEqual(tolerance), "round trip of %s at %s gave %s", a, r, back)
		}
	}
}

func TestConvert_UnsupportedCurrency(t *testing.T) {
	_, err := Convert(decimal.NewFromInt(1), domain.Currency("EUR"), domain.CurrencyMYR, decimal.NewFromInt(4))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestToMYRAndToUSD(t *testing.T) {
	rate := decimal.RequireFromString("4.5")

	myr, err := ToMYR(decimal.NewFromInt(2), domain.CurrencyUSD, rate)
	require.NoError(t, err)
	assert.True(t, myr.Equal(decimal.NewFromInt(9)))

	usd, err := ToUSD(decimal.NewFromInt(9), domain.CurrencyMYR, rate)
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(2)))
}
