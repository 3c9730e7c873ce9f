package currency

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/networth-backend/internal/domain"
)

// Convert converts an amount between USD and MYR.
// rate is how many MYR one USD buys.
// Converting a currency to itself returns the amount unchanged without looking at the rate;
// any other conversion fails with a domain.InvalidRateError when rate <= 0.
func Convert(amount decimal.Decimal, from, to domain.Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	if err := domain.CheckRate(rate); err != nil {
		return decimal.Zero, err
	}

	switch {
	case from == domain.CurrencyUSD && to == domain.CurrencyMYR:
		return amount.Mul(rate), nil
	case from == domain.CurrencyMYR && to == domain.CurrencyUSD:
		return amount.Div(rate), nil
	default:
		return decimal.Zero, domain.NewValidationError("unsupported conversion " + string(from) + " -> " + string(to))
	}
}

// ToMYR converts an amount in the given currency to MYR
func ToMYR(amount decimal.Decimal, from domain.Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	return Convert(amount, from, domain.CurrencyMYR, rate)
}

// ToUSD converts an amount in the given currency to USD
func ToUSD(amount decimal.Decimal, from domain.Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	return Convert(amount, from, domain.CurrencyUSD, rate)
}
