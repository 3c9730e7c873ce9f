package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/domain"
)

// Format renders an amount with the currency's symbol, grouping and minor-unit precision,
// e.g. "RM1,234.50" or "$99.00". Amounts are rounded half away from zero to the minor unit.
func Format(amount decimal.Decimal, c domain.Currency) string {
	// money.New never returns a nil currency, unknown codes get a plain formatter
	cur := money.New(0, string(c)).Currency()
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// FormatMYR formats an amount already expressed in MYR
func FormatMYR(amount decimal.Decimal) string {
	return Format(amount, domain.CurrencyMYR)
}
