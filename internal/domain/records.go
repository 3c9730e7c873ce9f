package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// YearlyRecord is a year-end net worth snapshot, amounts in MYR
type YearlyRecord struct {
	ID       uuid.UUID       `json:"id"`
	Year     int             `json:"year"`
	NetWorth decimal.Decimal `json:"net_worth"`
	Invested decimal.Decimal `json:"invested"`
	Saved    decimal.Decimal `json:"saved"`
	Pension  decimal.Decimal `json:"pension"`
	Note     string          `json:"note,omitempty"`
}

// Validate ensures the record adheres to domain rules
func (r *YearlyRecord) Validate() error {
	if r.Year < 1900 || r.Year > 9999 {
		return NewValidationError("yearly record year is out of range")
	}
	return nil
}

// DividendRecord is a dividend received for an asset
type DividendRecord struct {
	ID       uuid.UUID       `json:"id"`
	AssetID  uuid.UUID       `json:"asset_id"`
	Symbol   string          `json:"symbol"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// Validate ensures the dividend adheres to domain rules
func (d *DividendRecord) Validate() error {
	if d.Symbol == "" {
		return NewValidationError("dividend symbol cannot be empty")
	}
	if d.Amount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("dividend amount must be positive")
	}
	if !d.Currency.Valid() {
		return NewValidationError("invalid dividend currency: " + string(d.Currency))
	}
	if d.Date.IsZero() {
		return NewValidationError("dividend date is required")
	}
	return nil
}
