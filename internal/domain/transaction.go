package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of an investment transaction
type TransactionType string

const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
)

// InvestmentTransaction is a recorded buy or sell of an asset
type InvestmentTransaction struct {
	ID       uuid.UUID       `json:"id"`
	AssetID  uuid.UUID       `json:"asset_id"`
	Symbol   string          `json:"symbol"`
	Type     TransactionType `json:"type"`
	Date     time.Time       `json:"date"`
	Quantity decimal.Decimal `json:"quantity"` // always positive, Type carries the direction
	Price    decimal.Decimal `json:"price"`
	Fee      decimal.Decimal `json:"fee"`
	Currency Currency        `json:"currency"`
}

// Validate ensures the transaction adheres to domain rules
// Returns an error if validation fails
func (t *InvestmentTransaction) Validate() error {
	if t.Type != TransactionBuy && t.Type != TransactionSell {
		return NewValidationError("transaction type must be BUY or SELL")
	}
	if t.Symbol == "" {
		return NewValidationError("transaction symbol cannot be empty")
	}
	if t.Quantity.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("transaction quantity must be positive")
	}
	if t.Price.IsNegative() || t.Fee.IsNegative() {
		return NewValidationError("transaction price and fee cannot be negative")
	}
	if !t.Currency.Valid() {
		return NewValidationError("invalid transaction currency: " + string(t.Currency))
	}
	if t.Date.IsZero() {
		return NewValidationError("transaction date is required")
	}
	return nil
}

// Amount returns the signed cash flow into the position in the transaction currency.
// Buys are positive (price * quantity + fee), sells negative (price * quantity - fee).
func (t *InvestmentTransaction) Amount() decimal.Decimal {
	gross := t.Price.Mul(t.Quantity)
	if t.Type == TransactionSell {
		return gross.Sub(t.Fee).Neg()
	}
	return gross.Add(t.Fee)
}
