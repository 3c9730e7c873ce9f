package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency represents a currency an asset can be denominated in
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyMYR Currency = "MYR"
)

// Valid reports whether the currency is one the portfolio supports
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyMYR
}

// AssetCategory represents the kind of holding an asset is
type AssetCategory string

const (
	CategoryETF             AssetCategory = "ETF"
	CategoryStock           AssetCategory = "STOCK"
	CategoryCrypto          AssetCategory = "CRYPTO"
	CategoryCashInvestment  AssetCategory = "CASH_INVESTMENT"
	CategoryCashSaving      AssetCategory = "CASH_SAVING"
	CategoryPension         AssetCategory = "PENSION"
	CategoryMoneyMarketFund AssetCategory = "MONEY_MARKET_FUND"
)

// AssetCategories lists every category in display order
var AssetCategories = []AssetCategory{
	CategoryETF,
	CategoryStock,
	CategoryCrypto,
	CategoryCashInvestment,
	CategoryCashSaving,
	CategoryMoneyMarketFund,
	CategoryPension,
}

// AssetClass is the net worth group a category is counted in
type AssetClass string

const (
	ClassInvested AssetClass = "INVESTED"
	ClassSaved    AssetClass = "SAVED"
	ClassPension  AssetClass = "PENSION"
	ClassUnknown  AssetClass = ""
)

// Class maps the category onto its net worth class.
// Unknown categories return ClassUnknown and are not counted anywhere.
func (c AssetCategory) Class() AssetClass {
	switch c {
	case CategoryETF, CategoryStock, CategoryCrypto, CategoryCashInvestment:
		return ClassInvested
	case CategoryCashSaving, CategoryMoneyMarketFund:
		return ClassSaved
	case CategoryPension:
		return ClassPension
	default:
		return ClassUnknown
	}
}

// Valid reports whether the category is a known value
func (c AssetCategory) Valid() bool {
	return c.Class() != ClassUnknown
}

// PensionConfig describes a contribution-accrual balance
type PensionConfig struct {
	BaseAmount          decimal.Decimal `json:"base_amount"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	StartDate           time.Time       `json:"start_date"`
}

// Asset represents a holding recorded by the user.
// The valuation core never mutates an Asset; it only derives ComputedAsset values from it.
type Asset struct {
	ID               uuid.UUID       `json:"id"`
	Symbol           string          `json:"symbol"`
	Name             string          `json:"name"`
	Category         AssetCategory   `json:"category"`
	Currency         Currency        `json:"currency"`
	Quantity         decimal.Decimal `json:"quantity"`
	AverageCost      decimal.Decimal `json:"average_cost"`
	CurrentPrice     decimal.Decimal `json:"current_price"`
	TargetAllocation decimal.Decimal `json:"target_allocation"` // percentage points, 0-100
	GroupName        string          `json:"group_name,omitempty"`
	PensionConfig    *PensionConfig  `json:"pension_config,omitempty"` // when set, quantity/cost/price are ignored
}

// UsesAccrual reports whether the asset is valued by pension accrual instead of price
func (a *Asset) UsesAccrual() bool {
	return a.Category == CategoryPension && a.PensionConfig != nil
}

// Validate ensures the asset adheres to domain rules
// Returns an error if validation fails
func (a *Asset) Validate() error {
	if a.Symbol == "" {
		return NewValidationError("asset symbol cannot be empty")
	}
	if !a.Category.Valid() {
		return NewValidationError("invalid asset category: " + string(a.Category))
	}
	if !a.Currency.Valid() {
		return NewValidationError("invalid asset currency: " + string(a.Currency))
	}
	if a.Quantity.IsNegative() {
		return NewValidationError("asset quantity cannot be negative")
	}
	if a.AverageCost.IsNegative() || a.CurrentPrice.IsNegative() {
		return NewValidationError("asset prices cannot be negative")
	}
	if a.TargetAllocation.IsNegative() || a.TargetAllocation.GreaterThan(decimal.NewFromInt(100)) {
		return NewValidationError("target allocation must be between 0 and 100")
	}
	if a.PensionConfig != nil {
		if a.Category != CategoryPension {
			return NewValidationError("pension config is only valid for pension assets")
		}
		if a.PensionConfig.BaseAmount.IsNegative() || a.PensionConfig.MonthlyContribution.IsNegative() {
			return NewValidationError("pension amounts cannot be negative")
		}
		if a.PensionConfig.StartDate.IsZero() {
			return NewValidationError("pension start date is required")
		}
	}
	return nil
}

// ComputedAsset is an Asset plus its valuation in original currency, MYR and USD.
// It is recomputed on every valuation pass and never persisted.
type ComputedAsset struct {
	Asset

	CurrentValueOriginal decimal.Decimal `json:"current_value_original"`
	CurrentValueMyr      decimal.Decimal `json:"current_value_myr"`
	CurrentValueUsd      decimal.Decimal `json:"current_value_usd"`

	TotalCostOriginal decimal.Decimal `json:"total_cost_original"`
	TotalCostMyr      decimal.Decimal `json:"total_cost_myr"`
	TotalCostUsd      decimal.Decimal `json:"total_cost_usd"`

	ProfitLossMyr     decimal.Decimal `json:"profit_loss_myr"`
	ProfitLossUsd     decimal.Decimal `json:"profit_loss_usd"`
	ProfitLossPercent decimal.Decimal `json:"profit_loss_percent"`

	// Filled in by the aggregator once the portfolio total is known
	CurrentAllocationPercent decimal.Decimal `json:"current_allocation_percent"`
}
