package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PortfolioMetrics holds portfolio wide totals, all in MYR.
// TotalNetWorth always equals InvestedNetWorth + SavedNetWorth + PensionNetWorth.
type PortfolioMetrics struct {
	TotalNetWorth          decimal.Decimal `json:"total_net_worth"`
	InvestedNetWorth       decimal.Decimal `json:"invested_net_worth"`
	SavedNetWorth          decimal.Decimal `json:"saved_net_worth"`
	PensionNetWorth        decimal.Decimal `json:"pension_net_worth"`
	TotalCost              decimal.Decimal `json:"total_cost"`        // invested class only
	TotalProfitLoss        decimal.Decimal `json:"total_profit_loss"` // invested class only
	TotalProfitLossPercent decimal.Decimal `json:"total_profit_loss_percent"`
	FireTarget             decimal.Decimal `json:"fire_target"`
	FireTargetLiquid       decimal.Decimal `json:"fire_target_liquid"`
	ProgressToFire         decimal.Decimal `json:"progress_to_fire"`
	ProgressToFireLiquid   decimal.Decimal `json:"progress_to_fire_liquid"`
}

// CategoryPerformance summarizes the assets of one category, in MYR
type CategoryPerformance struct {
	Category          AssetCategory   `json:"category"`
	Count             int             `json:"count"`
	Value             decimal.Decimal `json:"value"`
	Cost              decimal.Decimal `json:"cost"`
	ProfitLoss        decimal.Decimal `json:"profit_loss"`
	ProfitLossPercent decimal.Decimal `json:"profit_loss_percent"`
}

// Settings holds the user's portfolio-wide figures.
// ExchangeRate is MYR per 1 USD.
type Settings struct {
	ExchangeRate       decimal.Decimal `json:"exchange_rate"`
	FireTarget         decimal.Decimal `json:"fire_target"`
	FireTargetLiquid   decimal.Decimal `json:"fire_target_liquid"`
	SavingTarget       decimal.Decimal `json:"saving_target"`
	RebalanceThreshold decimal.Decimal `json:"rebalance_threshold"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Validate ensures the settings adhere to domain rules
func (s *Settings) Validate() error {
	if err := CheckRate(s.ExchangeRate); err != nil {
		return NewValidationError(err.Error())
	}
	if s.FireTarget.IsNegative() || s.FireTargetLiquid.IsNegative() || s.SavingTarget.IsNegative() {
		return NewValidationError("targets cannot be negative")
	}
	if s.RebalanceThreshold.IsNegative() {
		return NewValidationError("rebalance threshold cannot be negative")
	}
	return nil
}

// PriceHistory records the price of an asset at a point in time
type PriceHistory struct {
	ID      uuid.UUID       `json:"id"`
	AssetID uuid.UUID       `json:"asset_id"`
	Date    time.Time       `json:"date"`
	Price   decimal.Decimal `json:"price"`
}
