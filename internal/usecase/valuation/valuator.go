package valuation

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/usecase/currency"
)

var hundred = decimal.NewFromInt(100)

// Valuate computes the value, cost basis and profit/loss of an asset
// in its own currency, MYR and USD.
//
// Logic:
//   - Price assets: value = quantity * currentPrice, cost = quantity * averageCost
//   - Pension accrual assets: value = baseAmount + whole months since startDate * monthlyContribution,
//     cost = value (contributions are principal, so profit/loss is always 0)
//   - profitLossPercent = profitLossMyr / totalCostMyr * 100, or 0 when the cost is 0
//
// CurrentAllocationPercent is left at 0; it needs the portfolio total and is set by the aggregator.
// Fails with domain.InvalidRateError when exchangeRate <= 0.
func Valuate(asset domain.Asset, exchangeRate decimal.Decimal, at time.Time) (domain.ComputedAsset, error) {
	if err := domain.CheckRate(exchangeRate); err != nil {
		return domain.ComputedAsset{}, err
	}

	computed := domain.ComputedAsset{Asset: asset}

	if asset.UsesAccrual() {
		accrued := accruedPension(asset.PensionConfig, at)
		computed.CurrentValueOriginal = accrued
		computed.TotalCostOriginal = accrued
	} else {
		computed.CurrentValueOriginal = asset.Quantity.Mul(asset.CurrentPrice)
		computed.TotalCostOriginal = asset.Quantity.Mul(asset.AverageCost)
	}

	var err error
	if computed.CurrentValueMyr, err = currency.ToMYR(computed.CurrentValueOriginal, asset.Currency, exchangeRate); err != nil {
		return domain.ComputedAsset{}, err
	}
	if computed.CurrentValueUsd, err = currency.ToUSD(computed.CurrentValueOriginal, asset.Currency, exchangeRate); err != nil {
		return domain.ComputedAsset{}, err
	}
	if computed.TotalCostMyr, err = currency.ToMYR(computed.TotalCostOriginal, asset.Currency, exchangeRate); err != nil {
		return domain.ComputedAsset{}, err
	}
	if computed.TotalCostUsd, err = currency.ToUSD(computed.TotalCostOriginal, asset.Currency, exchangeRate); err != nil {
		return domain.ComputedAsset{}, err
	}

	if asset.UsesAccrual() {
		computed.ProfitLossMyr = decimal.Zero
		computed.ProfitLossUsd = decimal.Zero
		computed.ProfitLossPercent = decimal.Zero
		return computed, nil
	}

	computed.ProfitLossMyr = computed.CurrentValueMyr.Sub(computed.TotalCostMyr)
	computed.ProfitLossUsd = computed.CurrentValueUsd.Sub(computed.TotalCostUsd)
	computed.ProfitLossPercent = Percent(computed.ProfitLossMyr, computed.TotalCostMyr)

	return computed, nil
}

// ValuateAll valuates every asset in order.
// The whole pass fails on the first error, so callers never see a partial result.
func ValuateAll(assets []domain.Asset, exchangeRate decimal.Decimal, at time.Time) ([]domain.ComputedAsset, error) {
	if err := domain.CheckRate(exchangeRate); err != nil {
		return nil, err
	}

	computed := make([]domain.ComputedAsset, 0, len(assets))
	for _, asset := range assets {
		c, err := Valuate(asset, exchangeRate, at)
		if err != nil {
			return nil, err
		}
		computed = append(computed, c)
	}
	return computed, nil
}

// Percent returns part / whole * 100, or 0 when whole is not positive
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// accruedPension returns base + elapsed whole months * monthly contribution
func accruedPension(cfg *domain.PensionConfig, at time.Time) decimal.Decimal {
	months := domain.MonthsBetween(cfg.StartDate, at)
	return cfg.BaseAmount.Add(cfg.MonthlyContribution.Mul(decimal.NewFromInt(int64(months))))
}
