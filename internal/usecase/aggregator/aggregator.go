package aggregator

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/usecase/valuation"
)

var hundred = decimal.NewFromInt(100)

// Aggregate sums valuated assets into portfolio metrics, all in MYR.
//
// Logic:
//   - Invested (ETF, Stock, Crypto, Cash(Investment)), Saved (Cash(Saving), MoneyMarketFund)
//     and Pension values are summed separately; TotalNetWorth is their sum
//   - TotalCost, TotalProfitLoss and TotalProfitLossPercent only cover the invested class
//   - ProgressToFire = clamp(TotalNetWorth / fireTarget * 100, 0, 100)
//   - ProgressToFireLiquid = clamp((TotalNetWorth - PensionNetWorth) / fireTarget * 100, 0, 100)
//
// fireTargetLiquid is carried into the metrics for display; progress is always measured against fireTarget.
// A fireTarget <= 0 yields 0 progress.
func Aggregate(assets []domain.ComputedAsset, fireTarget, fireTargetLiquid decimal.Decimal) domain.PortfolioMetrics {
	metrics := domain.PortfolioMetrics{
		FireTarget:       fireTarget,
		FireTargetLiquid: fireTargetLiquid,
	}

	for _, a := range assets {
		switch a.Category.Class() {
		case domain.ClassInvested:
			metrics.InvestedNetWorth = metrics.InvestedNetWorth.Add(a.CurrentValueMyr)
			metrics.TotalCost = metrics.TotalCost.Add(a.TotalCostMyr)
		case domain.ClassSaved:
			metrics.SavedNetWorth = metrics.SavedNetWorth.Add(a.CurrentValueMyr)
		case domain.ClassPension:
			metrics.PensionNetWorth = metrics.PensionNetWorth.Add(a.CurrentValueMyr)
		}
	}

	metrics.TotalNetWorth = metrics.InvestedNetWorth.Add(metrics.SavedNetWorth).Add(metrics.PensionNetWorth)
	metrics.TotalProfitLoss = metrics.InvestedNetWorth.Sub(metrics.TotalCost)
	metrics.TotalProfitLossPercent = valuation.Percent(metrics.TotalProfitLoss, metrics.TotalCost)

	metrics.ProgressToFire = Progress(metrics.TotalNetWorth, fireTarget)
	metrics.ProgressToFireLiquid = Progress(metrics.TotalNetWorth.Sub(metrics.PensionNetWorth), fireTarget)

	return metrics
}

// AssignAllocationPercents returns a copy of the assets with CurrentAllocationPercent set
// to each asset's share of the summed CurrentValueMyr. All shares are 0 when the total is 0.
func AssignAllocationPercents(assets []domain.ComputedAsset) []domain.ComputedAsset {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.CurrentValueMyr)
	}

	result := make([]domain.ComputedAsset, len(assets))
	copy(result, assets)
	for i := range result {
		result[i].CurrentAllocationPercent = valuation.Percent(result[i].CurrentValueMyr, total)
	}
	return result
}

// CategoryPerformance groups assets by category and sums their value, cost and count.
// Categories are returned in domain.AssetCategories order; empty categories are omitted.
func CategoryPerformance(assets []domain.ComputedAsset) []domain.CategoryPerformance {
	byCategory := make(map[domain.AssetCategory]*domain.CategoryPerformance)
	for _, a := range assets {
		perf, ok := byCategory[a.Category]
		if !ok {
			perf = &domain.CategoryPerformance{Category: a.Category}
			byCategory[a.Category] = perf
		}
		perf.Count++
		perf.Value = perf.Value.Add(a.CurrentValueMyr)
		perf.Cost = perf.Cost.Add(a.TotalCostMyr)
	}

	result := make([]domain.CategoryPerformance, 0, len(byCategory))
	for _, category := range domain.AssetCategories {
		perf, ok := byCategory[category]
		if !ok {
			continue
		}
		perf.ProfitLoss = perf.Value.Sub(perf.Cost)
		perf.ProfitLossPercent = valuation.Percent(perf.ProfitLoss, perf.Cost)
		result = append(result, *perf)
	}
	return result
}

// Progress returns value / target * 100 clamped to [0, 100], or 0 when target <= 0
func Progress(value, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	return clamp(value.Div(target).Mul(hundred))
}

func clamp(percent decimal.Decimal) decimal.Decimal {
	if percent.IsNegative() {
		return decimal.Zero
	}
	if percent.GreaterThan(hundred) {
		return hundred
	}
	return percent
}
