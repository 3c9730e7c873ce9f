package history

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/usecase/currency"
	"github.com/simaogato/networth-backend/internal/usecase/valuation"
)

// YearChange is the net worth of one year and its change from the previous recorded year
type YearChange struct {
	Year          int             `json:"year"`
	NetWorth      decimal.Decimal `json:"net_worth"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
}

// YearlyDividends is the dividend income of one year in MYR
type YearlyDividends struct {
	Year     int             `json:"year"`
	TotalMyr decimal.Decimal `json:"total_myr"`
	Count    int             `json:"count"`
}

// AssetFlow is the net cash put into one asset through transactions, in MYR
type AssetFlow struct {
	AssetID        uuid.UUID       `json:"asset_id"`
	Symbol         string          `json:"symbol"`
	Buys           int             `json:"buys"`
	Sells          int             `json:"sells"`
	NetInvestedMyr decimal.Decimal `json:"net_invested_myr"`
}

// YearOverYear sorts yearly records and computes the change between consecutive entries.
// The first year has a zero change; ChangePercent is 0 when the previous net worth is not positive.
func YearOverYear(records []domain.YearlyRecord) []YearChange {
	sorted := make([]domain.YearlyRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Year < sorted[j].Year
	})

	result := make([]YearChange, 0, len(sorted))
	for i, r := range sorted {
		change := YearChange{Year: r.Year, NetWorth: r.NetWorth}
		if i > 0 {
			prev := sorted[i-1].NetWorth
			change.Change = r.NetWorth.Sub(prev)
			change.ChangePercent = valuation.Percent(change.Change, prev)
		}
		result = append(result, change)
	}
	return result
}

// DividendsByYear totals dividends per calendar year in MYR, oldest year first.
// Fails with domain.InvalidRateError when a USD dividend needs converting and rate <= 0.
func DividendsByYear(dividends []domain.DividendRecord, rate decimal.Decimal) ([]YearlyDividends, error) {
	byYear := make(map[int]*YearlyDividends)
	for _, d := range dividends {
		amount, err := currency.ToMYR(d.Amount, d.Currency, rate)
		if err != nil {
			return nil, err
		}
		year := d.Date.Year()
		entry, ok := byYear[year]
		if !ok {
			entry = &YearlyDividends{Year: year}
			byYear[year] = entry
		}
		entry.TotalMyr = entry.TotalMyr.Add(amount)
		entry.Count++
	}

	result := make([]YearlyDividends, 0, len(byYear))
	for _, entry := range byYear {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Year < result[j].Year
	})
	return result, nil
}

// NetInvested sums transaction cash flows per asset in MYR, in order of first appearance.
// Buys add price * quantity + fee, sells subtract the proceeds net of fees.
func NetInvested(transactions []domain.InvestmentTransaction, rate decimal.Decimal) ([]AssetFlow, error) {
	flows := make([]*AssetFlow, 0)
	byAsset := make(map[uuid.UUID]*AssetFlow)
	for i := range transactions {
		tx := &transactions[i]
		amount, err := currency.ToMYR(tx.Amount(), tx.Currency, rate)
		if err != nil {
			return nil, err
		}

		flow, ok := byAsset[tx.AssetID]
		if !ok {
			flow = &AssetFlow{AssetID: tx.AssetID, Symbol: tx.Symbol}
			byAsset[tx.AssetID] = flow
			flows = append(flows, flow)
		}
		if tx.Type == domain.TransactionSell {
			flow.Sells++
		} else {
			flow.Buys++
		}
		flow.NetInvestedMyr = flow.NetInvestedMyr.Add(amount)
	}

	result := make([]AssetFlow, len(flows))
	for i, f := range flows {
		result[i] = *f
	}
	return result, nil
}
