package history

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/networth-backend/internal/domain"
)

var rate = decimal.NewFromInt(4)

func TestYearOverYear(t *testing.T) {
	records := []domain.YearlyRecord{
		{Year: 2024, NetWorth: decimal.NewFromInt(150000)},
		{Year: 2022, NetWorth: decimal.Zero},
		{Year: 2023, NetWorth: decimal.NewFromInt(100000)},
	}

	changes := YearOverYear(records)
	require.Len(t, changes, 3)

	assert.Equal(t, 2022, changes[0].Year)
	assert.True(t, changes[0].Change.IsZero())
	assert.True(t, changes[0].ChangePercent.IsZero())

	assert.Equal(t, 2023, changes[1].Year)
	assert.True(t, changes[1].Change.Equal(decimal.NewFromInt(100000)))
	assert.True(t, changes[1].ChangePercent.IsZero(), "previous net worth of 0 has no percent change")

	assert.Equal(t, 2024, changes[2].Year)
	assert.True(t, changes[2].Change.Equal(decimal.NewFromInt(50000)))
	assert.True(t, changes[2].ChangePercent.Equal(decimal.NewFromInt(50)))

	// Input order is untouched
	assert.Equal(t, 2024, records[0].Year)
	assert.Empty(t, YearOverYear(nil))
}

func TestDividendsByYear(t *testing.T) {
	dividends := []domain.DividendRecord{
		{Symbol: "VOO", Amount: decimal.NewFromInt(25), Currency: domain.CurrencyUSD, Date: time.Date(2024, time.March, 28, 0, 0, 0, 0, time.UTC)},
		{Symbol: "MAYBANK", Amount: decimal.NewFromInt(300), Currency: domain.CurrencyMYR, Date: time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{Symbol: "VOO", Amount: decimal.NewFromInt(30), Currency: domain.CurrencyUSD, Date: time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)},
	}

	byYear, err := DividendsByYear(dividends, rate)
	require.NoError(t, err)
	require.Len(t, byYear, 2)

	assert.Equal(t, 2023, byYear[0].Year)
	assert.Equal(t, 1, byYear[0].Count)
	assert.True(t, byYear[0].TotalMyr.Equal(decimal.NewFromInt(300)))

	assert.Equal(t, 2024, byYear[1].Year)
	assert.Equal(t, 2, byYear[1].Count)
	assert.True(t, byYear[1].TotalMyr.Equal(decimal.NewFromInt(220)))
}

func TestDividendsByYear_InvalidRate(t *testing.T) {
	dividends := []domain.DividendRecord{
		{Symbol: "VOO", Amount: decimal.NewFromInt(25), Currency: domain.CurrencyUSD, Date: time.Now()},
	}

	_, err := DividendsByYear(dividends, decimal.Zero)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRate))

	// MYR-only dividends never need the rate
	myr := []domain.DividendRecord{
		{Symbol: "MAYBANK", Amount: decimal.NewFromInt(10), Currency: domain.CurrencyMYR, Date: time.Now()},
	}
	_, err = DividendsByYear(myr, decimal.Zero)
	assert.NoError(t, err)
}

func TestNetInvested(t *testing.T) {
	vooID := uuid.New()
	fdID := uuid.New()
	day := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

	transactions := []domain.InvestmentTransaction{
		{AssetID: vooID, Symbol: "VOO", Type: domain.TransactionBuy, Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(100), Fee: decimal.NewFromInt(1), Currency: domain.CurrencyUSD, Date: day},
		{AssetID: fdID, Symbol: "ASNB", Type: domain.TransactionBuy, Quantity: decimal.NewFromInt(1000), Price: decimal.NewFromInt(1), Currency: domain.CurrencyMYR, Date: day},
		{AssetID: vooID, Symbol: "VOO", Type: domain.TransactionSell, Quantity: decimal.NewFromInt(4), Price: decimal.NewFromInt(120), Fee: decimal.NewFromInt(2), Currency: domain.CurrencyUSD, Date: day},
	}

	flows, err := NetInvested(transactions, rate)
	require.NoError(t, err)
	require.Len(t, flows, 2)

	voo := flows[0]
	assert.Equal(t, vooID, voo.AssetID)
	assert.Equal(t, 1, voo.Buys)
	assert.Equal(t, 1, voo.Sells)
	// (1000 + 1 - (480 - 2)) USD * 4
	assert.True(t, voo.NetInvestedMyr.Equal(decimal.NewFromInt(2092)))

	assert.Equal(t, "ASNB", flows[1].Symbol)
	assert.True(t, flows[1].NetInvestedMyr.Equal(decimal.NewFromInt(1000)))
}
