package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAssetCategory_Class(t *testing.T) {
	tests := []struct {
		category AssetCategory
		want     AssetClass
	}{
		{CategoryETF, ClassInvested},
		{CategoryStock, ClassInvested},
		{CategoryCrypto, ClassInvested},
		{CategoryCashInvestment, ClassInvested},
		{CategoryCashSaving, ClassSaved},
		{CategoryMoneyMarketFund, ClassSaved},
		{CategoryPension, ClassPension},
		{"BOND", ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Class())
			assert.Equal(t, tt.want != ClassUnknown, tt.category.Valid())
		})
	}
}

func TestAssetCategories_AllValid(t *testing.T) {
	for _, c := range AssetCategories {
		assert.True(t, c.Valid(), c)
	}
}

func validAsset() Asset {
	return Asset{
		Symbol:           "VOO",
		Category:         CategoryETF,
		Currency:         CurrencyUSD,
		Quantity:         decimal.NewFromInt(10),
		AverageCost:      decimal.NewFromInt(100),
		CurrentPrice:     decimal.NewFromInt(120),
		TargetAllocation: decimal.NewFromInt(40),
	}
}

func pensionConfig() *PensionConfig {
	return &PensionConfig{
		BaseAmount:          decimal.NewFromInt(50000),
		MonthlyContribution: decimal.NewFromInt(1000),
		StartDate:           time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAsset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *Asset)
		wantErr bool
		errMsg  string
	}{
		{name: "valid asset", mutate: func(a *Asset) {}},
		{name: "empty symbol", mutate: func(a *Asset) { a.Symbol = "" }, wantErr: true, errMsg: "symbol"},
		{name: "unknown category", mutate: func(a *Asset) { a.Category = "BOND" }, wantErr: true, errMsg: "category"},
		{name: "unknown currency", mutate: func(a *Asset) { a.Currency = "SGD" }, wantErr: true, errMsg: "currency"},
		{name: "negative quantity", mutate: func(a *Asset) { a.Quantity = decimal.NewFromInt(-1) }, wantErr: true, errMsg: "quantity"},
		{name: "negative price", mutate: func(a *Asset) { a.CurrentPrice = decimal.NewFromInt(-1) }, wantErr: true, errMsg: "prices"},
		{name: "target above 100", mutate: func(a *Asset) { a.TargetAllocation = decimal.NewFromInt(101) }, wantErr: true, errMsg: "target"},
		{name: "target of exactly 100", mutate: func(a *Asset) { a.TargetAllocation = decimal.NewFromInt(100) }},
		{
			name:    "pension config on non-pension asset",
			mutate:  func(a *Asset) { a.PensionConfig = pensionConfig() },
			wantErr: true,
			errMsg:  "only valid for pension",
		},
		{
			name: "pension asset with config",
			mutate: func(a *Asset) {
				a.Category = CategoryPension
				a.Currency = CurrencyMYR
				a.PensionConfig = pensionConfig()
			},
		},
		{
			name: "pension config without start date",
			mutate: func(a *Asset) {
				a.Category = CategoryPension
				a.PensionConfig = pensionConfig()
				a.PensionConfig.StartDate = time.Time{}
			},
			wantErr: true,
			errMsg:  "start date",
		},
		{
			name: "negative contribution",
			mutate: func(a *Asset) {
				a.Category = CategoryPension
				a.PensionConfig = pensionConfig()
				a.PensionConfig.MonthlyContribution = decimal.NewFromInt(-5)
			},
			wantErr: true,
			errMsg:  "pension amounts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAsset()
			tt.mutate(&a)

			err := a.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAsset_UsesAccrual(t *testing.T) {
	a := validAsset()
	assert.False(t, a.UsesAccrual())

	a.Category = CategoryPension
	assert.False(t, a.UsesAccrual(), "pension without config is valued by price")

	a.PensionConfig = pensionConfig()
	assert.True(t, a.UsesAccrual())
}
