package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestYearlyRecord_Validate(t *testing.T) {
	assert.NoError(t, (&YearlyRecord{Year: 2024}).Validate())
	assert.ErrorIs(t, (&YearlyRecord{Year: 24}).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, (&YearlyRecord{Year: 10000}).Validate(), ErrInvalidInput)
}

func TestDividendRecord_Validate(t *testing.T) {
	valid := func() DividendRecord {
		return DividendRecord{
			Symbol:   "VOO",
			Date:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Amount:   decimal.NewFromInt(12),
			Currency: CurrencyUSD,
		}
	}

	tests := []struct {
		name    string
		mutate  func(d *DividendRecord)
		wantErr bool
	}{
		{name: "valid", mutate: func(d *DividendRecord) {}},
		{name: "empty symbol", mutate: func(d *DividendRecord) { d.Symbol = "" }, wantErr: true},
		{name: "zero amount", mutate: func(d *DividendRecord) { d.Amount = decimal.Zero }, wantErr: true},
		{name: "unknown currency", mutate: func(d *DividendRecord) { d.Currency = "JPY" }, wantErr: true},
		{name: "missing date", mutate: func(d *DividendRecord) { d.Date = time.Time{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(&d)
			if tt.wantErr {
				assert.ErrorIs(t, d.Validate(), ErrInvalidInput)
			} else {
				assert.NoError(t, d.Validate())
			}
		})
	}
}

func TestSettings_Validate(t *testing.T) {
	valid := func() Settings {
		return Settings{
			ExchangeRate:       decimal.RequireFromString("4.4"),
			FireTarget:         decimal.NewFromInt(1000000),
			RebalanceThreshold: decimal.NewFromInt(50),
		}
	}

	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
	}{
		{name: "valid", mutate: func(s *Settings) {}},
		{name: "zero threshold is allowed", mutate: func(s *Settings) { s.RebalanceThreshold = decimal.Zero }},
		{name: "zero rate", mutate: func(s *Settings) { s.ExchangeRate = decimal.Zero }, wantErr: true},
		{name: "negative target", mutate: func(s *Settings) { s.SavingTarget = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "negative threshold", mutate: func(s *Settings) { s.RebalanceThreshold = decimal.NewFromInt(-1) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			if tt.wantErr {
				assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
			} else {
				assert.NoError(t, s.Validate())
			}
		})
	}
}
