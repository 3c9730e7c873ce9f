// Package mocks holds testify mocks of the domain repository interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/networth-backend/internal/domain"
)

// AssetRepository is a mock implementation of domain.AssetRepository
type AssetRepository struct {
	mock.Mock
}

func (m *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *AssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

func (m *AssetRepository) Save(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *AssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// LoanRepository is a mock implementation of domain.LoanRepository
type LoanRepository struct {
	mock.Mock
}

func (m *LoanRepository) List(ctx context.Context) ([]*domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Loan), args.Error(1)
}

func (m *LoanRepository) Save(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *LoanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// SettingsRepository is a mock implementation of domain.SettingsRepository
type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *SettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// PriceHistoryRepository is a mock implementation of domain.PriceHistoryRepository
type PriceHistoryRepository struct {
	mock.Mock
}

func (m *PriceHistoryRepository) Add(ctx context.Context, entry *domain.PriceHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *PriceHistoryRepository) GetLatest(ctx context.Context, assetID uuid.UUID) (*domain.PriceHistory, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceHistory), args.Error(1)
}

// RecordRepository is a mock implementation of domain.RecordRepository
type RecordRepository struct {
	mock.Mock
}

func (m *RecordRepository) ListYearly(ctx context.Context) ([]*domain.YearlyRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.YearlyRecord), args.Error(1)
}

func (m *RecordRepository) SaveYearly(ctx context.Context, record *domain.YearlyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *RecordRepository) ListDividends(ctx context.Context) ([]*domain.DividendRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DividendRecord), args.Error(1)
}

func (m *RecordRepository) AddDividend(ctx context.Context, record *domain.DividendRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *RecordRepository) ListTransactions(ctx context.Context) ([]*domain.InvestmentTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InvestmentTransaction), args.Error(1)
}

func (m *RecordRepository) AddTransaction(ctx context.Context, tx *domain.InvestmentTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
