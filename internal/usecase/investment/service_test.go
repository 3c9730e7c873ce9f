package investment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/domain/mocks"
)

var now = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func usdAsset(id uuid.UUID) *domain.Asset {
	return &domain.Asset{
		ID:           id,
		Symbol:       "VOO",
		Category:     domain.CategoryETF,
		Currency:     domain.CurrencyUSD,
		Quantity:     decimal.NewFromInt(10),
		AverageCost:  decimal.NewFromInt(100),
		CurrentPrice: decimal.NewFromInt(150),
	}
}

func TestCalculateProfit_ProfitScenario(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(mocks.AssetRepository)
	mockPriceRepo := new(mocks.PriceHistoryRepository)

	service := NewInvestmentService(mockAssetRepo, mockPriceRepo)

	// Setup: 10 units bought at 100 USD, now 150 USD, rate 4
	assetID := uuid.New()
	mockAssetRepo.On("GetByID", ctx, assetID).Return(usdAsset(assetID), nil)

	profit, err := service.CalculateProfit(ctx, assetID, decimal.NewFromInt(4), now)

	assert.NoError(t, err)
	assert.True(t, profit.Equal(decimal.NewFromInt(2000))) // (1500 - 1000) USD * 4

	mockAssetRepo.AssertExpectations(t)
	mockPriceRepo.AssertExpectations(t)
}

func TestCalculateProfit_LossScenario(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(mocks.AssetRepository)
	mockPriceRepo := new(mocks.PriceHistoryRepository)

	service := NewInvestmentService(mockAssetRepo, mockPriceRepo)

	assetID := uuid.New()
	asset := usdAsset(assetID)
	asset.CurrentPrice = decimal.NewFromInt(90)
	mockAssetRepo.On("GetByID", ctx, assetID).Return(asset, nil)

	profit, err := service.CalculateProfit(ctx, assetID, decimal.NewFromInt(4), now)

	assert.NoError(t, err)
	assert.True(t, profit.Equal(decimal.NewFromInt(-400))) // (900 - 1000) USD * 4
}

func TestCalculateProfit_InvalidRate(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(mocks.AssetRepository)
	service := NewInvestmentService(mockAssetRepo, new(mocks.PriceHistoryRepository))

	assetID := uuid.New()
	mockAssetRepo.On("GetByID", ctx, assetID).Return(usdAsset(assetID), nil)

	_, err := service.CalculateProfit(ctx, assetID, decimal.Zero, now)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRate))
}

func TestCalculateProfit_AssetNotFound(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(mocks.AssetRepository)
	service := NewInvestmentService(mockAssetRepo, new(mocks.PriceHistoryRepository))

	assetID := uuid.New()
	mockAssetRepo.On("GetByID", ctx, assetID).Return(nil, fmt.Errorf("asset %s: %w", assetID, domain.ErrNotFound))

	profit, err := service.CalculateProfit(ctx, assetID, decimal.NewFromInt(4), now)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, profit.IsZero())
}

func TestUpdatePrice_Success(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(mocks.AssetRepository)
	mockPriceRepo := new(mocks.PriceHistoryRepository)

	service := NewInvestmentService(mockAssetRepo, mockPriceRepo)

	assetID := uuid.New()
	price := decimal.NewFromInt(175)

	mockAssetRepo.On("GetByID", ctx, assetID).Return(usdAsset(assetID), nil)
	mockPriceRepo.On("Add", ctx, mock.MatchedBy(func(entry *domain.PriceHistory) bool {
		return entry.AssetID == assetID && entry.Price.Equal(price) && entry.Date.Equal(now) && entry.ID != uuid.Nil
	})).Return(nil)
	mockAssetRepo.On("Save", ctx, mock.MatchedBy(func(asset *domain.Asset) bool {
		return asset.ID == assetID && asset.CurrentPrice.Equal(price)
	})).Return(nil)

	entry, err := service.UpdatePrice(ctx, assetID, price, now)

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, assetID, entry.AssetID)
	assert.True(t, entry.Price.Equal(price))

	mockAssetRepo.AssertExpectations(t)
	mockPriceRepo.AssertExpectations(t)
}

func TestUpdatePrice_ZeroPriceAllowed(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(mocks.AssetRepository)
	mockPriceRepo := new(mocks.PriceHistoryRepository)

	service := NewInvestmentService(mockAssetRepo, mockPriceRepo)

	assetID := uuid.New()
	mockAssetRepo.On("GetByID", ctx, assetID).Return(usdAsset(assetID), nil)
	mockPriceRepo.On("Add", ctx, mock.AnythingOfType("*domain.PriceHistory")).Return(nil)
	mockAssetRepo.On("Save", ctx, mock.AnythingOfType("*domain.Asset")).Return(nil)

	entry, err := service.UpdatePrice(ctx, assetID, decimal.Zero, now)

	require.NoError(t, err)
	assert.True(t, entry.Price.IsZero())
}

func TestUpdatePrice_NegativePrice(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(mocks.AssetRepository)
	mockPriceRepo := new(mocks.PriceHistoryRepository)

	service := NewInvestmentService(mockAssetRepo, mockPriceRepo)

	entry, err := service.UpdatePrice(ctx, uuid.New(), decimal.NewFromInt(-1), now)

	assert.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	// No repository calls for invalid input
	mockAssetRepo.AssertNotCalled(t, "GetByID")
	mockPriceRepo.AssertNotCalled(t, "Add")
}

func TestUpdatePrice_AssetNotFound(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(mocks.AssetRepository)
	mockPriceRepo := new(mocks.PriceHistoryRepository)

	service := NewInvestmentService(mockAssetRepo, mockPriceRepo)

	assetID := uuid.New()
	mockAssetRepo.On("GetByID", ctx, assetID).Return(nil, domain.ErrNotFound)

	entry, err := service.UpdatePrice(ctx, assetID, decimal.NewFromInt(10), now)

	assert.Error(t, err)
	assert.Nil(t, entry)
	mockPriceRepo.AssertNotCalled(t, "Add")
}

func TestUpdatePrice_HistoryWriteFails(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(mocks.AssetRepository)
	mockPriceRepo := new(mocks.PriceHistoryRepository)

	service := NewInvestmentService(mockAssetRepo, mockPriceRepo)

	assetID := uuid.New()
	mockAssetRepo.On("GetByID", ctx, assetID).Return(usdAsset(assetID), nil)
	mockPriceRepo.On("Add", ctx, mock.Anything).Return(errors.New("write failed"))

	_, err := service.UpdatePrice(ctx, assetID, decimal.NewFromInt(10), now)

	assert.EqualError(t, err, "write failed")
	mockAssetRepo.AssertNotCalled(t, "Save")
}

func TestLatestPrice(t *testing.T) {
	ctx := context.Background()
	mockPriceRepo := new(mocks.PriceHistoryRepository)
	service := NewInvestmentService(new(mocks.AssetRepository), mockPriceRepo)

	assetID := uuid.New()
	latest := &domain.PriceHistory{ID: uuid.New(), AssetID: assetID, Date: now, Price: decimal.NewFromInt(42)}
	mockPriceRepo.On("GetLatest", ctx, assetID).Return(latest, nil)

	got, err := service.LatestPrice(ctx, assetID)

	require.NoError(t, err)
	assert.Equal(t, latest, got)
}
