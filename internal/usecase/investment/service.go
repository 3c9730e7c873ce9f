package investment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/usecase/valuation"
)

// InvestmentService handles price updates and per-asset profit
type InvestmentService struct {
	AssetRepo domain.AssetRepository
	PriceRepo domain.PriceHistoryRepository
}

// NewInvestmentService creates a new InvestmentService instance
func NewInvestmentService(assetRepo domain.AssetRepository, priceRepo domain.PriceHistoryRepository) *InvestmentService {
	return &InvestmentService{
		AssetRepo: assetRepo,
		PriceRepo: priceRepo,
	}
}

// UpdatePrice records a new price point for an asset and makes it the asset's current price
// Logic:
//   - Price must be >= 0 (cash-like instruments may be priced at 0)
//   - Asset must exist
//   - Insert a price_history row, then save the asset with the new CurrentPrice
//
// Returns the created price history entry
func (s *InvestmentService) UpdatePrice(ctx context.Context, assetID uuid.UUID, price decimal.Decimal, at time.Time) (*domain.PriceHistory, error) {
	if price.IsNegative() {
		return nil, domain.NewValidationError("price cannot be negative")
	}

	asset, err := s.AssetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	entry := &domain.PriceHistory{
		ID:      uuid.New(),
		AssetID: assetID,
		Date:    at,
		Price:   price,
	}
	if err := s.PriceRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	asset.CurrentPrice = price
	if err := s.AssetRepo.Save(ctx, asset); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"symbol": asset.Symbol,
		"price":  price.String(),
	}).Info("updated asset price")

	return entry, nil
}

// LatestPrice returns the most recently recorded price point for an asset
func (s *InvestmentService) LatestPrice(ctx context.Context, assetID uuid.UUID) (*domain.PriceHistory, error) {
	return s.PriceRepo.GetLatest(ctx, assetID)
}

// CalculateProfit calculates the profit/loss of an asset in MYR
// Logic: Valuate the stored asset at the given time and return ProfitLossMyr
// Pension accrual assets always return 0
func (s *InvestmentService) CalculateProfit(ctx context.Context, assetID uuid.UUID, rate decimal.Decimal, at time.Time) (decimal.Decimal, error) {
	asset, err := s.AssetRepo.GetByID(ctx, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	computed, err := valuation.Valuate(*asset, rate, at)
	if err != nil {
		return decimal.Zero, err
	}
	return computed.ProfitLossMyr, nil
}
