package holding

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/simaogato/networth-backend/internal/domain"
)

// HoldingService handles validated writes of assets, loans, settings and records
type HoldingService struct {
	AssetRepo    domain.AssetRepository
	LoanRepo     domain.LoanRepository
	SettingsRepo domain.SettingsRepository
	RecordRepo   domain.RecordRepository

	// now is overridden in tests
	now func() time.Time
}

// NewHoldingService creates a new HoldingService instance
func NewHoldingService(
	assetRepo domain.AssetRepository,
	loanRepo domain.LoanRepository,
	settingsRepo domain.SettingsRepository,
	recordRepo domain.RecordRepository,
) *HoldingService {
	return &HoldingService{
		AssetRepo:    assetRepo,
		LoanRepo:     loanRepo,
		SettingsRepo: settingsRepo,
		RecordRepo:   recordRepo,
		now:          time.Now,
	}
}

// AddAsset validates and stores a new asset, assigning an ID when none is set
func (s *HoldingService) AddAsset(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	normalizeAsset(asset)
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	if err := s.AssetRepo.Save(ctx, asset); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"id": asset.ID, "symbol": asset.Symbol}).Info("added asset")
	return asset, nil
}

// UpdateAsset replaces an existing asset
// Returns an error wrapping domain.ErrNotFound when the asset does not exist
func (s *HoldingService) UpdateAsset(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	normalizeAsset(asset)
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.AssetRepo.GetByID(ctx, asset.ID); err != nil {
		return nil, err
	}
	if err := s.AssetRepo.Save(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// RemoveAsset deletes an asset
func (s *HoldingService) RemoveAsset(ctx context.Context, id uuid.UUID) error {
	if err := s.AssetRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.WithField("id", id).Info("removed asset")
	return nil
}

// ListAssets returns every stored asset
func (s *HoldingService) ListAssets(ctx context.Context) ([]*domain.Asset, error) {
	return s.AssetRepo.List(ctx)
}

// AddLoan validates and stores a loan, assigning an ID when none is set
func (s *HoldingService) AddLoan(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	if loan.ID == uuid.Nil {
		loan.ID = uuid.New()
	}
	if !loan.StartDate.IsZero() {
		loan.StartDate = domain.CalendarDate(loan.StartDate)
	}
	if err := loan.Validate(); err != nil {
		return nil, err
	}
	if err := s.LoanRepo.Save(ctx, loan); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"id": loan.ID, "name": loan.Name}).Info("added loan")
	return loan, nil
}

// RemoveLoan deletes a loan
func (s *HoldingService) RemoveLoan(ctx context.Context, id uuid.UUID) error {
	return s.LoanRepo.Delete(ctx, id)
}

// ListLoans returns every stored loan
func (s *HoldingService) ListLoans(ctx context.Context) ([]*domain.Loan, error) {
	return s.LoanRepo.List(ctx)
}

// SaveSettings validates and stores the settings, stamping UpdatedAt
func (s *HoldingService) SaveSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	settings.UpdatedAt = s.now()
	if err := s.SettingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// AddYearlyRecord validates and stores a year-end snapshot.
// A record for a year that already exists replaces it.
func (s *HoldingService) AddYearlyRecord(ctx context.Context, record *domain.YearlyRecord) (*domain.YearlyRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	if err := s.RecordRepo.SaveYearly(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// AddDividend validates and stores a dividend
func (s *HoldingService) AddDividend(ctx context.Context, record *domain.DividendRecord) (*domain.DividendRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	if err := s.RecordRepo.AddDividend(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// AddTransaction validates and stores an investment transaction
func (s *HoldingService) AddTransaction(ctx context.Context, tx *domain.InvestmentTransaction) (*domain.InvestmentTransaction, error) {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.RecordRepo.AddTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// normalizeAsset stores the pension start as a calendar date
func normalizeAsset(asset *domain.Asset) {
	if asset.PensionConfig != nil && !asset.PensionConfig.StartDate.IsZero() {
		asset.PensionConfig.StartDate = domain.CalendarDate(asset.PensionConfig.StartDate)
	}
}
