package domain

import (
	"context"

	"github.com/google/uuid"
)

// AssetRepository defines the interface for asset persistence operations
type AssetRepository interface {
	// GetByID retrieves an asset by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// List retrieves all assets ordered by symbol
	List(ctx context.Context) ([]*Asset, error)

	// Save creates the asset or replaces an existing one with the same ID
	Save(ctx context.Context, asset *Asset) error

	// Delete removes an asset, returning ErrNotFound if it did not exist
	Delete(ctx context.Context, id uuid.UUID) error
}

// LoanRepository defines the interface for loan persistence operations
type LoanRepository interface {
	List(ctx context.Context) ([]*Loan, error)
	Save(ctx context.Context, loan *Loan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingsRepository defines the interface for the single settings record
type SettingsRepository interface {
	// Get returns the stored settings, or an error wrapping ErrNotFound if none were saved yet
	Get(ctx context.Context) (*Settings, error)

	// Save creates or replaces the settings
	Save(ctx context.Context, settings *Settings) error
}

// PriceHistoryRepository defines the interface for price history persistence operations
type PriceHistoryRepository interface {
	// Add creates a new price history entry
	Add(ctx context.Context, entry *PriceHistory) error

	// GetLatest retrieves the most recent price entry for a given asset
	GetLatest(ctx context.Context, assetID uuid.UUID) (*PriceHistory, error)
}

// RecordRepository defines the interface for historical records
type RecordRepository interface {
	ListYearly(ctx context.Context) ([]*YearlyRecord, error)
	SaveYearly(ctx context.Context, record *YearlyRecord) error
	ListDividends(ctx context.Context) ([]*DividendRecord, error)
	AddDividend(ctx context.Context, record *DividendRecord) error
	ListTransactions(ctx context.Context) ([]*InvestmentTransaction, error)
	AddTransaction(ctx context.Context, tx *InvestmentTransaction) error
}
