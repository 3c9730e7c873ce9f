package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/networth-backend/internal/domain"
)

// priceHistoryRepository implements domain.PriceHistoryRepository
type priceHistoryRepository struct {
	db *DB
}

// NewPriceHistoryRepository creates a new price history repository
func NewPriceHistoryRepository(db *DB) domain.PriceHistoryRepository {
	return &priceHistoryRepository{db: db}
}

// Add creates a new price history entry
func (r *priceHistoryRepository) Add(ctx context.Context, entry *domain.PriceHistory) error {
	query := r.db.rebind(`
		INSERT INTO price_history (id, asset_id, date, price)
		VALUES (?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.AssetID,
		formatTime(entry.Date),
		entry.Price.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert price history entry: %w", err)
	}

	return nil
}

// GetLatest retrieves the most recent price entry for a given asset
func (r *priceHistoryRepository) GetLatest(ctx context.Context, assetID uuid.UUID) (*domain.PriceHistory, error) {
	query := r.db.rebind(`
		SELECT id, asset_id, date, price
		FROM price_history
		WHERE asset_id = ?
		ORDER BY date DESC
		LIMIT 1
	`)

	var entry domain.PriceHistory
	var date string

	err := r.db.QueryRowContext(ctx, query, assetID).Scan(
		&entry.ID,
		&entry.AssetID,
		&date,
		&entry.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no price history found for asset %s: %w", assetID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest price: %w", err)
	}

	if entry.Date, err = parseTime(date); err != nil {
		return nil, err
	}
	return &entry, nil
}
