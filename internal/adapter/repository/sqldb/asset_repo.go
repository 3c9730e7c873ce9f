package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/domain"
)

// assetRepository implements domain.AssetRepository
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

const assetColumns = `id, symbol, name, category, currency, quantity, average_cost, current_price,
	target_allocation, group_name, pension_base_amount, pension_monthly_contribution, pension_start_date`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var asset domain.Asset
	var base, monthly decimal.NullDecimal
	var start sql.NullString

	err := row.Scan(
		&asset.ID,
		&asset.Symbol,
		&asset.Name,
		&asset.Category,
		&asset.Currency,
		&asset.Quantity,
		&asset.AverageCost,
		&asset.CurrentPrice,
		&asset.TargetAllocation,
		&asset.GroupName,
		&base,
		&monthly,
		&start,
	)
	if err != nil {
		return nil, err
	}

	// Pension columns are either all set or all NULL
	if start.Valid {
		startDate, err := parseTime(start.String)
		if err != nil {
			return nil, err
		}
		asset.PensionConfig = &domain.PensionConfig{
			BaseAmount:          base.Decimal,
			MonthlyContribution: monthly.Decimal,
			StartDate:           startDate,
		}
	}

	return &asset, nil
}

// GetByID retrieves an asset by its ID
func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	query := r.db.rebind(`SELECT ` + assetColumns + ` FROM assets WHERE id = ?`)

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset by ID: %w", err)
	}
	return asset, nil
}

// List retrieves all assets ordered by symbol
func (r *assetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY symbol, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}

	return assets, nil
}

// Save creates the asset or replaces an existing one with the same ID
func (r *assetRepository) Save(ctx context.Context, asset *domain.Asset) error {
	query := r.db.rebind(`
		INSERT INTO assets (` + assetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			symbol = excluded.symbol,
			name = excluded.name,
			category = excluded.category,
			currency = excluded.currency,
			quantity = excluded.quantity,
			average_cost = excluded.average_cost,
			current_price = excluded.current_price,
			target_allocation = excluded.target_allocation,
			group_name = excluded.group_name,
			pension_base_amount = excluded.pension_base_amount,
			pension_monthly_contribution = excluded.pension_monthly_contribution,
			pension_start_date = excluded.pension_start_date
	`)

	var base, monthly, start any
	if cfg := asset.PensionConfig; cfg != nil {
		base = cfg.BaseAmount.String()
		monthly = cfg.MonthlyContribution.String()
		start = formatTime(cfg.StartDate)
	}

	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.Symbol,
		asset.Name,
		string(asset.Category),
		string(asset.Currency),
		asset.Quantity.String(),
		asset.AverageCost.String(),
		asset.CurrentPrice.String(),
		asset.TargetAllocation.String(),
		asset.GroupName,
		base,
		monthly,
		start,
	)
	if err != nil {
		return fmt.Errorf("failed to save asset: %w", err)
	}
	return nil
}

// Delete removes an asset, returning ErrNotFound if it did not exist
func (r *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "assets", id)
}

// deleteByID removes one row by primary key and reports ErrNotFound when nothing matched
func deleteByID(ctx context.Context, db *DB, table string, id uuid.UUID) error {
	result, err := db.ExecContext(ctx, db.rebind(`DELETE FROM `+table+` WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}
	return nil
}
