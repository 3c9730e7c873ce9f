package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/simaogato/networth-backend/internal/domain"
)

// settingsID is the primary key of the single settings row
const settingsID = 1

// settingsRepository implements domain.SettingsRepository
type settingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *DB) domain.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the stored settings, or an error wrapping ErrNotFound if none were saved yet
func (r *settingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	query := r.db.rebind(`
		SELECT exchange_rate, fire_target, fire_target_liquid, saving_target, rebalance_threshold, updated_at
		FROM settings
		WHERE id = ?
	`)

	var settings domain.Settings
	var updatedAt string
	err := r.db.QueryRowContext(ctx, query, settingsID).Scan(
		&settings.ExchangeRate,
		&settings.FireTarget,
		&settings.FireTargetLiquid,
		&settings.SavingTarget,
		&settings.RebalanceThreshold,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save creates or replaces the settings
func (r *settingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	query := r.db.rebind(`
		INSERT INTO settings (id, exchange_rate, fire_target, fire_target_liquid, saving_target, rebalance_threshold, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			exchange_rate = excluded.exchange_rate,
			fire_target = excluded.fire_target,
			fire_target_liquid = excluded.fire_target_liquid,
			saving_target = excluded.saving_target,
			rebalance_threshold = excluded.rebalance_threshold,
			updated_at = excluded.updated_at
	`)

	_, err := r.db.ExecContext(ctx, query,
		settingsID,
		settings.ExchangeRate.String(),
		settings.FireTarget.String(),
		settings.FireTargetLiquid.String(),
		settings.SavingTarget.String(),
		settings.RebalanceThreshold.String(),
		formatTime(settings.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
