package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/simaogato/networth-backend/internal/domain"
)

// SettingsSeeder makes sure a settings record exists
type SettingsSeeder struct {
	repo     domain.SettingsRepository
	defaults domain.Settings
	now      func() time.Time
}

// NewSettingsSeeder creates a new SettingsSeeder that seeds the given defaults
func NewSettingsSeeder(repo domain.SettingsRepository, defaults domain.Settings) *SettingsSeeder {
	return &SettingsSeeder{
		repo:     repo,
		defaults: defaults,
		now:      time.Now,
	}
}

// Seed stores the default settings if none were saved yet
// Existing settings are never overwritten
func (s *SettingsSeeder) Seed(ctx context.Context) error {
	_, err := s.repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	settings := s.defaults
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid default settings: %w", err)
	}
	settings.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, &settings); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	log.WithField("exchange_rate", settings.ExchangeRate.String()).Info("seeded default settings")
	return nil
}
