package seeder

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/domain/mocks"
)

var seededAt = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func defaults() domain.Settings {
	return domain.Settings{
		ExchangeRate:       decimal.RequireFromString("4.40"),
		FireTarget:         decimal.NewFromInt(1000000),
		FireTargetLiquid:   decimal.NewFromInt(800000),
		SavingTarget:       decimal.NewFromInt(50000),
		RebalanceThreshold: decimal.NewFromInt(50),
	}
}

func newSeeder(repo domain.SettingsRepository, d domain.Settings) *SettingsSeeder {
	s := NewSettingsSeeder(repo, d)
	s.now = func() time.Time { return seededAt }
	return s
}

func TestSettingsSeeder_Seed_SettingsMissing(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.SettingsRepository)
	seeder := newSeeder(mockRepo, defaults())

	// Mock Get to report that nothing was saved yet
	mockRepo.On("Get", ctx).Return(nil, fmt.Errorf("settings: %w", domain.ErrNotFound))

	// Mock Save to succeed with the defaults
	mockRepo.On("Save", ctx, mock.MatchedBy(func(s *domain.Settings) bool {
		return s.ExchangeRate.Equal(decimal.RequireFromString("4.40")) &&
			s.FireTarget.Equal(decimal.NewFromInt(1000000)) &&
			s.RebalanceThreshold.Equal(decimal.NewFromInt(50)) &&
			s.UpdatedAt.Equal(seededAt)
	})).Return(nil)

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestSettingsSeeder_Seed_SettingsExist(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.SettingsRepository)
	seeder := newSeeder(mockRepo, defaults())

	stored := defaults()
	stored.ExchangeRate = decimal.RequireFromString("4.10")
	mockRepo.On("Get", ctx).Return(&stored, nil)

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	// Existing settings are left alone
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSettingsSeeder_Seed_ReadError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.SettingsRepository)
	seeder := newSeeder(mockRepo, defaults())

	mockRepo.On("Get", ctx).Return(nil, errors.New("connection refused"))

	err := seeder.Seed(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings")
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSettingsSeeder_Seed_InvalidDefaults(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.SettingsRepository)

	bad := defaults()
	bad.ExchangeRate = decimal.Zero
	seeder := newSeeder(mockRepo, bad)

	mockRepo.On("Get", ctx).Return(nil, domain.ErrNotFound)

	err := seeder.Seed(ctx)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSettingsSeeder_Seed_SaveError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.SettingsRepository)
	seeder := newSeeder(mockRepo, defaults())

	mockRepo.On("Get", ctx).Return(nil, domain.ErrNotFound)
	mockRepo.On("Save", ctx, mock.Anything).Return(errors.New("disk full"))

	err := seeder.Seed(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed settings")
}
