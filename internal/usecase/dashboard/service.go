package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/usecase/aggregator"
	"github.com/simaogato/networth-backend/internal/usecase/history"
	"github.com/simaogato/networth-backend/internal/usecase/loan"
	"github.com/simaogato/networth-backend/internal/usecase/rebalance"
	"github.com/simaogato/networth-backend/internal/usecase/valuation"
)

// Snapshot is the full derived view of the portfolio at one point in time, amounts in MYR
type Snapshot struct {
	At           time.Time                    `json:"at"`
	ExchangeRate decimal.Decimal              `json:"exchange_rate"`
	Assets       []domain.ComputedAsset       `json:"assets"`
	Metrics      domain.PortfolioMetrics      `json:"metrics"`
	Categories   []domain.CategoryPerformance `json:"categories"`
	Rebalance    []domain.RebalanceAction     `json:"rebalance"`
	Loans        []domain.ComputedLoan        `json:"loans"`

	TotalDebt         decimal.Decimal `json:"total_debt"`
	NetWorthAfterDebt decimal.Decimal `json:"net_worth_after_debt"`
	SavingTarget      decimal.Decimal `json:"saving_target"`
	SavingProgress    decimal.Decimal `json:"saving_progress"`
}

// History groups the summaries derived from recorded history
type History struct {
	Years     []history.YearChange      `json:"years"`
	Dividends []history.YearlyDividends `json:"dividends"`
	Flows     []history.AssetFlow       `json:"flows"`
}

// DashboardService loads stored holdings and runs the valuation core over them
type DashboardService struct {
	AssetRepo    domain.AssetRepository
	LoanRepo     domain.LoanRepository
	SettingsRepo domain.SettingsRepository
	RecordRepo   domain.RecordRepository

	// Defaults fill in settings that were never saved or carry an unusable rate
	Defaults domain.Settings
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	assetRepo domain.AssetRepository,
	loanRepo domain.LoanRepository,
	settingsRepo domain.SettingsRepository,
	recordRepo domain.RecordRepository,
	defaults domain.Settings,
) *DashboardService {
	return &DashboardService{
		AssetRepo:    assetRepo,
		LoanRepo:     loanRepo,
		SettingsRepo: settingsRepo,
		RecordRepo:   recordRepo,
		Defaults:     defaults,
	}
}

// GetSnapshot values every stored asset and loan at the given time
// Logic:
//  1. Load assets, loans and settings concurrently
//  2. Valuate -> allocation percents -> aggregate -> category performance -> rebalance plan
//  3. Compute each loan and the debt totals
func (s *DashboardService) GetSnapshot(ctx context.Context, at time.Time) (*Snapshot, error) {
	var (
		assets   []*domain.Asset
		loans    []*domain.Loan
		settings domain.Settings
	)

	// 1. Load everything in parallel
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = s.AssetRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list assets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		loans, err = s.LoanRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list loans: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		settings, err = s.loadSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 2. Run the valuation core
	computed, err := valuation.ValuateAll(deref(assets), settings.ExchangeRate, at)
	if err != nil {
		return nil, err
	}
	computed = aggregator.AssignAllocationPercents(computed)
	metrics := aggregator.Aggregate(computed, settings.FireTarget, settings.FireTargetLiquid)

	actions, err := rebalance.PlanRebalance(computed, settings.ExchangeRate, settings.RebalanceThreshold)
	if err != nil {
		return nil, err
	}

	// 3. Loans and debt
	computedLoans := loan.ComputeAll(deref(loans), at)
	totalDebt := loan.TotalDebt(computedLoans)

	log.WithFields(log.Fields{
		"assets":    len(computed),
		"loans":     len(computedLoans),
		"net_worth": metrics.TotalNetWorth.StringFixed(2),
	}).Debug("computed portfolio snapshot")

	return &Snapshot{
		At:                at,
		ExchangeRate:      settings.ExchangeRate,
		Assets:            computed,
		Metrics:           metrics,
		Categories:        aggregator.CategoryPerformance(computed),
		Rebalance:         actions,
		Loans:             computedLoans,
		TotalDebt:         totalDebt,
		NetWorthAfterDebt: metrics.TotalNetWorth.Sub(totalDebt),
		SavingTarget:      settings.SavingTarget,
		SavingProgress:    aggregator.Progress(metrics.SavedNetWorth, settings.SavingTarget),
	}, nil
}

// GetRebalance runs only the valuation and rebalance steps.
// A nil threshold uses the stored settings threshold.
func (s *DashboardService) GetRebalance(ctx context.Context, at time.Time, threshold *decimal.Decimal) ([]domain.RebalanceAction, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := s.AssetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	computed, err := valuation.ValuateAll(deref(assets), settings.ExchangeRate, at)
	if err != nil {
		return nil, err
	}

	limit := settings.RebalanceThreshold
	if threshold != nil {
		limit = *threshold
	}
	return rebalance.PlanRebalance(computed, settings.ExchangeRate, limit)
}

// GetLoans computes every stored loan at the given time
func (s *DashboardService) GetLoans(ctx context.Context, at time.Time) ([]domain.ComputedLoan, error) {
	loans, err := s.LoanRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loan.ComputeAll(deref(loans), at), nil
}

// GetHistory summarizes yearly records, dividends and transactions
func (s *DashboardService) GetHistory(ctx context.Context) (*History, error) {
	var (
		settings     domain.Settings
		yearly       []*domain.YearlyRecord
		dividends    []*domain.DividendRecord
		transactions []*domain.InvestmentTransaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = s.loadSettings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if yearly, err = s.RecordRepo.ListYearly(gctx); err != nil {
			return fmt.Errorf("failed to list yearly records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if dividends, err = s.RecordRepo.ListDividends(gctx); err != nil {
			return fmt.Errorf("failed to list dividends: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if transactions, err = s.RecordRepo.ListTransactions(gctx); err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byYear, err := history.DividendsByYear(deref(dividends), settings.ExchangeRate)
	if err != nil {
		return nil, err
	}
	flows, err := history.NetInvested(deref(transactions), settings.ExchangeRate)
	if err != nil {
		return nil, err
	}

	return &History{
		Years:     history.YearOverYear(deref(yearly)),
		Dividends: byYear,
		Flows:     flows,
	}, nil
}

// Settings returns the settings every derived view is computed with
func (s *DashboardService) Settings(ctx context.Context) (domain.Settings, error) {
	return s.loadSettings(ctx)
}

// loadSettings returns the stored settings with defaults filled in.
// Missing settings use Defaults entirely; a stored rate <= 0 is replaced by the default rate.
func (s *DashboardService) loadSettings(ctx context.Context) (domain.Settings, error) {
	stored, err := s.SettingsRepo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		log.Debug("no settings saved yet, using defaults")
		return s.Defaults, nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := *stored
	if !settings.ExchangeRate.IsPositive() {
		log.WithFields(log.Fields{
			"stored":  settings.ExchangeRate.String(),
			"default": s.Defaults.ExchangeRate.String(),
		}).Warn("stored exchange rate is not positive, using default")
		settings.ExchangeRate = s.Defaults.ExchangeRate
	}
	if !settings.RebalanceThreshold.IsPositive() {
		settings.RebalanceThreshold = s.Defaults.RebalanceThreshold
	}
	return settings, nil
}

func deref[T any](items []*T) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, *item)
		}
	}
	return result
}
