package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/networth-backend/internal/adapter/grpc"
	httpadapter "github.com/simaogato/networth-backend/internal/adapter/http"
	"github.com/simaogato/networth-backend/internal/adapter/repository/sqldb"
	"github.com/simaogato/networth-backend/internal/config"
	"github.com/simaogato/networth-backend/internal/logging"
	"github.com/simaogato/networth-backend/internal/usecase/dashboard"
	"github.com/simaogato/networth-backend/internal/usecase/holding"
	"github.com/simaogato/networth-backend/internal/usecase/investment"
	"github.com/simaogato/networth-backend/internal/usecase/seeder"
)

const (
	connectAttempts = 5
	shutdownTimeout = 10 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	// 1. Configuration and logging
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, nil); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 2. Database
	db, err := openDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 3. Repositories
	assetRepo := sqldb.NewAssetRepository(db)
	loanRepo := sqldb.NewLoanRepository(db)
	settingsRepo := sqldb.NewSettingsRepository(db)
	priceRepo := sqldb.NewPriceHistoryRepository(db)
	recordRepo := sqldb.NewRecordRepository(db)

	// 4. Services
	defaults := cfg.DefaultSettings()
	dashboardService := dashboard.NewDashboardService(assetRepo, loanRepo, settingsRepo, recordRepo, defaults)
	investmentService := investment.NewInvestmentService(assetRepo, priceRepo)
	holdingService := holding.NewHoldingService(assetRepo, loanRepo, settingsRepo, recordRepo)

	if err := seeder.NewSettingsSeeder(settingsRepo, defaults).Seed(ctx); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}

	// 5. gRPC server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(),
			grpcadapter.AuthInterceptor(cfg.Server.APIToken),
		),
	)
	grpcadapter.Register(grpcServer, grpcadapter.NewServer(dashboardService, investmentService))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(grpcadapter.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Server.GRPCPort, err)
	}

	// 6. HTTP server
	httpServer := &http.Server{
		Addr: cfg.Server.HTTPPort,
		Handler: httpadapter.NewRouter(httpadapter.Services{
			Dashboard:  dashboardService,
			Investment: investmentService,
			Holding:    holdingService,
		}, cfg.Server.APIToken),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", cfg.Server.GRPCPort).Info("gRPC server listening")
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		log.WithField("addr", cfg.Server.HTTPPort).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// Graceful shutdown
		<-gctx.Done()
		log.Info("Shutting down gracefully...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("HTTP server shutdown")
		}
		grpcServer.GracefulStop()
		log.Info("Servers stopped")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// openDB connects to the configured database, retrying while it comes up
func openDB(ctx context.Context, cfg config.DatabaseConfig) (*sqldb.DB, error) {
	if cfg.Driver == sqldb.DriverSQLite && cfg.DSN != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o755); err != nil {
			return nil, err
		}
	}

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := sqldb.NewDB(cfg.Driver, cfg.DSN)
		if err == nil {
			log.WithFields(log.Fields{"driver": cfg.Driver, "attempt": attempt}).Info("Connected to database")
			return db, nil
		}
		lastErr = err
		log.WithError(err).WithField("attempt", attempt).Warn("Database not ready")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
	return nil, lastErr
}
