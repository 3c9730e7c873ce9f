package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/simaogato/networth-backend/internal/usecase/dashboard"
	"github.com/simaogato/networth-backend/internal/usecase/holding"
	"github.com/simaogato/networth-backend/internal/usecase/investment"
)

// Services bundles the use cases the REST API exposes
type Services struct {
	Dashboard  *dashboard.DashboardService
	Investment *investment.InvestmentService
	Holding    *holding.HoldingService
}

// NewRouter builds the HTTP API router.
// Every route except /api/health requires the bearer token when token is non-empty.
func NewRouter(svc Services, token string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	h := &handler{svc: svc, now: time.Now}

	r.Get("/api/health", h.health)

	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(token))

		// Derived views
		r.Get("/api/snapshot", h.getSnapshot)
		r.Get("/api/rebalance", h.getRebalance)
		r.Get("/api/loans", h.getLoans)
		r.Get("/api/history", h.getHistory)

		// Assets
		r.Get("/api/assets", h.listAssets)
		r.Post("/api/assets", h.addAsset)
		r.Put("/api/assets/{id}", h.updateAsset)
		r.Delete("/api/assets/{id}", h.deleteAsset)
		r.Get("/api/assets/{id}/price", h.getLatestPrice)
		r.Post("/api/assets/{id}/price", h.updatePrice)
		r.Get("/api/assets/{id}/profit", h.getProfit)

		// Loans
		r.Post("/api/loans", h.addLoan)
		r.Delete("/api/loans/{id}", h.deleteLoan)

		// Settings
		r.Put("/api/settings", h.saveSettings)

		// Records
		r.Post("/api/records/yearly", h.addYearlyRecord)
		r.Post("/api/records/dividends", h.addDividend)
		r.Post("/api/records/transactions", h.addTransaction)
	})

	return r
}

type handler struct {
	svc Services
	now func() time.Time
}
