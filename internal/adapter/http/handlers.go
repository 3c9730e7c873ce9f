package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/usecase/currency"
	"github.com/simaogato/networth-backend/internal/usecase/dashboard"
	"github.com/simaogato/networth-backend/internal/usecase/loan"
)

// snapshotResponse adds display strings for the headline amounts
type snapshotResponse struct {
	*dashboard.Snapshot
	Display map[string]string `json:"display"`
}

type loansResponse struct {
	Loans     []domain.ComputedLoan `json:"loans"`
	TotalDebt decimal.Decimal       `json:"total_debt"`
	Display   string                `json:"display"`
}

type profitResponse struct {
	AssetID       uuid.UUID       `json:"asset_id"`
	ProfitLossMyr decimal.Decimal `json:"profit_loss_myr"`
	Display       string          `json:"display"`
}

type updatePricePayload struct {
	Price *decimal.Decimal `json:"price"`
	At    *time.Time       `json:"at,omitempty"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	at, ok := h.evaluationTime(w, r)
	if !ok {
		return
	}

	snapshot, err := h.svc.Dashboard.GetSnapshot(r.Context(), at)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshotResponse{
		Snapshot: snapshot,
		Display: map[string]string{
			"total_net_worth":      currency.FormatMYR(snapshot.Metrics.TotalNetWorth),
			"invested_net_worth":   currency.FormatMYR(snapshot.Metrics.InvestedNetWorth),
			"saved_net_worth":      currency.FormatMYR(snapshot.Metrics.SavedNetWorth),
			"pension_net_worth":    currency.FormatMYR(snapshot.Metrics.PensionNetWorth),
			"total_debt":           currency.FormatMYR(snapshot.TotalDebt),
			"net_worth_after_debt": currency.FormatMYR(snapshot.NetWorthAfterDebt),
		},
	})
}

func (h *handler) getRebalance(w http.ResponseWriter, r *http.Request) {
	at, ok := h.evaluationTime(w, r)
	if !ok {
		return
	}

	var threshold *decimal.Decimal
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid threshold")
			return
		}
		threshold = &d
	}

	actions, err := h.svc.Dashboard.GetRebalance(r.Context(), at, threshold)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if actions == nil {
		actions = []domain.RebalanceAction{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"actions": actions})
}

func (h *handler) getLoans(w http.ResponseWriter, r *http.Request) {
	at, ok := h.evaluationTime(w, r)
	if !ok {
		return
	}

	loans, err := h.svc.Dashboard.GetLoans(r.Context(), at)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	total := loan.TotalDebt(loans)
	writeJSON(w, http.StatusOK, loansResponse{
		Loans:     loans,
		TotalDebt: total,
		Display:   currency.FormatMYR(total),
	})
}

func (h *handler) getHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.Dashboard.GetHistory(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *handler) listAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.Holding.ListAssets(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if assets == nil {
		assets = []*domain.Asset{}
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *handler) addAsset(w http.ResponseWriter, r *http.Request) {
	var asset domain.Asset
	if err := decodeJSON(r, &asset); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.svc.Holding.AddAsset(r.Context(), &asset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) updateAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var asset domain.Asset
	if err := decodeJSON(r, &asset); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	asset.ID = id

	updated, err := h.svc.Holding.UpdateAsset(r.Context(), &asset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Holding.RemoveAsset(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *handler) getLatestPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Investment.LatestPrice(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *handler) getProfit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	at, ok := h.evaluationTime(w, r)
	if !ok {
		return
	}

	settings, err := h.svc.Dashboard.Settings(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	profit, err := h.svc.Investment.CalculateProfit(r.Context(), id, settings.ExchangeRate, at)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profitResponse{
		AssetID:       id,
		ProfitLossMyr: profit,
		Display:       currency.FormatMYR(profit),
	})
}

func (h *handler) updatePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var payload updatePricePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Price == nil {
		writeError(w, r, http.StatusBadRequest, "price is required")
		return
	}
	at := h.now()
	if payload.At != nil {
		at = *payload.At
	}

	entry, err := h.svc.Investment.UpdatePrice(r.Context(), id, *payload.Price, at)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *handler) addLoan(w http.ResponseWriter, r *http.Request) {
	var l domain.Loan
	if err := decodeJSON(r, &l); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.svc.Holding.AddLoan(r.Context(), &l)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) deleteLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Holding.RemoveLoan(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := decodeJSON(r, &settings); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.svc.Holding.SaveSettings(r.Context(), &settings)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *handler) addYearlyRecord(w http.ResponseWriter, r *http.Request) {
	var record domain.YearlyRecord
	if err := decodeJSON(r, &record); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.svc.Holding.AddYearlyRecord(r.Context(), &record)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *handler) addDividend(w http.ResponseWriter, r *http.Request) {
	var record domain.DividendRecord
	if err := decodeJSON(r, &record); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.svc.Holding.AddDividend(r.Context(), &record)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *handler) addTransaction(w http.ResponseWriter, r *http.Request) {
	var tx domain.InvestmentTransaction
	if err := decodeJSON(r, &tx); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.svc.Holding.AddTransaction(r.Context(), &tx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// evaluationTime reads the optional at= query parameter, defaulting to now
func (h *handler) evaluationTime(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("at")
	if raw == "" {
		return h.now(), true
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid at: expected RFC3339")
		return time.Time{}, false
	}
	return at, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
