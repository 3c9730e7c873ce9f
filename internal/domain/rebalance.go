package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RebalanceActionType represents what to do with an asset to reach its target weight
type RebalanceActionType string

const (
	ActionBuy  RebalanceActionType = "BUY"
	ActionSell RebalanceActionType = "SELL"
	ActionHold RebalanceActionType = "HOLD"
)

// Priority orders actions in a plan: BUY before SELL before HOLD
func (t RebalanceActionType) Priority() int {
	switch t {
	case ActionBuy:
		return 2
	case ActionSell:
		return 1
	default:
		return 0
	}
}

// RebalanceAction is one buy or sell recommendation
type RebalanceAction struct {
	AssetID       uuid.UUID           `json:"asset_id"`
	Symbol        string              `json:"symbol"`
	GroupName     string              `json:"group_name,omitempty"`
	Action        RebalanceActionType `json:"action"`
	AmountMyr     decimal.Decimal     `json:"amount_myr"` // always non-negative
	AmountUnits   decimal.Decimal     `json:"amount_units"`
	CurrentWeight decimal.Decimal     `json:"current_weight"`
	TargetWeight  decimal.Decimal     `json:"target_weight"`
	IsUsd         bool                `json:"is_usd"`
	UsdAmount     *decimal.Decimal    `json:"usd_amount,omitempty"` // set only for USD assets
}
