package rebalance

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/usecase/valuation"
)

// DefaultThreshold is the MYR amount a diff must exceed before an action is suggested
var DefaultThreshold = decimal.NewFromInt(50)

var hundred = decimal.NewFromInt(100)

// group is a set of assets sharing one combined target weight
type group struct {
	members []domain.ComputedAsset
}

// PlanRebalance computes the buy and sell actions that move a portfolio toward its target allocations.
//
// Logic:
//  1. total = sum of CurrentValueMyr over every asset
//  2. Assets sharing a non-empty GroupName form one group; every other asset is its own group
//  3. groupDiff = total * sum(member targets) / 100 - sum(member values)
//  4. With a positive group target each member gets groupDiff * memberTarget / groupTarget,
//     so a 0% member inside a funded group always receives 0. With a zero group target
//     every member gets -CurrentValueMyr (sell everything)
//  5. diff > threshold is BUY, diff < -threshold is SELL, anything else is HOLD and dropped
//  6. Units are the MYR amount converted to the asset currency over CurrentPrice (price 0 counts as 1)
//  7. BUY before SELL, then larger AmountMyr first
//
// Target allocations are not required to sum to 100.
// A threshold of 0 acts on any drift; a negative threshold falls back to DefaultThreshold.
// Fails with domain.InvalidRateError when exchangeRate <= 0.
func PlanRebalance(assets []domain.ComputedAsset, exchangeRate, threshold decimal.Decimal) ([]domain.RebalanceAction, error) {
	if err := domain.CheckRate(exchangeRate); err != nil {
		return nil, err
	}
	if threshold.IsNegative() {
		threshold = DefaultThreshold
	}

	// Step 1: Total portfolio value
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.CurrentValueMyr)
	}

	// Step 2: Partition into groups, keeping first-appearance order
	groups := partition(assets)

	// Steps 3-6: Distribute each group's diff and classify
	actions := make([]domain.RebalanceAction, 0, len(assets))
	for _, g := range groups {
		for i, diff := range g.diffs(total) {
			action, ok := classify(g.members[i], diff, total, exchangeRate, threshold)
			if ok {
				actions = append(actions, action)
			}
		}
	}

	// Step 7: BUY before SELL, larger amounts first
	sort.SliceStable(actions, func(i, j int) bool {
		pi, pj := actions[i].Action.Priority(), actions[j].Action.Priority()
		if pi != pj {
			return pi > pj
		}
		return actions[i].AmountMyr.GreaterThan(actions[j].AmountMyr)
	})

	return actions, nil
}

// partition groups assets by GroupName; ungrouped assets become singleton groups
func partition(assets []domain.ComputedAsset) []*group {
	groups := make([]*group, 0, len(assets))
	byName := make(map[string]*group)
	for _, a := range assets {
		if a.GroupName == "" {
			groups = append(groups, &group{members: []domain.ComputedAsset{a}})
			continue
		}
		g, ok := byName[a.GroupName]
		if !ok {
			g = &group{}
			byName[a.GroupName] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, a)
	}
	return groups
}

// diffs returns each member's MYR diff, in member order
func (g *group) diffs(total decimal.Decimal) []decimal.Decimal {
	current := decimal.Zero
	target := decimal.Zero
	for _, m := range g.members {
		current = current.Add(m.CurrentValueMyr)
		target = target.Add(m.TargetAllocation)
	}

	result := make([]decimal.Decimal, len(g.members))
	if !target.IsPositive() {
		for i, m := range g.members {
			result[i] = m.CurrentValueMyr.Neg()
		}
		return result
	}

	groupDiff := total.Mul(target).Div(hundred).Sub(current)
	for i, m := range g.members {
		result[i] = groupDiff.Mul(m.TargetAllocation).Div(target)
	}
	return result
}

// classify turns a member's diff into an action; ok is false for HOLD
func classify(asset domain.ComputedAsset, diff, total, exchangeRate, threshold decimal.Decimal) (domain.RebalanceAction, bool) {
	var actionType domain.RebalanceActionType
	switch {
	case diff.GreaterThan(threshold):
		actionType = domain.ActionBuy
	case diff.LessThan(threshold.Neg()):
		actionType = domain.ActionSell
	default:
		return domain.RebalanceAction{}, false
	}

	amountMyr := diff.Abs()
	price := asset.CurrentPrice
	if !price.IsPositive() {
		price = decimal.NewFromInt(1)
	}

	action := domain.RebalanceAction{
		AssetID:       asset.ID,
		Symbol:        asset.Symbol,
		GroupName:     asset.GroupName,
		Action:        actionType,
		AmountMyr:     amountMyr,
		CurrentWeight: valuation.Percent(asset.CurrentValueMyr, total),
		TargetWeight:  asset.TargetAllocation,
	}

	if asset.Currency == domain.CurrencyUSD {
		usd := amountMyr.Div(exchangeRate)
		action.IsUsd = true
		action.UsdAmount = &usd
		action.AmountUnits = usd.Div(price)
	} else {
		action.AmountUnits = amountMyr.Div(price)
	}

	return action, true
}
