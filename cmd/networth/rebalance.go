package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/domain"
	"github.com/simaogato/networth-backend/internal/usecase/currency"
	"github.com/simaogato/networth-backend/internal/usecase/rebalance"
	"github.com/simaogato/networth-backend/internal/usecase/valuation"
)

// rebalanceCmd prints the buy and sell actions that bring assets back to target
type rebalanceCmd struct {
	common
	threshold string
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "print buy and sell actions to reach target allocations" }
func (*rebalanceCmd) Usage() string {
	return `networth rebalance [-file <portfolio.json>] [-at <RFC3339>] [-rate <MYR per USD>] [-threshold <MYR>]

  Prints the actions whose drift from target exceeds the threshold, buys first.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.threshold, "threshold", "", "minimum drift in MYR, defaults to the file settings or 50")
}

func (c *rebalanceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pf, settings, at, err := c.load()
	if err != nil {
		return c.fail("Error loading portfolio: %v", err)
	}

	threshold := settings.RebalanceThreshold
	if !threshold.IsPositive() {
		threshold = rebalance.DefaultThreshold
	}
	if c.threshold != "" {
		if threshold, err = decimal.NewFromString(c.threshold); err != nil {
			return c.usageError("invalid -threshold: %v", err)
		}
	}

	computed, err := valuation.ValuateAll(pf.Assets, settings.ExchangeRate, at)
	if err != nil {
		return c.fail("Error valuing assets: %v", err)
	}
	actions, err := rebalance.PlanRebalance(computed, settings.ExchangeRate, threshold)
	if err != nil {
		return c.fail("Error planning rebalance: %v", err)
	}

	if len(actions) == 0 {
		fmt.Fprintln(c.out, "Portfolio is within threshold, nothing to do.")
		return subcommands.ExitSuccess
	}

	tw := c.table()
	fmt.Fprintln(tw, "ACTION\tSYMBOL\tGROUP\tAMOUNT\tUNITS\tWEIGHT\tTARGET\t")
	for _, a := range actions {
		amount := currency.FormatMYR(a.AmountMyr)
		if a.IsUsd && a.UsdAmount != nil {
			amount = currency.Format(*a.UsdAmount, domain.CurrencyUSD) + " / " + amount
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			a.Action,
			a.Symbol,
			a.GroupName,
			amount,
			a.AmountUnits.StringFixed(4),
			percent(a.CurrentWeight),
			percent(a.TargetWeight),
		)
	}
	tw.Flush()

	return subcommands.ExitSuccess
}
