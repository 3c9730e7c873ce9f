package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/simaogato/networth-backend/internal/usecase/aggregator"
	"github.com/simaogato/networth-backend/internal/usecase/currency"
	"github.com/simaogato/networth-backend/internal/usecase/valuation"
)

// valuateCmd prints every asset's value and the net worth totals
type valuateCmd struct {
	common
}

func (*valuateCmd) Name() string     { return "valuate" }
func (*valuateCmd) Synopsis() string { return "value every asset and print net worth totals" }
func (*valuateCmd) Usage() string {
	return `networth valuate [-file <portfolio.json>] [-at <RFC3339>] [-rate <MYR per USD>]

  Values every asset in MYR and prints the invested, saved and pension totals.
`
}

func (c *valuateCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *valuateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pf, settings, at, err := c.load()
	if err != nil {
		return c.fail("Error loading portfolio: %v", err)
	}

	computed, err := valuation.ValuateAll(pf.Assets, settings.ExchangeRate, at)
	if err != nil {
		return c.fail("Error valuing assets: %v", err)
	}
	computed = aggregator.AssignAllocationPercents(computed)
	metrics := aggregator.Aggregate(computed, settings.FireTarget, settings.FireTargetLiquid)

	tw := c.table()
	fmt.Fprintln(tw, "SYMBOL\tCATEGORY\tVALUE\tCOST\tP/L\tP/L %\tWEIGHT\t")
	for _, a := range computed {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			a.Symbol,
			a.Category,
			currency.FormatMYR(a.CurrentValueMyr),
			currency.FormatMYR(a.TotalCostMyr),
			currency.FormatMYR(a.ProfitLossMyr),
			percent(a.ProfitLossPercent),
			percent(a.CurrentAllocationPercent),
		)
	}
	tw.Flush()

	fmt.Fprintln(c.out)
	tw = c.table()
	fmt.Fprintf(tw, "Net worth\t%s\t\n", currency.FormatMYR(metrics.TotalNetWorth))
	fmt.Fprintf(tw, "Invested\t%s\t\n", currency.FormatMYR(metrics.InvestedNetWorth))
	fmt.Fprintf(tw, "Saved\t%s\t\n", currency.FormatMYR(metrics.SavedNetWorth))
	fmt.Fprintf(tw, "Pension\t%s\t\n", currency.FormatMYR(metrics.PensionNetWorth))
	fmt.Fprintf(tw, "Profit/loss\t%s (%s)\t\n", currency.FormatMYR(metrics.TotalProfitLoss), percent(metrics.TotalProfitLossPercent))
	fmt.Fprintf(tw, "Progress to FIRE\t%s\t\n", percent(metrics.ProgressToFire))
	tw.Flush()

	return subcommands.ExitSuccess
}
