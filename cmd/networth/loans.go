package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/simaogato/networth-backend/internal/usecase/currency"
	"github.com/simaogato/networth-backend/internal/usecase/loan"
)

// loansCmd prints each loan's payoff state
type loansCmd struct {
	common
}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "print loan payoff progress and outstanding debt" }
func (*loansCmd) Usage() string {
	return `networth loans [-file <portfolio.json>] [-at <RFC3339>]

  Prints months paid, remaining balance and progress for every loan.
`
}

func (c *loansCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *loansCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pf, _, at, err := c.load()
	if err != nil {
		return c.fail("Error loading portfolio: %v", err)
	}

	computed := loan.ComputeAll(pf.Loans, at)

	tw := c.table()
	fmt.Fprintln(tw, "LOAN\tTYPE\tPAID\tREMAINING\tBALANCE\tPROGRESS\t")
	for _, l := range computed {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t\n",
			l.Name,
			l.Type,
			l.MonthsPaid,
			l.MonthsRemaining,
			currency.FormatMYR(l.RemainingBalance),
			percent(l.ProgressPercent),
		)
	}
	tw.Flush()

	fmt.Fprintf(c.out, "\nTotal debt: %s\n", currency.FormatMYR(loan.TotalDebt(computed)))
	return subcommands.ExitSuccess
}
