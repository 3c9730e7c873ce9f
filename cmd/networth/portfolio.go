package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/simaogato/networth-backend/internal/domain"
)

// defaultRate is used when the portfolio file carries no settings
var defaultRate = decimal.RequireFromString("4.40")

// portfolioFile is the JSON document every subcommand reads
type portfolioFile struct {
	Settings *domain.Settings `json:"settings,omitempty"`
	Assets   []domain.Asset   `json:"assets"`
	Loans    []domain.Loan    `json:"loans,omitempty"`
}

// commands returns every portfolio subcommand writing to out
func commands(out io.Writer) []subcommands.Command {
	return []subcommands.Command{
		&valuateCmd{common: common{out: out}},
		&rebalanceCmd{common: common{out: out}},
		&loansCmd{common: common{out: out}},
	}
}

// common holds the flags shared by every subcommand
type common struct {
	out  io.Writer
	file string
	at   string
	rate string
}

func (c *common) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "portfolio.json", "portfolio JSON file")
	f.StringVar(&c.at, "at", "", "evaluation time in RFC3339, defaults to now")
	f.StringVar(&c.rate, "rate", "", "MYR per USD, overrides the file settings")
}

// load reads the portfolio file and resolves the evaluation time and settings
func (c *common) load() (*portfolioFile, domain.Settings, time.Time, error) {
	at := time.Now()
	if c.at != "" {
		var err error
		if at, err = time.Parse(time.RFC3339, c.at); err != nil {
			return nil, domain.Settings{}, time.Time{}, fmt.Errorf("invalid -at: %w", err)
		}
	}

	data, err := os.ReadFile(c.file)
	if err != nil {
		return nil, domain.Settings{}, time.Time{}, err
	}
	var pf portfolioFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, domain.Settings{}, time.Time{}, fmt.Errorf("failed to parse %s: %w", c.file, err)
	}

	settings := domain.Settings{ExchangeRate: defaultRate}
	if pf.Settings != nil {
		settings = *pf.Settings
	}
	if c.rate != "" {
		if settings.ExchangeRate, err = decimal.NewFromString(c.rate); err != nil {
			return nil, domain.Settings{}, time.Time{}, fmt.Errorf("invalid -rate: %w", err)
		}
	}
	return &pf, settings, at, nil
}

func (c *common) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func (c *common) fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

func (c *common) usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
