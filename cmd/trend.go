package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/renderer"
	"github.com/google/subcommands"
)

type trendCmd struct {
	month  string
	months int
	json   bool
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the key figures of the last months" }
func (*trendCmd) Usage() string {
	return `ldash trend [-month <date>] [-n <months>] [-json]

  Displays the key figures of consecutive months ending with the month of
  -month, oldest first. -n defaults to the trend_months setting.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "A day of the last month (defaults to today)")
	f.IntVar(&c.months, "n", 0, "number of months")
	f.BoolVar(&c.json, "json", false, "print JSON instead of markdown")
}

func (c *trendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := parseDay("month", c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.months > ledgerdash.MaxTrendMonths {
		fmt.Fprintf(os.Stderr, "Error: -n must be at most %d, got %d\n", ledgerdash.MaxTrendMonths, c.months)
		return subcommands.ExitUsageError
	}
	a, status := openOrExit()
	if a == nil {
		return status
	}
	months := c.months
	if months <= 0 {
		months = a.settings.TrendMonths
	}
	points := a.snapshot.Trend(months, month)
	if c.json {
		return printJSON(points)
	}
	printMarkdown(renderer.TrendMarkdown(points, a.format))
	return subcommands.ExitSuccess
}
