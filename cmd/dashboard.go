package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdash/date"
	"github.com/etnz/ledgerdash/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	month string
	json  bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display every figure of a month" }
func (*dashboardCmd) Usage() string {
	return `ldash dashboard [-month <date>] [-json]

  Displays the key figures, trend, activity, cash flow, net worth and
  transactions of a month. See 'ldash topic dashboard'.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "A day of the month (defaults to today)")
	f.BoolVar(&c.json, "json", false, "print JSON instead of markdown")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := parseDay("month", c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, status := openOrExit()
	if a == nil {
		return status
	}
	d := a.snapshot.Dashboard(month, date.Today(), a.settings.TrendMonths)
	if c.json {
		return printJSON(d)
	}
	printMarkdown(renderer.DashboardMarkdown(a.settings.DashboardTitle, d, a.format))
	return subcommands.ExitSuccess
}
