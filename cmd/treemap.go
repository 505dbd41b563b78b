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

type treemapCmd struct {
	month string
	json  bool
}

func (*treemapCmd) Name() string     { return "treemap" }
func (*treemapCmd) Synopsis() string { return "display assets and liabilities at the end of a month" }
func (*treemapCmd) Usage() string {
	return `ldash treemap [-month <date>] [-json]

  Displays the asset and liability hierarchies at the end of the month, or
  today for the current month.
`
}

func (c *treemapCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "A day of the month (defaults to today)")
	f.BoolVar(&c.json, "json", false, "print JSON instead of markdown")
}

func (c *treemapCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := parseDay("month", c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, status := openOrExit()
	if a == nil {
		return status
	}
	t := a.snapshot.Treemap(month, date.Today())
	if c.json {
		return printJSON(t)
	}
	printMarkdown(renderer.TreemapMarkdown(t, a.format))
	return subcommands.ExitSuccess
}
