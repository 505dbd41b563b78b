package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdash/renderer"
	"github.com/google/subcommands"
)

type kpiCmd struct {
	period periodFlags
	json   bool
}

func (*kpiCmd) Name() string     { return "kpi" }
func (*kpiCmd) Synopsis() string { return "display income, expense, balance and savings rate" }
func (*kpiCmd) Usage() string {
	return `ldash kpi [-month <date>] [-from <date> -to <date>] [-json]

  Displays the key figures of a month, or of a custom period.
`
}

func (c *kpiCmd) SetFlags(f *flag.FlagSet) {
	c.period.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print JSON instead of markdown")
}

func (c *kpiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.period.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, status := openOrExit()
	if a == nil {
		return status
	}
	k := a.snapshot.KPI(r)
	if c.json {
		return printJSON(k)
	}
	printMarkdown(renderer.KPIMarkdown(k, a.format))
	return subcommands.ExitSuccess
}
