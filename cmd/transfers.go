package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdash/renderer"
	"github.com/google/subcommands"
)

type transfersCmd struct {
	period periodFlags
	json   bool
}

func (*transfersCmd) Name() string     { return "transfers" }
func (*transfersCmd) Synopsis() string { return "list the transactions of a period, newest first" }
func (*transfersCmd) Usage() string {
	return `ldash transfers [-month <date>] [-from <date> -to <date>] [-json]

  Lists the transactions of the period as transfers from the first account
  credited to the first account debited.
`
}

func (c *transfersCmd) SetFlags(f *flag.FlagSet) {
	c.period.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print JSON instead of markdown")
}

func (c *transfersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.period.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, status := openOrExit()
	if a == nil {
		return status
	}
	transfers := a.snapshot.Transfers(r)
	if c.json {
		return printJSON(transfers)
	}
	printMarkdown(renderer.TransfersMarkdown("Transactions "+r.String(), transfers, a.format))
	return subcommands.ExitSuccess
}
