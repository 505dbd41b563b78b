package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdash/renderer"
	"github.com/google/subcommands"
)

type flowCmd struct {
	period periodFlags
	json   bool
}

func (*flowCmd) Name() string     { return "flow" }
func (*flowCmd) Synopsis() string { return "display how income was spent across expense categories" }
func (*flowCmd) Usage() string {
	return `ldash flow [-month <date>] [-from <date> -to <date>] [-json]

  Displays the links of the cash flow diagram, see 'ldash topic flow'.
`
}

func (c *flowCmd) SetFlags(f *flag.FlagSet) {
	c.period.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print JSON instead of markdown")
}

func (c *flowCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.period.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, status := openOrExit()
	if a == nil {
		return status
	}
	g := a.snapshot.Flow(r)
	if c.json {
		return printJSON(g)
	}
	printMarkdown(renderer.FlowMarkdown("Cash Flow "+r.String(), g, a.format))
	return subcommands.ExitSuccess
}
