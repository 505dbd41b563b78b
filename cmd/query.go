package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/ledgerdash/date"
	"github.com/google/subcommands"
)

type queryCmd struct {
	month string
}

func (*queryCmd) Name() string { return "query" }
func (*queryCmd) Synopsis() string {
	return "extract values from the dashboard with a JSONPath expression"
}
func (*queryCmd) Usage() string {
	return `ldash query [-month <date>] <jsonpath>

  Evaluates a JSONPath expression on the JSON dashboard of the month, as
  printed by 'ldash dashboard -json', and prints the result as JSON:

    ldash query '$.kpi.savingsRate'
    ldash query '$.flow.links[?(@.target=="Food")].value'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "A day of the month (defaults to today)")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	month, err := parseDay("month", c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, status := openOrExit()
	if a == nil {
		return status
	}

	result, err := query(a.snapshot.Dashboard(month, date.Today(), a.settings.TrendMonths), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return printJSON(result)
}

// query evaluates path on the JSON form of v.
func query(v any, path string) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", path, err)
	}
	return result, nil
}
