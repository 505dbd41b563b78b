package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdash/date"
	"github.com/etnz/ledgerdash/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	month  string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the dashboard of a month to a spreadsheet" }
func (*exportCmd) Usage() string {
	return `ldash export [-month <date>] -o <file.xlsx>

  Writes the dashboard of the month to a spreadsheet, one sheet per section,
  and the whole ledger in a Journal sheet.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "A day of the month (defaults to today)")
	f.StringVar(&c.output, "o", "", "output file")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
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

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d := a.snapshot.Dashboard(month, date.Today(), a.settings.TrendMonths)
	err = export.Write(out, a.snapshot, d)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a.log.Info().Str("file", c.output).Str("month", d.Month).Msg("dashboard exported")
	return subcommands.ExitSuccess
}
