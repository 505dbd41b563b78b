package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdash"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type adjustCmd struct {
	on      string
	account string
	actual  string
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "print the transaction matching a balance to a statement" }
func (*adjustCmd) Usage() string {
	return `ldash adjust -account <account> -actual <amount> [-d <date>]

  Prints, in JSONL, the balance adjustment transaction bringing the balance of
  -account and its children to -actual at the end of -d. Nothing is printed
  when the balance is already right. Append it to the ledger to book it:

    ldash adjust -account Assets:Bank -actual 1234.56 >> transactions.jsonl
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "", "day of the statement (defaults to today)")
	f.StringVar(&c.account, "account", "", "account to adjust")
	f.StringVar(&c.actual, "actual", "", "balance on the statement")
}

func (c *adjustCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -account is required")
		return subcommands.ExitUsageError
	}
	actual, err := decimal.NewFromString(c.actual)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -actual %q: %v\n", c.actual, err)
		return subcommands.ExitUsageError
	}
	on, err := parseDay("d", c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, status := openOrExit()
	if a == nil {
		return status
	}

	tx, ok := a.snapshot.Adjustment(c.account, actual, on)
	if !ok {
		a.log.Info().Str("account", c.account).Str("balance", actual.String()).Msg("balance already matches")
		return subcommands.ExitSuccess
	}
	if err := ledgerdash.EncodeTransaction(os.Stdout, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
