package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/export"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "convert a spreadsheet of transactions to JSONL" }
func (*importCmd) Usage() string {
	return `ldash import <file.xlsx>

  Reads the transactions of a spreadsheet laid out like the Journal sheet of
  'ldash export': Date, Payee, Account, Amount, Reconciled, Comment. A row
  without a date adds a line to the transaction above. Prints them in JSONL:

    ldash import bank.xlsx >> transactions.jsonl
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one spreadsheet")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	txs, err := export.ReadTransactions(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: transaction #%d %q: %v\n", i, tx.Payee, err)
			return subcommands.ExitFailure
		}
	}
	if err := ledgerdash.EncodeTransactions(os.Stdout, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
