package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/date"
	"github.com/etnz/ledgerdash/renderer"
	"github.com/google/subcommands"
)

type reconcileCmd struct {
	through string
	mark    bool
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "list or mark unreconciled transactions" }
func (*reconcileCmd) Usage() string {
	return `ldash reconcile [-d <date>] [-mark]

  Lists the transactions with unreconciled lines up to -d.

  With -mark, prints the whole ledger in JSONL with every transaction up to
  -d reconciled. The ledger file itself is never modified:

    ldash reconcile -d 2025-03-31 -mark > reconciled.jsonl
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.through, "d", "", "last day to reconcile (defaults to today)")
	f.BoolVar(&c.mark, "mark", false, "print the ledger with the transactions marked reconciled")
}

func (c *reconcileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	through, err := parseDay("d", c.through)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, status := openOrExit()
	if a == nil {
		return status
	}

	if !c.mark {
		var pending []ledgerdash.Transaction
		for _, tx := range a.snapshot.Unreconciled() {
			if day, err := date.Parse(tx.Date); err != nil || !day.After(through) {
				pending = append(pending, tx)
			}
		}
		printMarkdown(renderer.TransactionsMarkdown("Unreconciled through "+through.String(), pending, a.format))
		return subcommands.ExitSuccess
	}

	txs := a.snapshot.Transactions()
	for i, tx := range txs {
		if day, err := date.Parse(tx.Date); err == nil && !day.After(through) {
			txs[i] = tx.MarkReconciled()
		}
	}
	if err := ledgerdash.EncodeTransactions(os.Stdout, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
