package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/date"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "check and reformat the ledger" }
func (*fmtCmd) Usage() string {
	return `ldash fmt [-w]

  Checks every transaction of the ledger and prints it back in chronological
  order. Transactions with an unreadable date go last. With -w the ledger
  file is rewritten instead, only if every transaction is valid.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "write the result to the ledger file instead of stdout")
}

func (c *fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := openOrExit()
	if a == nil {
		return status
	}

	txs := a.snapshot.Transactions()
	invalid := 0
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			invalid++
			a.log.Error().Err(err).Int("index", i).Str("date", tx.Date).Str("payee", tx.Payee).Msg("invalid transaction")
		}
	}
	sortByDate(txs)

	var buf bytes.Buffer
	if err := ledgerdash.EncodeTransactions(&buf, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.write {
		os.Stdout.Write(buf.Bytes())
		if invalid > 0 || len(a.snapshot.Rejected()) > 0 {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if invalid > 0 || len(a.snapshot.Rejected()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d invalid transaction(s), %s not rewritten\n", invalid+len(a.snapshot.Rejected()), a.settings.LedgerFile)
		return subcommands.ExitFailure
	}
	if info, err := os.Stat(a.settings.LedgerFile); err == nil && info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: cannot rewrite the ledger directory %s\n", a.settings.LedgerFile)
		return subcommands.ExitUsageError
	}
	if err := os.WriteFile(a.settings.LedgerFile, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a.log.Info().Str("ledger", a.settings.LedgerFile).Int("transactions", len(txs)).Msg("ledger rewritten")
	return subcommands.ExitSuccess
}

// sortByDate sorts txs chronologically, keeping the order of a day, and moves
// the ones with an unreadable date last.
func sortByDate(txs []ledgerdash.Transaction) {
	key := func(tx ledgerdash.Transaction) (date.Date, bool) {
		d, err := date.Parse(tx.Date)
		return d, err == nil
	}
	slices.SortStableFunc(txs, func(a, b ledgerdash.Transaction) int {
		da, oka := key(a)
		db, okb := key(b)
		switch {
		case oka && okb:
			return da.Compare(db)
		case oka:
			return -1
		case okb:
			return 1
		}
		return 0
	})
}
