package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/date"
	"github.com/etnz/ledgerdash/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	on      string
	account string
	from    string
	to      string
	period  string
	delta   bool
	json    bool
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display account balances on a day or over time" }
func (*balanceCmd) Usage() string {
	return `ldash balance [-d <date>] [-account <account>] [-json]
ldash balance -period <period> [-from <date>] [-to <date>] [-delta] [-account <a1,a2>] [-json]

  Displays the balance of every account at the end of the day, or only of
  -account and its child accounts.

  With -period (day, week, month, quarter or year), displays the balance of
  each account of -account at the end of every period from -from (defaults to
  the first transaction) to -to (defaults to today). Balances include child
  accounts. -delta displays the change over each period instead.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "", "Date of the balances (defaults to today)")
	f.StringVar(&c.account, "account", "", "only show this account and its children, comma separated with -period")
	f.StringVar(&c.from, "from", "", "First day of the history, used with -period")
	f.StringVar(&c.to, "to", "", "Last day of the history, used with -period")
	f.StringVar(&c.period, "period", "", "Show the history by day, week, month, quarter or year")
	f.BoolVar(&c.delta, "delta", false, "show the change over each period, used with -period")
	f.BoolVar(&c.json, "json", false, "print JSON instead of markdown")
}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.period != "" {
		return c.history()
	}
	if c.from != "" || c.to != "" || c.delta {
		fmt.Fprintln(os.Stderr, "Error: -from, -to and -delta require -period")
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

	b := a.snapshot.BalancesAsOf(on)
	accounts := a.snapshot.Accounts().All
	if c.account != "" {
		accounts = append([]string{c.account}, ledgerdash.ChildAccounts(c.account, accounts)...)
		all := b
		b = ledgerdash.Balances{c.account: a.snapshot.BookBalance(c.account, on)}
		for _, acc := range accounts[1:] {
			b[acc] = all[acc]
		}
	}
	if c.json {
		return printJSON(b)
	}
	printMarkdown(renderer.BalancesMarkdown(on, b, accounts, a.format))
	return subcommands.ExitSuccess
}

func (c *balanceCmd) history() subcommands.ExitStatus {
	if c.on != "" {
		fmt.Fprintln(os.Stderr, "Error: -d cannot be combined with -period")
		return subcommands.ExitUsageError
	}
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -period: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := parseDay("to", c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, status := openOrExit()
	if a == nil {
		return status
	}
	from := to
	if first, ok := a.snapshot.FirstDate(); ok {
		from = first
	}
	if c.from != "" {
		if from, err = parseDay("from", c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	accounts := splitAccounts(c.account)
	points, err := a.snapshot.BalanceHistory(accounts, date.NewRange(from, to), p, c.delta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.json {
		return printJSON(points)
	}
	if len(accounts) == 0 {
		accounts = a.snapshot.Accounts().All
	}
	title := fmt.Sprintf("Balances by %s", p.Name())
	if c.delta {
		title = fmt.Sprintf("Balance changes by %s", p.Name())
	}
	printMarkdown(renderer.BalanceHistoryMarkdown(title, accounts, points, c.delta, a.format))
	return subcommands.ExitSuccess
}

// splitAccounts reads a comma separated list of accounts.
func splitAccounts(v string) []string {
	var accounts []string
	for _, a := range strings.Split(v, ",") {
		if a = strings.TrimSpace(a); a != "" {
			accounts = append(accounts, a)
		}
	}
	return accounts
}
