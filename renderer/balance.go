package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/date"
	md "github.com/nao1215/markdown"
)

// BalancesMarkdown renders the balances of accounts at the end of day on.
// Accounts with a zero balance are left out.
func BalancesMarkdown(on date.Date, b ledgerdash.Balances, accounts []string, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balances on %s", on))
	table := md.TableSet{Header: []string{"Account", "Balance"}}
	for _, acc := range accounts {
		v := b[acc]
		if v.IsZero() {
			continue
		}
		table.Rows = append(table.Rows, []string{acc, f.Amount(v)})
	}
	if len(table.Rows) == 0 {
		doc.PlainText("No balances.")
		return doc.String()
	}
	doc.Table(table)
	return doc.String()
}

// BalanceHistoryMarkdown renders one row per period and one column per
// account. With delta, amounts are signed changes.
func BalanceHistoryMarkdown(title string, accounts []string, points []ledgerdash.BalancePoint, delta bool, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(points) == 0 || len(accounts) == 0 {
		doc.PlainText("No balances.")
		return doc.String()
	}
	table := md.TableSet{Header: append([]string{"Period"}, accounts...)}
	for _, p := range points {
		row := []string{p.Period}
		for _, acc := range accounts {
			if delta {
				row = append(row, f.Signed(p.Balances[acc]))
			} else {
				row = append(row, f.Amount(p.Balances[acc]))
			}
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}

// TransfersMarkdown renders transfers in the order given.
func TransfersMarkdown(title string, transfers []ledgerdash.Transfer, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	transfersTable(doc, transfers, f)
	return doc.String()
}

func transfersTable(doc *md.Markdown, transfers []ledgerdash.Transfer, f Formatter) {
	if len(transfers) == 0 {
		doc.PlainText("No transactions.")
		return
	}
	table := md.TableSet{Header: []string{"Day", "Payee", "From", "To", "Amount", ""}}
	for _, t := range transfers {
		mark := ""
		if t.Reconciled {
			mark = "✓"
		}
		table.Rows = append(table.Rows, []string{t.Day.String(), t.Payee, t.Source, t.Target, f.Amount(t.Amount), mark})
	}
	doc.Table(table)
}

// TransactionsMarkdown renders full transactions, one list item per line.
func TransactionsMarkdown(title string, txs []ledgerdash.Transaction, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}
	for _, tx := range txs {
		head := fmt.Sprintf("%s %s", tx.Date, md.Bold(tx.Payee))
		if tx.Comment != "" {
			head += " (" + tx.Comment + ")"
		}
		doc.PlainText(head)
		lines := make([]string, 0, len(tx.Lines))
		for _, l := range tx.Lines {
			s := fmt.Sprintf("%s %s", l.Account, f.Signed(l.Amount))
			if !l.Reconciled {
				s += " (unreconciled)"
			}
			lines = append(lines, s)
		}
		doc.BulletList(lines...)
	}
	return doc.String()
}

// ErrorsMarkdown renders the transactions rejected for their date.
func ErrorsMarkdown(rejected []*ledgerdash.DateError) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Rejected Transactions")
	if len(rejected) == 0 {
		doc.PlainText("None.")
		return doc.String()
	}
	table := md.TableSet{Header: []string{"#", "Payee", "Date", "Error"}}
	for _, e := range rejected {
		msg := strings.ReplaceAll(e.Err.Error(), "|", "/")
		table.Rows = append(table.Rows, []string{fmt.Sprint(e.Index), e.Payee, e.Date, msg})
	}
	doc.Table(table)
	return doc.String()
}
