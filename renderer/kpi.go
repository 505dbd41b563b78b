package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ledgerdash"
	md "github.com/nao1215/markdown"
)

// KPIMarkdown renders the key figures of a period.
func KPIMarkdown(k ledgerdash.KPI, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Key Figures for %s", k.Range))
	kpiTable(doc, k, f)
	return doc.String()
}

func kpiTable(doc *md.Markdown, k ledgerdash.KPI, f Formatter) {
	doc.Table(md.TableSet{
		Header: []string{md.Bold("Balance"), md.Bold(f.Signed(k.Balance))},
		Rows: [][]string{
			{"Income", f.Amount(k.Income)},
			{"Expense", f.Amount(k.Expense)},
			{"Savings Rate", Percent(k.SavingsRate)},
		},
	})
}

// TrendMarkdown renders the monthly trend, oldest month first.
func TrendMarkdown(points []ledgerdash.MonthPoint, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Trend")
	trendTable(doc, points, f)
	return doc.String()
}

func trendTable(doc *md.Markdown, points []ledgerdash.MonthPoint, f Formatter) {
	table := md.TableSet{Header: []string{"Month", "Income", "Expense", "Balance", "Savings Rate"}}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Month,
			f.Amount(p.Income),
			f.Amount(p.Expense),
			f.Signed(p.Balance),
			Percent(p.SavingsRate),
		})
	}
	doc.Table(table)
}
