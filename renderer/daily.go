package renderer

import (
	"bytes"

	"github.com/etnz/ledgerdash"
	md "github.com/nao1215/markdown"
)

// DailyMarkdown renders a daily series under title.
func DailyMarkdown(title string, points []ledgerdash.DailyPoint, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(points) == 0 {
		doc.PlainText("No activity.")
		return doc.String()
	}
	dailyTable(doc, points, f)
	return doc.String()
}

func dailyTable(doc *md.Markdown, points []ledgerdash.DailyPoint, f Formatter) {
	table := md.TableSet{Header: []string{"Day", "Income", "Expense", "Net"}}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Day.String(),
			f.Amount(p.Income),
			f.Amount(p.Expense),
			f.Signed(p.Net),
		})
	}
	doc.Table(table)
}
