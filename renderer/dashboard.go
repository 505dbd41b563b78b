package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ledgerdash"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders every section of a dashboard in a single document.
func DashboardMarkdown(title string, d *ledgerdash.Dashboard, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s: %s", title, d.Month))

	doc.H2("Key Figures")
	kpiTable(doc, d.KPI, f)

	doc.H2("Trend")
	trendTable(doc, d.Trend, f)

	doc.H2("Activity")
	if len(d.Activity) == 0 {
		doc.PlainText("No activity.")
	} else {
		dailyTable(doc, d.Activity, f)
	}

	doc.H2("Cash Flow")
	flowTable(doc, d.Flow, f)

	doc.H2(fmt.Sprintf("Net Worth on %s", d.Treemap.Cutoff))
	treemapTables(doc, d.Treemap, f)

	doc.H2("Transactions")
	transfersTable(doc, d.Transfers, f)

	if d.Rejected > 0 || d.Unreconciled > 0 {
		doc.H2("Warnings")
		var warnings []string
		if d.Rejected > 0 {
			warnings = append(warnings, fmt.Sprintf("%d transaction(s) rejected for an invalid date", d.Rejected))
		}
		if d.Unreconciled > 0 {
			warnings = append(warnings, fmt.Sprintf("%d transaction(s) not reconciled", d.Unreconciled))
		}
		doc.BulletList(warnings...)
	}
	return doc.String()
}
