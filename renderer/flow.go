package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ledgerdash"
	md "github.com/nao1215/markdown"
)

// FlowMarkdown renders the links of a flow diagram, largest first.
func FlowMarkdown(title string, g ledgerdash.FlowGraph, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	flowTable(doc, g, f)
	return doc.String()
}

func flowTable(doc *md.Markdown, g ledgerdash.FlowGraph, f Formatter) {
	if len(g.Links) == 0 {
		doc.PlainText("No flow.")
		return
	}
	doc.PlainText(fmt.Sprintf("Total volume: %s", md.Bold(f.Amount(g.Total))))
	table := md.TableSet{Header: []string{"From", "To", "Amount"}}
	for _, l := range g.Links {
		table.Rows = append(table.Rows, []string{l.Source, l.Target, f.Amount(l.Value)})
	}
	doc.Table(table)
}
