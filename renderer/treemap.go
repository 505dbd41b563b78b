package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/ledgerdash"
	md "github.com/nao1215/markdown"
)

// TreemapMarkdown renders the asset and liability hierarchies.
func TreemapMarkdown(t ledgerdash.DualTreemap, f Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth on %s", t.Cutoff))
	treemapTables(doc, t, f)
	return doc.String()
}

func treemapTables(doc *md.Markdown, t ledgerdash.DualTreemap, f Formatter) {
	assets, liabilities := ledgerdash.Total(t.Assets), ledgerdash.Total(t.Liabilities)
	doc.Table(md.TableSet{
		Header: []string{md.Bold("Net Worth"), md.Bold(f.Amount(assets.Sub(liabilities)))},
		Rows: [][]string{
			{"Assets", f.Amount(assets)},
			{"Liabilities", f.Amount(liabilities)},
		},
	})
	if len(t.Assets) > 0 {
		doc.H2("Assets")
		doc.Table(HierarchyTable(t.Assets, f))
	}
	if len(t.Liabilities) > 0 {
		doc.H2("Liabilities")
		doc.Table(HierarchyTable(t.Liabilities, f))
	}
}

// HierarchyTable lists every node of forest, parents first, with its share of
// the forest total.
func HierarchyTable(forest []*ledgerdash.Node, f Formatter) md.TableSet {
	total := ledgerdash.Total(forest)
	table := md.TableSet{Header: []string{"Account", "Value", "Share"}}
	for _, root := range forest {
		root.Walk(func(path []string, n *ledgerdash.Node) {
			name := strings.Join(path, ledgerdash.Separator)
			if !n.IsLeaf() {
				name = md.Bold(name)
			}
			share := "-"
			if !total.IsZero() {
				share = Percent(n.Value.Div(total).InexactFloat64())
			}
			table.Rows = append(table.Rows, []string{name, f.Amount(n.Value), share})
		})
	}
	return table
}
