// Package export writes dashboards to spreadsheets and reads transactions
// back from them.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/ledgerdash"
	"github.com/xuri/excelize/v2"
)

// Sheet names of a dashboard workbook, in order.
const (
	KPISheet         = "KPI"
	TrendSheet       = "Trend"
	DailySheet       = "Daily"
	FlowSheet        = "Flow"
	AssetsSheet      = "Assets"
	LiabilitiesSheet = "Liabilities"
	TransfersSheet   = "Transfers"
	JournalSheet     = "Journal"
)

// journalHeader is the layout of the Journal sheet, also read by
// ReadTransactions.
var journalHeader = []any{"Date", "Payee", "Account", "Amount", "Reconciled", "Comment"}

// Workbook builds a workbook with one sheet per section of d, and the
// transactions of s in a Journal sheet.
//
// The caller must Close the returned file.
func Workbook(s *ledgerdash.Snapshot, d *ledgerdash.Dashboard) (*excelize.File, error) {
	f := excelize.NewFile()
	w := &sheetWriter{f: f}

	w.sheet(KPISheet, []any{"Month", "Income", "Expense", "Balance", "Savings Rate"})
	w.row(d.Month, d.KPI.Income.InexactFloat64(), d.KPI.Expense.InexactFloat64(), d.KPI.Balance.InexactFloat64(), d.KPI.SavingsRate)

	w.sheet(TrendSheet, []any{"Month", "Income", "Expense", "Balance", "Savings Rate"})
	for _, p := range d.Trend {
		w.row(p.Month, p.Income.InexactFloat64(), p.Expense.InexactFloat64(), p.Balance.InexactFloat64(), p.SavingsRate)
	}

	w.sheet(DailySheet, []any{"Day", "Income", "Expense", "Net"})
	for _, p := range d.Daily {
		w.row(p.Day.String(), p.Income.InexactFloat64(), p.Expense.InexactFloat64(), p.Net.InexactFloat64())
	}

	w.sheet(FlowSheet, []any{"From", "To", "Amount"})
	for _, l := range d.Flow.Links {
		w.row(l.Source, l.Target, l.Value.InexactFloat64())
	}

	w.sheet(AssetsSheet, []any{"Account", "Value", "Leaf"})
	w.hierarchy(d.Treemap.Assets)

	w.sheet(LiabilitiesSheet, []any{"Account", "Value", "Leaf"})
	w.hierarchy(d.Treemap.Liabilities)

	w.sheet(TransfersSheet, []any{"Day", "Payee", "From", "To", "Amount", "Reconciled"})
	for _, t := range d.Transfers {
		w.row(t.Day.String(), t.Payee, t.Source, t.Target, t.Amount.InexactFloat64(), t.Reconciled)
	}

	w.sheet(JournalSheet, journalHeader)
	for _, tx := range s.Transactions() {
		for i, l := range tx.Lines {
			day, payee, comment := tx.Date, tx.Payee, tx.Comment
			if i > 0 {
				day, payee, comment = "", "", ""
			}
			w.row(day, payee, l.Account, l.Amount.String(), l.Reconciled, comment)
		}
	}

	if w.err == nil {
		w.err = f.DeleteSheet("Sheet1")
	}
	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	return f, nil
}

// Write writes the workbook of d to out in xlsx format.
func Write(out io.Writer, s *ledgerdash.Snapshot, d *ledgerdash.Dashboard) error {
	f, err := Workbook(s, d)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}

// sheetWriter appends rows to the current sheet and keeps the first error.
type sheetWriter struct {
	f    *excelize.File
	name string
	next int
	err  error
}

func (w *sheetWriter) sheet(name string, header []any) {
	if w.err != nil {
		return
	}
	if _, err := w.f.NewSheet(name); err != nil {
		w.err = fmt.Errorf("could not create sheet %q: %w", name, err)
		return
	}
	w.name, w.next = name, 1
	w.row(header...)
}

func (w *sheetWriter) row(values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, w.next)
	if err == nil {
		err = w.f.SetSheetRow(w.name, cell, &values)
	}
	if err != nil {
		w.err = fmt.Errorf("could not write row %d of sheet %q: %w", w.next, w.name, err)
		return
	}
	w.next++
}

func (w *sheetWriter) hierarchy(forest []*ledgerdash.Node) {
	for _, root := range forest {
		root.Walk(func(path []string, n *ledgerdash.Node) {
			w.row(strings.Join(path, ledgerdash.Separator), n.Value.InexactFloat64(), n.IsLeaf())
		})
	}
}
