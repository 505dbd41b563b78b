package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/ledgerdash"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ReadTransactions reads transactions from a spreadsheet laid out like the
// Journal sheet of Workbook: Date, Payee, Account, Amount, and optionally
// Reconciled and Comment.
//
// The Journal sheet is read if present, otherwise the first sheet. A row with a
// date starts a new transaction, a row without one adds a line to the previous
// transaction. The header row is skipped.
func ReadTransactions(r io.Reader) ([]ledgerdash.Transaction, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if idx, err := f.GetSheetIndex(JournalSheet); err == nil && idx >= 0 {
		sheet = JournalSheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheet, err)
	}

	var txs []ledgerdash.Transaction
	for i, row := range rows {
		if i == 0 || isBlank(row) {
			continue
		}
		cell := func(j int) string {
			if j < len(row) {
				return strings.TrimSpace(row[j])
			}
			return ""
		}

		amount, err := decimal.NewFromString(cell(3))
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: invalid amount %q: %w", sheet, i+1, cell(3), err)
		}
		reconciled := false
		if s := cell(4); s != "" {
			if reconciled, err = strconv.ParseBool(strings.ToLower(s)); err != nil {
				return nil, fmt.Errorf("sheet %q row %d: invalid reconciled flag %q: %w", sheet, i+1, s, err)
			}
		}
		line := ledgerdash.Line{Account: cell(2), Amount: amount, Reconciled: reconciled}

		if day := cell(0); day != "" {
			txs = append(txs, ledgerdash.Transaction{Date: day, Payee: cell(1), Comment: cell(5)})
		} else if len(txs) == 0 {
			return nil, fmt.Errorf("sheet %q row %d: line without a transaction date", sheet, i+1)
		}
		last := &txs[len(txs)-1]
		last.Lines = append(last.Lines, line)
	}
	return txs, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
