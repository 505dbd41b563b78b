package ledgerdash

import (
	"slices"

	"github.com/etnz/ledgerdash/date"
	"github.com/shopspring/decimal"
)

// Transfer summarizes a transaction as a movement from one account to another.
type Transfer struct {
	Day        date.Date       `json:"day"`
	Payee      string          `json:"payee"`
	Source     string          `json:"source"` // first account credited
	Target     string          `json:"target"` // first account debited
	Amount     decimal.Decimal `json:"amount"`
	Reconciled bool            `json:"reconciled"`
}

// Transfers lists the transactions of r, newest first.
//
// The source is the account of the first negative line, the target the account
// of the first positive line, and the amount the magnitude of that positive
// line.
func (s *Snapshot) Transfers(r date.Range) []Transfer {
	transfers := []Transfer{}
	for day, tx := range s.within(r) {
		t := Transfer{Day: day, Payee: tx.Payee, Amount: decimal.Zero, Reconciled: tx.IsReconciled()}
		for _, l := range tx.Lines {
			if t.Source == "" && l.Amount.IsNegative() {
				t.Source = l.Account
			}
			if t.Target == "" && l.Amount.IsPositive() {
				t.Target = l.Account
				t.Amount = l.Amount.Abs()
			}
		}
		transfers = append(transfers, t)
	}
	slices.Reverse(transfers)
	return transfers
}
