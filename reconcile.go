package ledgerdash

import (
	"github.com/etnz/ledgerdash/date"
	"github.com/shopspring/decimal"
)

const (
	// AdjustmentPayee is the payee of balance adjustment transactions.
	AdjustmentPayee = "Balance Adjustment"
	// AdjustmentAccount is the counterpart account of balance adjustments.
	AdjustmentAccount = "Equity:Balance Adjustment"
)

// Unreconciled returns the transactions with at least one unreconciled line,
// rejected ones included, in input order.
func (s *Snapshot) Unreconciled() []Transaction {
	var txs []Transaction
	for _, tx := range s.txs {
		if !tx.IsReconciled() {
			txs = append(txs, tx.clone())
		}
	}
	return txs
}

// BookBalance returns the balance of account and all its child accounts at the
// end of day on.
func (s *Snapshot) BookBalance(account string, on date.Date) decimal.Decimal {
	b := s.BalancesAsOf(on)
	return b.Total(append(ChildAccounts(account, s.accounts.All), account)...)
}

// Adjustment returns the transaction that brings the book balance of account
// to actual on day on, and false when no adjustment is needed.
//
// The difference is rounded to the cent and booked against AdjustmentAccount.
// The transaction is only returned, nothing is written.
func (s *Snapshot) Adjustment(account string, actual decimal.Decimal, on date.Date) (Transaction, bool) {
	diff := actual.Sub(s.BookBalance(account, on)).Round(2)
	if diff.IsZero() {
		return Transaction{}, false
	}
	return Transaction{
		Date:  on.String(),
		Payee: AdjustmentPayee,
		Lines: []Line{
			{Account: account, Amount: diff, Reconciled: true},
			{Account: AdjustmentAccount, Amount: diff.Neg(), Reconciled: true},
		},
	}, true
}
