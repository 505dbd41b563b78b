package ledgerdash

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Line is one posting of a transaction.
//
// The amount is signed: increases to asset and expense accounts are positive.
type Line struct {
	Account    string          `json:"account"`
	Amount     decimal.Decimal `json:"amount"`
	Reconciled bool            `json:"reconciled,omitempty"`
}

// Transaction is an already parsed double-entry ledger transaction.
//
// Date is kept in its textual form, it is normalized to a calendar day when a
// Snapshot is built, and transactions whose date cannot be read are reported
// instead of being assigned to any day.
type Transaction struct {
	Date    string `json:"date"`
	Payee   string `json:"payee"`
	Comment string `json:"comment,omitempty"`
	Lines   []Line `json:"lines"`
}

// ErrUnbalanced is returned by Validate when the lines do not sum to zero.
var ErrUnbalanced = errors.New("transaction does not balance")

// Validate checks the double-entry invariant: every line has an account and
// the signed amounts sum to zero.
//
// The derivations never enforce it, it is meant to check fixtures and inputs
// before they are published.
func (t Transaction) Validate() error {
	var errs []error
	if len(t.Lines) == 0 {
		errs = append(errs, errors.New("transaction has no lines"))
	}
	sum := decimal.Zero
	for i, l := range t.Lines {
		if l.Account == "" {
			errs = append(errs, fmt.Errorf("line %d has no account", i))
		}
		sum = sum.Add(l.Amount)
	}
	if !sum.IsZero() {
		errs = append(errs, fmt.Errorf("%w: lines sum to %s", ErrUnbalanced, sum))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s %q: %w", t.Date, t.Payee, errors.Join(errs...))
	}
	return nil
}

// IsReconciled reports whether every line of the transaction is reconciled.
func (t Transaction) IsReconciled() bool {
	for _, l := range t.Lines {
		if !l.Reconciled {
			return false
		}
	}
	return true
}

// MarkReconciled returns a copy of t with every line reconciled.
func (t Transaction) MarkReconciled() Transaction {
	c := t.clone()
	for i := range c.Lines {
		c.Lines[i].Reconciled = true
	}
	return c
}

// clone returns a deep copy so that the caller's slice can not alter it.
func (t Transaction) clone() Transaction {
	t.Lines = append([]Line(nil), t.Lines...)
	return t
}
