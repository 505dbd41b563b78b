package ledgerdash

import (
	"testing"

	"github.com/etnz/ledgerdash/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// cmpOpts compares decimals by value and dates by day.
var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// D is a helper for test to create a decimal from a const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// L is a helper for test to create a line.
func L(account string, amount float64) Line { return Line{Account: account, Amount: D(amount)} }

// T is a helper for test to create a transaction.
func T(day, payee string, lines ...Line) Transaction {
	return Transaction{Date: day, Payee: payee, Lines: lines}
}

// marchLedger is the two transactions of the March example.
func marchLedger() []Transaction {
	return []Transaction{
		T("2025-03-01", "Employer", L("Income:Salary", -2000), L("Assets:Checking", 2000)),
		T("2025-03-10", "Grocer", L("Assets:Checking", -300), L("Expenses:Groceries", 300)),
	}
}

func newSnapshot(t *testing.T, txs ...Transaction) *Snapshot {
	t.Helper()
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			t.Fatalf("invalid fixture: %v", err)
		}
	}
	return NewSnapshot(txs, DefaultOptions())
}

// assertDecimal fails if got and want are not numerically equal.
func assertDecimal(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

var march = date.Month(date.New(2025, 3, 1))

// assertClose fails if got and want differ by more than 1e-6.
func assertClose(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if got.Sub(want).Abs().GreaterThan(decimal.New(1, -6)) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
