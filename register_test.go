package ledgerdash

import (
	"testing"

	"github.com/etnz/ledgerdash/date"
	"github.com/google/go-cmp/cmp"
)

func TestTransfers(t *testing.T) {
	txs := marchLedger()
	txs[0].Lines[0].Reconciled = true
	txs[0].Lines[1].Reconciled = true
	s := newSnapshot(t, txs...)

	got := s.Transfers(march)

	want := []Transfer{
		{Day: date.New(2025, 3, 10), Payee: "Grocer", Source: "Assets:Checking", Target: "Expenses:Groceries", Amount: D(300)},
		{Day: date.New(2025, 3, 1), Payee: "Employer", Source: "Income:Salary", Target: "Assets:Checking", Amount: D(2000), Reconciled: true},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("Transfers() mismatch (-want +got):\n%s", diff)
	}

	if got := s.Transfers(date.Month(date.New(2025, 4, 1))); got == nil || len(got) != 0 {
		t.Errorf("Transfers() on an empty month = %v, want an empty list", got)
	}
}
