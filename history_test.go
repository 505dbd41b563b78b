package ledgerdash

import (
	"testing"

	"github.com/etnz/ledgerdash/date"
	"github.com/google/go-cmp/cmp"
)

func TestBalanceHistory_Weekly(t *testing.T) {
	s := newSnapshot(t, marchLedger()...)
	r := date.NewRange(date.New(2025, 3, 1), date.New(2025, 3, 16))

	got, err := s.BalanceHistory([]string{"Assets", "Assets:Checking", "Assets"}, r, date.Weekly, false)
	if err != nil {
		t.Fatalf("BalanceHistory() error = %v", err)
	}
	want := []BalancePoint{
		// the week of Monday 02-24 starts before the range
		{Period: "2025-W09", From: date.New(2025, 3, 1), To: date.New(2025, 3, 2), Balances: Balances{"Assets": D(2000), "Assets:Checking": D(2000)}},
		{Period: "2025-W10", From: date.New(2025, 3, 3), To: date.New(2025, 3, 9), Balances: Balances{"Assets": D(2000), "Assets:Checking": D(2000)}},
		{Period: "2025-W11", From: date.New(2025, 3, 10), To: date.New(2025, 3, 16), Balances: Balances{"Assets": D(1700), "Assets:Checking": D(1700)}},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("BalanceHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestBalanceHistory_Delta(t *testing.T) {
	s := newSnapshot(t, marchLedger()...)
	r := date.NewRange(date.New(2025, 3, 1), date.New(2025, 3, 16))

	got, err := s.BalanceHistory([]string{"Assets:Checking"}, r, date.Weekly, true)
	if err != nil {
		t.Fatalf("BalanceHistory() error = %v", err)
	}
	wants := []float64{2000, 0, -300}
	if len(got) != len(wants) {
		t.Fatalf("BalanceHistory() has %d periods, want %d", len(got), len(wants))
	}
	for i, want := range wants {
		assertDecimal(t, got[i].Period, got[i].Balances["Assets:Checking"], D(want))
	}
}

func TestBalanceHistory_OpeningBalance(t *testing.T) {
	s := newSnapshot(t, marchLedger()...)
	r := date.NewRange(date.New(2025, 3, 5), date.New(2025, 5, 31))

	balances, err := s.BalanceHistory(nil, r, date.Monthly, false)
	if err != nil {
		t.Fatalf("BalanceHistory() error = %v", err)
	}
	deltas, err := s.BalanceHistory(nil, r, date.Monthly, true)
	if err != nil {
		t.Fatalf("BalanceHistory(delta) error = %v", err)
	}
	if len(balances) != 3 || len(deltas) != 3 {
		t.Fatalf("BalanceHistory() = %d and %d periods, want 3", len(balances), len(deltas))
	}
	if balances[0].From != r.From || balances[0].To != date.New(2025, 3, 31) || balances[0].Period != "2025-03" {
		t.Errorf("first period = %s %s..%s, want 2025-03 clamped to start on %s", balances[0].Period, balances[0].From, balances[0].To, r.From)
	}
	// the salary of 03-01 is before the range, only the groceries move
	assertDecimal(t, "March delta", deltas[0].Balances["Assets:Checking"], D(-300))
	assertDecimal(t, "April delta", deltas[1].Balances["Assets:Checking"], D(0))
	assertDecimal(t, "May balance", balances[2].Balances["Assets:Checking"], D(1700))
	assertDecimal(t, "May income", balances[2].Balances["Income:Salary"], D(-2000))
}

func TestBalanceHistory_Bounds(t *testing.T) {
	s := newSnapshot(t, marchLedger()...)

	got, err := s.BalanceHistory(nil, date.NewRange(date.New(2025, 3, 2), date.New(2025, 3, 1)), date.Daily, false)
	if err != nil || len(got) != 0 {
		t.Errorf("BalanceHistory(inverted range) = %v, %v want no period", got, err)
	}
	wide := date.NewRange(date.New(2000, 1, 1), date.New(2025, 1, 1))
	if _, err := s.BalanceHistory(nil, wide, date.Yearly, false); err == nil {
		t.Errorf("BalanceHistory(%v) succeeded, want a range limit error", wide)
	}
}
