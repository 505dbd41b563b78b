package ledgerdash

import (
	"testing"

	"github.com/etnz/ledgerdash/date"
	"github.com/google/go-cmp/cmp"
)

func treemapLedger() []Transaction {
	return []Transaction{
		T("2025-01-05", "Opening", L("Equity:Opening", -5000), L("Assets:Bank:Checking", 1000), L("Assets:Bank:Savings", 4000)),
		T("2025-01-10", "Card", L("Liabilities:Card:Visa", -250), L("Expenses:Food", 250)),
		T("2025-01-11", "Coins", L("Assets:Bank:Checking", -0.004), L("Assets:Cash", 0.004)),
		T("2025-02-03", "Rent", L("Assets:Bank:Checking", -800), L("Expenses:Rent", 800)),
	}
}

func TestTreemap(t *testing.T) {
	s := newSnapshot(t, treemapLedger()...)

	got := s.Treemap(date.New(2025, 1, 1), date.New(2025, 6, 1))

	want := DualTreemap{
		Cutoff: date.New(2025, 1, 31),
		Assets: []*Node{
			{Name: "Bank", Value: D(4999.996), Children: []*Node{
				{Name: "Checking", Value: D(999.996)},
				{Name: "Savings", Value: D(4000)},
			}},
		},
		Liabilities: []*Node{
			{Name: "Card", Value: D(250), Children: []*Node{
				{Name: "Visa", Value: D(250)},
			}},
		},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("Treemap() mismatch (-want +got):\n%s", diff)
	}
}

func TestTreemap_ClampedToNow(t *testing.T) {
	s := newSnapshot(t, treemapLedger()...)

	got := s.Treemap(date.New(2025, 2, 1), date.New(2025, 2, 2))

	if got.Cutoff != date.New(2025, 2, 2) {
		t.Errorf("Treemap().Cutoff = %v, want 2025-02-02", got.Cutoff)
	}
	// The rent of 2025-02-03 is after the cutoff.
	assertDecimal(t, "assets", Total(got.Assets), D(4999.996))
}

func TestTreemap_Empty(t *testing.T) {
	s := newSnapshot(t)
	got := s.Treemap(date.New(2025, 2, 1), date.New(2025, 2, 2))
	if len(got.Assets) != 0 || len(got.Liabilities) != 0 {
		t.Errorf("Treemap() = %+v, want empty hierarchies", got)
	}
}
