package ledgerdash

import (
	"errors"
	"slices"
	"testing"

	"github.com/etnz/ledgerdash/date"
	"github.com/google/go-cmp/cmp"
)

func TestAccumulateDailyChanges(t *testing.T) {
	txs := []Transaction{
		T("2025-03-01", "Employer", L("Income:Salary", -2000), L("Assets:Checking", 2000)),
		T("2025/03/01", "Grocer", L("Assets:Checking", -300), L("Expenses:Groceries", 300)),
		T("2025-3-4", "Nothing", L("Assets:Checking", 0), L("", 12)),
		T("someday", "Broken", L("Assets:Checking", -1), L("Expenses:Misc", 1)),
	}

	got, rejected := AccumulateDailyChanges(txs)

	want := DailyChangeMap{
		date.New(2025, 3, 1): {
			"Income:Salary":      D(-2000),
			"Assets:Checking":    D(1700),
			"Expenses:Groceries": D(300),
		},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("AccumulateDailyChanges() mismatch (-want +got):\n%s", diff)
	}

	if len(rejected) != 1 {
		t.Fatalf("AccumulateDailyChanges() rejected %d transactions, want 1", len(rejected))
	}
	if r := rejected[0]; r.Index != 3 || r.Payee != "Broken" || r.Date != "someday" {
		t.Errorf("rejected = %+v, want transaction #3", r)
	}
	var de *DateError
	if !errors.As(error(rejected[0]), &de) || de.Unwrap() == nil {
		t.Errorf("rejected[0] does not wrap its cause")
	}
}

func TestAccumulateDailyChanges_Empty(t *testing.T) {
	got, rejected := AccumulateDailyChanges(nil)
	if got == nil || len(got) != 0 || len(rejected) != 0 {
		t.Errorf("AccumulateDailyChanges(nil) = %v, %v want an empty map", got, rejected)
	}
}

func TestDailyChangeMap_Order(t *testing.T) {
	m, _ := AccumulateDailyChanges([]Transaction{
		T("2025-03-10", "b", L("Assets:B", -1), L("Assets:A", 1)),
		T("2025-01-02", "a", L("Assets:C", -1), L("Assets:A", 1)),
	})
	days := slices.Collect(m.Days())
	if want := []date.Date{date.New(2025, 1, 2), date.New(2025, 3, 10)}; !slices.Equal(days, want) {
		t.Errorf("Days() = %v, want %v", days, want)
	}
	if got, want := m.AccountsOn(date.New(2025, 3, 10)), []string{"Assets:A", "Assets:B"}; !slices.Equal(got, want) {
		t.Errorf("AccountsOn() = %v, want %v", got, want)
	}
	if got, want := m.Accounts(), []string{"Assets:A", "Assets:B", "Assets:C"}; !slices.Equal(got, want) {
		t.Errorf("Accounts() = %v, want %v", got, want)
	}
}
