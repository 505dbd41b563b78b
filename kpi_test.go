package ledgerdash

import (
	"testing"

	"github.com/etnz/ledgerdash/date"
)

func TestMonthlyKPI_March(t *testing.T) {
	s := newSnapshot(t, marchLedger()...)

	got := s.MonthlyKPI(date.New(2025, 3, 15))

	assertDecimal(t, "Income", got.Income, D(2000))
	assertDecimal(t, "Expense", got.Expense, D(300))
	assertDecimal(t, "Balance", got.Balance, D(1700))
	if got.SavingsRate != 0.85 {
		t.Errorf("SavingsRate = %v, want 0.85", got.SavingsRate)
	}
	if got.Range != march {
		t.Errorf("Range = %v, want %v", got.Range, march)
	}
}

func TestKPI(t *testing.T) {
	s := newSnapshot(t,
		T("2025-03-01", "Employer", L("Income:Salary", -2000), L("Assets:Checking", 2000)),
		T("2025-03-31", "Refund", L("Expenses:Groceries", -50), L("Assets:Checking", 50)),
		T("2025-04-01", "Grocer", L("Assets:Checking", -300), L("Expenses:Groceries", 300)),
		T("2025-03-05", "Move", L("Assets:Checking", -100), L("Assets:Savings", 100)),
		T("2025-03-06", "Gift", L("Equity:Gifts", -100), L("Assets:Savings", 100)),
		T("broken", "Lost", L("Income:Salary", -999), L("Assets:Checking", 999)),
	)

	tests := []struct {
		name        string
		r           date.Range
		income      float64
		expense     float64
		savingsRate float64
	}{
		{"march with refund", march, 2000, -50, 1.025},
		{"april", date.Month(date.New(2025, 4, 1)), 0, 300, 0},
		{"inclusive boundaries", date.NewRange(date.New(2025, 3, 31), date.New(2025, 4, 1)), 0, 250, 0},
		{"inverted", date.NewRange(date.New(2025, 4, 1), date.New(2025, 3, 1)), 0, 0, 0},
		{"empty month", date.Month(date.New(2025, 5, 1)), 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.KPI(tt.r)
			assertDecimal(t, "Income", got.Income, D(tt.income))
			assertDecimal(t, "Expense", got.Expense, D(tt.expense))
			assertDecimal(t, "Balance", got.Balance, D(tt.income-tt.expense))
			if got.SavingsRate != tt.savingsRate {
				t.Errorf("SavingsRate = %v, want %v", got.SavingsRate, tt.savingsRate)
			}
		})
	}
}
