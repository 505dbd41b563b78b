package ledgerdash

import (
	"github.com/etnz/ledgerdash/date"
	"github.com/shopspring/decimal"
)

// KPI are the key figures of a period.
type KPI struct {
	Range       date.Range      `json:"range"`
	Income      decimal.Decimal `json:"income"`  // sum of the magnitudes posted to income accounts
	Expense     decimal.Decimal `json:"expense"` // signed sum posted to expense accounts
	Balance     decimal.Decimal `json:"balance"` // Income - Expense
	SavingsRate float64         `json:"savingsRate"`
}

// flows accumulates income and expense of lines.
type flows struct {
	income, expense decimal.Decimal
}

func (f *flows) add(p Prefixes, l Line) {
	switch p.Classify(l.Account) {
	case Income:
		f.income = f.income.Add(l.Amount.Abs())
	case Expense:
		f.expense = f.expense.Add(l.Amount)
	}
}

func (f flows) isZero() bool { return f.income.IsZero() && f.expense.IsZero() }

func (f flows) balance() decimal.Decimal { return f.income.Sub(f.expense) }

// savingsRate returns balance/income, or 0 when there is no income.
func savingsRate(income, balance decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}
	return balance.Div(income).InexactFloat64()
}

// KPI reduces the transactions of r into income, expense, balance and savings rate.
//
// Unclassified accounts, assets and liabilities are ignored.
func (s *Snapshot) KPI(r date.Range) KPI {
	var f flows
	for _, tx := range s.within(r) {
		for _, l := range tx.Lines {
			f.add(s.opts.Prefixes, l)
		}
	}
	return KPI{
		Range:       r,
		Income:      f.income,
		Expense:     f.expense,
		Balance:     f.balance(),
		SavingsRate: savingsRate(f.income, f.balance()),
	}
}

// MonthlyKPI returns the KPI of the calendar month containing month.
func (s *Snapshot) MonthlyKPI(month date.Date) KPI {
	return s.KPI(date.Month(month))
}
