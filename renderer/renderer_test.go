package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/date"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testSnapshot() *ledgerdash.Snapshot {
	return ledgerdash.NewSnapshot([]ledgerdash.Transaction{
		{Date: "2025-03-01", Payee: "ACME", Lines: []ledgerdash.Line{
			{Account: "Assets:Bank:Checking", Amount: d("3000"), Reconciled: true},
			{Account: "Income:Salary", Amount: d("-3000"), Reconciled: true},
		}},
		{Date: "2025-03-05", Payee: "Landlord", Lines: []ledgerdash.Line{
			{Account: "Expenses:Housing:Rent", Amount: d("1200")},
			{Account: "Assets:Bank:Checking", Amount: d("-1200")},
		}},
		{Date: "2025-03-07", Payee: "Card", Lines: []ledgerdash.Line{
			{Account: "Expenses:Food", Amount: d("150.25")},
			{Account: "Liabilities:Card", Amount: d("-150.25")},
		}},
		{Date: "2025-13-01", Payee: "Broken", Lines: []ledgerdash.Line{
			{Account: "Expenses:Food", Amount: d("1")},
			{Account: "Assets:Bank:Checking", Amount: d("-1")},
		}},
	}, ledgerdash.DefaultOptions())
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}

func TestFormatter(t *testing.T) {
	f := NewFormatter("$")
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"amount", f.Amount(d("1234.5")), "$1,234.50"},
		{"rounded", f.Amount(d("0.005")), "$0.01"},
		{"negative", f.Amount(d("-12")), "-$12.00"},
		{"signed positive", f.Signed(d("3")), "+$3.00"},
		{"signed negative", f.Signed(d("-3")), "-$3.00"},
		{"signed zero", f.Signed(d("0.001")), "-"},
		{"percent", Percent(0.125), "12.50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestKPIMarkdown(t *testing.T) {
	s := testSnapshot()
	got := KPIMarkdown(s.MonthlyKPI(date.New(2025, 3, 1)), NewFormatter("$"))
	assertContains(t, got, "Key Figures for 2025-03", "$3,000.00", "$1,350.25", "+$1,649.75", "54.99%")
}

func TestTrendMarkdown(t *testing.T) {
	s := testSnapshot()
	got := TrendMarkdown(s.Trend(2, date.New(2025, 3, 15)), NewFormatter("€"))
	assertContains(t, got, "2025-02", "2025-03", "€3,000.00")
}

func TestDailyMarkdown(t *testing.T) {
	s := testSnapshot()
	f := NewFormatter("$")
	got := DailyMarkdown("Activity", s.ActivityTrend(date.Month(date.New(2025, 3, 1))), f)
	assertContains(t, got, "2025-03-01", "2025-03-05", "2025-03-07")
	if strings.Contains(got, "2025-03-02") {
		t.Errorf("activity contains an idle day:\n%s", got)
	}

	empty := DailyMarkdown("Activity", nil, f)
	assertContains(t, empty, "No activity.")
}

func TestFlowMarkdown(t *testing.T) {
	s := testSnapshot()
	got := FlowMarkdown("Cash Flow", s.Flow(date.Month(date.New(2025, 3, 1))), NewFormatter("$"))
	assertContains(t, got, "Salary", "Housing", "Food", ledgerdash.BalanceNode, "$3,000.00")

	empty := FlowMarkdown("Cash Flow", ledgerdash.FlowGraph{}, NewFormatter("$"))
	assertContains(t, empty, "No flow.")
}

func TestTreemapMarkdown(t *testing.T) {
	s := testSnapshot()
	got := TreemapMarkdown(s.Treemap(date.New(2025, 3, 1), date.New(2025, 3, 31)), NewFormatter("$"))
	assertContains(t, got, "Net Worth on 2025-03-31", "Bank:Checking", "$1,800.00", "$150.25", "$1,649.75", "100.00%")
}

func TestBalancesMarkdown(t *testing.T) {
	s := testSnapshot()
	on := date.New(2025, 3, 5)
	got := BalancesMarkdown(on, s.BalancesAsOf(on), s.Accounts().All, NewFormatter("$"))
	assertContains(t, got, "Balances on 2025-03-05", "Assets:Bank:Checking", "$1,800.00")
	if strings.Contains(got, "Liabilities:Card") {
		t.Errorf("zero balance is listed:\n%s", got)
	}
}

func TestBalanceHistoryMarkdown(t *testing.T) {
	s := testSnapshot()
	accounts := []string{"Assets:Bank"}
	r := date.NewRange(date.New(2025, 2, 1), date.New(2025, 3, 31))
	f := NewFormatter("$")

	points, err := s.BalanceHistory(accounts, r, date.Monthly, false)
	if err != nil {
		t.Fatalf("BalanceHistory() error = %v", err)
	}
	got := BalanceHistoryMarkdown("Balances", accounts, points, false, f)
	assertContains(t, got, "Assets:Bank", "2025-02", "$0.00", "2025-03", "$1,800.00")

	deltas, err := s.BalanceHistory(accounts, r, date.Monthly, true)
	if err != nil {
		t.Fatalf("BalanceHistory(delta) error = %v", err)
	}
	got = BalanceHistoryMarkdown("Changes", accounts, deltas, true, f)
	assertContains(t, got, "Changes", "+$1,800.00")

	empty := BalanceHistoryMarkdown("Balances", accounts, nil, false, f)
	assertContains(t, empty, "No balances.")
}

func TestTransfersMarkdown(t *testing.T) {
	s := testSnapshot()
	got := TransfersMarkdown("Transactions", s.Transfers(date.Month(date.New(2025, 3, 1))), NewFormatter("$"))
	assertContains(t, got, "Landlord", "Assets:Bank:Checking", "Expenses:Housing:Rent", "$1,200.00", "✓")
	if strings.Index(got, "Card") > strings.Index(got, "ACME") {
		t.Errorf("transfers are not newest first:\n%s", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	s := testSnapshot()
	got := TransactionsMarkdown("Unreconciled", s.Unreconciled(), NewFormatter("$"))
	assertContains(t, got, "Landlord", "Expenses:Housing:Rent +$1,200.00", "(unreconciled)", "Broken")
	if strings.Contains(got, "ACME") {
		t.Errorf("reconciled transaction is listed:\n%s", got)
	}
}

func TestErrorsMarkdown(t *testing.T) {
	s := testSnapshot()
	assertContains(t, ErrorsMarkdown(s.Rejected()), "Broken", "2025-13-01")
	assertContains(t, ErrorsMarkdown(nil), "None.")
}

func TestDashboardMarkdown(t *testing.T) {
	s := testSnapshot()
	dash := s.Dashboard(date.New(2025, 3, 1), date.New(2025, 3, 31), 3)
	got := DashboardMarkdown("Home", dash, NewFormatter("$"))
	assertContains(t, got,
		"Home: 2025-03",
		"Key Figures",
		"Trend",
		"Cash Flow",
		"Net Worth on 2025-03-31",
		"1 transaction(s) rejected",
		"3 transaction(s) not reconciled",
	)
}
