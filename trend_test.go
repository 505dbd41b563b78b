package ledgerdash

import (
	"testing"

	"github.com/etnz/ledgerdash/date"
	"github.com/google/go-cmp/cmp"
)

func TestActivityTrend(t *testing.T) {
	s := newSnapshot(t, marchLedger()...)

	got := s.ActivityTrend(march)

	want := []DailyPoint{
		{Day: date.New(2025, 3, 1), Income: D(2000), Expense: D(0), Net: D(2000)},
		{Day: date.New(2025, 3, 10), Income: D(0), Expense: D(300), Net: D(1700)},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("ActivityTrend() mismatch (-want +got):\n%s", diff)
	}
}

func TestActivityTrend_SkipsTransfers(t *testing.T) {
	s := newSnapshot(t, T("2025-03-05", "Move", L("Assets:Checking", -100), L("Assets:Savings", 100)))
	if got := s.ActivityTrend(march); len(got) != 0 {
		t.Errorf("ActivityTrend() = %v, want no point", got)
	}
}

func TestDailySeries(t *testing.T) {
	s := newSnapshot(t, marchLedger()...)

	got := s.DailySeries(march)

	if len(got) != 31 {
		t.Fatalf("len(DailySeries()) = %d, want 31", len(got))
	}
	for i, p := range got {
		if want := date.New(2025, 3, 1+i); p.Day != want {
			t.Errorf("DailySeries()[%d].Day = %v, want %v", i, p.Day, want)
		}
	}
	assertDecimal(t, "net on 03-09", got[8].Net, D(2000))
	assertDecimal(t, "expense on 03-09", got[8].Expense, D(0))
	assertDecimal(t, "net on 03-31", got[30].Net, D(1700))
}

func TestTrend(t *testing.T) {
	s := newSnapshot(t,
		T("2024-12-20", "Employer", L("Income:Salary", -1000), L("Assets:Checking", 1000)),
		T("2025-02-03", "Grocer", L("Assets:Checking", -100), L("Expenses:Groceries", 100)),
	)

	got := s.Trend(3, date.New(2025, 2, 14))

	if len(got) != 3 {
		t.Fatalf("len(Trend()) = %d, want 3", len(got))
	}
	var months []string
	for _, p := range got {
		months = append(months, p.Month)
	}
	if diff := cmp.Diff([]string{"2024-12", "2025-01", "2025-02"}, months); diff != "" {
		t.Errorf("Trend() months mismatch (-want +got):\n%s", diff)
	}
	assertDecimal(t, "december income", got[0].Income, D(1000))
	assertDecimal(t, "january balance", got[1].Balance, D(0))
	assertDecimal(t, "february expense", got[2].Expense, D(100))

	if got := s.Trend(0, date.New(2025, 2, 14)); len(got) != 0 {
		t.Errorf("Trend(0) = %v, want empty", got)
	}

	long := s.Trend(20_000_000, date.New(2025, 2, 14))
	if len(long) != MaxTrendMonths {
		t.Fatalf("len(Trend(20000000)) = %d, want %d", len(long), MaxTrendMonths)
	}
	if long[len(long)-1].Month != "2025-02" {
		t.Errorf("last month of capped trend = %s, want 2025-02", long[len(long)-1].Month)
	}
}
