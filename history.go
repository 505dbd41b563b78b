package ledgerdash

import (
	"fmt"
	"slices"

	"github.com/etnz/ledgerdash/date"
	"github.com/shopspring/decimal"
)

// MaxHistoryDays is the longest range a balance history can cover.
const MaxHistoryDays = 10 * 366

// BalancePoint holds the balances of accounts for one period.
type BalancePoint struct {
	Period   string    `json:"period"`
	From     date.Date `json:"from"`
	To       date.Date `json:"to"`
	Balances Balances  `json:"balances"`
}

// BalanceHistory returns the balance of each account at the end of every
// period p overlapping r, oldest first. With delta, it returns the change of
// balance over each period instead.
//
// The balance of an account includes its child accounts. Periods are clamped
// to r: the first one starts on r.From and the last one ends on r.To. No
// account means every account of the snapshot.
func (s *Snapshot) BalanceHistory(accounts []string, r date.Range, p date.Period, delta bool) ([]BalancePoint, error) {
	if n := r.Len(); n > MaxHistoryDays {
		return nil, fmt.Errorf("range of %d days exceeds the %d days limit", n, MaxHistoryDays)
	}
	points := []BalancePoint{}
	if r.IsEmpty() {
		return points, nil
	}
	if len(accounts) == 0 {
		accounts = s.accounts.All
	}
	accounts = uniq(accounts)

	// one extra day for the opening balance of the first period
	opening := r.From.Add(-1)
	bm := s.Balances(date.NewRange(opening, r.To))
	histories := make(map[string]*date.History[decimal.Decimal], len(accounts))
	for _, a := range accounts {
		histories[a] = bm.History(append(ChildAccounts(a, s.accounts.All), a)...)
	}

	prev := opening
	for period := range r.Periods(p) {
		bucket := period.Clamp(r.From, r.To)
		pt := BalancePoint{Period: period.Identifier(), From: bucket.From, To: bucket.To, Balances: make(Balances, len(accounts))}
		for _, a := range accounts {
			v, _ := histories[a].ValueAsOf(bucket.To)
			if delta {
				before, _ := histories[a].ValueAsOf(prev)
				v = v.Sub(before)
			}
			pt.Balances[a] = v
		}
		points = append(points, pt)
		prev = bucket.To
	}
	return points, nil
}

// uniq removes duplicates from accounts, keeping the first occurrence.
func uniq(accounts []string) []string {
	seen := make(map[string]bool, len(accounts))
	return slices.DeleteFunc(slices.Clone(accounts), func(a string) bool {
		if seen[a] {
			return true
		}
		seen[a] = true
		return false
	})
}
