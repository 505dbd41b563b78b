package ledgerdash

import (
	"iter"
	"maps"
	"slices"

	"github.com/etnz/ledgerdash/date"
	"github.com/shopspring/decimal"
)

// Balances maps an account to its balance.
type Balances map[string]decimal.Decimal

// Total returns the sum of the balances of accounts.
func (b Balances) Total(accounts ...string) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accounts {
		sum = sum.Add(b[a])
	}
	return sum
}

// BalanceMap holds the end of day balances of every account, for every day of
// a range.
type BalanceMap map[date.Date]Balances

// BuildBalanceMap forward-fills changes into cumulative balances, one entry
// per day of r, boundaries included.
//
// Every account of accounts, and every account found in changes, starts at
// zero. Changes posted before r.From are folded into the first day so that
// balances are always cumulative from the first posting. Each day holds its
// own copy. An empty range yields an empty map.
func BuildBalanceMap(accounts []string, changes DailyChangeMap, r date.Range) BalanceMap {
	bm := make(BalanceMap, r.Len())
	if r.IsEmpty() {
		return bm
	}

	running := make(Balances)
	for _, a := range accounts {
		running[a] = decimal.Zero
	}
	for _, a := range changes.Accounts() {
		running[a] = decimal.Zero
	}

	for day := range changes.Days() {
		if !day.Before(r.From) {
			break
		}
		apply(running, changes[day])
	}

	for day := range r.Days() {
		apply(running, changes[day])
		bm[day] = maps.Clone(running)
	}
	return bm
}

func apply(running Balances, deltas map[string]decimal.Decimal) {
	for a, v := range deltas {
		running[a] = running[a].Add(v)
	}
}

// BalancesAsOf replays changes up to and including on, without materializing
// the intermediate days.
func BalancesAsOf(changes DailyChangeMap, on date.Date) Balances {
	b := make(Balances)
	for day, deltas := range changes {
		if day.After(on) {
			continue
		}
		apply(b, deltas)
	}
	return b
}

// Days iterates over the days of bm in chronological order.
func (bm BalanceMap) Days() iter.Seq[date.Date] {
	return slices.Values(slices.SortedFunc(maps.Keys(bm), date.Date.Compare))
}

// History returns the daily total of the balances of accounts.
func (bm BalanceMap) History(accounts ...string) *date.History[decimal.Decimal] {
	h := new(date.History[decimal.Decimal])
	for day := range bm.Days() {
		h.Append(day, bm[day].Total(accounts...))
	}
	return h
}
