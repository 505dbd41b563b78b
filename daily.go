package ledgerdash

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/etnz/ledgerdash/date"
	"github.com/shopspring/decimal"
)

// DailyChangeMap holds the net signed amount posted to each account, per day.
//
// Only days with at least one posting have an entry.
type DailyChangeMap map[date.Date]map[string]decimal.Decimal

// DateError reports a transaction whose date could not be read.
type DateError struct {
	Index int    // position of the transaction in its input
	Payee string // payee of the rejected transaction
	Date  string // raw date text
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("transaction #%d %q: %v", e.Index, e.Payee, e.Err)
}

func (e *DateError) Unwrap() error { return e.Err }

// AccumulateDailyChanges reduces txs into per day, per account deltas.
//
// Lines without an account or with a zero amount are ignored. Transactions with
// an unreadable date are skipped and returned as DateErrors.
func AccumulateDailyChanges(txs []Transaction) (DailyChangeMap, []*DateError) {
	m := make(DailyChangeMap)
	var rejected []*DateError
	for i, tx := range txs {
		day, err := date.Parse(tx.Date)
		if err != nil {
			rejected = append(rejected, &DateError{Index: i, Payee: tx.Payee, Date: tx.Date, Err: err})
			continue
		}
		for _, l := range tx.Lines {
			m.add(day, l.Account, l.Amount)
		}
	}
	return m, rejected
}

func (m DailyChangeMap) add(day date.Date, account string, amount decimal.Decimal) {
	if account == "" || amount.IsZero() {
		return
	}
	accounts, ok := m[day]
	if !ok {
		accounts = make(map[string]decimal.Decimal)
		m[day] = accounts
	}
	accounts[account] = accounts[account].Add(amount)
}

// Days iterates over the days of m in chronological order.
func (m DailyChangeMap) Days() iter.Seq[date.Date] {
	return slices.Values(slices.SortedFunc(maps.Keys(m), date.Date.Compare))
}

// AccountsOn returns the accounts changed on day, alphabetically.
func (m DailyChangeMap) AccountsOn(day date.Date) []string {
	return slices.Sorted(maps.Keys(m[day]))
}

// Accounts returns every account of m, alphabetically.
func (m DailyChangeMap) Accounts() []string {
	seen := make(map[string]struct{})
	for _, accounts := range m {
		for a := range accounts {
			seen[a] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
