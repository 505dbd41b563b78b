package ledgerdash

import (
	"errors"
	"iter"
	"slices"

	"github.com/etnz/ledgerdash/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultDustThreshold is the smallest balance magnitude shown in treemaps.
var DefaultDustThreshold = decimal.RequireFromString("0.01")

// Options configures how a Snapshot classifies and filters accounts.
type Options struct {
	Prefixes      Prefixes
	DustThreshold decimal.Decimal
}

// DefaultOptions returns the default prefixes and dust threshold.
func DefaultOptions() Options {
	return Options{Prefixes: DefaultPrefixes(), DustThreshold: DefaultDustThreshold}
}

// entry is a transaction with its normalized day.
type entry struct {
	day date.Date
	tx  Transaction
}

// Snapshot is an immutable view over a set of transactions.
//
// It is a stateless calculator: every report is computed on demand from the
// transactions, nothing is cached and nothing is mutated after NewSnapshot
// returns. A change to the underlying transactions produces a new Snapshot.
type Snapshot struct {
	id       uuid.UUID
	opts     Options
	txs      []Transaction // input order
	entries  []entry       // chronological, stable
	accounts AccountSet
	changes  DailyChangeMap
	rejected []*DateError
}

// NewSnapshot normalizes txs. The slice is copied, the caller may reuse it.
func NewSnapshot(txs []Transaction, opts Options) *Snapshot {
	s := &Snapshot{
		id:   uuid.New(),
		opts: opts,
		txs:  make([]Transaction, 0, len(txs)),
	}
	for _, tx := range txs {
		s.txs = append(s.txs, tx.clone())
	}
	s.changes, s.rejected = AccumulateDailyChanges(s.txs)
	s.accounts = NewAccountSet(s.txs, opts.Prefixes)

	for _, tx := range s.txs {
		day, err := date.Parse(tx.Date)
		if err != nil {
			continue // already reported by AccumulateDailyChanges
		}
		s.entries = append(s.entries, entry{day: day, tx: tx})
	}
	slices.SortStableFunc(s.entries, func(a, b entry) int { return a.day.Compare(b.day) })
	return s
}

// ID uniquely identifies the snapshot. Two snapshots never share an ID even if
// they hold the same transactions.
func (s *Snapshot) ID() string { return s.id.String() }

// Options returns the options the snapshot was built with.
func (s *Snapshot) Options() Options { return s.opts }

// Prefixes returns the classification prefixes.
func (s *Snapshot) Prefixes() Prefixes { return s.opts.Prefixes }

// Len returns the number of transactions, rejected ones included.
func (s *Snapshot) Len() int { return len(s.txs) }

// Transactions returns a copy of the transactions, in input order.
func (s *Snapshot) Transactions() []Transaction {
	c := make([]Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		c = append(c, tx.clone())
	}
	return c
}

// Accounts returns the accounts seen in the transactions.
func (s *Snapshot) Accounts() AccountSet { return s.accounts }

// Changes returns the daily changes. The map must not be modified.
func (s *Snapshot) Changes() DailyChangeMap { return s.changes }

// Rejected returns the transactions whose date could not be read.
func (s *Snapshot) Rejected() []*DateError { return slices.Clone(s.rejected) }

// Err joins all the rejected transactions errors, or returns nil.
func (s *Snapshot) Err() error {
	errs := make([]error, 0, len(s.rejected))
	for _, e := range s.rejected {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// FirstDate returns the earliest transaction day, false when there is none.
func (s *Snapshot) FirstDate() (date.Date, bool) {
	if len(s.entries) == 0 {
		return date.Date{}, false
	}
	return s.entries[0].day, true
}

// LastDate returns the latest transaction day, false when there is none.
func (s *Snapshot) LastDate() (date.Date, bool) {
	if len(s.entries) == 0 {
		return date.Date{}, false
	}
	return s.entries[len(s.entries)-1].day, true
}

// Classify returns the category of account.
func (s *Snapshot) Classify(account string) Category { return s.opts.Prefixes.Classify(account) }

// within iterates over the transactions of r, in chronological order.
func (s *Snapshot) within(r date.Range) iter.Seq2[date.Date, Transaction] {
	return func(yield func(date.Date, Transaction) bool) {
		if r.IsEmpty() {
			return
		}
		i, _ := slices.BinarySearchFunc(s.entries, r.From, func(e entry, d date.Date) int { return e.day.Compare(d) })
		for ; i < len(s.entries); i++ {
			e := s.entries[i]
			if e.day.After(r.To) {
				return
			}
			if !yield(e.day, e.tx) {
				return
			}
		}
	}
}

// Balances returns the dense balance map of r.
func (s *Snapshot) Balances(r date.Range) BalanceMap {
	return BuildBalanceMap(s.accounts.All, s.changes, r)
}

// BalancesAsOf returns every account balance at the end of day on.
func (s *Snapshot) BalancesAsOf(on date.Date) Balances {
	return BalancesAsOf(s.changes, on)
}
