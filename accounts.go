package ledgerdash

import (
	"slices"
	"strings"
)

// Separator splits account paths into segments.
const Separator = ":"

// Category is the accounting category of an account.
type Category int

const (
	Unclassified Category = iota
	Asset
	Liability
	Income
	Expense
)

func (c Category) String() string {
	switch c {
	case Asset:
		return "asset"
	case Liability:
		return "liability"
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unclassified"
	}
}

// Prefixes are the account path prefixes of each category.
//
// They are the only signal used to classify accounts.
type Prefixes struct {
	Asset     string `json:"asset" yaml:"asset"`
	Liability string `json:"liability" yaml:"liability"`
	Income    string `json:"income" yaml:"income"`
	Expense   string `json:"expense" yaml:"expense"`
}

// DefaultPrefixes returns the usual ledger top level accounts.
func DefaultPrefixes() Prefixes {
	return Prefixes{
		Asset:     "Assets",
		Liability: "Liabilities",
		Income:    "Income",
		Expense:   "Expenses",
	}
}

// Prefix returns the configured prefix of a category.
func (p Prefixes) Prefix(c Category) string {
	switch c {
	case Asset:
		return p.Asset
	case Liability:
		return p.Liability
	case Income:
		return p.Income
	case Expense:
		return p.Expense
	default:
		return ""
	}
}

// Classify returns the category of account. When several prefixes match, the
// longest one wins.
func (p Prefixes) Classify(account string) Category {
	best, bestLen := Unclassified, -1
	for _, c := range []Category{Asset, Liability, Income, Expense} {
		prefix := p.Prefix(c)
		if prefix != "" && IsUnder(account, prefix) && len(prefix) > bestLen {
			best, bestLen = c, len(prefix)
		}
	}
	return best
}

// IsUnder reports whether account is prefix itself or one of its descendants.
// Matching is done on whole segments: "Assets:Bank" is not under "Assets:Ban".
func IsUnder(account, prefix string) bool {
	return account == prefix || strings.HasPrefix(account, prefix+Separator)
}

// categoryKey returns the aggregation key of account for flow diagrams: the
// first segment below prefix, or the top segment when there is none.
func categoryKey(account, prefix string) string {
	rest := strings.TrimPrefix(account, prefix+Separator)
	if rest != account && rest != "" {
		first, _, _ := strings.Cut(rest, Separator)
		return first
	}
	top, _, _ := strings.Cut(account, Separator)
	return top
}

// AccountSet is the partition of the distinct accounts of a Snapshot.
//
// Every list is sorted alphabetically.
type AccountSet struct {
	All          []string `json:"all"`
	Assets       []string `json:"assets"`
	Liabilities  []string `json:"liabilities"`
	Income       []string `json:"income"`
	Expenses     []string `json:"expenses"`
	Unclassified []string `json:"unclassified,omitempty"`
}

// NewAccountSet collects the distinct accounts of txs and partitions them.
func NewAccountSet(txs []Transaction, p Prefixes) AccountSet {
	seen := make(map[string]struct{})
	var s AccountSet
	for _, tx := range txs {
		for _, l := range tx.Lines {
			if l.Account == "" {
				continue
			}
			if _, ok := seen[l.Account]; ok {
				continue
			}
			seen[l.Account] = struct{}{}
			s.All = append(s.All, l.Account)
		}
	}
	slices.Sort(s.All)
	for _, a := range s.All {
		switch p.Classify(a) {
		case Asset:
			s.Assets = append(s.Assets, a)
		case Liability:
			s.Liabilities = append(s.Liabilities, a)
		case Income:
			s.Income = append(s.Income, a)
		case Expense:
			s.Expenses = append(s.Expenses, a)
		default:
			s.Unclassified = append(s.Unclassified, a)
		}
	}
	return s
}

// Contains reports whether account is known.
func (s AccountSet) Contains(account string) bool {
	_, found := slices.BinarySearch(s.All, account)
	return found
}
