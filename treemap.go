package ledgerdash

import (
	"github.com/etnz/ledgerdash/date"
	"github.com/shopspring/decimal"
)

// DualTreemap is the asset and liability breakdown at a cutoff day.
type DualTreemap struct {
	Cutoff      date.Date `json:"cutoff"`
	Assets      []*Node   `json:"assets"`
	Liabilities []*Node   `json:"liabilities"`
}

// Treemap returns the asset and liability hierarchies at the end of the month
// of month, or at now if that month is not over yet.
//
// Balances are shown as magnitudes, and those smaller than the dust threshold
// are left out.
func (s *Snapshot) Treemap(month, now date.Date) DualTreemap {
	cutoff := month.EndOf(date.Monthly)
	if cutoff.After(now) {
		cutoff = now
	}
	balances := s.BalancesAsOf(cutoff)

	p := s.opts.Prefixes
	assets := make(map[string]decimal.Decimal)
	liabilities := make(map[string]decimal.Decimal)
	for account, v := range balances {
		v = v.Abs()
		if v.LessThan(s.opts.DustThreshold) {
			continue
		}
		switch p.Classify(account) {
		case Asset:
			assets[account] = v
		case Liability:
			liabilities[account] = v
		}
	}
	return DualTreemap{
		Cutoff:      cutoff,
		Assets:      BuildHierarchy(assets, p.Asset),
		Liabilities: BuildHierarchy(liabilities, p.Liability),
	}
}
