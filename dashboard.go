package ledgerdash

import (
	"github.com/etnz/ledgerdash/date"
)

// Dashboard gathers every artifact of one month.
type Dashboard struct {
	Snapshot     string       `json:"snapshot"`
	Month        string       `json:"month"`
	KPI          KPI          `json:"kpi"`
	Trend        []MonthPoint `json:"trend"`
	Activity     []DailyPoint `json:"activity"`
	Daily        []DailyPoint `json:"daily"`
	Flow         FlowGraph    `json:"flow"`
	Treemap      DualTreemap  `json:"treemap"`
	Transfers    []Transfer   `json:"transfers"`
	Rejected     int          `json:"rejected"`
	Unreconciled int          `json:"unreconciled"`
}

// Dashboard computes the dashboard of the month containing month.
//
// now clamps the treemap cutoff, and trendMonths is the length of the monthly
// trend ending with month.
func (s *Snapshot) Dashboard(month, now date.Date, trendMonths int) *Dashboard {
	r := date.Month(month)
	return &Dashboard{
		Snapshot:     s.ID(),
		Month:        r.Identifier(),
		KPI:          s.KPI(r),
		Trend:        s.Trend(trendMonths, month),
		Activity:     s.ActivityTrend(r),
		Daily:        s.DailySeries(r),
		Flow:         s.Flow(r),
		Treemap:      s.Treemap(month, now),
		Transfers:    s.Transfers(r),
		Rejected:     len(s.rejected),
		Unreconciled: len(s.Unreconciled()),
	}
}
