package ledgerdash

import (
	"github.com/etnz/ledgerdash/date"
	"github.com/shopspring/decimal"
)

// DailyPoint is the income and expense of one day, with the running balance
// of the series it belongs to.
type DailyPoint struct {
	Day     date.Date       `json:"day"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"` // cumulative Income - Expense since the start of the series
}

// MonthPoint is the KPI of one month of a trend.
type MonthPoint struct {
	Month string `json:"month"` // "2006-01"
	KPI
}

// dailyFlows reduces the transactions of r per day.
func (s *Snapshot) dailyFlows(r date.Range) map[date.Date]flows {
	days := make(map[date.Date]flows)
	for day, tx := range s.within(r) {
		f := days[day]
		for _, l := range tx.Lines {
			f.add(s.opts.Prefixes, l)
		}
		days[day] = f
	}
	return days
}

// ActivityTrend returns one point per day of r with income or expense, in
// chronological order. Days without activity are omitted.
func (s *Snapshot) ActivityTrend(r date.Range) []DailyPoint {
	return s.series(r, true)
}

// DailySeries returns one point per day of r, boundaries included. Days
// without activity are zero so that the series has a continuous axis.
func (s *Snapshot) DailySeries(r date.Range) []DailyPoint {
	return s.series(r, false)
}

func (s *Snapshot) series(r date.Range, skipIdle bool) []DailyPoint {
	days := s.dailyFlows(r)
	points := make([]DailyPoint, 0, len(days))
	net := decimal.Zero
	for day := range r.Days() {
		f := days[day]
		if skipIdle && f.isZero() {
			continue
		}
		net = net.Add(f.balance())
		points = append(points, DailyPoint{Day: day, Income: f.income, Expense: f.expense, Net: net})
	}
	return points
}

// MaxTrendMonths is the longest trend a snapshot computes.
const MaxTrendMonths = 120

// Trend returns the KPI of the months consecutive months ending with the
// month of now, oldest first. months is capped to MaxTrendMonths.
func (s *Snapshot) Trend(months int, now date.Date) []MonthPoint {
	if months <= 0 {
		return []MonthPoint{}
	}
	months = min(months, MaxTrendMonths)
	points := make([]MonthPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := date.Month(now.AddMonth(-i))
		points = append(points, MonthPoint{Month: month.Identifier(), KPI: s.KPI(month)})
	}
	return points
}
