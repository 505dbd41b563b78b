package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/ledgerdash/date"
)

// periodFlags selects a date range: the month of -month, or -from to -to.
type periodFlags struct {
	month string
	from  string
	to    string
}

func (p *periodFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "month", "", "A day of the month to report on (defaults to today)")
	f.StringVar(&p.from, "from", "", "First day of a custom period, used with -to")
	f.StringVar(&p.to, "to", "", "Last day of a custom period, used with -from")
}

// Range returns the selected range.
func (p *periodFlags) Range() (date.Range, error) {
	if p.from == "" && p.to == "" {
		month, err := parseDay("month", p.month)
		if err != nil {
			return date.Range{}, err
		}
		return date.Month(month), nil
	}
	if p.month != "" {
		return date.Range{}, fmt.Errorf("-month cannot be combined with -from and -to")
	}
	from, err := parseDay("from", p.from)
	if err != nil {
		return date.Range{}, err
	}
	to, err := parseDay("to", p.to)
	if err != nil {
		return date.Range{}, err
	}
	return date.NewRange(from, to), nil
}

// parseDay parses the date flag value of name.
func parseDay(name, value string) (date.Date, error) {
	d, err := date.ParseFlag(value)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid -%s %q: %w", name, value, err)
	}
	return d, nil
}
