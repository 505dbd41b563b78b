// Package renderer turns the dashboard figures into markdown reports.
package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter formats amounts with a currency symbol.
type Formatter struct {
	money *money.Formatter
}

// NewFormatter returns a formatter of amounts in cents, with the symbol in front
// ("$1,234.50").
func NewFormatter(symbol string) Formatter {
	return Formatter{money: money.NewFormatter(2, ".", ",", symbol, "$1")}
}

// Amount formats d, rounded to the cent.
func (f Formatter) Amount(d decimal.Decimal) string {
	return f.money.Format(d.Shift(2).Round(0).IntPart())
}

// Signed formats d with an explicit sign, and "-" for zero.
func (f Formatter) Signed(d decimal.Decimal) string {
	switch {
	case d.Round(2).IsZero():
		return "-"
	case d.IsPositive():
		return "+" + f.Amount(d)
	default:
		return f.Amount(d)
	}
}

// Percent formats a ratio as a percentage ("85.00%").
func Percent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}
