package scaling

import (
	"math"

	"github.com/Rhymond/go-money"
)

// FormatCurrency renders a value with the same magnitude scaling as
// Format, then formats the scaled quotient through currency-aware
// formatting. The scaling-unit suffix is appended after the
// currency-formatted number ("CHF 1.50M").
func (f *Formatter) FormatCurrency(value float64, locale, currency string) Result {
	result := f.Format(value, locale)

	fraction := 2
	if cur := money.GetCurrency(currency); cur != nil {
		fraction = cur.Fraction
	}
	minor := math.Round(result.Value * math.Pow10(fraction))
	display := money.New(int64(minor), currency).Display()

	if result.Unit == "" {
		result.Formatted = display
		return result
	}

	if f.Config().UseAbbreviated {
		result.Formatted = display + result.Unit
	} else {
		result.Formatted = display + " " + result.Unit
	}
	return result
}
