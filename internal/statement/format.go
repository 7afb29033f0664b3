package statement

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/noah-isme/theater-billing/internal/pricing"
)

// Formatter renders an amount in minor units for display.
type Formatter interface {
	Format(amount pricing.Money) string
}

// USD formats cents as US dollars, e.g. 123456 -> "$1,234.56".
type USD struct{}

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// Format implements Formatter using integer arithmetic only.
func (USD) Format(amount pricing.Money) string {
	sign := ""
	abs := uint64(amount)
	if amount < 0 {
		sign = "-"
		// -(amount+1) stays in range for math.MinInt64
		abs = uint64(-(amount + 1)) + 1
	}
	major := abs / 100
	minor := abs % 100
	return fmt.Sprintf("%s$%s.%02d", sign, usdPrinter.Sprintf("%d", major), minor)
}
