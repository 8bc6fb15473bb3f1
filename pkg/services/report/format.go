package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// money renders a currency amount with the configured prefix, thousands
// separators and no decimal places.
func (c *Composer) money(v float64) string {
	return c.currency + " " + groupedAmount(v)
}

func groupedAmount(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.Scale(0)))
}
