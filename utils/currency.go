package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a price as a localized USD display string,
// e.g. 156.75 -> "$156.75", 12500 -> "$12,500.00". Display concern only;
// pricing math stays in raw currency units.
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%v",
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
