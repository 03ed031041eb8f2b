// Package money formats prices for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders v in US dollars with two decimals, e.g. "$1,024.50".
func Format(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// Delta renders a price delta as "+$2.00", or "Included" when it is zero.
func Delta(v float64) string {
	if v == 0 {
		return "Included"
	}
	return "+" + Format(v)
}
