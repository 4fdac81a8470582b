package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NairaSymbol is prefixed to every formatted amount.
const NairaSymbol = "₦"

var nairaLocale = language.MustParse("en-NG")

// FormatNaira renders an amount as Naira with grouped thousands and two decimals.
// Example: 1234567.891 returns "₦1,234,567.89"
func FormatNaira(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	p := message.NewPrinter(nairaLocale)
	if rounded.IsNegative() {
		return "-" + NairaSymbol + p.Sprintf("%.2f", rounded.Abs().InexactFloat64())
	}
	return NairaSymbol + p.Sprintf("%.2f", rounded.InexactFloat64())
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
