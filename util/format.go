package util

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PriceFormatter renders amounts with the grouping rules of a display locale.
type PriceFormatter struct {
	printer *message.Printer
}

// NewPriceFormatter builds a formatter for a BCP 47 tag. Unknown tags fall
// back to English.
func NewPriceFormatter(locale string) *PriceFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &PriceFormatter{printer: message.NewPrinter(tag)}
}

// Format renders an amount without currency symbol, e.g. 1,500 or 1,500.5.
func (f *PriceFormatter) Format(amount float64) string {
	if amount == math.Trunc(amount) && math.Abs(amount) < 1e15 {
		return f.printer.Sprintf("%d", int64(amount))
	}
	return f.printer.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}

// FormatWithSymbol prefixes the formatted amount with a dollar sign.
func (f *PriceFormatter) FormatWithSymbol(amount float64) string {
	return "$" + f.Format(amount)
}
