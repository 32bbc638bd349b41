// Package money formats amounts the way the storefront displays them:
// Peruvian Sol with es-PE number conventions and two fraction digits.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders PEN amounts for display.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

func NewFormatter() *Formatter {
	return &Formatter{
		printer: message.NewPrinter(language.MustParse("es-PE")),
		symbol:  "S/",
	}
}

func (f *Formatter) Format(amount float64) string {
	return f.symbol + " " + f.printer.Sprintf("%.2f", amount)
}
