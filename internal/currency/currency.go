package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatIDR renders a rupiah amount the way receipts and the register
// display it, with Indonesian digit grouping: 50000 becomes
// "Rp 50.000".
func FormatIDR(amount int64) string {
	return printer.Sprintf("Rp %v", number.Decimal(amount))
}
