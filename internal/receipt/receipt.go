package receipt

import (
	"fmt"
	"strings"

	"github.com/lenteradev69/barbershits/internal/currency"
	"github.com/lenteradev69/barbershits/internal/domain"
)

// Output is a rendered receipt: plain text for the screen and raw
// ESC/POS bytes for a thermal printer.
type Output struct {
	PreviewText string
	Escpos      []byte
	FileName    string
}

// Render lays out the receipt for a completed transaction.
func Render(tx domain.Transaction) Output {
	customerName := "Guest"
	if tx.Customer != nil {
		customerName = tx.Customer.Name
	}

	lines := []string{
		"Barbershop POS",
		"========================",
		"TX: " + tx.ID,
		"Customer: " + customerName,
		"Date: " + tx.Date.Format("2006-01-02 15:04:05"),
		"------------------------",
	}
	for _, item := range tx.Items {
		lines = append(lines, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
		lines = append(lines, "  "+currency.FormatIDR(item.Price*int64(item.Quantity)))
	}
	lines = append(lines,
		"------------------------",
		"Subtotal : "+currency.FormatIDR(tx.Subtotal),
	)
	if tx.Discount > 0 {
		lines = append(lines, fmt.Sprintf("Diskon   : %g%% (-%s)",
			tx.Discount, currency.FormatIDR(tx.Subtotal-tx.Total)))
	}
	lines = append(lines,
		"Total    : "+currency.FormatIDR(tx.Total),
		"Metode   : "+tx.PaymentMethod,
	)
	if tx.Cash != nil {
		lines = append(lines,
			"Bayar    : "+currency.FormatIDR(tx.Cash.Received),
			"Kembali  : "+currency.FormatIDR(tx.Cash.Change),
		)
	}
	lines = append(lines,
		"========================",
		"Terima kasih",
		"",
	)

	escpos := []byte{0x1b, 0x40}
	for _, line := range lines {
		escpos = append(escpos, []byte(line)...)
		escpos = append(escpos, '\n')
	}
	escpos = append(escpos, []byte{0x1d, 0x56, 0x41, 0x10}...)

	return Output{
		PreviewText: strings.Join(lines, "\n"),
		Escpos:      escpos,
		FileName:    fmt.Sprintf("receipt-%s.bin", tx.ID),
	}
}
