package receipt

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lenteradev69/barbershits/internal/domain"
)

func TestRenderCashReceipt(t *testing.T) {
	tx := domain.Transaction{
		ID:       "tx-1",
		Date:     time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
		Customer: &domain.Customer{ID: "c1", Name: "Budi Santoso"},
		Items: []domain.CartItem{
			{ID: "s1", Name: "Regular Haircut", Price: 50000, Quantity: 2, Type: domain.ItemTypeService},
		},
		Subtotal:      100000,
		Discount:      10,
		Total:         90000,
		PaymentMethod: domain.PaymentCash,
		Cash:          &domain.CashDetails{Received: 100000, Change: 10000},
	}

	out := Render(tx)

	for _, want := range []string{
		"Customer: Budi Santoso",
		"Regular Haircut x2",
		"Rp 100.000",
		"Total    : Rp 90.000",
		"Bayar    : Rp 100.000",
		"Kembali  : Rp 10.000",
	} {
		if !strings.Contains(out.PreviewText, want) {
			t.Fatalf("preview missing %q:\n%s", want, out.PreviewText)
		}
	}
	if out.FileName != "receipt-tx-1.bin" {
		t.Fatalf("file name: got %q", out.FileName)
	}
	if !bytes.HasPrefix(out.Escpos, []byte{0x1b, 0x40}) {
		t.Fatalf("escpos must start with the init sequence")
	}
	if !bytes.HasSuffix(out.Escpos, []byte{0x1d, 0x56, 0x41, 0x10}) {
		t.Fatalf("escpos must end with the cut sequence")
	}
}

func TestRenderGuestQrisReceipt(t *testing.T) {
	tx := domain.Transaction{
		ID:   "tx-2",
		Date: time.Date(2025, 3, 14, 11, 0, 0, 0, time.UTC),
		Items: []domain.CartItem{
			{ID: "p1", Name: "Pomade", Price: 85000, Quantity: 1, Type: domain.ItemTypeProduct},
		},
		Subtotal:      85000,
		Total:         85000,
		PaymentMethod: domain.PaymentQris,
	}

	out := Render(tx)

	if !strings.Contains(out.PreviewText, "Customer: Guest") {
		t.Fatalf("guest receipt must name the customer Guest:\n%s", out.PreviewText)
	}
	if strings.Contains(out.PreviewText, "Bayar") || strings.Contains(out.PreviewText, "Kembali") {
		t.Fatalf("qris receipt must not show cash lines:\n%s", out.PreviewText)
	}
	if strings.Contains(out.PreviewText, "Diskon") {
		t.Fatalf("receipt without a discount must not show a discount line:\n%s", out.PreviewText)
	}
}
