package billing

import (
	"fmt"
	"strings"

	"github.com/agrovia/kiosk-service/config"
	"github.com/agrovia/kiosk-service/internal/model"
)

const receiptWidth = 40

// RenderReceipt formats a finalized bill as the printable till receipt:
// kiosk header, line items, totals, payment details and the bill code line
// the barcode is printed from. Read-only over the bill.
func RenderReceipt(bill *model.Bill, kiosk config.KioskConfig) string {
	var b strings.Builder
	divider := strings.Repeat("-", receiptWidth)
	cur := kiosk.CurrencySymbol

	center(&b, kiosk.Name)
	center(&b, kiosk.Tagline)
	center(&b, kiosk.Location)
	b.WriteString(divider + "\n")

	row(&b, "Bill No:", bill.BillCode)
	row(&b, "Date:", bill.Timestamp.Format("02 Jan 2006"))
	row(&b, "Time:", bill.Timestamp.Format("15:04"))
	row(&b, "Payment:", strings.ToUpper(string(bill.PaymentMethod)))
	b.WriteString(divider + "\n")

	fmt.Fprintf(&b, "%-22s %5s %11s\n", "Item", "Qty", "Amount")
	for _, item := range bill.Items {
		name := item.ProductName
		if len(name) > 22 {
			name = name[:22]
		}
		fmt.Fprintf(&b, "%-22s %5d %11s\n", name, item.Quantity, cur+item.Total.StringFixed(2))
	}
	b.WriteString(divider + "\n")

	row(&b, "Subtotal", cur+bill.Total.StringFixed(2))
	row(&b, "Tax (0%)", cur+"0.00")
	row(&b, "TOTAL", cur+bill.Total.StringFixed(2))
	b.WriteString(divider + "\n")

	center(&b, "Thank you for shopping!")
	center(&b, "Kiosk ID: "+kiosk.KioskID)
	center(&b, "This is a computer generated bill")
	b.WriteString("\n")
	center(&b, "*"+bill.BillCode+"*")
	return b.String()
}

func center(b *strings.Builder, s string) {
	pad := (receiptWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-*s%s\n", receiptWidth-len(value), label, value)
}
