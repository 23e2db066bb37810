package document

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/money"
)

// RawTotal is the exact payable amount before rounding: taxable subtotal, tax
// and every duty.
func (doc Document) RawTotal() decimal.Decimal {
	total := doc.TaxableSubtotal.Add(doc.TaxTotal)
	for _, d := range doc.Duties {
		total = total.Add(d.Amount)
	}

	return total
}

// settle rounds the raw total to a whole unit and records the difference.
// RoundOff is kept exact so that GrandTotal == RawTotal + RoundOff holds.
// GrandTotal is never clamped; a negative total is left for the caller to reject.
func settle(doc *Document) {
	raw := doc.RawTotal()

	doc.GrandTotal = money.Whole(raw)
	doc.RoundOff = doc.GrandTotal.Sub(raw)
}
