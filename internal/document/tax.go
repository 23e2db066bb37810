package document

import "github.com/shopspring/decimal"

// TaxBreakdown is the settled tax total split by GST component.
type TaxBreakdown struct {
	CGST decimal.Decimal
	SGST decimal.Decimal
	IGST decimal.Decimal
}

// TaxSplit splits the document's tax total: halves into central and state
// tax within a state, all integrated tax across states.
func TaxSplit(doc Document) TaxBreakdown {
	if doc.GSTType == GSTInterState {
		return TaxBreakdown{CGST: decimal.Zero, SGST: decimal.Zero, IGST: doc.TaxTotal}
	}

	half := doc.TaxTotal.Div(decimal.NewFromInt(2))

	return TaxBreakdown{
		CGST: half,
		SGST: doc.TaxTotal.Sub(half),
		IGST: decimal.Zero,
	}
}
