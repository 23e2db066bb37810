package document

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/money"
)

// Field names an editable column of a line item.
type Field string

const (
	FieldItemName Field = "itemName"
	FieldHSNCode  Field = "hsnCode"
	FieldQty      Field = "qty"
	FieldRate     Field = "rate"
	FieldTaxRate  Field = "taxRate"
	FieldUnit     Field = "unit"
)

// ParseField maps a column name onto a Field.
func ParseField(s string) (Field, bool) {
	f := Field(s)
	switch f {
	case FieldItemName, FieldHSNCode, FieldQty, FieldRate, FieldTaxRate, FieldUnit:
		return f, true
	}

	return "", false
}

// StockMatch is what the stock master knows about an item.
type StockMatch struct {
	HSNCode        string
	Rate           decimal.Decimal
	TaxRatePercent decimal.Decimal
	Unit           string
}

// StockLookup finds a stock item by name. Implementations match on the
// trimmed name, ignoring case.
type StockLookup interface {
	Find(name string) (StockMatch, bool)
}

// AddLineItem appends a blank line and recomputes.
func AddLineItem(doc Document) Document {
	out := doc.clone()
	out.Lines = append(out.Lines, newLineItem())

	return Recompute(out, None)
}

// RemoveLineItem drops the line with the given id and recomputes. Removing the
// last remaining line leaves a fresh blank one in its place.
func RemoveLineItem(doc Document, lineID string) Document {
	out := doc.clone()
	out.Lines = slices.DeleteFunc(out.Lines, func(l LineItem) bool {
		return l.ID == lineID
	})

	if len(out.Lines) == 0 {
		out.Lines = append(out.Lines, newLineItem())
	}

	return Recompute(out, None)
}

// UpdateLineItem writes raw into one column of a line and recomputes. Setting
// the item name to a name the stock lookup knows fills in the HSN code, rate,
// tax rate and unit from the stock master. stock may be nil.
func UpdateLineItem(doc Document, lineID string, field Field, raw string, stock StockLookup) Document {
	out := doc.clone()

	idx := slices.IndexFunc(out.Lines, func(l LineItem) bool {
		return l.ID == lineID
	})
	if idx < 0 {
		return Recompute(out, None)
	}

	line := out.Lines[idx]

	switch field {
	case FieldItemName:
		line.ItemName = raw

		if stock != nil {
			if m, ok := stock.Find(raw); ok {
				line.HSNCode = m.HSNCode
				line.Rate = m.Rate.String()
				line.TaxRatePercent = m.TaxRatePercent
				line.Unit = cmp.Or(m.Unit, defaultUnit)
			}
		}
	case FieldHSNCode:
		line.HSNCode = raw
	case FieldQty:
		line.Qty = raw
	case FieldRate:
		line.Rate = raw
	case FieldTaxRate:
		line.TaxRatePercent = money.Parse(raw)
	case FieldUnit:
		line.Unit = raw
	}

	out.Lines[idx] = line

	return Recompute(out, None)
}
