package document

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/money"
)

// valueLine derives a line's taxable and gross amounts from its raw quantity,
// raw rate and tax rate.
func valueLine(item LineItem) LineItem {
	taxable := money.Parse(item.Qty).Mul(money.Parse(item.Rate))

	item.TaxableAmount = taxable
	item.GrossAmount = taxable.Add(money.Percent(taxable, item.TaxRatePercent))

	return item
}

// valueLines revalues every line in place and returns the taxable subtotal and
// the tax total across all of them.
func valueLines(lines []LineItem) (decimal.Decimal, decimal.Decimal) {
	subtotal, tax := decimal.Zero, decimal.Zero

	for i := range lines {
		lines[i] = valueLine(lines[i])
		subtotal = subtotal.Add(lines[i].TaxableAmount)
		tax = tax.Add(money.Percent(lines[i].TaxableAmount, lines[i].TaxRatePercent))
	}

	return subtotal, tax
}
