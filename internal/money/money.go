// Package money reads user-entered amounts and applies the rounding rules used
// when settling bills and invoices.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]`)
	leadingNumber = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
	half          = decimal.New(5, -1)
)

// Parse reads an amount typed by a user. Every character except digits, '.' and
// '-' is dropped and the longest numeric prefix of what remains is used, so
// partial or decorated input such as "1,2", "12." or "₹ 1,200.50" never fails.
// Anything that still does not read as a number is zero.
//
// Examples: "1,234.50" -> 1234.5, "abc" -> 0, "" -> 0, "1-2" -> 1, "-.5" -> -0.5.
func Parse(raw string) decimal.Decimal {
	clean := nonNumeric.ReplaceAllString(raw, "")

	num := strings.TrimSuffix(leadingNumber.FindString(clean), ".")
	if num == "" {
		return decimal.Zero
	}

	switch {
	case strings.HasPrefix(num, "-."):
		num = "-0" + num[1:]
	case strings.HasPrefix(num, "."):
		num = "0" + num
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// Percent returns pct percent of amount.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Shift(-2)
}

// RoundHalfUp rounds d to the given number of decimal places, with halves
// going towards positive infinity (-2.5 rounds to -2, 2.5 rounds to 3).
func RoundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}

// Whole rounds d to a whole currency unit.
func Whole(d decimal.Decimal) decimal.Decimal {
	return RoundHalfUp(d, 0)
}

// Sum adds up amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	return total
}
