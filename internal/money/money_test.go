package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/khata/internal/money"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name string
		raw  string
		want string
	}

	tests := []testCase{
		{name: "Plain", raw: "25.50", want: "25.5"},
		{name: "Empty", raw: "", want: "0"},
		{name: "Letters", raw: "abc", want: "0"},
		{name: "GroupingSeparators", raw: "1,23,456.75", want: "123456.75"},
		{name: "CurrencySymbol", raw: "₹ 1,200.50", want: "1200.5"},
		{name: "PartialComma", raw: "1,2", want: "12"},
		{name: "TrailingDot", raw: "12.", want: "12"},
		{name: "LeadingDot", raw: ".5", want: "0.5"},
		{name: "NegativeLeadingDot", raw: "-.5", want: "-0.5"},
		{name: "Negative", raw: "-40", want: "-40"},
		{name: "LoneMinus", raw: "-", want: "0"},
		{name: "DoubleMinus", raw: "--5", want: "0"},
		{name: "MinusInside", raw: "1-2", want: "1"},
		{name: "SecondDot", raw: "12.5.3", want: "12.5"},
		{name: "Whitespace", raw: "  42 ", want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.Parse(tt.raw)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	type testCase struct {
		in     string
		places int32
		want   string
	}

	tests := []testCase{
		{in: "99.6", places: 0, want: "100"},
		{in: "99.5", places: 0, want: "100"},
		{in: "99.49", places: 0, want: "99"},
		{in: "-2.5", places: 0, want: "-2"},
		{in: "-2.51", places: 0, want: "-3"},
		{in: "10.005", places: 2, want: "10.01"},
		{in: "10.004", places: 2, want: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := money.RoundHalfUp(decimal.RequireFromString(tt.in), tt.places)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestPercent(t *testing.T) {
	got := money.Percent(decimal.NewFromInt(1180), decimal.NewFromInt(2))
	assert.Equal(t, "23.6", got.String())
}
