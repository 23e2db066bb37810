package view

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func send(m EditorModel, msgs ...tea.Msg) EditorModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(EditorModel)
	}

	return m
}

func typeText(m EditorModel, s string) EditorModel {
	for _, r := range s {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return m
}

func blankEditor() EditorModel {
	doc := document.Initialize(document.InitParams{
		Direction: document.DirectionPurchase,
		Today:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Definitions: []document.DutyDefinition{
			{ID: "freight", Name: "Freight", CalcMethod: document.CalcFixed, FixedAmount: decimal.NewFromInt(20), IsDefault: true},
		},
	})

	return EditorModel{}.WithDocument(doc)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestEditor_LiveRecompute(t *testing.T) {
	m := blankEditor()
	require.Len(t, m.cells, len(lineColumns)+3)

	m = send(m, key(tea.KeyTab), key(tea.KeyTab))
	m = typeText(m, "4")
	m = send(m, key(tea.KeyTab))
	m = typeText(m, "25")
	m = send(m, key(tea.KeyTab))
	m = typeText(m, "18")

	assertAmount(t, "100", m.doc.TaxableSubtotal)
	assertAmount(t, "18", m.doc.TaxTotal)
	assertAmount(t, "138", m.doc.GrandTotal)

	assert.Equal(t, "100.00", m.cells[len(lineColumns)].input.Value())
	assert.Equal(t, "18.00", m.cells[len(lineColumns)+1].input.Value())
}

func TestEditor_SubtotalOverride(t *testing.T) {
	m := blankEditor()

	m = send(m, key(tea.KeyTab), key(tea.KeyTab))
	m = typeText(m, "3")
	m = send(m, key(tea.KeyTab))
	m = typeText(m, "10")

	for range len(lineColumns) - 3 {
		m = send(m, key(tea.KeyTab))
	}

	require.Equal(t, cellSubtotal, m.cells[m.focus].kind)

	m = send(m, key(tea.KeyCtrlU))
	m = typeText(m, "45.5")

	assertAmount(t, "45.5", m.doc.TaxableSubtotal)
	assertAmount(t, "65.5", m.doc.RawTotal())
	assertAmount(t, "66", m.doc.GrandTotal)
	assertAmount(t, "0.5", m.doc.RoundOff)
	assert.Equal(t, "45.5", m.cells[m.focus].input.Value())

	// Editing a line re-derives the subtotal from the lines.
	m = send(m, key(tea.KeyShiftTab), key(tea.KeyShiftTab), key(tea.KeyShiftTab))
	require.Equal(t, document.FieldRate, m.cells[m.focus].field)

	m = typeText(m, "0")

	assertAmount(t, "300", m.doc.TaxableSubtotal)
	assert.Equal(t, "300.00", m.cells[len(lineColumns)].input.Value())
}

func TestEditor_AddAndRemoveLines(t *testing.T) {
	m := blankEditor()

	m = send(m, key(tea.KeyCtrlN))

	require.Len(t, m.doc.Lines, 2)
	require.Len(t, m.cells, 2*len(lineColumns)+3)
	assert.Equal(t, m.doc.Lines[1].ID, m.cells[m.focus].lineID)

	m = send(m, key(tea.KeyCtrlD))

	require.Len(t, m.doc.Lines, 1)
	assert.Len(t, m.cells, len(lineColumns)+3)
}

func TestPeriodRange(t *testing.T) {
	type testCase struct {
		name      string
		period    Period
		now       time.Time
		wantStart string
		wantEnd   string
	}

	feb := time.Date(2024, 2, 15, 18, 30, 0, 0, time.UTC)
	april := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	tests := []testCase{
		{"Today", PeriodToday, feb, "2024-02-15", "2024-02-15"},
		{"ThisMonth", PeriodThisMonth, feb, "2024-02-01", "2024-02-15"},
		{"LastMonth", PeriodLastMonth, feb, "2024-01-01", "2024-01-31"},
		{"LastMonthAcrossYear", PeriodLastMonth, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "2023-12-01", "2023-12-31"},
		{"ThisFinancialYear", PeriodThisFinancialYear, feb, "2023-04-01", "2024-02-15"},
		{"FinancialYearOpensInApril", PeriodThisFinancialYear, april, "2024-04-01", "2024-04-01"},
		{"LastFinancialYear", PeriodLastFinancialYear, feb, "2022-04-01", "2023-03-31"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := PeriodRange(tc.period, tc.now)

			assert.Equal(t, tc.wantStart, FormatDate(start))
			assert.Equal(t, tc.wantEnd, FormatDate(end))
		})
	}

	start, end := PeriodRange(PeriodAll, feb)
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "1,234.50", FormatAmount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "12.35", FormatAmount(decimal.RequireFromString("12.345")))
}
