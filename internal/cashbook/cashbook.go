package cashbook

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/money"
)

var ErrNotFound = errors.New("cashbook entry not found")

// Row is one line of a day's income or expense column. Amount keeps the text
// as entered.
type Row struct {
	ID          string `json:"id"`
	Particulars string `json:"particulars"`
	Amount      string `json:"amount"`
}

// Entry is a workspace's cashbook for one day.
type Entry struct {
	ID           uuid.UUID
	WorkspaceID  uuid.UUID
	Date         time.Time
	IncomeRows   []Row
	ExpenseRows  []Row
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// settle drops rows without particulars and recomputes the totals.
func (e *Entry) settle() {
	e.IncomeRows = dropBlank(e.IncomeRows)
	e.ExpenseRows = dropBlank(e.ExpenseRows)
	e.IncomeTotal = total(e.IncomeRows)
	e.ExpenseTotal = total(e.ExpenseRows)
	e.Balance = e.IncomeTotal.Sub(e.ExpenseTotal)
}

func (e *Entry) mentions(s string) bool {
	for _, r := range e.IncomeRows {
		if strings.Contains(r.Particulars, s) {
			return true
		}
	}

	for _, r := range e.ExpenseRows {
		if strings.Contains(r.Particulars, s) {
			return true
		}
	}

	return false
}

func dropBlank(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Particulars) == "" {
			continue
		}

		out = append(out, r)
	}

	return out
}

func total(rows []Row) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(money.Parse(r.Amount))
	}

	return sum
}
