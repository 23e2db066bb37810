package stock

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

var ErrNotFound = errors.New("stock item not found")

// DefaultUnit is the unit given to items registered without one.
const DefaultUnit = "PCS"

// Item is an entry of a workspace's stock master.
type Item struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Name        string
	HSN         string
	Unit        string
	Rate        decimal.Decimal
	TaxRate     decimal.Decimal
	InStock     decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Key is the form item names are compared in: trimmed and case-folded.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
