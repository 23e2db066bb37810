package duty

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

var (
	ErrNotFound          = errors.New("duty definition not found")
	ErrInvalidDefinition = errors.New("invalid duty definition")
)

// Definition is a duty or tax ledger configured for a workspace.
type Definition struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Name        string
	Type        document.DutyType
	CalcMethod  document.CalcMethod
	Rate        decimal.Decimal
	FixedAmount decimal.Decimal
	ApplyOn     document.ApplyOn
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (d *Definition) toDocument() document.DutyDefinition {
	return document.DutyDefinition{
		ID:          d.ID.String(),
		Name:        d.Name,
		Type:        d.Type,
		CalcMethod:  d.CalcMethod,
		Rate:        d.Rate,
		FixedAmount: d.FixedAmount,
		ApplyOn:     d.ApplyOn,
		IsDefault:   d.IsDefault,
	}
}
