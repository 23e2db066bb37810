package document

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction tells whether a document records a purchase or a sale. It only
// affects labels; the arithmetic is identical.
type Direction string

const (
	DirectionPurchase Direction = "purchase"
	DirectionSale     Direction = "sale"
)

// Status represents the payment state of a document.
type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
)

// GSTType selects how the aggregate tax is split for reporting.
type GSTType string

const (
	GSTIntraState GSTType = "Intra-State"
	GSTInterState GSTType = "Inter-State"
)

// CalcMethod is how a duty derives its amount.
type CalcMethod string

const (
	CalcPercentage CalcMethod = "Percentage"
	CalcFixed      CalcMethod = "Fixed"
)

// ApplyOn is the base a percentage duty is applied to.
type ApplyOn string

const (
	ApplyOnSubtotal ApplyOn = "Subtotal"
	ApplyOnNetTotal ApplyOn = "Net Total"
)

// DutyType labels a duty as a charge or a deduction. Both are added to the
// total as-is; a deduction is expected to carry a negative amount.
type DutyType string

const (
	DutyTypeCharge    DutyType = "Charge"
	DutyTypeDeduction DutyType = "Deduction"
)

// LineItem is one row of a bill or invoice. Qty and Rate hold the raw text the
// user typed; TaxableAmount and GrossAmount are derived from them.
type LineItem struct {
	ID             string
	ItemName       string
	HSNCode        string
	Qty            string
	Rate           string
	Unit           string
	TaxRatePercent decimal.Decimal

	TaxableAmount decimal.Decimal
	GrossAmount   decimal.Decimal
}

// DutyCharge is a duty or tax ledger line attached to a document.
type DutyCharge struct {
	ID          string
	Name        string
	Type        DutyType
	CalcMethod  CalcMethod
	Rate        decimal.Decimal
	FixedAmount decimal.Decimal
	ApplyOn     ApplyOn

	Amount decimal.Decimal
}

// DutyDefinition is a workspace's configured duty or tax ledger.
type DutyDefinition struct {
	ID          string
	Name        string
	Type        DutyType
	CalcMethod  CalcMethod
	Rate        decimal.Decimal
	FixedAmount decimal.Decimal
	ApplyOn     ApplyOn
	IsDefault   bool
}

// Document is a purchase bill or a sales invoice.
type Document struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Direction   Direction

	CounterpartyName  string
	CounterpartyTaxID string
	DocumentNumber    string
	Date              time.Time
	GSTType           GSTType
	Status            Status
	Description       string

	Lines []LineItem

	TaxableSubtotal decimal.Decimal
	TaxTotal        decimal.Decimal
	Duties          []DutyCharge
	RoundOff        decimal.Decimal
	GrandTotal      decimal.Decimal

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Label is the human name of the document kind.
func (d Direction) Label() string {
	if d == DirectionSale {
		return "Sales Invoice"
	}

	return "Purchase Bill"
}

// clone returns a copy of doc that shares no slices with it.
func (doc Document) clone() Document {
	doc.Lines = slices.Clone(doc.Lines)
	doc.Duties = slices.Clone(doc.Duties)

	return doc
}

func newLineItem() LineItem {
	return LineItem{
		ID:             uuid.NewString(),
		Unit:           defaultUnit,
		TaxRatePercent: decimal.Zero,
		TaxableAmount:  decimal.Zero,
		GrossAmount:    decimal.Zero,
	}
}

const defaultUnit = "PCS"
