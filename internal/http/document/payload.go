package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

type linePayload struct {
	ID             string          `json:"id"`
	ItemName       string          `json:"item_name"`
	HSNCode        string          `json:"hsn_code"`
	Qty            string          `json:"qty"`
	Rate           string          `json:"rate"`
	Unit           string          `json:"unit"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
}

type dutyPayload struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Type        document.DutyType   `json:"type"`
	CalcMethod  document.CalcMethod `json:"calc_method"`
	Rate        decimal.Decimal     `json:"rate"`
	FixedAmount decimal.Decimal     `json:"fixed_amount"`
	ApplyOn     document.ApplyOn    `json:"apply_on"`
	Amount      decimal.Decimal     `json:"amount"`
}

type taxSplitPayload struct {
	CGST decimal.Decimal `json:"cgst"`
	SGST decimal.Decimal `json:"sgst"`
	IGST decimal.Decimal `json:"igst"`
}

// documentPayload is the wire form of a document. Clients send the whole
// document with every edit.
type documentPayload struct {
	ID                uuid.UUID          `json:"id"`
	Direction         document.Direction `json:"direction"`
	CounterpartyName  string             `json:"counterparty_name"`
	CounterpartyTaxID string             `json:"counterparty_tax_id"`
	DocumentNumber    string             `json:"document_number"`
	Date              string             `json:"date"`
	GSTType           document.GSTType   `json:"gst_type"`
	Status            document.Status    `json:"status"`
	Description       string             `json:"description"`
	Lines             []linePayload      `json:"lines"`
	TaxableSubtotal   decimal.Decimal    `json:"taxable_subtotal"`
	TaxTotal          decimal.Decimal    `json:"tax_total"`
	Duties            []dutyPayload      `json:"duties"`
	RoundOff          decimal.Decimal    `json:"round_off"`
	GrandTotal        decimal.Decimal    `json:"grand_total"`

	RawTotal  *decimal.Decimal `json:"raw_total,omitempty"`
	TaxSplit  *taxSplitPayload `json:"tax_split,omitempty"`
	CreatedAt *time.Time       `json:"created_at,omitempty"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
}

func toPayload(doc *document.Document) documentPayload {
	raw := doc.RawTotal()
	split := document.TaxSplit(*doc)

	p := documentPayload{
		ID:                doc.ID,
		Direction:         doc.Direction,
		CounterpartyName:  doc.CounterpartyName,
		CounterpartyTaxID: doc.CounterpartyTaxID,
		DocumentNumber:    doc.DocumentNumber,
		Date:              doc.Date.Format(time.DateOnly),
		GSTType:           doc.GSTType,
		Status:            doc.Status,
		Description:       doc.Description,
		Lines:             make([]linePayload, len(doc.Lines)),
		TaxableSubtotal:   doc.TaxableSubtotal,
		TaxTotal:          doc.TaxTotal,
		Duties:            make([]dutyPayload, len(doc.Duties)),
		RoundOff:          doc.RoundOff,
		GrandTotal:        doc.GrandTotal,
		RawTotal:          &raw,
		TaxSplit:          &taxSplitPayload{CGST: split.CGST, SGST: split.SGST, IGST: split.IGST},
		UpdatedAt:         doc.UpdatedAt,
	}

	if !doc.CreatedAt.IsZero() {
		p.CreatedAt = &doc.CreatedAt
	}

	for i, l := range doc.Lines {
		p.Lines[i] = linePayload(l)
	}

	for i, d := range doc.Duties {
		p.Duties[i] = dutyPayload(d)
	}

	return p
}

func toPayloadList(docs []*document.Document) []documentPayload {
	resp := make([]documentPayload, len(docs))
	for i, doc := range docs {
		resp[i] = toPayload(doc)
	}

	return resp
}

// toDocument rebuilds a document from what a client sent, filling in the
// enumerations it left empty.
func (p documentPayload) toDocument() document.Document {
	doc := document.Document{
		ID:                p.ID,
		Direction:         p.Direction,
		CounterpartyName:  p.CounterpartyName,
		CounterpartyTaxID: p.CounterpartyTaxID,
		DocumentNumber:    p.DocumentNumber,
		GSTType:           p.GSTType,
		Status:            p.Status,
		Description:       p.Description,
		Lines:             make([]document.LineItem, len(p.Lines)),
		TaxableSubtotal:   p.TaxableSubtotal,
		TaxTotal:          p.TaxTotal,
		Duties:            make([]document.DutyCharge, len(p.Duties)),
		RoundOff:          p.RoundOff,
		GrandTotal:        p.GrandTotal,
	}

	if doc.Direction == "" {
		doc.Direction = document.DirectionPurchase
	}

	if doc.GSTType == "" {
		doc.GSTType = document.GSTIntraState
	}

	if doc.Status == "" {
		doc.Status = document.StatusPending
	}

	if t, err := time.Parse(time.DateOnly, p.Date); err == nil {
		doc.Date = t
	}

	for i, l := range p.Lines {
		doc.Lines[i] = document.LineItem(l)
	}

	for i, d := range p.Duties {
		doc.Duties[i] = document.DutyCharge(d)
	}

	return doc
}
