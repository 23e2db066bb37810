// Package record converts documents to and from their stored JSON payloads.
// Every payload is tagged with a schema version; Decode turns any known
// version into the canonical document model.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

const (
	// VersionLegacy is the loosely typed shape written by the web client.
	VersionLegacy = 0
	// VersionCurrent is the shape Encode writes.
	VersionCurrent = 1
)

var ErrUnknownVersion = errors.New("unknown document schema version")

type lineV1 struct {
	ID             string          `json:"id"`
	ItemName       string          `json:"item_name"`
	HSNCode        string          `json:"hsn_code,omitempty"`
	Qty            string          `json:"qty"`
	Rate           string          `json:"rate"`
	Unit           string          `json:"unit"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
}

type dutyV1 struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	CalcMethod  string          `json:"calc_method"`
	Rate        decimal.Decimal `json:"rate"`
	FixedAmount decimal.Decimal `json:"fixed_amount"`
	ApplyOn     string          `json:"apply_on"`
	Amount      decimal.Decimal `json:"amount"`
}

type documentV1 struct {
	ID                uuid.UUID       `json:"id"`
	WorkspaceID       uuid.UUID       `json:"workspace_id"`
	Direction         string          `json:"direction"`
	CounterpartyName  string          `json:"counterparty_name"`
	CounterpartyTaxID string          `json:"counterparty_tax_id,omitempty"`
	DocumentNumber    string          `json:"document_number"`
	Date              string          `json:"date"`
	GSTType           string          `json:"gst_type"`
	Status            string          `json:"status"`
	Description       string          `json:"description,omitempty"`
	Lines             []lineV1        `json:"lines"`
	TaxableSubtotal   decimal.Decimal `json:"taxable_subtotal"`
	TaxTotal          decimal.Decimal `json:"tax_total"`
	Duties            []dutyV1        `json:"duties"`
	RoundOff          decimal.Decimal `json:"round_off"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
}

// Encode writes doc in the current schema version.
func Encode(doc document.Document) ([]byte, error) {
	rec := documentV1{
		ID:                doc.ID,
		WorkspaceID:       doc.WorkspaceID,
		Direction:         string(doc.Direction),
		CounterpartyName:  doc.CounterpartyName,
		CounterpartyTaxID: doc.CounterpartyTaxID,
		DocumentNumber:    doc.DocumentNumber,
		Date:              doc.Date.Format(time.DateOnly),
		GSTType:           string(doc.GSTType),
		Status:            string(doc.Status),
		Description:       doc.Description,
		Lines:             make([]lineV1, 0, len(doc.Lines)),
		TaxableSubtotal:   doc.TaxableSubtotal,
		TaxTotal:          doc.TaxTotal,
		Duties:            make([]dutyV1, 0, len(doc.Duties)),
		RoundOff:          doc.RoundOff,
		GrandTotal:        doc.GrandTotal,
	}

	for _, l := range doc.Lines {
		rec.Lines = append(rec.Lines, lineV1(l))
	}

	for _, d := range doc.Duties {
		rec.Duties = append(rec.Duties, dutyV1{
			ID:          d.ID,
			Name:        d.Name,
			Type:        string(d.Type),
			CalcMethod:  string(d.CalcMethod),
			Rate:        d.Rate,
			FixedAmount: d.FixedAmount,
			ApplyOn:     string(d.ApplyOn),
			Amount:      d.Amount,
		})
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}

	return b, nil
}

// Decode reads a payload written in the given schema version. The stored
// totals are taken as they are; nothing is recomputed.
func Decode(version int, payload []byte) (document.Document, error) {
	switch version {
	case VersionCurrent:
		return decodeV1(payload)
	case VersionLegacy:
		return decodeLegacy(payload)
	default:
		return document.Document{}, fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}
}

func decodeV1(payload []byte) (document.Document, error) {
	var rec documentV1
	if err := json.Unmarshal(payload, &rec); err != nil {
		return document.Document{}, fmt.Errorf("decoding document: %w", err)
	}

	doc := document.Document{
		ID:                rec.ID,
		WorkspaceID:       rec.WorkspaceID,
		Direction:         parseDirection(rec.Direction),
		CounterpartyName:  rec.CounterpartyName,
		CounterpartyTaxID: rec.CounterpartyTaxID,
		DocumentNumber:    rec.DocumentNumber,
		Date:              parseDate(rec.Date),
		GSTType:           parseGSTType(rec.GSTType),
		Status:            parseStatus(rec.Status),
		Description:       rec.Description,
		Lines:             make([]document.LineItem, 0, len(rec.Lines)),
		TaxableSubtotal:   rec.TaxableSubtotal,
		TaxTotal:          rec.TaxTotal,
		Duties:            make([]document.DutyCharge, 0, len(rec.Duties)),
		RoundOff:          rec.RoundOff,
		GrandTotal:        rec.GrandTotal,
	}

	for _, l := range rec.Lines {
		doc.Lines = append(doc.Lines, document.LineItem(l))
	}

	for _, d := range rec.Duties {
		doc.Duties = append(doc.Duties, document.DutyCharge{
			ID:          d.ID,
			Name:        d.Name,
			Type:        parseDutyType(d.Type),
			CalcMethod:  parseCalcMethod(d.CalcMethod),
			Rate:        d.Rate,
			FixedAmount: d.FixedAmount,
			ApplyOn:     parseApplyOn(d.ApplyOn),
			Amount:      d.Amount,
		})
	}

	return doc, nil
}
