package record

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

type legacyLine struct {
	ID            text   `json:"id"`
	ItemName      string `json:"itemName"`
	HSNCode       text   `json:"hsnCode"`
	Qty           text   `json:"qty"`
	Rate          text   `json:"rate"`
	Unit          string `json:"unit"`
	TaxRate       number `json:"tax_rate"`
	TaxableAmount number `json:"taxableAmount"`
	Amount        number `json:"amount"`
}

type legacyDuty struct {
	ID              text   `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	CalcMethod      string `json:"calc_method"`
	Rate            number `json:"rate"`
	BillRate        number `json:"bill_rate"`
	FixedAmount     number `json:"fixed_amount"`
	BillFixedAmount number `json:"bill_fixed_amount"`
	ApplyOn         string `json:"apply_on"`
	Amount          number `json:"amount"`
}

// legacyItems is the object form of the items column, which wraps the line
// items together with document-level fields.
type legacyItems struct {
	LineItems       []legacyLine `json:"line_items"`
	Type            string       `json:"type"`
	TransactionType string       `json:"transaction_type"`
	GSTType         string       `json:"gst_type"`
	RoundOff        number       `json:"round_off"`
	DutiesAndTaxes  []legacyDuty `json:"duties_and_taxes"`
}

type legacyBill struct {
	ID              text            `json:"id"`
	CompanyID       text            `json:"company_id"`
	VendorName      string          `json:"vendor_name"`
	CustomerName    string          `json:"customer_name"`
	BillNumber      text            `json:"bill_number"`
	InvoiceNumber   text            `json:"invoice_number"`
	GSTIN           string          `json:"gstin"`
	Date            string          `json:"date"`
	TotalWithoutGST number          `json:"total_without_gst"`
	TotalGST        number          `json:"total_gst"`
	GrandTotal      number          `json:"grand_total"`
	Status          string          `json:"status"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	TransactionType string          `json:"transaction_type"`
	GSTType         string          `json:"gst_type"`
	RoundOff        number          `json:"round_off"`
	Items           json.RawMessage `json:"items"`
	DutiesAndTaxes  []legacyDuty    `json:"duties_and_taxes"`
}

// splitItems reads the items column, which is either a bare array of line
// items or an object wrapping them.
func splitItems(raw json.RawMessage) (legacyItems, error) {
	var items legacyItems

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return items, nil
	}

	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &items.LineItems); err != nil {
			return items, fmt.Errorf("decoding line items: %w", err)
		}

		return items, nil
	}

	if raw[0] != '{' {
		return items, nil
	}

	if err := json.Unmarshal(raw, &items); err != nil {
		return items, fmt.Errorf("decoding items: %w", err)
	}

	return items, nil
}

func decodeLegacy(payload []byte) (document.Document, error) {
	var bill legacyBill
	if err := json.Unmarshal(payload, &bill); err != nil {
		return document.Document{}, fmt.Errorf("decoding legacy document: %w", err)
	}

	items, err := splitItems(bill.Items)
	if err != nil {
		return document.Document{}, err
	}

	roundOff := bill.RoundOff.Value
	if roundOff.IsZero() {
		roundOff = items.RoundOff.Value
	}

	duties := bill.DutiesAndTaxes
	if len(duties) == 0 {
		duties = items.DutiesAndTaxes
	}

	doc := document.Document{
		ID:          legacyID(bill.ID.String()),
		WorkspaceID: legacyWorkspace(bill.CompanyID.String()),
		Direction: parseDirection(cmp.Or(
			bill.TransactionType, bill.Type, items.TransactionType, items.Type,
		)),
		CounterpartyName:  cmp.Or(bill.VendorName, bill.CustomerName),
		CounterpartyTaxID: bill.GSTIN,
		DocumentNumber:    cmp.Or(bill.BillNumber.String(), bill.InvoiceNumber.String()),
		Date:              parseDate(bill.Date),
		GSTType:           parseGSTType(cmp.Or(bill.GSTType, items.GSTType)),
		Status:            parseStatus(bill.Status),
		Description:       bill.Description,
		Lines:             make([]document.LineItem, 0, len(items.LineItems)),
		TaxableSubtotal:   bill.TotalWithoutGST.Value,
		TaxTotal:          bill.TotalGST.Value,
		Duties:            make([]document.DutyCharge, 0, len(duties)),
		RoundOff:          roundOff,
		GrandTotal:        bill.GrandTotal.Value,
	}

	for i, l := range items.LineItems {
		doc.Lines = append(doc.Lines, document.LineItem{
			ID:             cmp.Or(l.ID.String(), legacyLineID(bill.ID.String(), i)),
			ItemName:       l.ItemName,
			HSNCode:        l.HSNCode.String(),
			Qty:            l.Qty.String(),
			Rate:           l.Rate.String(),
			Unit:           cmp.Or(l.Unit, "PCS"),
			TaxRatePercent: l.TaxRate.Value,
			TaxableAmount:  l.TaxableAmount.Value,
			GrossAmount:    l.Amount.Value,
		})
	}

	for _, d := range duties {
		doc.Duties = append(doc.Duties, document.DutyCharge{
			ID:          d.ID.String(),
			Name:        d.Name,
			Type:        parseDutyType(d.Type),
			CalcMethod:  parseCalcMethod(d.CalcMethod),
			Rate:        overriding(d.BillRate, d.Rate),
			FixedAmount: overriding(d.BillFixedAmount, d.FixedAmount),
			ApplyOn:     parseApplyOn(d.ApplyOn),
			Amount:      d.Amount.Value,
		})
	}

	return doc, nil
}

// overriding prefers the per-document value whenever its key was written.
func overriding(perDocument, configured number) decimal.Decimal {
	if perDocument.Present {
		return perDocument.Value
	}

	return configured.Value
}

// legacyNamespace derives stable ids for legacy rows whose id is not a uuid.
var legacyNamespace = uuid.MustParse("5d0c1f7e-8f5e-4c1a-9d0b-6a1f2e7c3b44")

func legacyID(raw string) uuid.UUID {
	if raw == "" {
		return uuid.Nil
	}

	if id, err := uuid.Parse(raw); err == nil {
		return id
	}

	return uuid.NewSHA1(legacyNamespace, []byte(raw))
}

// legacyLineID names a line that was stored without an id by its document
// and position, so repeated reads agree.
func legacyLineID(documentID string, index int) string {
	return uuid.NewSHA1(legacyNamespace, fmt.Appendf(nil, "%s/%d", documentID, index)).String()
}

func legacyWorkspace(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func parseDirection(s string) document.Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sale", "sales":
		return document.DirectionSale
	default:
		return document.DirectionPurchase
	}
}

func parseGSTType(s string) document.GSTType {
	if strings.EqualFold(strings.TrimSpace(s), string(document.GSTInterState)) {
		return document.GSTInterState
	}

	return document.GSTIntraState
}

func parseStatus(s string) document.Status {
	if strings.EqualFold(strings.TrimSpace(s), string(document.StatusPaid)) {
		return document.StatusPaid
	}

	return document.StatusPending
}

func parseDutyType(s string) document.DutyType {
	if strings.EqualFold(strings.TrimSpace(s), string(document.DutyTypeDeduction)) {
		return document.DutyTypeDeduction
	}

	return document.DutyTypeCharge
}

func parseCalcMethod(s string) document.CalcMethod {
	if strings.EqualFold(strings.TrimSpace(s), string(document.CalcPercentage)) {
		return document.CalcPercentage
	}

	return document.CalcFixed
}

func parseApplyOn(s string) document.ApplyOn {
	switch strings.ToLower(strings.ReplaceAll(s, " ", "")) {
	case "nettotal":
		return document.ApplyOnNetTotal
	default:
		return document.ApplyOnSubtotal
	}
}

// parseDate accepts a plain date or a timestamp and keeps only the day.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if len(s) >= len(time.DateOnly) {
		if t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)]); err == nil {
			return t
		}
	}

	return time.Time{}
}
