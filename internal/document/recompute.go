package document

import (
	"github.com/MrJamesThe3rd/khata/internal/money"
)

// TriggerKind identifies what caused a recomputation.
type TriggerKind int

const (
	// TriggerNone re-derives subtotal and tax from the line items.
	TriggerNone TriggerKind = iota
	// TriggerSubtotalOverride sets the taxable subtotal directly.
	TriggerSubtotalOverride
	// TriggerTaxOverride sets the tax total directly.
	TriggerTaxOverride
	// TriggerDutyOverride sets one duty's amount directly.
	TriggerDutyOverride
)

// Trigger describes the edit behind a recomputation. At most one override is
// carried per trigger.
type Trigger struct {
	Kind   TriggerKind
	DutyID string
	Raw    string
}

// None is the trigger for line item edits.
var None = Trigger{Kind: TriggerNone}

func SubtotalOverride(raw string) Trigger {
	return Trigger{Kind: TriggerSubtotalOverride, Raw: raw}
}

func TaxOverride(raw string) Trigger {
	return Trigger{Kind: TriggerTaxOverride, Raw: raw}
}

func DutyOverride(dutyID, raw string) Trigger {
	return Trigger{Kind: TriggerDutyOverride, DutyID: dutyID, Raw: raw}
}

// Recompute settles doc after an edit and returns the result; doc itself is
// left untouched.
//
// With TriggerNone every line is revalued and the subtotal and tax are summed
// from them, discarding any earlier override. With an override the line items
// are not re-summed: the overridden aggregate takes the parsed value and the
// other one keeps its last settled value, so the lines may no longer add up to
// the aggregates. Duties are always re-resolved against the settled subtotal
// and tax of this same call.
func Recompute(doc Document, trigger Trigger) Document {
	out := doc.clone()

	switch trigger.Kind {
	case TriggerSubtotalOverride:
		out.TaxableSubtotal = money.Parse(trigger.Raw)
	case TriggerTaxOverride:
		out.TaxTotal = money.Parse(trigger.Raw)
	case TriggerDutyOverride:
	default:
		out.TaxableSubtotal, out.TaxTotal = valueLines(out.Lines)
	}

	resolveDuties(out.Duties, out.TaxableSubtotal, out.TaxTotal, trigger)
	settle(&out)

	return out
}
