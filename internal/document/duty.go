package document

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/money"
)

// base returns the amount a percentage duty applies to. Duties never include
// other duties in their base.
func (d DutyCharge) base(subtotal, tax decimal.Decimal) decimal.Decimal {
	if d.ApplyOn == ApplyOnNetTotal {
		return subtotal.Add(tax)
	}

	return subtotal
}

// configuredAmount is the duty's amount from its own rate or fixed amount.
func (d DutyCharge) configuredAmount(subtotal, tax decimal.Decimal) decimal.Decimal {
	if d.CalcMethod == CalcPercentage {
		return money.Percent(d.base(subtotal, tax), d.Rate)
	}

	return d.FixedAmount
}

// resolveDuties settles every duty in place against the given subtotal and tax.
// A duty override replaces the amount of the matching duty only; an override
// for an unknown id changes nothing.
func resolveDuties(duties []DutyCharge, subtotal, tax decimal.Decimal, trigger Trigger) {
	for i := range duties {
		if trigger.Kind == TriggerDutyOverride && duties[i].ID == trigger.DutyID {
			duties[i].Amount = money.Parse(trigger.Raw)
			continue
		}

		duties[i].Amount = duties[i].configuredAmount(subtotal, tax)
	}
}

// SeedDuties picks the duties a new document starts with: every definition
// flagged as default plus every definition whose id is in selected, in
// definition order.
func SeedDuties(defs []DutyDefinition, selected []string) []DutyCharge {
	duties := make([]DutyCharge, 0, len(defs))

	for _, def := range defs {
		if !def.IsDefault && !slices.Contains(selected, def.ID) {
			continue
		}

		duties = append(duties, DutyCharge{
			ID:          def.ID,
			Name:        def.Name,
			Type:        def.Type,
			CalcMethod:  def.CalcMethod,
			Rate:        def.Rate,
			FixedAmount: def.FixedAmount,
			ApplyOn:     def.ApplyOn,
			Amount:      decimal.Zero,
		})
	}

	return duties
}
