// Package pricing holds the pure cost-to-price calculations: extra-option
// surcharges, budget totalling, the price formation pipeline and the
// budget-vs-actual variance math. Everything here is deterministic and free
// of persistence concerns.
package pricing

import (
	"github.com/serigraf/backoffice-api/internal/domain/enum"
)

// UnselectedSentinel is the placeholder the front office stores on an extra
// or expense line that was left unselected. Such lines contribute zero and
// are excluded from every total.
const UnselectedSentinel = "Selecione"

// ExtraValue is the value carried by a selected extra-option line. Exactly
// one of the three shapes applies, decided by the option's kind.
type ExtraValue interface {
	isExtraValue()
}

// TextAmount contributes a flat amount; the label is display-only.
type TextAmount struct {
	Label  string
	Amount float64
}

// QtyRate contributes quantity times rate.
type QtyRate struct {
	Qty  float64
	Rate float64
}

// PercentOfBase contributes a percentage of the non-percent budget base.
type PercentOfBase struct {
	Percent float64
}

func (TextAmount) isExtraValue()    {}
func (QtyRate) isExtraValue()       {}
func (PercentOfBase) isExtraValue() {}

// ValueOf interprets an extra line's raw columns according to the option
// kind. The second return is false when the line is unselected, either via
// the sentinel string or because no value was entered at all.
func ValueOf(kind enum.ExtraKind, stringValue *string, amount1, amount2 *float64) (ExtraValue, bool) {
	if stringValue != nil && *stringValue == UnselectedSentinel {
		return nil, false
	}
	if stringValue == nil && amount1 == nil && amount2 == nil {
		return nil, false
	}
	switch kind {
	case enum.ExtraKindQtyRate:
		return QtyRate{Qty: deref(amount1), Rate: deref(amount2)}, true
	case enum.ExtraKindPercentOfBase:
		return PercentOfBase{Percent: deref(amount1)}, true
	default:
		var label string
		if stringValue != nil {
			label = *stringValue
		}
		return TextAmount{Label: label, Amount: deref(amount1)}, true
	}
}

// AmountFor returns the monetary contribution of one extra value. The base
// is only consulted for percent-of-base extras and must be the non-percent
// subtotal of the same budget.
func AmountFor(value ExtraValue, base float64) float64 {
	switch v := value.(type) {
	case TextAmount:
		return v.Amount
	case QtyRate:
		return v.Qty * v.Rate
	case PercentOfBase:
		return v.Percent / 100 * base
	default:
		return 0
	}
}

// MaterialLine is a budgeted or realized material contribution.
type MaterialLine struct {
	Quantity float64
	UnitCost float64
}

// Amount returns the line's monetary contribution.
func (m MaterialLine) Amount() float64 {
	return m.Quantity * m.UnitCost
}

// ExpenseLine is a budgeted or realized expense contribution.
type ExpenseLine struct {
	Description string
	Amount      float64
}

// Selected reports whether the expense row was actually filled in.
func (e ExpenseLine) Selected() bool {
	return e.Description != UnselectedSentinel
}

// BaseTotal sums every non-percent contribution: materials, selected
// expenses and non-percent extras. This is the base percent extras are
// computed against, so percent extras are deliberately left out.
func BaseTotal(materials []MaterialLine, expenses []ExpenseLine, extras []ExtraValue) float64 {
	var total float64
	for _, m := range materials {
		total += m.Amount()
	}
	for _, e := range expenses {
		if e.Selected() {
			total += e.Amount
		}
	}
	for _, x := range extras {
		if _, ok := x.(PercentOfBase); ok {
			continue
		}
		total += AmountFor(x, 0)
	}
	return total
}

// PercentTotal sums the percent extras against a fixed base. Each percent
// extra applies to the same base; they add linearly and never compound.
func PercentTotal(extras []ExtraValue, base float64) float64 {
	var total float64
	for _, x := range extras {
		if _, ok := x.(PercentOfBase); ok {
			total += AmountFor(x, base)
		}
	}
	return total
}

// TotalBudget computes a budget total in two passes: the non-percent base
// first, then percent extras against that base.
func TotalBudget(materials []MaterialLine, expenses []ExpenseLine, extras []ExtraValue) float64 {
	base := BaseTotal(materials, expenses, extras)
	return base + PercentTotal(extras, base)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
