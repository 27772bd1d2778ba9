package pricing

import (
	"math"

	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
)

// Epsilon bounds both the zero-budget guard and the equal-line tolerance.
const Epsilon = 1e-4

// Percentage returns the signed variance percentage of a difference over a
// budget. Budgets within Epsilon of zero yield exactly 0 instead of a
// runaway division.
func Percentage(budget, difference float64) float64 {
	if math.Abs(budget) < Epsilon {
		return 0
	}
	return difference / budget * 100
}

// StatusOf tags a signed difference as equal, above or below budget.
func StatusOf(difference float64) enum.VarianceStatus {
	switch {
	case math.Abs(difference) < Epsilon:
		return enum.VarianceStatusEqual
	case difference > 0:
		return enum.VarianceStatusAbove
	default:
		return enum.VarianceStatusBelow
	}
}

// Variance builds the budget-vs-actual summary for one category.
func Variance(budgeted, realized float64) entity.CategoryVariance {
	diff := realized - budgeted
	return entity.CategoryVariance{
		Budgeted:   budgeted,
		Realized:   realized,
		Difference: diff,
		Percentage: Percentage(budgeted, diff),
	}
}
