package pricing

import (
	"testing"

	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 20.0, Percentage(50, 10), 1e-9)
	assert.InDelta(t, -50.0, Percentage(100, -50), 1e-9)

	// Budgets within epsilon of zero never divide.
	assert.Equal(t, 0.0, Percentage(0, 120))
	assert.Equal(t, 0.0, Percentage(0.00005, 120))
	assert.Equal(t, 0.0, Percentage(-0.00005, 120))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, enum.VarianceStatusEqual, StatusOf(0))
	assert.Equal(t, enum.VarianceStatusEqual, StatusOf(0.00005))
	assert.Equal(t, enum.VarianceStatusEqual, StatusOf(-0.00005))
	assert.Equal(t, enum.VarianceStatusAbove, StatusOf(0.01))
	assert.Equal(t, enum.VarianceStatusBelow, StatusOf(-0.01))
}

func TestVariance(t *testing.T) {
	// Budget 50 (qty 10 x unit 5), realized 60: +10 and +20%.
	v := Variance(50, 60)
	assert.Equal(t, 50.0, v.Budgeted)
	assert.Equal(t, 60.0, v.Realized)
	assert.InDelta(t, 10.0, v.Difference, 1e-9)
	assert.InDelta(t, 20.0, v.Percentage, 1e-9)

	zero := Variance(0, 75)
	assert.Equal(t, 75.0, zero.Difference)
	assert.Equal(t, 0.0, zero.Percentage)
}
