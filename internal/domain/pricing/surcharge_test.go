package pricing

import (
	"testing"

	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestAmountFor(t *testing.T) {
	assert.Equal(t, 150.0, AmountFor(TextAmount{Label: "Instalação", Amount: 150}, 0))
	assert.Equal(t, 25.0, AmountFor(QtyRate{Qty: 5, Rate: 5}, 1000))
	assert.Equal(t, 100.0, AmountFor(PercentOfBase{Percent: 10}, 1000))
	assert.Equal(t, 0.0, AmountFor(nil, 1000))
}

func TestValueOf(t *testing.T) {
	t.Run("sentinel string means unselected", func(t *testing.T) {
		_, ok := ValueOf(enum.ExtraKindTextAmount, s(UnselectedSentinel), f(50), nil)
		assert.False(t, ok)
	})

	t.Run("all fields absent means unselected", func(t *testing.T) {
		_, ok := ValueOf(enum.ExtraKindQtyRate, nil, nil, nil)
		assert.False(t, ok)
	})

	t.Run("text amount", func(t *testing.T) {
		v, ok := ValueOf(enum.ExtraKindTextAmount, s("Frete"), f(80), nil)
		require.True(t, ok)
		assert.Equal(t, TextAmount{Label: "Frete", Amount: 80}, v)
	})

	t.Run("qty rate with missing rate contributes zero", func(t *testing.T) {
		v, ok := ValueOf(enum.ExtraKindQtyRate, nil, f(4), nil)
		require.True(t, ok)
		assert.Equal(t, 0.0, AmountFor(v, 0))
	})

	t.Run("percent of base", func(t *testing.T) {
		v, ok := ValueOf(enum.ExtraKindPercentOfBase, nil, f(15), nil)
		require.True(t, ok)
		assert.Equal(t, PercentOfBase{Percent: 15}, v)
	})
}

func TestTotalBudgetTwoPass(t *testing.T) {
	materials := []MaterialLine{
		{Quantity: 10, UnitCost: 5}, // 50
		{Quantity: 2, UnitCost: 25}, // 50
	}
	expenses := []ExpenseLine{
		{Description: "Combustível", Amount: 60},
		{Description: UnselectedSentinel, Amount: 999}, // skipped
	}
	extras := []ExtraValue{
		TextAmount{Amount: 40},
		PercentOfBase{Percent: 10},
		PercentOfBase{Percent: 5},
	}

	// Non-percent base: 50 + 50 + 60 + 40 = 200.
	base := BaseTotal(materials, expenses, extras)
	require.Equal(t, 200.0, base)

	// Percent extras add linearly against the base, never compounding:
	// 200 * (1 + 0.10 + 0.05) = 230.
	total := TotalBudget(materials, expenses, extras)
	assert.InDelta(t, 230.0, total, 1e-9)
}

func TestTotalBudgetPercentExtrasNeverCompound(t *testing.T) {
	materials := []MaterialLine{{Quantity: 1, UnitCost: 1000}}
	extras := []ExtraValue{
		PercentOfBase{Percent: 50},
		PercentOfBase{Percent: 50},
	}

	// 1000 * (1 + 0.5 + 0.5), not 1000 * 1.5 * 1.5.
	assert.InDelta(t, 2000.0, TotalBudget(materials, nil, extras), 1e-9)
}

func TestTotalBudgetNoExtras(t *testing.T) {
	assert.Equal(t, 0.0, TotalBudget(nil, nil, nil))
	assert.Equal(t, 50.0, TotalBudget([]MaterialLine{{Quantity: 10, UnitCost: 5}}, nil, nil))
}
