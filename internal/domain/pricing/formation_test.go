package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductiveMinuteCost(t *testing.T) {
	t.Run("single entry", func(t *testing.T) {
		// 3520 / 1 head / 176h / 60min = 0.3333...
		cm := ProductiveMinuteCost([]PayrollLine{{TotalWithCharges: 3520, Headcount: 1}})
		assert.InDelta(t, 20.0/60.0, cm, 1e-9)
	})

	t.Run("averages across heads", func(t *testing.T) {
		cm := ProductiveMinuteCost([]PayrollLine{
			{TotalWithCharges: 3520, Headcount: 1},
			{TotalWithCharges: 7040, Headcount: 3},
		})
		assert.InDelta(t, 10560.0/4/176/60, cm, 1e-9)
	})

	t.Run("no payroll yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ProductiveMinuteCost(nil))
		assert.Equal(t, 0.0, ProductiveMinuteCost([]PayrollLine{{TotalWithCharges: 100, Headcount: 0}}))
	})
}

func TestAbsorptionFraction(t *testing.T) {
	t.Run("zero average revenue is rejected", func(t *testing.T) {
		_, err := AbsorptionFraction(ConfigValues{OperatingCost: 1000})
		assert.ErrorIs(t, err, ErrZeroAverageRevenue)
	})

	t.Run("without productive cost", func(t *testing.T) {
		p, err := AbsorptionFraction(ConfigValues{AverageRevenue: 10000, OperatingCost: 3000})
		require.NoError(t, err)
		assert.InDelta(t, 0.3, p, 1e-9)
	})

	t.Run("productive cost is carved out", func(t *testing.T) {
		p, err := AbsorptionFraction(ConfigValues{
			AverageRevenue: 10000,
			OperatingCost:  3000,
			ProductiveCost: f(1000),
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.2, p, 1e-9)
	})
}

func TestSaleLoad(t *testing.T) {
	assert.Equal(t, DefaultSaleLoad, SaleLoad(nil))
	assert.InDelta(t, 0.19, SaleLoad(&ConfigValues{CommissionPercent: 5, TaxPercent: 12, InterestPercent: 2}), 1e-9)
}

func TestFormationPipeline(t *testing.T) {
	cfg := &ConfigValues{
		AverageRevenue:       20000,
		OperatingCost:        4000,
		CommissionPercent:    5,
		TaxPercent:           12,
		InterestPercent:      2,
		DefaultMarkupPercent: 40,
	}
	payroll := []PayrollLine{{TotalWithCharges: 3520, Headcount: 1}}

	input := FormationInput{
		ProductiveMinutes: 60,
		Materials:         []MaterialLine{{Quantity: 10, UnitCost: 8}}, // 80
		Expenses:          []ExpenseLine{{Description: "Lona", Amount: 20}},
		Extras: []ExtraValue{
			TextAmount{Amount: 30},
			PercentOfBase{Percent: 10},
		},
	}

	res, err := Formation(input, payroll, cfg)
	require.NoError(t, err)

	// Cm = (3520/1)/176/60; labor = 60 * Cm = 20.
	assert.InDelta(t, 20.0/60.0, res.MinuteCost, 1e-9)
	assert.InDelta(t, 20.0, res.LaborCost, 1e-9)

	// Vmm = 80 + 20 + 30 + 20 = 150 (percent extra excluded).
	assert.InDelta(t, 150.0, res.BaseValue, 1e-9)

	// P = 4000/20000 = 0.2; Vb = 150/0.8 + 150 = 337.5.
	assert.InDelta(t, 0.2, res.Absorption, 1e-9)
	assert.InDelta(t, 337.5, res.AbsorbedValue, 1e-9)

	// Pv = 0.19; Vam = 337.5/0.81.
	vam := 337.5 / 0.81
	assert.InDelta(t, 0.19, res.SaleLoad, 1e-9)
	assert.InDelta(t, vam, res.PreMarkupValue, 1e-9)

	// Vm = Vam * 0.4; loaded = Vm/0.81; Vv = Vam + loaded.
	vm := vam * 0.4
	loaded := vm / 0.81
	assert.InDelta(t, vm, res.MarkupValue, 1e-9)
	assert.InDelta(t, loaded, res.LoadedMarkup, 1e-9)
	assert.InDelta(t, vam+loaded, res.SaleValue, 1e-9)

	// Percent extra applies to Vmm at the very end: 10% of 150.
	assert.InDelta(t, 15.0, res.PercentExtras, 1e-9)
	assert.InDelta(t, vam+loaded+15, res.FinalPrice, 1e-9)
}

func TestFormationGuards(t *testing.T) {
	payroll := []PayrollLine{{TotalWithCharges: 3520, Headcount: 1}}

	t.Run("missing config", func(t *testing.T) {
		_, err := Formation(FormationInput{}, payroll, nil)
		assert.ErrorIs(t, err, ErrMissingConfig)
	})

	t.Run("zero average revenue", func(t *testing.T) {
		_, err := Formation(FormationInput{}, payroll, &ConfigValues{OperatingCost: 100})
		assert.ErrorIs(t, err, ErrZeroAverageRevenue)
	})

	t.Run("absorption at or above one", func(t *testing.T) {
		_, err := Formation(FormationInput{}, payroll, &ConfigValues{
			AverageRevenue: 1000,
			OperatingCost:  1000,
		})
		assert.ErrorIs(t, err, ErrAbsorptionTooHigh)
	})

	t.Run("sale load at or above one", func(t *testing.T) {
		_, err := Formation(FormationInput{}, payroll, &ConfigValues{
			AverageRevenue:    1000,
			OperatingCost:     100,
			CommissionPercent: 50,
			TaxPercent:        50,
		})
		assert.ErrorIs(t, err, ErrSaleLoadTooHigh)
	})
}

func TestFormationMarkupDefaults(t *testing.T) {
	cfg := &ConfigValues{AverageRevenue: 1000, OperatingCost: 100, DefaultMarkupPercent: 25}

	res, err := Formation(FormationInput{MarkupPercent: f(60)}, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, 60.0, res.MarkupPercent)

	res, err = Formation(FormationInput{}, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, 25.0, res.MarkupPercent)

	cfg.DefaultMarkupPercent = 0
	res, err = Formation(FormationInput{}, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, FallbackMarkupPercent, res.MarkupPercent)
}
