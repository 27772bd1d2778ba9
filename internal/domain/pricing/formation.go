package pricing

import "errors"

// Constants of the formation pipeline. Percentages arrive as whole numbers
// (12 means 12%) and are divided by 100 at point of use.
const (
	// MonthlyWorkHours is the contractual hours a productive employee works
	// per month; divided by MinutesPerHour it converts payroll into a
	// cost-per-productive-minute.
	MonthlyWorkHours = 176
	MinutesPerHour   = 60

	// DefaultSaleLoad is the commission+tax+interest fraction assumed when
	// no pricing configuration row exists.
	DefaultSaleLoad = 0.19

	// FallbackMarkupPercent applies when neither the caller nor the config
	// supplies a markup percentage.
	FallbackMarkupPercent = 40.0
)

// Arithmetic guard errors. These are input problems, not faults; the engine
// refuses to produce Inf or NaN.
var (
	ErrMissingConfig      = errors.New("pricing configuration not found")
	ErrZeroAverageRevenue = errors.New("average revenue must be greater than zero")
	ErrAbsorptionTooHigh  = errors.New("fixed-cost absorption must be below 100%")
	ErrSaleLoadTooHigh    = errors.New("sale percentage load must be below 100%")
)

// PayrollLine is the slice of a payroll entry the formation engine needs.
type PayrollLine struct {
	TotalWithCharges float64
	Headcount        int
}

// ConfigValues is the slice of the pricing configuration the engine needs.
type ConfigValues struct {
	AverageRevenue       float64
	OperatingCost        float64
	ProductiveCost       *float64
	CommissionPercent    float64
	TaxPercent           float64
	InterestPercent      float64
	DefaultMarkupPercent float64
}

// FormationInput describes one job to be priced.
type FormationInput struct {
	ProductiveMinutes float64
	Materials         []MaterialLine
	Expenses          []ExpenseLine
	Extras            []ExtraValue
	// MarkupPercent overrides the configured default markup when set.
	MarkupPercent *float64
}

// FormationResult carries every intermediate of the pipeline; consumers
// display and audit these alongside the final price.
type FormationResult struct {
	MinuteCost     float64 `json:"minute_cost"`      // Cm
	LaborCost      float64 `json:"labor_cost"`       // productive minutes x Cm
	MaterialsCost  float64 `json:"materials_cost"`
	ExpensesCost   float64 `json:"expenses_cost"`
	ExtrasCost     float64 `json:"extras_cost"`      // non-percent extras only
	BaseValue      float64 `json:"base_value"`       // Vmm
	Absorption     float64 `json:"absorption"`       // P, as a fraction
	AbsorbedValue  float64 `json:"absorbed_value"`   // Vb
	SaleLoad       float64 `json:"sale_load"`        // Pv, as a fraction
	PreMarkupValue float64 `json:"pre_markup_value"` // Vam
	MarkupPercent  float64 `json:"markup_percent"`
	MarkupValue    float64 `json:"markup_value"`       // Vm
	LoadedMarkup   float64 `json:"loaded_markup"`      // Vm / (1 - Pv)
	SaleValue      float64 `json:"sale_value"`         // Vv, before percent extras
	PercentExtras  float64 `json:"percent_extras"`     // percent extras over Vmm
	FinalPrice     float64 `json:"final_price"`
}

// ProductiveMinuteCost derives the cost of one productive minute (Cm) from
// payroll: average total-with-charges per head over 176 monthly hours. Zero
// when there is no payroll at all.
func ProductiveMinuteCost(payroll []PayrollLine) float64 {
	var total float64
	var heads int
	for _, p := range payroll {
		total += p.TotalWithCharges
		heads += p.Headcount
	}
	if heads == 0 {
		return 0
	}
	return total / float64(heads) / MonthlyWorkHours / MinutesPerHour
}

// AbsorptionFraction computes the fixed-cost absorption percentage (P) as a
// fraction. When a productive cost is configured it is carved out of the
// operating cost first.
func AbsorptionFraction(cfg ConfigValues) (float64, error) {
	if cfg.AverageRevenue == 0 {
		return 0, ErrZeroAverageRevenue
	}
	operating := cfg.OperatingCost
	if cfg.ProductiveCost != nil && *cfg.ProductiveCost > 0 {
		operating -= *cfg.ProductiveCost
	}
	return operating * 100 / cfg.AverageRevenue / 100, nil
}

// SaleLoad computes the commission+tax+interest fraction (Pv), defaulting to
// DefaultSaleLoad when no configuration row exists.
func SaleLoad(cfg *ConfigValues) float64 {
	if cfg == nil {
		return DefaultSaleLoad
	}
	return (cfg.CommissionPercent + cfg.TaxPercent + cfg.InterestPercent) / 100
}

// Formation runs the full cost-to-price pipeline:
//
//	Cm -> labor -> Vmm -> P -> Vb -> Pv -> Vam -> Vm -> Vv
//
// Percent-of-base extras are excluded from Vmm and applied against it only
// at the very end.
func Formation(input FormationInput, payroll []PayrollLine, cfg *ConfigValues) (*FormationResult, error) {
	if cfg == nil {
		return nil, ErrMissingConfig
	}

	res := &FormationResult{}

	res.MinuteCost = ProductiveMinuteCost(payroll)
	res.LaborCost = input.ProductiveMinutes * res.MinuteCost

	for _, m := range input.Materials {
		res.MaterialsCost += m.Amount()
	}
	for _, e := range input.Expenses {
		if e.Selected() {
			res.ExpensesCost += e.Amount
		}
	}
	for _, x := range input.Extras {
		if _, ok := x.(PercentOfBase); ok {
			continue
		}
		res.ExtrasCost += AmountFor(x, 0)
	}
	res.BaseValue = res.MaterialsCost + res.ExpensesCost + res.ExtrasCost + res.LaborCost

	p, err := AbsorptionFraction(*cfg)
	if err != nil {
		return nil, err
	}
	if p >= 1 {
		return nil, ErrAbsorptionTooHigh
	}
	res.Absorption = p
	res.AbsorbedValue = res.BaseValue/(1-p) + res.BaseValue

	pv := SaleLoad(cfg)
	if pv >= 1 {
		return nil, ErrSaleLoadTooHigh
	}
	res.SaleLoad = pv
	res.PreMarkupValue = res.AbsorbedValue / (1 - pv)

	res.MarkupPercent = effectiveMarkup(input.MarkupPercent, cfg)
	res.MarkupValue = res.PreMarkupValue * res.MarkupPercent / 100
	res.LoadedMarkup = res.MarkupValue / (1 - pv)
	res.SaleValue = res.PreMarkupValue + res.LoadedMarkup

	res.PercentExtras = PercentTotal(input.Extras, res.BaseValue)
	res.FinalPrice = res.SaleValue + res.PercentExtras

	return res, nil
}

func effectiveMarkup(override *float64, cfg *ConfigValues) float64 {
	if override != nil {
		return *override
	}
	if cfg != nil && cfg.DefaultMarkupPercent > 0 {
		return cfg.DefaultMarkupPercent
	}
	return FallbackMarkupPercent
}
