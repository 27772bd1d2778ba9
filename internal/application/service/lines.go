package service

import (
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/pricing"
)

// Conversions from persisted line items to the pure pricing types. Unselected
// extras drop out here, so the totals never see them.

func quoteMaterialLines(materials []entity.QuoteMaterial) []pricing.MaterialLine {
	lines := make([]pricing.MaterialLine, 0, len(materials))
	for _, m := range materials {
		lines = append(lines, pricing.MaterialLine{Quantity: m.Quantity, UnitCost: m.UnitCost})
	}
	return lines
}

func quoteExpenseLines(expenses []entity.QuoteExpense) []pricing.ExpenseLine {
	lines := make([]pricing.ExpenseLine, 0, len(expenses))
	for _, e := range expenses {
		lines = append(lines, pricing.ExpenseLine{Description: e.Description, Amount: e.Amount})
	}
	return lines
}

func quoteExtraValues(extras []entity.QuoteExtra) []pricing.ExtraValue {
	values := make([]pricing.ExtraValue, 0, len(extras))
	for _, x := range extras {
		if v, ok := pricing.ValueOf(x.Kind, x.StringValue, x.Amount1, x.Amount2); ok {
			values = append(values, v)
		}
	}
	return values
}

func orderMaterialLines(materials []entity.OrderMaterial) []pricing.MaterialLine {
	lines := make([]pricing.MaterialLine, 0, len(materials))
	for _, m := range materials {
		lines = append(lines, pricing.MaterialLine{Quantity: m.Quantity, UnitCost: m.UnitCost})
	}
	return lines
}

func orderExpenseLines(expenses []entity.OrderExpense) []pricing.ExpenseLine {
	lines := make([]pricing.ExpenseLine, 0, len(expenses))
	for _, e := range expenses {
		lines = append(lines, pricing.ExpenseLine{Description: e.Description, Amount: e.Amount})
	}
	return lines
}

func orderExtraValues(extras []entity.OrderExtra) []pricing.ExtraValue {
	values := make([]pricing.ExtraValue, 0, len(extras))
	for _, x := range extras {
		if v, ok := pricing.ValueOf(x.Kind, x.StringValue, x.Amount1, x.Amount2); ok {
			values = append(values, v)
		}
	}
	return values
}

func configValues(cfg *entity.PricingConfig) *pricing.ConfigValues {
	if cfg == nil {
		return nil
	}
	return &pricing.ConfigValues{
		AverageRevenue:       cfg.AverageRevenue,
		OperatingCost:        cfg.OperatingCost,
		ProductiveCost:       cfg.ProductiveCost,
		CommissionPercent:    cfg.CommissionPercent,
		TaxPercent:           cfg.TaxPercent,
		InterestPercent:      cfg.InterestPercent,
		DefaultMarkupPercent: cfg.DefaultMarkupPercent,
	}
}
