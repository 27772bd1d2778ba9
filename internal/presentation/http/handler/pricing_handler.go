package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/application/service"
	"github.com/serigraf/backoffice-api/internal/presentation/http/dto/response"
)

// PricingHandler handles pricing configuration and price formation requests
type PricingHandler struct {
	configService    *service.PricingConfigService
	formationService *service.FormationService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(configService *service.PricingConfigService, formationService *service.FormationService) *PricingHandler {
	return &PricingHandler{
		configService:    configService,
		formationService: formationService,
	}
}

// GetConfig handles getting the pricing configuration
func (h *PricingHandler) GetConfig(c *gin.Context) {
	config, err := h.configService.GetConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Pricing configuration retrieved successfully", config)
}

// UpdateConfig handles updating the pricing configuration
func (h *PricingHandler) UpdateConfig(c *gin.Context) {
	var req struct {
		AverageRevenue       float64  `json:"average_revenue"`
		OperatingCost        float64  `json:"operating_cost"`
		ProductiveCost       *float64 `json:"productive_cost"`
		CommissionPercent    float64  `json:"commission_percent"`
		TaxPercent           float64  `json:"tax_percent"`
		InterestPercent      float64  `json:"interest_percent"`
		DefaultMarkupPercent float64  `json:"default_markup_percent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	config, err := h.configService.UpdateConfig(c.Request.Context(), GetActor(c), &service.PricingConfigInput{
		AverageRevenue:       req.AverageRevenue,
		OperatingCost:        req.OperatingCost,
		ProductiveCost:       req.ProductiveCost,
		CommissionPercent:    req.CommissionPercent,
		TaxPercent:           req.TaxPercent,
		InterestPercent:      req.InterestPercent,
		DefaultMarkupPercent: req.DefaultMarkupPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pricing configuration updated successfully", config)
}

// Form handles running the price formation pipeline for a prospective job
func (h *PricingHandler) Form(c *gin.Context) {
	var req struct {
		ProductiveMinutes float64 `json:"productive_minutes"`
		Materials         []struct {
			Quantity float64 `json:"quantity"`
			UnitCost float64 `json:"unit_cost"`
		} `json:"materials"`
		Expenses []struct {
			Description string  `json:"description"`
			Amount      float64 `json:"amount"`
		} `json:"expenses"`
		Extras []struct {
			OptionID    uuid.UUID `json:"option_id" binding:"required"`
			StringValue *string   `json:"string_value"`
			Amount1     *float64  `json:"amount1"`
			Amount2     *float64  `json:"amount2"`
		} `json:"extras"`
		MarkupPercent *float64 `json:"markup_percent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.FormationRequest{
		ProductiveMinutes: req.ProductiveMinutes,
		MarkupPercent:     req.MarkupPercent,
	}
	for _, m := range req.Materials {
		input.Materials = append(input.Materials, service.FormationMaterialInput{
			Quantity: m.Quantity,
			UnitCost: m.UnitCost,
		})
	}
	for _, e := range req.Expenses {
		input.Expenses = append(input.Expenses, service.FormationExpenseInput{
			Description: e.Description,
			Amount:      e.Amount,
		})
	}
	for _, x := range req.Extras {
		input.Extras = append(input.Extras, service.FormationExtraInput{
			OptionID:    x.OptionID,
			StringValue: x.StringValue,
			Amount1:     x.Amount1,
			Amount2:     x.Amount2,
		})
	}

	result, err := h.formationService.Form(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price formed successfully", result)
}
