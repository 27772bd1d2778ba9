package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/application/service"
	"github.com/serigraf/backoffice-api/internal/presentation/http/dto/response"
)

// WarehouseHandler handles warehouse record HTTP requests
type WarehouseHandler struct {
	warehouseService *service.WarehouseService
}

// NewWarehouseHandler creates a new warehouse handler
func NewWarehouseHandler(warehouseService *service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// Get handles getting a warehouse record with its realized lines
func (h *WarehouseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid warehouse record ID")
		return
	}

	record, err := h.warehouseService.GetRecord(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Warehouse record retrieved successfully", record)
}

// EnterActuals handles recording actual consumption against an order
func (h *WarehouseHandler) EnterActuals(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid warehouse record ID")
		return
	}

	var req struct {
		Materials []struct {
			OrderMaterialID uuid.UUID `json:"order_material_id" binding:"required"`
			Quantity        float64   `json:"quantity"`
			UnitCost        *float64  `json:"unit_cost"`
		} `json:"materials"`
		Expenses []struct {
			OrderExpenseID uuid.UUID `json:"order_expense_id" binding:"required"`
			Amount         float64   `json:"amount"`
		} `json:"expenses"`
		Extras []struct {
			OrderExtraID uuid.UUID `json:"order_extra_id" binding:"required"`
			StringValue  *string   `json:"string_value"`
			Amount1      *float64  `json:"amount1"`
			Amount2      *float64  `json:"amount2"`
		} `json:"extras"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.EnterActualsInput{}
	for _, m := range req.Materials {
		input.Materials = append(input.Materials, service.RealizedMaterialInput{
			OrderMaterialID: m.OrderMaterialID,
			Quantity:        m.Quantity,
			UnitCost:        m.UnitCost,
		})
	}
	for _, e := range req.Expenses {
		input.Expenses = append(input.Expenses, service.RealizedExpenseInput{
			OrderExpenseID: e.OrderExpenseID,
			Amount:         e.Amount,
		})
	}
	for _, x := range req.Extras {
		input.Extras = append(input.Extras, service.RealizedExtraInput{
			OrderExtraID: x.OrderExtraID,
			StringValue:  x.StringValue,
			Amount1:      x.Amount1,
			Amount2:      x.Amount2,
		})
	}

	record, err := h.warehouseService.EnterActuals(c.Request.Context(), GetActor(c), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Actuals recorded successfully", record)
}

// Finalize handles finalizing a warehouse record into a reconciliation report
func (h *WarehouseHandler) Finalize(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid warehouse record ID")
		return
	}

	force := c.Query("force") == "true"

	report, err := h.warehouseService.Finalize(c.Request.Context(), GetActor(c), id, force)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Warehouse record finalized successfully", report)
}

// GetReport handles getting the stored reconciliation report
func (h *WarehouseHandler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid warehouse record ID")
		return
	}

	report, err := h.warehouseService.GetReport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reconciliation report retrieved successfully", report)
}
