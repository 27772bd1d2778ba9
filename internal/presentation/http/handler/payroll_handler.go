package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/application/service"
	"github.com/serigraf/backoffice-api/internal/presentation/http/dto/response"
)

// PayrollHandler handles payroll entry HTTP requests
type PayrollHandler struct {
	payrollService *service.PayrollService
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// List handles listing payroll entries along with the derived minute cost
func (h *PayrollHandler) List(c *gin.Context) {
	entries, err := h.payrollService.ListEntries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	minuteCost, err := h.payrollService.MinuteCost(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll entries retrieved successfully", gin.H{
		"entries":     entries,
		"minute_cost": minuteCost,
	})
}

// Get handles getting a single payroll entry
func (h *PayrollHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payroll entry ID")
		return
	}

	entry, err := h.payrollService.GetEntry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll entry retrieved successfully", entry)
}

// Create handles creating a payroll entry
func (h *PayrollHandler) Create(c *gin.Context) {
	var req struct {
		Profession       string  `json:"profession" binding:"required"`
		BaseSalary       float64 `json:"base_salary"`
		Headcount        int     `json:"headcount" binding:"required"`
		TotalWithCharges float64 `json:"total_with_charges" binding:"required"`
		IsProductive     *bool   `json:"is_productive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	isProductive := true
	if req.IsProductive != nil {
		isProductive = *req.IsProductive
	}

	entry, err := h.payrollService.CreateEntry(c.Request.Context(), GetActor(c), &service.PayrollEntryInput{
		Profession:       req.Profession,
		BaseSalary:       req.BaseSalary,
		Headcount:        req.Headcount,
		TotalWithCharges: req.TotalWithCharges,
		IsProductive:     isProductive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payroll entry created successfully", entry)
}

// Update handles updating a payroll entry
func (h *PayrollHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payroll entry ID")
		return
	}

	var req struct {
		Profession       string  `json:"profession" binding:"required"`
		BaseSalary       float64 `json:"base_salary"`
		Headcount        int     `json:"headcount" binding:"required"`
		TotalWithCharges float64 `json:"total_with_charges" binding:"required"`
		IsProductive     *bool   `json:"is_productive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	isProductive := true
	if req.IsProductive != nil {
		isProductive = *req.IsProductive
	}

	entry, err := h.payrollService.UpdateEntry(c.Request.Context(), GetActor(c), id, &service.PayrollEntryInput{
		Profession:       req.Profession,
		BaseSalary:       req.BaseSalary,
		Headcount:        req.Headcount,
		TotalWithCharges: req.TotalWithCharges,
		IsProductive:     isProductive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll entry updated successfully", entry)
}

// Delete handles deleting a payroll entry
func (h *PayrollHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payroll entry ID")
		return
	}

	if err := h.payrollService.DeleteEntry(c.Request.Context(), GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll entry deleted successfully", nil)
}
