package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/application/service"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/internal/presentation/http/dto/response"
	"github.com/serigraf/backoffice-api/pkg/pagination"
)

// QuoteHandler handles quote-related HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

type quoteLineRequest struct {
	Materials []struct {
		MaterialID uuid.UUID `json:"material_id" binding:"required"`
		Quantity   float64   `json:"quantity"`
		UnitCost   *float64  `json:"unit_cost"`
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
}

func (r *quoteLineRequest) toInputs() ([]service.QuoteMaterialInput, []service.QuoteExpenseInput, []service.QuoteExtraInput) {
	materials := make([]service.QuoteMaterialInput, 0, len(r.Materials))
	for _, m := range r.Materials {
		materials = append(materials, service.QuoteMaterialInput{
			MaterialID: m.MaterialID,
			Quantity:   m.Quantity,
			UnitCost:   m.UnitCost,
		})
	}
	expenses := make([]service.QuoteExpenseInput, 0, len(r.Expenses))
	for _, e := range r.Expenses {
		expenses = append(expenses, service.QuoteExpenseInput{
			Description: e.Description,
			Amount:      e.Amount,
		})
	}
	extras := make([]service.QuoteExtraInput, 0, len(r.Extras))
	for _, x := range r.Extras {
		extras = append(extras, service.QuoteExtraInput{
			OptionID:    x.OptionID,
			StringValue: x.StringValue,
			Amount1:     x.Amount1,
			Amount2:     x.Amount2,
		})
	}
	return materials, expenses, extras
}

// List handles listing quotes
func (h *QuoteHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.QuoteFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			status := enum.QuoteStatus(statusInt)
			params.Status = &status
		}
	}

	filterUserID := *userID
	if IsSuperAdmin(c) {
		filterUserID = uuid.Nil
	}

	result, err := h.quoteService.ListQuotes(c.Request.Context(), filterUserID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotes retrieved successfully", result)
}

// Get handles getting a single quote
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved successfully", quote)
}

// Create handles creating a quote
func (h *QuoteHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Date         *time.Time `json:"date"`
		CustomerName string     `json:"customer_name"`
		Note         *string    `json:"note"`
		quoteLineRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	materials, expenses, extras := req.toInputs()
	input := &service.CreateQuoteInput{
		UserID:       *userID,
		CustomerName: req.CustomerName,
		Note:         req.Note,
		Materials:    materials,
		Expenses:     expenses,
		Extras:       extras,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), GetActor(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote created successfully", quote)
}

// Update handles updating a quote
func (h *QuoteHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req struct {
		Date         *time.Time `json:"date"`
		CustomerName *string    `json:"customer_name"`
		Note         *string    `json:"note"`
		quoteLineRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	materials, expenses, extras := req.toInputs()
	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), GetActor(c), id, &service.UpdateQuoteInput{
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Note:         req.Note,
		Materials:    materials,
		Expenses:     expenses,
		Extras:       extras,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote updated successfully", quote)
}

// Delete handles deleting a quote
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote deleted successfully", nil)
}

// UpdateStatus handles updating quote status
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req struct {
		Status int `json:"status" binding:"min=0,max=3"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quote, err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), GetActor(c), id, enum.QuoteStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote status updated successfully", quote)
}

// Approve handles approving a quote into an order
func (h *QuoteHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	order, err := h.quoteService.ApproveQuote(c.Request.Context(), GetActor(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote approved successfully", order)
}
