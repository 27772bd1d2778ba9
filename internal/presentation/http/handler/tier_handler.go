package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/application/service"
	"github.com/serigraf/backoffice-api/internal/presentation/http/dto/response"
)

// TierHandler handles pricing tier HTTP requests
type TierHandler struct {
	tierService *service.TierService
}

// NewTierHandler creates a new tier handler
func NewTierHandler(tierService *service.TierService) *TierHandler {
	return &TierHandler{tierService: tierService}
}

// ListMarginTiers handles listing margin tiers
func (h *TierHandler) ListMarginTiers(c *gin.Context) {
	tiers, err := h.tierService.ListMarginTiers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Margin tiers retrieved successfully", tiers)
}

// CreateMarginTier handles creating a margin tier
func (h *TierHandler) CreateMarginTier(c *gin.Context) {
	var req struct {
		RangeStart    float64  `json:"range_start"`
		RangeEnd      *float64 `json:"range_end"`
		MarginPercent float64  `json:"margin_percent" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tier, err := h.tierService.CreateMarginTier(c.Request.Context(), GetActor(c), &service.MarginTierInput{
		RangeStart:    req.RangeStart,
		RangeEnd:      req.RangeEnd,
		MarginPercent: req.MarginPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Margin tier created successfully", tier)
}

// UpdateMarginTier handles updating a margin tier
func (h *TierHandler) UpdateMarginTier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tier ID")
		return
	}

	var req struct {
		RangeStart    float64  `json:"range_start"`
		RangeEnd      *float64 `json:"range_end"`
		MarginPercent float64  `json:"margin_percent" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tier, err := h.tierService.UpdateMarginTier(c.Request.Context(), GetActor(c), id, &service.MarginTierInput{
		RangeStart:    req.RangeStart,
		RangeEnd:      req.RangeEnd,
		MarginPercent: req.MarginPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Margin tier updated successfully", tier)
}

// DeleteMarginTier handles deleting a margin tier
func (h *TierHandler) DeleteMarginTier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tier ID")
		return
	}

	if err := h.tierService.DeleteMarginTier(c.Request.Context(), GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Margin tier deleted successfully", nil)
}

// ResolveMargin handles resolving a cost to its margin tier
func (h *TierHandler) ResolveMargin(c *gin.Context) {
	cost, err := strconv.ParseFloat(c.Query("cost"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid cost")
		return
	}

	margin, err := h.tierService.ResolveMarginPercent(c.Request.Context(), cost)
	if err != nil {
		response.Error(c, err)
		return
	}
	price, err := h.tierService.SuggestedPrice(c.Request.Context(), cost)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Margin resolved successfully", gin.H{
		"cost":            cost,
		"margin_percent":  margin,
		"suggested_price": price,
	})
}

// ListMarkupTiers handles listing markup tiers
func (h *TierHandler) ListMarkupTiers(c *gin.Context) {
	tiers, err := h.tierService.ListMarkupTiers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Markup tiers retrieved successfully", tiers)
}

// CreateMarkupTier handles creating a markup tier
func (h *TierHandler) CreateMarkupTier(c *gin.Context) {
	var req struct {
		UpperBound    *float64 `json:"upper_bound"`
		MarkupPercent float64  `json:"markup_percent" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tier, err := h.tierService.CreateMarkupTier(c.Request.Context(), GetActor(c), &service.MarkupTierInput{
		UpperBound:    req.UpperBound,
		MarkupPercent: req.MarkupPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Markup tier created successfully", tier)
}

// UpdateMarkupTier handles updating a markup tier
func (h *TierHandler) UpdateMarkupTier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tier ID")
		return
	}

	var req struct {
		UpperBound    *float64 `json:"upper_bound"`
		MarkupPercent float64  `json:"markup_percent" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tier, err := h.tierService.UpdateMarkupTier(c.Request.Context(), GetActor(c), id, &service.MarkupTierInput{
		UpperBound:    req.UpperBound,
		MarkupPercent: req.MarkupPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Markup tier updated successfully", tier)
}

// DeleteMarkupTier handles deleting a markup tier
func (h *TierHandler) DeleteMarkupTier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tier ID")
		return
	}

	if err := h.tierService.DeleteMarkupTier(c.Request.Context(), GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Markup tier deleted successfully", nil)
}

// ReorderMarkupTiers handles reordering markup tiers
func (h *TierHandler) ReorderMarkupTiers(c *gin.Context) {
	var req struct {
		IDs []uuid.UUID `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.tierService.ReorderMarkupTiers(c.Request.Context(), GetActor(c), req.IDs); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Markup tiers reordered successfully", nil)
}

// ResolveMarkup handles resolving a cost to its markup tier
func (h *TierHandler) ResolveMarkup(c *gin.Context) {
	cost, err := strconv.ParseFloat(c.Query("cost"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid cost")
		return
	}

	markup, err := h.tierService.ResolveMarkupPercent(c.Request.Context(), cost)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Markup resolved successfully", gin.H{
		"cost":           cost,
		"markup_percent": markup,
	})
}
