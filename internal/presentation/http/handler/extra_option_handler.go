package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/application/service"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/presentation/http/dto/response"
)

// ExtraOptionHandler handles extra option HTTP requests
type ExtraOptionHandler struct {
	optionService *service.ExtraOptionService
}

// NewExtraOptionHandler creates a new extra option handler
func NewExtraOptionHandler(optionService *service.ExtraOptionService) *ExtraOptionHandler {
	return &ExtraOptionHandler{optionService: optionService}
}

// List handles listing extra options
func (h *ExtraOptionHandler) List(c *gin.Context) {
	options, err := h.optionService.ListOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Extra options retrieved successfully", options)
}

// Get handles getting a single extra option
func (h *ExtraOptionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid extra option ID")
		return
	}

	option, err := h.optionService.GetOption(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Extra option retrieved successfully", option)
}

// Create handles creating an extra option
func (h *ExtraOptionHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Kind int    `json:"kind"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	option, err := h.optionService.CreateOption(c.Request.Context(), GetActor(c), &service.ExtraOptionInput{
		Name: req.Name,
		Kind: enum.ExtraKind(req.Kind),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Extra option created successfully", option)
}

// Update handles updating an extra option
func (h *ExtraOptionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid extra option ID")
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
		Kind int    `json:"kind"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	option, err := h.optionService.UpdateOption(c.Request.Context(), GetActor(c), id, &service.ExtraOptionInput{
		Name: req.Name,
		Kind: enum.ExtraKind(req.Kind),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Extra option updated successfully", option)
}

// Delete handles deleting an extra option
func (h *ExtraOptionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid extra option ID")
		return
	}

	if err := h.optionService.DeleteOption(c.Request.Context(), GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Extra option deleted successfully", nil)
}
