package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/application/service"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/internal/presentation/http/dto/response"
	"github.com/serigraf/backoffice-api/pkg/pagination"
)

// MaterialHandler handles material catalog HTTP requests
type MaterialHandler struct {
	materialService *service.MaterialService
}

// NewMaterialHandler creates a new material handler
func NewMaterialHandler(materialService *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// List handles listing materials
func (h *MaterialHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.MaterialFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	result, err := h.materialService.ListMaterials(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Materials retrieved successfully", result)
}

// Get handles getting a single material
func (h *MaterialHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid material ID")
		return
	}

	material, err := h.materialService.GetMaterial(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Material retrieved successfully", material)
}

// Create handles creating a material
func (h *MaterialHandler) Create(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required"`
		Code     string  `json:"code" binding:"required"`
		Unit     string  `json:"unit"`
		UnitCost float64 `json:"unit_cost"`
		Notes    *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	material, err := h.materialService.CreateMaterial(c.Request.Context(), GetActor(c), &service.MaterialInput{
		Name:     req.Name,
		Code:     req.Code,
		Unit:     req.Unit,
		UnitCost: req.UnitCost,
		Notes:    req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Material created successfully", material)
}

// Update handles updating a material
func (h *MaterialHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid material ID")
		return
	}

	var req struct {
		Name     string  `json:"name" binding:"required"`
		Code     string  `json:"code" binding:"required"`
		Unit     string  `json:"unit"`
		UnitCost float64 `json:"unit_cost"`
		Notes    *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	material, err := h.materialService.UpdateMaterial(c.Request.Context(), GetActor(c), id, &service.MaterialInput{
		Name:     req.Name,
		Code:     req.Code,
		Unit:     req.Unit,
		UnitCost: req.UnitCost,
		Notes:    req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Material updated successfully", material)
}

// Delete handles deleting a material
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid material ID")
		return
	}

	if err := h.materialService.DeleteMaterial(c.Request.Context(), GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Material deleted successfully", nil)
}
