package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/serigraf/backoffice-api/internal/application/service"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/internal/presentation/http/dto/response"
	"github.com/serigraf/backoffice-api/pkg/pagination"
)

// AuditHandler handles audit trail HTTP requests
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles listing audit entries. Cursor parameters switch the listing
// to keyset pagination; otherwise it pages by offset.
func (h *AuditHandler) List(c *gin.Context) {
	entityType := c.Query("entity_type")

	var action *enum.AuditAction
	if actionStr := c.Query("action"); actionStr != "" {
		a := enum.AuditAction(actionStr)
		action = &a
	}

	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
		result, err := h.auditService.ListEntriesCursor(c.Request.Context(), &pagination.CursorParams{
			Cursor: cursor,
			Limit:  limit,
		}, entityType, action)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Audit entries retrieved successfully", result)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.AuditFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		EntityType: entityType,
		Action:     action,
	}

	result, err := h.auditService.ListEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Audit entries retrieved successfully", result)
}
