package repository

import (
	"context"

	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/pkg/pagination"
)

// AuditRepository defines the interface for audit trail data operations
type AuditRepository interface {
	Create(ctx context.Context, entry *entity.AuditLog) error
	List(ctx context.Context, params *AuditFilterParams) ([]entity.AuditLog, int64, error)
	ListCursor(ctx context.Context, params *AuditCursorParams) ([]entity.AuditLog, error)
}

// AuditFilterParams contains filtering parameters for audit log queries
type AuditFilterParams struct {
	Pagination *pagination.PaginationParams
	EntityType string
	Action     *enum.AuditAction
}

// AuditCursorParams contains keyset filtering parameters for audit log
// queries. The implementation fetches Limit+1 rows so the caller can detect
// a next page.
type AuditCursorParams struct {
	Cursor     *pagination.Cursor
	Limit      int
	EntityType string
	Action     *enum.AuditAction
}
