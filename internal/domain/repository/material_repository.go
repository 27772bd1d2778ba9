package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/pkg/pagination"
)

// MaterialRepository defines the interface for material catalog operations
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MaterialFilterParams) ([]entity.Material, int64, error)
}

// MaterialFilterParams contains filtering parameters for material queries
type MaterialFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}
