package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
)

// ExtraOptionRepository defines the interface for extra option definitions
type ExtraOptionRepository interface {
	Create(ctx context.Context, option *entity.ExtraOption) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtraOption, error)
	Update(ctx context.Context, option *entity.ExtraOption) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.ExtraOption, error)
}
