package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
)

// MarginTierRepository defines the interface for margin tier data operations
type MarginTierRepository interface {
	Create(ctx context.Context, tier *entity.MarginTier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MarginTier, error)
	Update(ctx context.Context, tier *entity.MarginTier) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListOrdered returns all tiers by ascending position
	ListOrdered(ctx context.Context) ([]entity.MarginTier, error)
	// Renumber rewrites the tiers' positions in one transaction
	Renumber(ctx context.Context, ids []uuid.UUID) error
	NextPosition(ctx context.Context) (int, error)
}

// MarkupTierRepository defines the interface for markup tier data operations
type MarkupTierRepository interface {
	Create(ctx context.Context, tier *entity.MarkupTier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MarkupTier, error)
	Update(ctx context.Context, tier *entity.MarkupTier) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListOrdered(ctx context.Context) ([]entity.MarkupTier, error)
	Renumber(ctx context.Context, ids []uuid.UUID) error
	NextPosition(ctx context.Context) (int, error)
}
