package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
)

// PayrollRepository defines the interface for payroll entry data operations
type PayrollRepository interface {
	Create(ctx context.Context, entry *entity.PayrollEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PayrollEntry, error)
	Update(ctx context.Context, entry *entity.PayrollEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.PayrollEntry, error)
}
