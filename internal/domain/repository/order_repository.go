package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateWithWarehouse creates the order (with its line items) and its
	// NotStarted warehouse record in one transaction
	CreateWithWarehouse(ctx context.Context, order *entity.Order, record *entity.WarehouseRecord) error
	// CreateFromQuote creates the order and its warehouse record and marks
	// the originating quote approved, all in one transaction
	CreateFromQuote(ctx context.Context, order *entity.Order, record *entity.WarehouseRecord, quoteID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, userID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	SortBy     string
	SortOrder  string
}
