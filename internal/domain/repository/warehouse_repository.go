package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
)

// WarehouseRepository defines the interface for warehouse record and
// reconciliation report data operations
type WarehouseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WarehouseRecord, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.WarehouseRecord, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.WarehouseRecord, error)
	// ReplaceActuals swaps the record's realized lines and moves it to
	// Pending in one transaction
	ReplaceActuals(ctx context.Context, record *entity.WarehouseRecord, materials []entity.RealizedMaterial, expenses []entity.RealizedExpense, extras []entity.RealizedExtra) error
	// Finalize upserts the reconciliation report (keyed by warehouse record)
	// and flips the record to Finalized atomically
	Finalize(ctx context.Context, record *entity.WarehouseRecord, report *entity.ReconciliationReport) error
	GetReport(ctx context.Context, warehouseRecordID uuid.UUID) (*entity.ReconciliationReport, error)
}
