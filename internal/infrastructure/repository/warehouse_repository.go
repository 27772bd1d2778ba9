package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	domainRepo "github.com/serigraf/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type warehouseRepository struct {
	db *gorm.DB
}

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(db *gorm.DB) domainRepo.WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WarehouseRecord, error) {
	var record entity.WarehouseRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *warehouseRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.WarehouseRecord, error) {
	var record entity.WarehouseRecord
	err := r.db.WithContext(ctx).First(&record, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *warehouseRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.WarehouseRecord, error) {
	var record entity.WarehouseRecord
	err := r.db.WithContext(ctx).
		Preload("Materials").
		Preload("Expenses").
		Preload("Extras").
		First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *warehouseRepository) ReplaceActuals(ctx context.Context, record *entity.WarehouseRecord, materials []entity.RealizedMaterial, expenses []entity.RealizedExpense, extras []entity.RealizedExtra) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.RealizedMaterial{}, "warehouse_record_id = ?", record.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.RealizedExpense{}, "warehouse_record_id = ?", record.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.RealizedExtra{}, "warehouse_record_id = ?", record.ID).Error; err != nil {
			return err
		}
		if len(materials) > 0 {
			if err := tx.Create(&materials).Error; err != nil {
				return err
			}
		}
		if len(expenses) > 0 {
			if err := tx.Create(&expenses).Error; err != nil {
				return err
			}
		}
		if len(extras) > 0 {
			if err := tx.Create(&extras).Error; err != nil {
				return err
			}
		}
		return tx.Save(record).Error
	})
}

// Finalize upserts the report and flips the record status in one
// transaction, so a crash leaves either both committed or neither.
func (r *warehouseRepository) Finalize(ctx context.Context, record *entity.WarehouseRecord, report *entity.ReconciliationReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.ReconciliationReport
		err := tx.First(&existing, "warehouse_record_id = ?", record.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(report).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			report.ID = existing.ID
			report.CreatedAt = existing.CreatedAt
			if err := tx.Save(report).Error; err != nil {
				return err
			}
		}
		return tx.Save(record).Error
	})
}

func (r *warehouseRepository) GetReport(ctx context.Context, warehouseRecordID uuid.UUID) (*entity.ReconciliationReport, error) {
	var report entity.ReconciliationReport
	err := r.db.WithContext(ctx).First(&report, "warehouse_record_id = ?", warehouseRecordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &report, err
}
