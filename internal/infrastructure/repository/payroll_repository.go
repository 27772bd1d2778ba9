package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	domainRepo "github.com/serigraf/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *gorm.DB) domainRepo.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Create(ctx context.Context, entry *entity.PayrollEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *payrollRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PayrollEntry, error) {
	var entry entity.PayrollEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *payrollRepository) Update(ctx context.Context, entry *entity.PayrollEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *payrollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PayrollEntry{}, "id = ?", id).Error
}

func (r *payrollRepository) List(ctx context.Context) ([]entity.PayrollEntry, error) {
	var entries []entity.PayrollEntry
	err := r.db.WithContext(ctx).Order("profession ASC").Find(&entries).Error
	return entries, err
}
