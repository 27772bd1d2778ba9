package repository

import (
	"context"

	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	domainRepo "github.com/serigraf/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit log repository
func NewAuditRepository(db *gorm.DB) domainRepo.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *entity.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) List(ctx context.Context, params *domainRepo.AuditFilterParams) ([]entity.AuditLog, int64, error) {
	var entries []entity.AuditLog
	var total int64

	query := r.filtered(ctx, params.EntityType, params.Action)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&entries).Error

	return entries, total, err
}

func (r *auditRepository) ListCursor(ctx context.Context, params *domainRepo.AuditCursorParams) ([]entity.AuditLog, error) {
	var entries []entity.AuditLog

	query := r.filtered(ctx, params.EntityType, params.Action)

	// Keyset on (created_at, id); newest first
	if params.Cursor != nil {
		query = query.Where(
			"(created_at, id) < (?, ?)",
			params.Cursor.CreatedAt, params.Cursor.ID,
		)
	}

	err := query.Order("created_at DESC, id DESC").
		Limit(params.Limit + 1).
		Find(&entries).Error

	return entries, err
}

func (r *auditRepository) filtered(ctx context.Context, entityType string, action *enum.AuditAction) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.AuditLog{})
	if entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}
	if action != nil {
		query = query.Where("action = ?", *action)
	}
	return query
}
