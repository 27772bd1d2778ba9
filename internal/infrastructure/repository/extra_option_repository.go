package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	domainRepo "github.com/serigraf/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type extraOptionRepository struct {
	db *gorm.DB
}

// NewExtraOptionRepository creates a new extra option repository
func NewExtraOptionRepository(db *gorm.DB) domainRepo.ExtraOptionRepository {
	return &extraOptionRepository{db: db}
}

func (r *extraOptionRepository) Create(ctx context.Context, option *entity.ExtraOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *extraOptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtraOption, error) {
	var option entity.ExtraOption
	err := r.db.WithContext(ctx).First(&option, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &option, err
}

func (r *extraOptionRepository) Update(ctx context.Context, option *entity.ExtraOption) error {
	return r.db.WithContext(ctx).Save(option).Error
}

func (r *extraOptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ExtraOption{}, "id = ?", id).Error
}

func (r *extraOptionRepository) List(ctx context.Context) ([]entity.ExtraOption, error) {
	var options []entity.ExtraOption
	err := r.db.WithContext(ctx).Order("name ASC").Find(&options).Error
	return options, err
}
