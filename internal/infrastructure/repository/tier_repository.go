package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	domainRepo "github.com/serigraf/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type marginTierRepository struct {
	db *gorm.DB
}

// NewMarginTierRepository creates a new margin tier repository
func NewMarginTierRepository(db *gorm.DB) domainRepo.MarginTierRepository {
	return &marginTierRepository{db: db}
}

func (r *marginTierRepository) Create(ctx context.Context, tier *entity.MarginTier) error {
	return r.db.WithContext(ctx).Create(tier).Error
}

func (r *marginTierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MarginTier, error) {
	var tier entity.MarginTier
	err := r.db.WithContext(ctx).First(&tier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tier, err
}

func (r *marginTierRepository) Update(ctx context.Context, tier *entity.MarginTier) error {
	return r.db.WithContext(ctx).Save(tier).Error
}

func (r *marginTierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MarginTier{}, "id = ?", id).Error
}

func (r *marginTierRepository) ListOrdered(ctx context.Context) ([]entity.MarginTier, error) {
	var tiers []entity.MarginTier
	err := r.db.WithContext(ctx).Order("position ASC").Find(&tiers).Error
	return tiers, err
}

func (r *marginTierRepository) Renumber(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&entity.MarginTier{}).
				Where("id = ?", id).
				Update("position", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *marginTierRepository) NextPosition(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.MarginTier{}).Count(&count).Error
	return int(count) + 1, err
}

type markupTierRepository struct {
	db *gorm.DB
}

// NewMarkupTierRepository creates a new markup tier repository
func NewMarkupTierRepository(db *gorm.DB) domainRepo.MarkupTierRepository {
	return &markupTierRepository{db: db}
}

func (r *markupTierRepository) Create(ctx context.Context, tier *entity.MarkupTier) error {
	return r.db.WithContext(ctx).Create(tier).Error
}

func (r *markupTierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MarkupTier, error) {
	var tier entity.MarkupTier
	err := r.db.WithContext(ctx).First(&tier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tier, err
}

func (r *markupTierRepository) Update(ctx context.Context, tier *entity.MarkupTier) error {
	return r.db.WithContext(ctx).Save(tier).Error
}

func (r *markupTierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.MarkupTier{}, "id = ?", id).Error
}

func (r *markupTierRepository) ListOrdered(ctx context.Context) ([]entity.MarkupTier, error) {
	var tiers []entity.MarkupTier
	err := r.db.WithContext(ctx).Order("position ASC").Find(&tiers).Error
	return tiers, err
}

func (r *markupTierRepository) Renumber(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&entity.MarkupTier{}).
				Where("id = ?", id).
				Update("position", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *markupTierRepository) NextPosition(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.MarkupTier{}).Count(&count).Error
	return int(count) + 1, err
}
