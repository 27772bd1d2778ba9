package repository

import (
	"context"
	"errors"

	"github.com/serigraf/backoffice-api/internal/domain/entity"
	domainRepo "github.com/serigraf/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type pricingConfigRepository struct {
	db *gorm.DB
}

// NewPricingConfigRepository creates a new pricing config repository
func NewPricingConfigRepository(db *gorm.DB) domainRepo.PricingConfigRepository {
	return &pricingConfigRepository{db: db}
}

func (r *pricingConfigRepository) Get(ctx context.Context) (*entity.PricingConfig, error) {
	var config entity.PricingConfig
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &config, err
}

// GetOrCreate returns the single configuration row, inserting the defaults
// on first read.
func (r *pricingConfigRepository) GetOrCreate(ctx context.Context) (*entity.PricingConfig, error) {
	config, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	config = &entity.PricingConfig{
		CommissionPercent:    entity.DefaultCommissionPercent,
		TaxPercent:           entity.DefaultTaxPercent,
		InterestPercent:      entity.DefaultInterestPercent,
		DefaultMarkupPercent: entity.DefaultMarkupPercent,
	}
	if err := r.db.WithContext(ctx).Create(config).Error; err != nil {
		return nil, err
	}
	return config, nil
}

func (r *pricingConfigRepository) Update(ctx context.Context, config *entity.PricingConfig) error {
	return r.db.WithContext(ctx).Save(config).Error
}
