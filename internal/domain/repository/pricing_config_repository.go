package repository

import (
	"context"

	"github.com/serigraf/backoffice-api/internal/domain/entity"
)

// PricingConfigRepository defines the interface for the single-row pricing
// configuration. GetOrCreate lazily inserts the defaults on first read.
type PricingConfigRepository interface {
	Get(ctx context.Context) (*entity.PricingConfig, error)
	GetOrCreate(ctx context.Context) (*entity.PricingConfig, error)
	Update(ctx context.Context, config *entity.PricingConfig) error
}
