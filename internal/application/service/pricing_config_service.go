package service

import (
	"context"

	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/pkg/apperror"
)

// PricingConfigService manages the single-row pricing configuration
type PricingConfigService struct {
	configRepo repository.PricingConfigRepository
	auditSvc   *AuditService
}

// NewPricingConfigService creates a new pricing config service
func NewPricingConfigService(configRepo repository.PricingConfigRepository, auditSvc *AuditService) *PricingConfigService {
	return &PricingConfigService{configRepo: configRepo, auditSvc: auditSvc}
}

// GetConfig returns the configuration, creating the defaults row on first
// read.
func (s *PricingConfigService) GetConfig(ctx context.Context) (*entity.PricingConfig, error) {
	return s.configRepo.GetOrCreate(ctx)
}

// PricingConfigInput represents the update config input. All percentages are
// whole numbers (12 means 12%).
type PricingConfigInput struct {
	AverageRevenue       float64
	OperatingCost        float64
	ProductiveCost       *float64
	CommissionPercent    float64
	TaxPercent           float64
	InterestPercent      float64
	DefaultMarkupPercent float64
}

func (in *PricingConfigInput) validate() error {
	if in.AverageRevenue < 0 || in.OperatingCost < 0 {
		return apperror.NewBadRequestError("Revenue and cost values must not be negative")
	}
	if in.ProductiveCost != nil && *in.ProductiveCost < 0 {
		return apperror.NewBadRequestError("Productive cost must not be negative")
	}
	if in.CommissionPercent < 0 || in.TaxPercent < 0 || in.InterestPercent < 0 || in.DefaultMarkupPercent < 0 {
		return apperror.NewBadRequestError("Percentages must not be negative")
	}
	if in.CommissionPercent+in.TaxPercent+in.InterestPercent >= 100 {
		return apperror.NewBadRequestError("Commission, tax and interest must sum below 100%")
	}
	return nil
}

// UpdateConfig overwrites the configuration row
func (s *PricingConfigService) UpdateConfig(ctx context.Context, actor Actor, input *PricingConfigInput) (*entity.PricingConfig, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	config, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	config.AverageRevenue = input.AverageRevenue
	config.OperatingCost = input.OperatingCost
	config.ProductiveCost = input.ProductiveCost
	config.CommissionPercent = input.CommissionPercent
	config.TaxPercent = input.TaxPercent
	config.InterestPercent = input.InterestPercent
	config.DefaultMarkupPercent = input.DefaultMarkupPercent

	if err := s.configRepo.Update(ctx, config); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "pricing_config", config.ID.String(),
		"Updated pricing configuration")
	return config, nil
}
