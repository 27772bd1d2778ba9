package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/pkg/apperror"
)

// ExtraOptionService manages the catalog of extra-option definitions
type ExtraOptionService struct {
	optionRepo repository.ExtraOptionRepository
	auditSvc   *AuditService
}

// NewExtraOptionService creates a new extra option service
func NewExtraOptionService(optionRepo repository.ExtraOptionRepository, auditSvc *AuditService) *ExtraOptionService {
	return &ExtraOptionService{optionRepo: optionRepo, auditSvc: auditSvc}
}

// ListOptions returns all extra options
func (s *ExtraOptionService) ListOptions(ctx context.Context) ([]entity.ExtraOption, error) {
	return s.optionRepo.List(ctx)
}

// GetOption retrieves an extra option by ID
func (s *ExtraOptionService) GetOption(ctx context.Context, id uuid.UUID) (*entity.ExtraOption, error) {
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, apperror.NewNotFoundError("Extra option")
	}
	return option, nil
}

// ExtraOptionInput represents the create/update extra option input
type ExtraOptionInput struct {
	Name string
	Kind enum.ExtraKind
}

func (in *ExtraOptionInput) validate() error {
	if in.Name == "" {
		return apperror.NewBadRequestError("Name is required")
	}
	switch in.Kind {
	case enum.ExtraKindTextAmount, enum.ExtraKindQtyRate, enum.ExtraKindPercentOfBase:
		return nil
	default:
		return apperror.NewBadRequestError("Unknown extra option kind")
	}
}

// CreateOption creates a new extra option
func (s *ExtraOptionService) CreateOption(ctx context.Context, actor Actor, input *ExtraOptionInput) (*entity.ExtraOption, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	option := &entity.ExtraOption{
		Name: input.Name,
		Kind: input.Kind,
	}
	if err := s.optionRepo.Create(ctx, option); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionCreate, "extra_option", option.ID.String(),
		"Created extra option "+option.Name)
	return option, nil
}

// UpdateOption updates an extra option. Changing the kind only affects how
// future lines are interpreted; existing lines keep the kind they were
// entered with.
func (s *ExtraOptionService) UpdateOption(ctx context.Context, actor Actor, id uuid.UUID, input *ExtraOptionInput) (*entity.ExtraOption, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, apperror.NewNotFoundError("Extra option")
	}

	option.Name = input.Name
	option.Kind = input.Kind
	if err := s.optionRepo.Update(ctx, option); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "extra_option", option.ID.String(),
		"Updated extra option "+option.Name)
	return option, nil
}

// DeleteOption deletes an extra option
func (s *ExtraOptionService) DeleteOption(ctx context.Context, actor Actor, id uuid.UUID) error {
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if option == nil {
		return apperror.NewNotFoundError("Extra option")
	}

	if err := s.optionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionDelete, "extra_option", id.String(),
		"Deleted extra option "+option.Name)
	return nil
}
