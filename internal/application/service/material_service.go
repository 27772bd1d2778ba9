package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/pkg/apperror"
	"github.com/serigraf/backoffice-api/pkg/pagination"
)

// MaterialService manages the raw material catalog
type MaterialService struct {
	materialRepo repository.MaterialRepository
	auditSvc     *AuditService
}

// NewMaterialService creates a new material service
func NewMaterialService(materialRepo repository.MaterialRepository, auditSvc *AuditService) *MaterialService {
	return &MaterialService{materialRepo: materialRepo, auditSvc: auditSvc}
}

// ListMaterials lists materials with filtering
func (s *MaterialService) ListMaterials(ctx context.Context, params *repository.MaterialFilterParams) (*pagination.PaginatedResult[entity.Material], error) {
	materials, total, err := s.materialRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(materials, pag), nil
}

// GetMaterial retrieves a material by ID
func (s *MaterialService) GetMaterial(ctx context.Context, id uuid.UUID) (*entity.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, apperror.NewNotFoundError("Material")
	}
	return material, nil
}

// MaterialInput represents the create/update material input
type MaterialInput struct {
	Name     string
	Code     string
	Unit     string
	UnitCost float64
	Notes    *string
}

func (in *MaterialInput) validate() error {
	if in.Name == "" {
		return apperror.NewBadRequestError("Name is required")
	}
	if in.Code == "" {
		return apperror.NewBadRequestError("Code is required")
	}
	if in.UnitCost < 0 {
		return apperror.NewBadRequestError("Unit cost must not be negative")
	}
	return nil
}

// CreateMaterial creates a new material
func (s *MaterialService) CreateMaterial(ctx context.Context, actor Actor, input *MaterialInput) (*entity.Material, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	material := &entity.Material{
		Name:     input.Name,
		Code:     input.Code,
		Unit:     input.Unit,
		UnitCost: input.UnitCost,
		Notes:    input.Notes,
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionCreate, "material", material.ID.String(),
		"Created material "+material.Name)
	return material, nil
}

// UpdateMaterial updates a material. Existing quote and order lines keep the
// unit cost they snapshotted.
func (s *MaterialService) UpdateMaterial(ctx context.Context, actor Actor, id uuid.UUID, input *MaterialInput) (*entity.Material, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, apperror.NewNotFoundError("Material")
	}

	material.Name = input.Name
	material.Code = input.Code
	material.Unit = input.Unit
	material.UnitCost = input.UnitCost
	material.Notes = input.Notes
	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "material", material.ID.String(),
		"Updated material "+material.Name)
	return material, nil
}

// DeleteMaterial deletes a material
func (s *MaterialService) DeleteMaterial(ctx context.Context, actor Actor, id uuid.UUID) error {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if material == nil {
		return apperror.NewNotFoundError("Material")
	}

	if err := s.materialRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionDelete, "material", id.String(),
		"Deleted material "+material.Name)
	return nil
}
