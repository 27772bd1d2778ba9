package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/pkg/apperror"
)

// TierService manages the two pricing tier tables and resolves a cost to a
// margin or markup percentage.
//
// Margin tiers are closed, non-overlapping cost ranges; resolution scans them
// by position and picks the containing tier. Markup tiers only carry an upper
// bound and resolve first-match by position, so their ordering is meaningful
// and never validated for overlap.
type TierService struct {
	marginRepo repository.MarginTierRepository
	markupRepo repository.MarkupTierRepository
	auditSvc   *AuditService
}

// NewTierService creates a new tier service
func NewTierService(
	marginRepo repository.MarginTierRepository,
	markupRepo repository.MarkupTierRepository,
	auditSvc *AuditService,
) *TierService {
	return &TierService{
		marginRepo: marginRepo,
		markupRepo: markupRepo,
		auditSvc:   auditSvc,
	}
}

// ResolveMarginPercent finds the margin percentage for a cost. Returns nil
// when no tier's range contains the cost.
func (s *TierService) ResolveMarginPercent(ctx context.Context, cost float64) (*float64, error) {
	tiers, err := s.marginRepo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tiers {
		if tiers[i].Contains(cost) {
			return &tiers[i].MarginPercent, nil
		}
	}
	return nil, nil
}

// ResolveMarkupPercent finds the markup percentage for a cost by scanning
// tiers in position order and taking the first whose bound admits the cost.
// Returns nil when no tier matches.
func (s *TierService) ResolveMarkupPercent(ctx context.Context, cost float64) (*float64, error) {
	tiers, err := s.markupRepo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tiers {
		if tiers[i].Matches(cost) {
			return &tiers[i].MarkupPercent, nil
		}
	}
	return nil, nil
}

// SuggestedPrice applies the resolved margin to a cost. Returns nil when the
// cost falls outside every margin tier.
func (s *TierService) SuggestedPrice(ctx context.Context, cost float64) (*float64, error) {
	margin, err := s.ResolveMarginPercent(ctx, cost)
	if err != nil || margin == nil {
		return nil, err
	}
	price := cost + cost*(*margin)/100
	return &price, nil
}

// ListMarginTiers returns all margin tiers ordered by position
func (s *TierService) ListMarginTiers(ctx context.Context) ([]entity.MarginTier, error) {
	return s.marginRepo.ListOrdered(ctx)
}

// MarginTierInput represents the create/update margin tier input
type MarginTierInput struct {
	RangeStart    float64
	RangeEnd      *float64
	MarginPercent float64
}

func (in *MarginTierInput) validate() error {
	if in.MarginPercent < 0 {
		return apperror.NewBadRequestError("Margin percent must not be negative")
	}
	if in.RangeStart < 0 {
		return apperror.NewBadRequestError("Range start must not be negative")
	}
	if in.RangeEnd != nil && *in.RangeEnd <= in.RangeStart {
		return apperror.NewBadRequestError("Range end must be above range start")
	}
	return nil
}

// CreateMarginTier appends a margin tier after validating its range against
// every existing tier.
func (s *TierService) CreateMarginTier(ctx context.Context, actor Actor, input *MarginTierInput) (*entity.MarginTier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tier := &entity.MarginTier{
		RangeStart:    input.RangeStart,
		RangeEnd:      input.RangeEnd,
		MarginPercent: input.MarginPercent,
	}

	existing, err := s.marginRepo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if tier.Overlaps(&existing[i]) {
			return nil, apperror.NewConflictError(
				fmt.Sprintf("Range overlaps tier at position %d", existing[i].Position))
		}
	}

	position, err := s.marginRepo.NextPosition(ctx)
	if err != nil {
		return nil, err
	}
	tier.Position = position

	if err := s.marginRepo.Create(ctx, tier); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionCreate, "margin_tier", tier.ID.String(),
		fmt.Sprintf("Created margin tier %d (%.2f%%)", tier.Position, tier.MarginPercent))
	return tier, nil
}

// UpdateMarginTier updates a margin tier, revalidating its range against all
// other tiers.
func (s *TierService) UpdateMarginTier(ctx context.Context, actor Actor, id uuid.UUID, input *MarginTierInput) (*entity.MarginTier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tier, err := s.marginRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, apperror.NewNotFoundError("Margin tier")
	}

	tier.RangeStart = input.RangeStart
	tier.RangeEnd = input.RangeEnd
	tier.MarginPercent = input.MarginPercent

	existing, err := s.marginRepo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].ID == tier.ID {
			continue
		}
		if tier.Overlaps(&existing[i]) {
			return nil, apperror.NewConflictError(
				fmt.Sprintf("Range overlaps tier at position %d", existing[i].Position))
		}
	}

	if err := s.marginRepo.Update(ctx, tier); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "margin_tier", tier.ID.String(),
		fmt.Sprintf("Updated margin tier %d", tier.Position))
	return tier, nil
}

// DeleteMarginTier removes a tier and renumbers the survivors back to a
// dense 1..N sequence.
func (s *TierService) DeleteMarginTier(ctx context.Context, actor Actor, id uuid.UUID) error {
	tier, err := s.marginRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tier == nil {
		return apperror.NewNotFoundError("Margin tier")
	}

	if err := s.marginRepo.Delete(ctx, id); err != nil {
		return err
	}

	remaining, err := s.marginRepo.ListOrdered(ctx)
	if err != nil {
		return err
	}
	ids := make([]uuid.UUID, 0, len(remaining))
	for i := range remaining {
		ids = append(ids, remaining[i].ID)
	}
	if err := s.marginRepo.Renumber(ctx, ids); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionDelete, "margin_tier", id.String(),
		fmt.Sprintf("Deleted margin tier %d", tier.Position))
	return nil
}

// ListMarkupTiers returns all markup tiers ordered by position
func (s *TierService) ListMarkupTiers(ctx context.Context) ([]entity.MarkupTier, error) {
	return s.markupRepo.ListOrdered(ctx)
}

// MarkupTierInput represents the create/update markup tier input
type MarkupTierInput struct {
	UpperBound    *float64
	MarkupPercent float64
}

func (in *MarkupTierInput) validate() error {
	if in.MarkupPercent < 0 {
		return apperror.NewBadRequestError("Markup percent must not be negative")
	}
	if in.UpperBound != nil && *in.UpperBound <= 0 {
		return apperror.NewBadRequestError("Upper bound must be positive")
	}
	return nil
}

// CreateMarkupTier appends a markup tier. Bounds are not validated against
// each other; position order alone decides which tier wins.
func (s *TierService) CreateMarkupTier(ctx context.Context, actor Actor, input *MarkupTierInput) (*entity.MarkupTier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	position, err := s.markupRepo.NextPosition(ctx)
	if err != nil {
		return nil, err
	}

	tier := &entity.MarkupTier{
		Position:      position,
		UpperBound:    input.UpperBound,
		MarkupPercent: input.MarkupPercent,
	}
	if err := s.markupRepo.Create(ctx, tier); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionCreate, "markup_tier", tier.ID.String(),
		fmt.Sprintf("Created markup tier %d (%.2f%%)", tier.Position, tier.MarkupPercent))
	return tier, nil
}

// UpdateMarkupTier updates a markup tier
func (s *TierService) UpdateMarkupTier(ctx context.Context, actor Actor, id uuid.UUID, input *MarkupTierInput) (*entity.MarkupTier, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tier, err := s.markupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, apperror.NewNotFoundError("Markup tier")
	}

	tier.UpperBound = input.UpperBound
	tier.MarkupPercent = input.MarkupPercent
	if err := s.markupRepo.Update(ctx, tier); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "markup_tier", tier.ID.String(),
		fmt.Sprintf("Updated markup tier %d", tier.Position))
	return tier, nil
}

// DeleteMarkupTier removes a tier and renumbers the survivors
func (s *TierService) DeleteMarkupTier(ctx context.Context, actor Actor, id uuid.UUID) error {
	tier, err := s.markupRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tier == nil {
		return apperror.NewNotFoundError("Markup tier")
	}

	if err := s.markupRepo.Delete(ctx, id); err != nil {
		return err
	}

	remaining, err := s.markupRepo.ListOrdered(ctx)
	if err != nil {
		return err
	}
	ids := make([]uuid.UUID, 0, len(remaining))
	for i := range remaining {
		ids = append(ids, remaining[i].ID)
	}
	if err := s.markupRepo.Renumber(ctx, ids); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionDelete, "markup_tier", id.String(),
		fmt.Sprintf("Deleted markup tier %d", tier.Position))
	return nil
}

// ReorderMarkupTiers rewrites the markup tier ordering. The ids must be a
// permutation of all current tiers.
func (s *TierService) ReorderMarkupTiers(ctx context.Context, actor Actor, ids []uuid.UUID) error {
	existing, err := s.markupRepo.ListOrdered(ctx)
	if err != nil {
		return err
	}
	if len(ids) != len(existing) {
		return apperror.NewBadRequestError("Ordering must include every markup tier exactly once")
	}
	known := make(map[uuid.UUID]bool, len(existing))
	for i := range existing {
		known[existing[i].ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return apperror.NewBadRequestError("Unknown markup tier in ordering")
		}
		delete(known, id)
	}

	if err := s.markupRepo.Renumber(ctx, ids); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "markup_tier", "",
		"Reordered markup tiers")
	return nil
}
