package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/pkg/apperror"
	"github.com/serigraf/backoffice-api/pkg/pagination"
)

// Actor identifies who performed an audited operation
type Actor struct {
	ID   uuid.UUID
	Name string
}

// SystemActor is recorded for operations with no authenticated user, such
// as seed scripts and scheduled jobs.
var SystemActor = Actor{ID: uuid.Nil, Name: "System"}

// OrZero returns the actor, substituting SystemActor when empty
func (a Actor) OrZero() Actor {
	if a.ID == uuid.Nil && a.Name == "" {
		return SystemActor
	}
	return a
}

// AuditService records and queries the mutation audit trail
type AuditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record writes one audit entry. Failures are logged and swallowed so the
// audited operation itself never fails because of the trail.
func (s *AuditService) Record(ctx context.Context, actor Actor, action enum.AuditAction, entityType, entityID, description string) {
	actor = actor.OrZero()
	entry := &entity.AuditLog{
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("audit: failed to record %s %s %s: %v", action, entityType, entityID, err)
	}
}

// RecordDetail writes one audit entry with a free-form detail payload
func (s *AuditService) RecordDetail(ctx context.Context, actor Actor, action enum.AuditAction, entityType, entityID, description, detail string) {
	actor = actor.OrZero()
	entry := &entity.AuditLog{
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		Detail:      detail,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("audit: failed to record %s %s %s: %v", action, entityType, entityID, err)
	}
}

// ListEntries lists audit entries with filtering
func (s *AuditService) ListEntries(ctx context.Context, params *repository.AuditFilterParams) (*pagination.PaginatedResult[entity.AuditLog], error) {
	entries, total, err := s.auditRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

// ListEntriesCursor lists audit entries with keyset pagination. The trail is
// append-only and unbounded, so deep pages stay cheap this way.
func (s *AuditService) ListEntriesCursor(ctx context.Context, cursorParams *pagination.CursorParams, entityType string, action *enum.AuditAction) (*pagination.CursorPaginatedResult[entity.AuditLog], error) {
	cursorParams.Validate()

	cursor, err := cursorParams.DecodeCursor()
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid cursor")
	}

	entries, err := s.auditRepo.ListCursor(ctx, &repository.AuditCursorParams{
		Cursor:     cursor,
		Limit:      cursorParams.Limit,
		EntityType: entityType,
		Action:     action,
	})
	if err != nil {
		return nil, err
	}

	pag, entries := pagination.NewCursorPagination(entries, cursorParams.Limit,
		func(e entity.AuditLog) string { return e.ID.String() },
		func(e entity.AuditLog) time.Time { return e.CreatedAt },
	)
	pag.HasPrev = cursorParams.Cursor != ""

	return pagination.NewCursorPaginatedResult(entries, pag), nil
}
