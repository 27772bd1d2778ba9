package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/domain/pricing"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/pkg/apperror"
	"github.com/serigraf/backoffice-api/pkg/pagination"
)

// QuoteService handles quote-related operations. Quote totals follow the
// two-pass budget rule: percent extras apply to the non-percent base and
// never to each other.
type QuoteService struct {
	quoteRepo    repository.QuoteRepository
	orderRepo    repository.OrderRepository
	materialRepo repository.MaterialRepository
	optionRepo   repository.ExtraOptionRepository
	tierSvc      *TierService
	auditSvc     *AuditService
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	orderRepo repository.OrderRepository,
	materialRepo repository.MaterialRepository,
	optionRepo repository.ExtraOptionRepository,
	tierSvc *TierService,
	auditSvc *AuditService,
) *QuoteService {
	return &QuoteService{
		quoteRepo:    quoteRepo,
		orderRepo:    orderRepo,
		materialRepo: materialRepo,
		optionRepo:   optionRepo,
		tierSvc:      tierSvc,
		auditSvc:     auditSvc,
	}
}

// QuoteMaterialInput is one budgeted material line. UnitCost overrides the
// catalog cost when set; otherwise the catalog cost is snapshotted.
type QuoteMaterialInput struct {
	MaterialID uuid.UUID
	Quantity   float64
	UnitCost   *float64
}

// QuoteExpenseInput is one budgeted expense line
type QuoteExpenseInput struct {
	Description string
	Amount      float64
}

// QuoteExtraInput is one budgeted extra line
type QuoteExtraInput struct {
	OptionID    uuid.UUID
	StringValue *string
	Amount1     *float64
	Amount2     *float64
}

// CreateQuoteInput represents the create quote input
type CreateQuoteInput struct {
	UserID       uuid.UUID
	Date         time.Time
	CustomerName string
	Note         *string
	Materials    []QuoteMaterialInput
	Expenses     []QuoteExpenseInput
	Extras       []QuoteExtraInput
}

// CreateQuote creates a quote, snapshots its lines, totals the budget and
// attaches the tier-derived suggested price.
func (s *QuoteService) CreateQuote(ctx context.Context, actor Actor, input *CreateQuoteInput) (*entity.Quote, error) {
	materials, expenses, extras, err := s.buildLines(ctx, input.Materials, input.Expenses, input.Extras)
	if err != nil {
		return nil, err
	}

	number, err := s.quoteRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	quote := &entity.Quote{
		UserID:       input.UserID,
		Date:         date,
		Reference:    fmt.Sprintf("ORC-%04d", number),
		CustomerName: input.CustomerName,
		Note:         input.Note,
		Status:       enum.QuoteStatusDraft,
	}
	s.applyTotals(quote, materials, expenses, extras)

	if p, err := s.tierSvc.SuggestedPrice(ctx, quote.TotalBudget); err == nil {
		quote.SuggestedPrice = p
	} else {
		return nil, err
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}
	for i := range materials {
		materials[i].QuoteID = quote.ID
	}
	for i := range expenses {
		expenses[i].QuoteID = quote.ID
	}
	for i := range extras {
		extras[i].QuoteID = quote.ID
	}
	if err := s.quoteRepo.ReplaceLines(ctx, quote.ID, materials, expenses, extras); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionCreate, "quote", quote.ID.String(),
		"Created quote "+quote.Reference)
	return s.quoteRepo.GetWithLines(ctx, quote.ID)
}

// GetQuote retrieves a quote with its lines
func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return quote, nil
}

// ListQuotes lists quotes with filtering
func (s *QuoteService) ListQuotes(ctx context.Context, userID uuid.UUID, params *repository.QuoteFilterParams) (*pagination.PaginatedResult[entity.Quote], error) {
	quotes, total, err := s.quoteRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotes, pag), nil
}

// UpdateQuoteInput represents the update quote input. Lines are replaced
// wholesale and totals recomputed.
type UpdateQuoteInput struct {
	CustomerName *string
	Date         *time.Time
	Note         *string
	Materials    []QuoteMaterialInput
	Expenses     []QuoteExpenseInput
	Extras       []QuoteExtraInput
}

// UpdateQuote updates a draft quote
func (s *QuoteService) UpdateQuote(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateQuoteInput) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if quote.Status == enum.QuoteStatusApproved {
		return nil, apperror.NewConflictError("Approved quotes cannot be edited")
	}

	materials, expenses, extras, err := s.buildLines(ctx, input.Materials, input.Expenses, input.Extras)
	if err != nil {
		return nil, err
	}

	if input.CustomerName != nil {
		quote.CustomerName = *input.CustomerName
	}
	if input.Date != nil {
		quote.Date = *input.Date
	}
	if input.Note != nil {
		quote.Note = input.Note
	}
	s.applyTotals(quote, materials, expenses, extras)

	if p, err := s.tierSvc.SuggestedPrice(ctx, quote.TotalBudget); err == nil {
		quote.SuggestedPrice = p
	} else {
		return nil, err
	}

	for i := range materials {
		materials[i].QuoteID = quote.ID
	}
	for i := range expenses {
		expenses[i].QuoteID = quote.ID
	}
	for i := range extras {
		extras[i].QuoteID = quote.ID
	}
	if err := s.quoteRepo.ReplaceLines(ctx, quote.ID, materials, expenses, extras); err != nil {
		return nil, err
	}
	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "quote", quote.ID.String(),
		"Updated quote "+quote.Reference)
	return s.quoteRepo.GetWithLines(ctx, quote.ID)
}

// DeleteQuote deletes a quote and its lines
func (s *QuoteService) DeleteQuote(ctx context.Context, actor Actor, id uuid.UUID) error {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quote == nil {
		return apperror.NewNotFoundError("Quote")
	}
	if quote.Status == enum.QuoteStatusApproved {
		return apperror.NewConflictError("Approved quotes cannot be deleted")
	}

	if err := s.quoteRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionDelete, "quote", id.String(),
		"Deleted quote "+quote.Reference)
	return nil
}

// UpdateQuoteStatus moves a quote between draft, finalized and canceled.
// Approval goes through ApproveQuote because it spawns the order.
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, actor Actor, id uuid.UUID, status enum.QuoteStatus) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if status == enum.QuoteStatusApproved {
		return nil, apperror.NewBadRequestError("Use the approve endpoint to approve a quote")
	}
	if quote.Status == enum.QuoteStatusApproved {
		return nil, apperror.NewConflictError("Approved quotes cannot change status")
	}

	if err := s.quoteRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	quote.Status = status

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "quote", quote.ID.String(),
		fmt.Sprintf("Quote %s status changed to %s", quote.Reference, status))
	return quote, nil
}

// ApproveQuote converts a quote into an order plus its empty warehouse
// record and marks the quote approved, all in one transaction. A quote
// approves at most once.
func (s *QuoteService) ApproveQuote(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Order, error) {
	quote, err := s.quoteRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if quote.Status == enum.QuoteStatusApproved {
		return nil, apperror.NewConflictError("Quote is already approved")
	}
	if quote.Status == enum.QuoteStatusCanceled {
		return nil, apperror.NewConflictError("Canceled quotes cannot be approved")
	}

	number, err := s.orderRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	quoteID := quote.ID
	order := &entity.Order{
		UserID:       quote.UserID,
		QuoteID:      &quoteID,
		Date:         time.Now(),
		Reference:    fmt.Sprintf("PED-%04d", number),
		CustomerName: quote.CustomerName,
		TotalBudget:  quote.TotalBudget,
		Status:       enum.OrderStatusOpen,
		Note:         quote.Note,
	}
	for _, m := range quote.Materials {
		order.Materials = append(order.Materials, entity.OrderMaterial{
			MaterialID:   m.MaterialID,
			MaterialName: m.MaterialName,
			Quantity:     m.Quantity,
			UnitCost:     m.UnitCost,
			SubTotal:     m.SubTotal,
		})
	}
	for _, e := range quote.Expenses {
		order.Expenses = append(order.Expenses, entity.OrderExpense{
			Description: e.Description,
			Amount:      e.Amount,
		})
	}
	for _, x := range quote.Extras {
		order.Extras = append(order.Extras, entity.OrderExtra{
			OptionID:    x.OptionID,
			OptionName:  x.OptionName,
			Kind:        x.Kind,
			StringValue: x.StringValue,
			Amount1:     x.Amount1,
			Amount2:     x.Amount2,
			SubTotal:    x.SubTotal,
		})
	}

	record := &entity.WarehouseRecord{Status: enum.WarehouseStatusNotStarted}
	if err := s.orderRepo.CreateFromQuote(ctx, order, record, quote.ID); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionCreate, "order", order.ID.String(),
		fmt.Sprintf("Approved quote %s into order %s", quote.Reference, order.Reference))
	return s.orderRepo.GetWithLines(ctx, order.ID)
}

// buildLines resolves and snapshots the input lines against the material and
// extra-option catalogs.
func (s *QuoteService) buildLines(
	ctx context.Context,
	materialInputs []QuoteMaterialInput,
	expenseInputs []QuoteExpenseInput,
	extraInputs []QuoteExtraInput,
) ([]entity.QuoteMaterial, []entity.QuoteExpense, []entity.QuoteExtra, error) {
	materials := make([]entity.QuoteMaterial, 0, len(materialInputs))
	for _, in := range materialInputs {
		if in.Quantity < 0 {
			return nil, nil, nil, apperror.NewBadRequestError("Material quantity must not be negative")
		}
		material, err := s.materialRepo.GetByID(ctx, in.MaterialID)
		if err != nil {
			return nil, nil, nil, err
		}
		if material == nil {
			return nil, nil, nil, apperror.NewBadRequestError("Unknown material " + in.MaterialID.String())
		}
		unitCost := material.UnitCost
		if in.UnitCost != nil {
			unitCost = *in.UnitCost
		}
		materials = append(materials, entity.QuoteMaterial{
			MaterialID:   material.ID,
			MaterialName: material.Name,
			Quantity:     in.Quantity,
			UnitCost:     unitCost,
			SubTotal:     in.Quantity * unitCost,
		})
	}

	expenses := make([]entity.QuoteExpense, 0, len(expenseInputs))
	for _, in := range expenseInputs {
		expenses = append(expenses, entity.QuoteExpense{
			Description: in.Description,
			Amount:      in.Amount,
		})
	}

	options, err := s.optionRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	byID := make(map[uuid.UUID]*entity.ExtraOption, len(options))
	for i := range options {
		byID[options[i].ID] = &options[i]
	}

	extras := make([]entity.QuoteExtra, 0, len(extraInputs))
	for _, in := range extraInputs {
		option, ok := byID[in.OptionID]
		if !ok {
			return nil, nil, nil, apperror.NewBadRequestError("Unknown extra option " + in.OptionID.String())
		}
		extras = append(extras, entity.QuoteExtra{
			OptionID:    option.ID,
			OptionName:  option.Name,
			Kind:        option.Kind,
			StringValue: in.StringValue,
			Amount1:     in.Amount1,
			Amount2:     in.Amount2,
		})
	}

	return materials, expenses, extras, nil
}

// applyTotals computes the two-pass budget total and stamps each extra
// line's subtotal, percent extras against the non-percent base.
func (s *QuoteService) applyTotals(quote *entity.Quote, materials []entity.QuoteMaterial, expenses []entity.QuoteExpense, extras []entity.QuoteExtra) {
	mLines := quoteMaterialLines(materials)
	eLines := quoteExpenseLines(expenses)
	xValues := quoteExtraValues(extras)

	base := pricing.BaseTotal(mLines, eLines, xValues)
	for i := range extras {
		v, selected := pricing.ValueOf(extras[i].Kind, extras[i].StringValue, extras[i].Amount1, extras[i].Amount2)
		if !selected {
			extras[i].SubTotal = 0
			continue
		}
		extras[i].SubTotal = pricing.AmountFor(v, base)
	}
	quote.TotalBudget = base + pricing.PercentTotal(xValues, base)
}
