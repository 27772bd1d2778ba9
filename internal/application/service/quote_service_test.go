package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuoteService() (*QuoteService, *fakeQuoteRepo, *fakeOrderRepo) {
	quoteRepo := newFakeQuoteRepo()
	orderRepo := newFakeOrderRepo()
	orderRepo.quotes = quoteRepo
	materialRepo := newFakeMaterialRepo()
	optionRepo := &fakeOptionRepo{}
	tierSvc, _, _ := newTestTierService()
	auditSvc, _ := newTestAuditService()
	svc := NewQuoteService(quoteRepo, orderRepo, materialRepo, optionRepo, tierSvc, auditSvc)
	return svc, quoteRepo, orderRepo
}

// seedDraftQuote stores a draft quote with one line per category.
func seedDraftQuote(quoteRepo *fakeQuoteRepo) *entity.Quote {
	quote := &entity.Quote{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Reference:    "ORC-0001",
		CustomerName: "Padaria Central",
		Status:       enum.QuoteStatusDraft,
		TotalBudget:  200,
	}
	quote.Materials = []entity.QuoteMaterial{{
		ID:           uuid.New(),
		QuoteID:      quote.ID,
		MaterialID:   uuid.New(),
		MaterialName: "Vinyl",
		Quantity:     10,
		UnitCost:     10,
		SubTotal:     100,
	}}
	quote.Expenses = []entity.QuoteExpense{{
		ID:          uuid.New(),
		QuoteID:     quote.ID,
		Description: "Freight",
		Amount:      50,
	}}
	quote.Extras = []entity.QuoteExtra{{
		ID:         uuid.New(),
		QuoteID:    quote.ID,
		OptionID:   uuid.New(),
		OptionName: "Installation",
		Kind:       enum.ExtraKindQtyRate,
		Amount1:    f(2),
		Amount2:    f(25),
		SubTotal:   50,
	}}
	quoteRepo.quotes[quote.ID] = quote
	return quote
}

func TestApproveQuoteCreatesOrderAndApprovesQuote(t *testing.T) {
	ctx := context.Background()
	svc, quoteRepo, orderRepo := newTestQuoteService()
	quote := seedDraftQuote(quoteRepo)

	order, err := svc.ApproveQuote(ctx, SystemActor, quote.ID)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "PED-0001", order.Reference)
	require.NotNil(t, order.QuoteID)
	assert.Equal(t, quote.ID, *order.QuoteID)
	assert.Equal(t, enum.OrderStatusOpen, order.Status)
	assert.InDelta(t, quote.TotalBudget, order.TotalBudget, 1e-9)
	require.Len(t, orderRepo.orders, 1)

	stored, err := quoteRepo.GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusApproved, stored.Status)
}

func TestApproveQuoteFailureLeavesQuoteDraft(t *testing.T) {
	ctx := context.Background()
	svc, quoteRepo, orderRepo := newTestQuoteService()
	quote := seedDraftQuote(quoteRepo)

	orderRepo.createErr = errors.New("connection reset")
	_, err := svc.ApproveQuote(ctx, SystemActor, quote.ID)
	require.Error(t, err)

	assert.Empty(t, orderRepo.orders)
	stored, err := quoteRepo.GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.QuoteStatusDraft, stored.Status)

	// a retry after the failure yields exactly one order
	orderRepo.createErr = nil
	_, err = svc.ApproveQuote(ctx, SystemActor, quote.ID)
	require.NoError(t, err)
	assert.Len(t, orderRepo.orders, 1)
}

func TestApproveQuoteOnlyOnce(t *testing.T) {
	ctx := context.Background()
	svc, quoteRepo, orderRepo := newTestQuoteService()
	quote := seedDraftQuote(quoteRepo)

	_, err := svc.ApproveQuote(ctx, SystemActor, quote.ID)
	require.NoError(t, err)

	_, err = svc.ApproveQuote(ctx, SystemActor, quote.ID)
	assert.Error(t, err)
	assert.Len(t, orderRepo.orders, 1)
}

func TestApproveCanceledQuoteRejected(t *testing.T) {
	ctx := context.Background()
	svc, quoteRepo, orderRepo := newTestQuoteService()
	quote := seedDraftQuote(quoteRepo)
	quoteRepo.quotes[quote.ID].Status = enum.QuoteStatusCanceled

	_, err := svc.ApproveQuote(ctx, SystemActor, quote.ID)
	assert.Error(t, err)
	assert.Empty(t, orderRepo.orders)
}
