package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
)

// In-memory repository fakes for service tests.

type fakeAuditRepo struct {
	entries []entity.AuditLog
}

func (f *fakeAuditRepo) Create(_ context.Context, entry *entity.AuditLog) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, _ *repository.AuditFilterParams) ([]entity.AuditLog, int64, error) {
	return f.entries, int64(len(f.entries)), nil
}

func (f *fakeAuditRepo) ListCursor(_ context.Context, params *repository.AuditCursorParams) ([]entity.AuditLog, error) {
	limit := params.Limit + 1
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func newTestAuditService() (*AuditService, *fakeAuditRepo) {
	repo := &fakeAuditRepo{}
	return NewAuditService(repo), repo
}

type fakeMarginTierRepo struct {
	tiers []entity.MarginTier
}

func (f *fakeMarginTierRepo) Create(_ context.Context, tier *entity.MarginTier) error {
	if tier.ID == uuid.Nil {
		tier.ID = uuid.New()
	}
	f.tiers = append(f.tiers, *tier)
	return nil
}

func (f *fakeMarginTierRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.MarginTier, error) {
	for i := range f.tiers {
		if f.tiers[i].ID == id {
			t := f.tiers[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeMarginTierRepo) Update(_ context.Context, tier *entity.MarginTier) error {
	for i := range f.tiers {
		if f.tiers[i].ID == tier.ID {
			f.tiers[i] = *tier
			return nil
		}
	}
	return nil
}

func (f *fakeMarginTierRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.tiers {
		if f.tiers[i].ID == id {
			f.tiers = append(f.tiers[:i], f.tiers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeMarginTierRepo) ListOrdered(_ context.Context) ([]entity.MarginTier, error) {
	out := make([]entity.MarginTier, len(f.tiers))
	copy(out, f.tiers)
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeMarginTierRepo) Renumber(_ context.Context, ids []uuid.UUID) error {
	for pos, id := range ids {
		for i := range f.tiers {
			if f.tiers[i].ID == id {
				f.tiers[i].Position = pos + 1
			}
		}
	}
	return nil
}

func (f *fakeMarginTierRepo) NextPosition(_ context.Context) (int, error) {
	return len(f.tiers) + 1, nil
}

type fakeMarkupTierRepo struct {
	tiers []entity.MarkupTier
}

func (f *fakeMarkupTierRepo) Create(_ context.Context, tier *entity.MarkupTier) error {
	if tier.ID == uuid.Nil {
		tier.ID = uuid.New()
	}
	f.tiers = append(f.tiers, *tier)
	return nil
}

func (f *fakeMarkupTierRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.MarkupTier, error) {
	for i := range f.tiers {
		if f.tiers[i].ID == id {
			t := f.tiers[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeMarkupTierRepo) Update(_ context.Context, tier *entity.MarkupTier) error {
	for i := range f.tiers {
		if f.tiers[i].ID == tier.ID {
			f.tiers[i] = *tier
			return nil
		}
	}
	return nil
}

func (f *fakeMarkupTierRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.tiers {
		if f.tiers[i].ID == id {
			f.tiers = append(f.tiers[:i], f.tiers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeMarkupTierRepo) ListOrdered(_ context.Context) ([]entity.MarkupTier, error) {
	out := make([]entity.MarkupTier, len(f.tiers))
	copy(out, f.tiers)
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeMarkupTierRepo) Renumber(_ context.Context, ids []uuid.UUID) error {
	for pos, id := range ids {
		for i := range f.tiers {
			if f.tiers[i].ID == id {
				f.tiers[i].Position = pos + 1
			}
		}
	}
	return nil
}

func (f *fakeMarkupTierRepo) NextPosition(_ context.Context) (int, error) {
	return len(f.tiers) + 1, nil
}

type fakeWarehouseRepo struct {
	records map[uuid.UUID]*entity.WarehouseRecord
	reports map[uuid.UUID]*entity.ReconciliationReport
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{
		records: make(map[uuid.UUID]*entity.WarehouseRecord),
		reports: make(map[uuid.UUID]*entity.ReconciliationReport),
	}
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.WarehouseRecord, error) {
	if r, ok := f.records[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) GetByOrderID(_ context.Context, orderID uuid.UUID) (*entity.WarehouseRecord, error) {
	for _, r := range f.records {
		if r.OrderID == orderID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.WarehouseRecord, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeWarehouseRepo) ReplaceActuals(_ context.Context, record *entity.WarehouseRecord, materials []entity.RealizedMaterial, expenses []entity.RealizedExpense, extras []entity.RealizedExtra) error {
	record.Materials = materials
	record.Expenses = expenses
	record.Extras = extras
	copied := *record
	f.records[record.ID] = &copied
	return nil
}

func (f *fakeWarehouseRepo) Finalize(_ context.Context, record *entity.WarehouseRecord, report *entity.ReconciliationReport) error {
	if existing, ok := f.reports[record.ID]; ok {
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
	} else if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	copiedReport := *report
	f.reports[record.ID] = &copiedReport
	copiedRecord := *record
	f.records[record.ID] = &copiedRecord
	return nil
}

func (f *fakeWarehouseRepo) GetReport(_ context.Context, warehouseRecordID uuid.UUID) (*entity.ReconciliationReport, error) {
	if r, ok := f.reports[warehouseRecordID]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

type fakeOrderRepo struct {
	orders    map[uuid.UUID]*entity.Order
	quotes    *fakeQuoteRepo
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (f *fakeOrderRepo) CreateWithWarehouse(_ context.Context, order *entity.Order, record *entity.WarehouseRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.OrderID = order.ID
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

// CreateFromQuote mirrors the transactional gorm method: either everything
// lands (order stored, quote approved) or nothing does.
func (f *fakeOrderRepo) CreateFromQuote(ctx context.Context, order *entity.Order, record *entity.WarehouseRecord, quoteID uuid.UUID) error {
	if f.createErr != nil {
		return f.createErr
	}
	if err := f.CreateWithWarehouse(ctx, order, record); err != nil {
		return err
	}
	if f.quotes != nil {
		if q, ok := f.quotes.quotes[quoteID]; ok {
			q.Status = enum.QuoteStatusApproved
		}
	}
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if o, ok := f.orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeOrderRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context, _ uuid.UUID, _ *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) GetNextReferenceNumber(_ context.Context) (int, error) {
	return len(f.orders) + 1, nil
}

type fakeQuoteRepo struct {
	quotes map[uuid.UUID]*entity.Quote
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[uuid.UUID]*entity.Quote)}
}

func (f *fakeQuoteRepo) Create(_ context.Context, quote *entity.Quote) error {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	copied := *quote
	f.quotes[quote.ID] = &copied
	return nil
}

func (f *fakeQuoteRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Quote, error) {
	if q, ok := f.quotes[id]; ok {
		copied := *q
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeQuoteRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeQuoteRepo) Update(_ context.Context, quote *entity.Quote) error {
	copied := *quote
	f.quotes[quote.ID] = &copied
	return nil
}

func (f *fakeQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.quotes, id)
	return nil
}

func (f *fakeQuoteRepo) List(_ context.Context, _ uuid.UUID, _ *repository.QuoteFilterParams) ([]entity.Quote, int64, error) {
	out := make([]entity.Quote, 0, len(f.quotes))
	for _, q := range f.quotes {
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (f *fakeQuoteRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.QuoteStatus) error {
	if q, ok := f.quotes[id]; ok {
		q.Status = status
	}
	return nil
}

func (f *fakeQuoteRepo) GetNextReferenceNumber(_ context.Context) (int, error) {
	return len(f.quotes) + 1, nil
}

func (f *fakeQuoteRepo) ReplaceLines(_ context.Context, quoteID uuid.UUID, materials []entity.QuoteMaterial, expenses []entity.QuoteExpense, extras []entity.QuoteExtra) error {
	if q, ok := f.quotes[quoteID]; ok {
		q.Materials = materials
		q.Expenses = expenses
		q.Extras = extras
	}
	return nil
}

type fakeMaterialRepo struct {
	materials map[uuid.UUID]*entity.Material
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: make(map[uuid.UUID]*entity.Material)}
}

func (f *fakeMaterialRepo) Create(_ context.Context, material *entity.Material) error {
	if material.ID == uuid.Nil {
		material.ID = uuid.New()
	}
	copied := *material
	f.materials[material.ID] = &copied
	return nil
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Material, error) {
	if m, ok := f.materials[id]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeMaterialRepo) Update(_ context.Context, material *entity.Material) error {
	copied := *material
	f.materials[material.ID] = &copied
	return nil
}

func (f *fakeMaterialRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.materials, id)
	return nil
}

func (f *fakeMaterialRepo) List(_ context.Context, _ *repository.MaterialFilterParams) ([]entity.Material, int64, error) {
	out := make([]entity.Material, 0, len(f.materials))
	for _, m := range f.materials {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

type fakeOptionRepo struct {
	options []entity.ExtraOption
}

func (f *fakeOptionRepo) Create(_ context.Context, option *entity.ExtraOption) error {
	if option.ID == uuid.Nil {
		option.ID = uuid.New()
	}
	f.options = append(f.options, *option)
	return nil
}

func (f *fakeOptionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ExtraOption, error) {
	for i := range f.options {
		if f.options[i].ID == id {
			o := f.options[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOptionRepo) Update(_ context.Context, option *entity.ExtraOption) error {
	for i := range f.options {
		if f.options[i].ID == option.ID {
			f.options[i] = *option
			return nil
		}
	}
	return nil
}

func (f *fakeOptionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.options {
		if f.options[i].ID == id {
			f.options = append(f.options[:i], f.options[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeOptionRepo) List(_ context.Context) ([]entity.ExtraOption, error) {
	out := make([]entity.ExtraOption, len(f.options))
	copy(out, f.options)
	return out, nil
}

type fakePayrollRepo struct {
	entries map[uuid.UUID]*entity.PayrollEntry
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{entries: make(map[uuid.UUID]*entity.PayrollEntry)}
}

func (f *fakePayrollRepo) Create(_ context.Context, entry *entity.PayrollEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	copied := *entry
	f.entries[entry.ID] = &copied
	return nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PayrollEntry, error) {
	if e, ok := f.entries[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, nil
}

func (f *fakePayrollRepo) Update(_ context.Context, entry *entity.PayrollEntry) error {
	copied := *entry
	f.entries[entry.ID] = &copied
	return nil
}

func (f *fakePayrollRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.entries, id)
	return nil
}

func (f *fakePayrollRepo) List(_ context.Context) ([]entity.PayrollEntry, error) {
	out := make([]entity.PayrollEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, *e)
	}
	return out, nil
}
