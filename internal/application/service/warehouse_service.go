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
)

// WarehouseService tracks actual consumption against orders and, on
// finalize, reconciles it into a persisted budget-vs-actual report.
type WarehouseService struct {
	warehouseRepo repository.WarehouseRepository
	orderRepo     repository.OrderRepository
	auditSvc      *AuditService
}

// NewWarehouseService creates a new warehouse service
func NewWarehouseService(
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	auditSvc *AuditService,
) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
		orderRepo:     orderRepo,
		auditSvc:      auditSvc,
	}
}

// GetRecord retrieves a warehouse record with its realized lines
func (s *WarehouseService) GetRecord(ctx context.Context, id uuid.UUID) (*entity.WarehouseRecord, error) {
	record, err := s.warehouseRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Warehouse record")
	}
	return record, nil
}

// RealizedMaterialInput is one actually-consumed material line. UnitCost
// falls back to the budgeted cost when not given.
type RealizedMaterialInput struct {
	OrderMaterialID uuid.UUID
	Quantity        float64
	UnitCost        *float64
}

// RealizedExpenseInput is one actually-incurred expense line
type RealizedExpenseInput struct {
	OrderExpenseID uuid.UUID
	Amount         float64
}

// RealizedExtraInput is one actually-incurred extra line
type RealizedExtraInput struct {
	OrderExtraID uuid.UUID
	StringValue  *string
	Amount1      *float64
	Amount2      *float64
}

// EnterActualsInput represents the enter-actuals input
type EnterActualsInput struct {
	Materials []RealizedMaterialInput
	Expenses  []RealizedExpenseInput
	Extras    []RealizedExtraInput
}

// EnterActuals replaces the record's realized lines. Every line must
// reference a budgeted line of the record's order; the record moves to
// Pending until finalized.
func (s *WarehouseService) EnterActuals(ctx context.Context, actor Actor, id uuid.UUID, input *EnterActualsInput) (*entity.WarehouseRecord, error) {
	record, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Warehouse record")
	}
	if record.Status == enum.WarehouseStatusFinalized {
		return nil, apperror.NewConflictError("Warehouse record is already finalized")
	}

	order, err := s.orderRepo.GetWithLines(ctx, record.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	budgetedMaterials := make(map[uuid.UUID]*entity.OrderMaterial, len(order.Materials))
	for i := range order.Materials {
		budgetedMaterials[order.Materials[i].ID] = &order.Materials[i]
	}
	budgetedExpenses := make(map[uuid.UUID]bool, len(order.Expenses))
	for i := range order.Expenses {
		budgetedExpenses[order.Expenses[i].ID] = true
	}
	budgetedExtras := make(map[uuid.UUID]bool, len(order.Extras))
	for i := range order.Extras {
		budgetedExtras[order.Extras[i].ID] = true
	}

	materials := make([]entity.RealizedMaterial, 0, len(input.Materials))
	for _, in := range input.Materials {
		budgeted, ok := budgetedMaterials[in.OrderMaterialID]
		if !ok {
			return nil, apperror.NewBadRequestError(
				"Material line " + in.OrderMaterialID.String() + " does not belong to this order")
		}
		if in.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Realized quantity must not be negative")
		}
		unitCost := budgeted.UnitCost
		if in.UnitCost != nil {
			unitCost = *in.UnitCost
		}
		materials = append(materials, entity.RealizedMaterial{
			WarehouseRecordID: record.ID,
			OrderMaterialID:   in.OrderMaterialID,
			Quantity:          in.Quantity,
			UnitCost:          unitCost,
		})
	}

	expenses := make([]entity.RealizedExpense, 0, len(input.Expenses))
	for _, in := range input.Expenses {
		if !budgetedExpenses[in.OrderExpenseID] {
			return nil, apperror.NewBadRequestError(
				"Expense line " + in.OrderExpenseID.String() + " does not belong to this order")
		}
		expenses = append(expenses, entity.RealizedExpense{
			WarehouseRecordID: record.ID,
			OrderExpenseID:    in.OrderExpenseID,
			Amount:            in.Amount,
		})
	}

	extras := make([]entity.RealizedExtra, 0, len(input.Extras))
	for _, in := range input.Extras {
		if !budgetedExtras[in.OrderExtraID] {
			return nil, apperror.NewBadRequestError(
				"Extra line " + in.OrderExtraID.String() + " does not belong to this order")
		}
		extras = append(extras, entity.RealizedExtra{
			WarehouseRecordID: record.ID,
			OrderExtraID:      in.OrderExtraID,
			StringValue:       in.StringValue,
			Amount1:           in.Amount1,
			Amount2:           in.Amount2,
		})
	}

	record.Status = enum.WarehouseStatusPending
	if err := s.warehouseRepo.ReplaceActuals(ctx, record, materials, expenses, extras); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "warehouse_record", record.ID.String(),
		"Entered actuals for order "+order.Reference)
	return s.warehouseRepo.GetWithLines(ctx, record.ID)
}

// Finalize reconciles the record's actuals against the order budget, stores
// the report and flips the record to Finalized, atomically. A finalized
// record only re-finalizes when force is set, overwriting the prior report.
func (s *WarehouseService) Finalize(ctx context.Context, actor Actor, id uuid.UUID, force bool) (*entity.ReconciliationReport, error) {
	record, err := s.warehouseRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Warehouse record")
	}
	if record.Status == enum.WarehouseStatusNotStarted {
		return nil, apperror.NewConflictError("No actuals entered yet")
	}
	if record.Status == enum.WarehouseStatusFinalized && !force {
		return nil, apperror.NewConflictError("Warehouse record is already finalized")
	}

	order, err := s.orderRepo.GetWithLines(ctx, record.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	report := buildReconciliation(order, record)

	now := time.Now()
	actor = actor.OrZero()
	record.Status = enum.WarehouseStatusFinalized
	record.FinalizedAt = &now
	record.FinalizedByID = &actor.ID
	record.FinalizedByName = actor.Name

	if err := s.warehouseRepo.Finalize(ctx, record, report); err != nil {
		return nil, err
	}

	s.auditSvc.RecordDetail(ctx, actor, enum.AuditActionFinalize, "warehouse_record", record.ID.String(),
		"Finalized warehouse record for order "+order.Reference,
		fmt.Sprintf("budgeted=%.2f realized=%.2f", report.Total.Budgeted, report.Total.Realized))
	return report, nil
}

// GetReport returns the stored reconciliation report of a finalized record
func (s *WarehouseService) GetReport(ctx context.Context, id uuid.UUID) (*entity.ReconciliationReport, error) {
	record, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Warehouse record")
	}

	report, err := s.warehouseRepo.GetReport(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, apperror.NewNotFoundError("Reconciliation report")
	}
	return report, nil
}

// buildReconciliation joins every budgeted order line to its realized
// counterpart. Missing realized lines count as zero consumption. Realized
// percent extras keep applying to the budgeted base, so a percent line only
// varies when its percentage was changed at the warehouse.
func buildReconciliation(order *entity.Order, record *entity.WarehouseRecord) *entity.ReconciliationReport {
	realizedMaterials := make(map[uuid.UUID]*entity.RealizedMaterial, len(record.Materials))
	for i := range record.Materials {
		realizedMaterials[record.Materials[i].OrderMaterialID] = &record.Materials[i]
	}
	realizedExpenses := make(map[uuid.UUID]*entity.RealizedExpense, len(record.Expenses))
	for i := range record.Expenses {
		realizedExpenses[record.Expenses[i].OrderExpenseID] = &record.Expenses[i]
	}
	realizedExtras := make(map[uuid.UUID]*entity.RealizedExtra, len(record.Extras))
	for i := range record.Extras {
		realizedExtras[record.Extras[i].OrderExtraID] = &record.Extras[i]
	}

	budgetedBase := pricing.BaseTotal(
		orderMaterialLines(order.Materials),
		orderExpenseLines(order.Expenses),
		orderExtraValues(order.Extras),
	)

	report := &entity.ReconciliationReport{WarehouseRecordID: record.ID}
	var analysis []entity.ReconciliationLine

	addLine := func(category string, refID uuid.UUID, name string, budgeted, realized float64) {
		diff := realized - budgeted
		analysis = append(analysis, entity.ReconciliationLine{
			Category:   category,
			RefID:      refID,
			Name:       name,
			Budgeted:   budgeted,
			Realized:   realized,
			Difference: diff,
			Percentage: pricing.Percentage(budgeted, diff),
			Status:     pricing.StatusOf(diff),
		})
	}

	var matBudgeted, matRealized float64
	for _, m := range order.Materials {
		var realized float64
		if r, ok := realizedMaterials[m.ID]; ok {
			realized = r.Quantity * r.UnitCost
		}
		addLine("material", m.ID, m.MaterialName, m.SubTotal, realized)
		matBudgeted += m.SubTotal
		matRealized += realized
	}

	var expBudgeted, expRealized float64
	for _, e := range order.Expenses {
		budgeted := e.Amount
		if e.Description == pricing.UnselectedSentinel {
			budgeted = 0
		}
		var realized float64
		if r, ok := realizedExpenses[e.ID]; ok {
			realized = r.Amount
		}
		addLine("expense", e.ID, e.Description, budgeted, realized)
		expBudgeted += budgeted
		expRealized += realized
	}

	var extBudgeted, extRealized float64
	for _, x := range order.Extras {
		var realized float64
		if r, ok := realizedExtras[x.ID]; ok {
			if v, selected := pricing.ValueOf(x.Kind, r.StringValue, r.Amount1, r.Amount2); selected {
				realized = pricing.AmountFor(v, budgetedBase)
			}
		}
		addLine("extra", x.ID, x.OptionName, x.SubTotal, realized)
		extBudgeted += x.SubTotal
		extRealized += realized
	}

	report.Materials = pricing.Variance(matBudgeted, matRealized)
	report.Expenses = pricing.Variance(expBudgeted, expRealized)
	report.Extras = pricing.Variance(extBudgeted, extRealized)
	report.Total = pricing.Variance(
		matBudgeted+expBudgeted+extBudgeted,
		matRealized+expRealized+extRealized,
	)
	report.Analysis = analysis

	return report
}
