package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func s(v string) *string { return &v }

// seedOrderWithRecord stores an order with one line per category plus a
// percent extra, and its warehouse record.
func seedOrderWithRecord(orderRepo *fakeOrderRepo, warehouseRepo *fakeWarehouseRepo) (*entity.Order, *entity.WarehouseRecord) {
	order := &entity.Order{
		ID:        uuid.New(),
		Reference: "PED-0001",
		Status:    enum.OrderStatusOpen,
	}
	order.Materials = []entity.OrderMaterial{{
		ID:           uuid.New(),
		OrderID:      order.ID,
		MaterialName: "Vinyl",
		Quantity:     10,
		UnitCost:     10,
		SubTotal:     100,
	}}
	order.Expenses = []entity.OrderExpense{{
		ID:          uuid.New(),
		OrderID:     order.ID,
		Description: "Freight",
		Amount:      50,
	}}
	order.Extras = []entity.OrderExtra{
		{
			ID:         uuid.New(),
			OrderID:    order.ID,
			OptionName: "Installation",
			Kind:       enum.ExtraKindQtyRate,
			Amount1:    f(2),
			Amount2:    f(25),
			SubTotal:   50,
		},
		{
			ID:         uuid.New(),
			OrderID:    order.ID,
			OptionName: "Risk",
			Kind:       enum.ExtraKindPercentOfBase,
			Amount1:    f(10),
			SubTotal:   20, // 10% of the 200 non-percent base
		},
	}
	order.TotalBudget = 220
	orderRepo.orders[order.ID] = order

	record := &entity.WarehouseRecord{
		ID:      uuid.New(),
		OrderID: order.ID,
		Status:  enum.WarehouseStatusNotStarted,
	}
	warehouseRepo.records[record.ID] = record
	return order, record
}

func newTestWarehouseService() (*WarehouseService, *fakeOrderRepo, *fakeWarehouseRepo) {
	orderRepo := newFakeOrderRepo()
	warehouseRepo := newFakeWarehouseRepo()
	auditSvc, _ := newTestAuditService()
	return NewWarehouseService(warehouseRepo, orderRepo, auditSvc), orderRepo, warehouseRepo
}

func TestEnterActualsRejectsForeignLines(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, warehouseRepo := newTestWarehouseService()
	_, record := seedOrderWithRecord(orderRepo, warehouseRepo)

	_, err := svc.EnterActuals(ctx, SystemActor, record.ID, &EnterActualsInput{
		Materials: []RealizedMaterialInput{{OrderMaterialID: uuid.New(), Quantity: 5}},
	})
	assert.Error(t, err)

	_, err = svc.EnterActuals(ctx, SystemActor, record.ID, &EnterActualsInput{
		Expenses: []RealizedExpenseInput{{OrderExpenseID: uuid.New(), Amount: 10}},
	})
	assert.Error(t, err)

	_, err = svc.EnterActuals(ctx, SystemActor, record.ID, &EnterActualsInput{
		Extras: []RealizedExtraInput{{OrderExtraID: uuid.New(), Amount1: f(1)}},
	})
	assert.Error(t, err)
}

func TestEnterActualsMovesRecordToPending(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, warehouseRepo := newTestWarehouseService()
	order, record := seedOrderWithRecord(orderRepo, warehouseRepo)

	got, err := svc.EnterActuals(ctx, SystemActor, record.ID, &EnterActualsInput{
		Materials: []RealizedMaterialInput{{OrderMaterialID: order.Materials[0].ID, Quantity: 12}},
	})
	require.NoError(t, err)
	assert.Equal(t, enum.WarehouseStatusPending, got.Status)
	require.Len(t, got.Materials, 1)
	// unit cost defaults to the budgeted cost
	assert.InDelta(t, 10.0, got.Materials[0].UnitCost, 1e-9)
}

func TestFinalizeRequiresActuals(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, warehouseRepo := newTestWarehouseService()
	_, record := seedOrderWithRecord(orderRepo, warehouseRepo)

	_, err := svc.Finalize(ctx, SystemActor, record.ID, false)
	assert.Error(t, err)
}

func TestFinalizeBuildsReport(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, warehouseRepo := newTestWarehouseService()
	order, record := seedOrderWithRecord(orderRepo, warehouseRepo)

	_, err := svc.EnterActuals(ctx, SystemActor, record.ID, &EnterActualsInput{
		Materials: []RealizedMaterialInput{{OrderMaterialID: order.Materials[0].ID, Quantity: 12}},
		Expenses:  []RealizedExpenseInput{{OrderExpenseID: order.Expenses[0].ID, Amount: 50}},
		Extras: []RealizedExtraInput{
			{OrderExtraID: order.Extras[0].ID, Amount1: f(3), Amount2: f(25)},
			{OrderExtraID: order.Extras[1].ID, Amount1: f(10)},
		},
	})
	require.NoError(t, err)

	report, err := svc.Finalize(ctx, SystemActor, record.ID, false)
	require.NoError(t, err)

	// materials: budgeted 100, realized 120
	assert.InDelta(t, 100.0, report.Materials.Budgeted, 1e-9)
	assert.InDelta(t, 120.0, report.Materials.Realized, 1e-9)
	assert.InDelta(t, 20.0, report.Materials.Difference, 1e-9)
	assert.InDelta(t, 20.0, report.Materials.Percentage, 1e-9)

	// expenses on budget
	assert.InDelta(t, 0.0, report.Expenses.Difference, 1e-9)

	// extras: qty-rate went 50 -> 75; percent extra still 10% of the
	// budgeted 200 base, so it stays at 20
	assert.InDelta(t, 70.0, report.Extras.Budgeted, 1e-9)
	assert.InDelta(t, 95.0, report.Extras.Realized, 1e-9)

	assert.InDelta(t, 220.0, report.Total.Budgeted, 1e-9)
	assert.InDelta(t, 265.0, report.Total.Realized, 1e-9)

	require.Len(t, report.Analysis, 4)
	byName := make(map[string]entity.ReconciliationLine)
	for _, line := range report.Analysis {
		byName[line.Name] = line
	}
	assert.Equal(t, enum.VarianceStatusAbove, byName["Vinyl"].Status)
	assert.Equal(t, enum.VarianceStatusEqual, byName["Freight"].Status)
	assert.Equal(t, enum.VarianceStatusEqual, byName["Risk"].Status)
	assert.Equal(t, enum.VarianceStatusAbove, byName["Installation"].Status)

	stored, err := warehouseRepo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.WarehouseStatusFinalized, stored.Status)
	assert.NotNil(t, stored.FinalizedAt)
	assert.Equal(t, "System", stored.FinalizedByName)
}

func TestFinalizeMissingActualLinesCountAsZero(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, warehouseRepo := newTestWarehouseService()
	order, record := seedOrderWithRecord(orderRepo, warehouseRepo)

	// only the expense was recorded; everything else counts as zero
	_, err := svc.EnterActuals(ctx, SystemActor, record.ID, &EnterActualsInput{
		Expenses: []RealizedExpenseInput{{OrderExpenseID: order.Expenses[0].ID, Amount: 45}},
	})
	require.NoError(t, err)

	report, err := svc.Finalize(ctx, SystemActor, record.ID, false)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, report.Materials.Realized, 1e-9)
	assert.InDelta(t, -100.0, report.Materials.Difference, 1e-9)
	assert.InDelta(t, 0.0, report.Extras.Realized, 1e-9)

	byName := make(map[string]entity.ReconciliationLine)
	for _, line := range report.Analysis {
		byName[line.Name] = line
	}
	assert.Equal(t, enum.VarianceStatusBelow, byName["Vinyl"].Status)
	assert.Equal(t, enum.VarianceStatusBelow, byName["Freight"].Status)
}

func TestFinalizeTwiceNeedsForce(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, warehouseRepo := newTestWarehouseService()
	order, record := seedOrderWithRecord(orderRepo, warehouseRepo)

	_, err := svc.EnterActuals(ctx, SystemActor, record.ID, &EnterActualsInput{
		Materials: []RealizedMaterialInput{{OrderMaterialID: order.Materials[0].ID, Quantity: 10}},
	})
	require.NoError(t, err)

	first, err := svc.Finalize(ctx, SystemActor, record.ID, false)
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, SystemActor, record.ID, false)
	assert.Error(t, err)

	// forcing overwrites the stored report in place
	second, err := svc.Finalize(ctx, SystemActor, record.ID, true)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	stored, err := svc.GetReport(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
}

func TestEnterActualsRejectedAfterFinalize(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, warehouseRepo := newTestWarehouseService()
	order, record := seedOrderWithRecord(orderRepo, warehouseRepo)

	_, err := svc.EnterActuals(ctx, SystemActor, record.ID, &EnterActualsInput{
		Materials: []RealizedMaterialInput{{OrderMaterialID: order.Materials[0].ID, Quantity: 10}},
	})
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, SystemActor, record.ID, false)
	require.NoError(t, err)

	_, err = svc.EnterActuals(ctx, SystemActor, record.ID, &EnterActualsInput{})
	assert.Error(t, err)
}

func TestFinalizeUnselectedRealizedExtraCountsAsZero(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, warehouseRepo := newTestWarehouseService()
	order, record := seedOrderWithRecord(orderRepo, warehouseRepo)

	_, err := svc.EnterActuals(ctx, SystemActor, record.ID, &EnterActualsInput{
		Extras: []RealizedExtraInput{{OrderExtraID: order.Extras[0].ID, StringValue: s("Selecione")}},
	})
	require.NoError(t, err)

	report, err := svc.Finalize(ctx, SystemActor, record.ID, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, report.Extras.Realized, 1e-9)
}
