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

// OrderService handles order-related operations. Most orders are born from
// approved quotes, but direct creation is supported for jobs that skip the
// quoting step.
type OrderService struct {
	orderRepo     repository.OrderRepository
	warehouseRepo repository.WarehouseRepository
	materialRepo  repository.MaterialRepository
	optionRepo    repository.ExtraOptionRepository
	auditSvc      *AuditService
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	warehouseRepo repository.WarehouseRepository,
	materialRepo repository.MaterialRepository,
	optionRepo repository.ExtraOptionRepository,
	auditSvc *AuditService,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		warehouseRepo: warehouseRepo,
		materialRepo:  materialRepo,
		optionRepo:    optionRepo,
		auditSvc:      auditSvc,
	}
}

// CreateOrderInput represents the direct create order input
type CreateOrderInput struct {
	UserID       uuid.UUID
	Date         time.Time
	CustomerName string
	Note         *string
	Materials    []QuoteMaterialInput
	Expenses     []QuoteExpenseInput
	Extras       []QuoteExtraInput
}

// CreateOrder creates an order without a quote, along with its empty
// warehouse record.
func (s *OrderService) CreateOrder(ctx context.Context, actor Actor, input *CreateOrderInput) (*entity.Order, error) {
	materials, expenses, extras, err := s.buildLines(ctx, input.Materials, input.Expenses, input.Extras)
	if err != nil {
		return nil, err
	}

	number, err := s.orderRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	order := &entity.Order{
		UserID:       input.UserID,
		Date:         date,
		Reference:    fmt.Sprintf("PED-%04d", number),
		CustomerName: input.CustomerName,
		Note:         input.Note,
		Status:       enum.OrderStatusOpen,
		Materials:    materials,
		Expenses:     expenses,
		Extras:       extras,
	}
	order.TotalBudget = orderTotalBudget(materials, expenses, extras)

	record := &entity.WarehouseRecord{Status: enum.WarehouseStatusNotStarted}
	if err := s.orderRepo.CreateWithWarehouse(ctx, order, record); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionCreate, "order", order.ID.String(),
		"Created order "+order.Reference)
	return s.orderRepo.GetWithLines(ctx, order.ID)
}

// GetOrder retrieves an order with its lines
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateOrderStatus moves an order through its production lifecycle
func (s *OrderService) UpdateOrderStatus(ctx context.Context, actor Actor, id uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "order", order.ID.String(),
		fmt.Sprintf("Order %s status changed to %s", order.Reference, status))
	return order, nil
}

// GetWarehouseRecord returns the order's warehouse record with its realized
// lines.
func (s *OrderService) GetWarehouseRecord(ctx context.Context, orderID uuid.UUID) (*entity.WarehouseRecord, error) {
	record, err := s.warehouseRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Warehouse record")
	}
	return s.warehouseRepo.GetWithLines(ctx, record.ID)
}

func (s *OrderService) buildLines(
	ctx context.Context,
	materialInputs []QuoteMaterialInput,
	expenseInputs []QuoteExpenseInput,
	extraInputs []QuoteExtraInput,
) ([]entity.OrderMaterial, []entity.OrderExpense, []entity.OrderExtra, error) {
	materials := make([]entity.OrderMaterial, 0, len(materialInputs))
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
		materials = append(materials, entity.OrderMaterial{
			MaterialID:   material.ID,
			MaterialName: material.Name,
			Quantity:     in.Quantity,
			UnitCost:     unitCost,
			SubTotal:     in.Quantity * unitCost,
		})
	}

	expenses := make([]entity.OrderExpense, 0, len(expenseInputs))
	for _, in := range expenseInputs {
		expenses = append(expenses, entity.OrderExpense{
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

	extras := make([]entity.OrderExtra, 0, len(extraInputs))
	for _, in := range extraInputs {
		option, ok := byID[in.OptionID]
		if !ok {
			return nil, nil, nil, apperror.NewBadRequestError("Unknown extra option " + in.OptionID.String())
		}
		extras = append(extras, entity.OrderExtra{
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

// orderTotalBudget totals order lines with the same two-pass rule as quotes
// and stamps each extra's subtotal.
func orderTotalBudget(materials []entity.OrderMaterial, expenses []entity.OrderExpense, extras []entity.OrderExtra) float64 {
	mLines := orderMaterialLines(materials)
	eLines := orderExpenseLines(expenses)
	xValues := orderExtraValues(extras)

	base := pricing.BaseTotal(mLines, eLines, xValues)
	for i := range extras {
		v, selected := pricing.ValueOf(extras[i].Kind, extras[i].StringValue, extras[i].Amount1, extras[i].Amount2)
		if !selected {
			extras[i].SubTotal = 0
			continue
		}
		extras[i].SubTotal = pricing.AmountFor(v, base)
	}
	return base + pricing.PercentTotal(xValues, base)
}
