package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/pricing"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/pkg/apperror"
)

// FormationService assembles the inputs of the cost-to-price pipeline from
// persisted state and runs it. It is read-only; nothing here mutates.
type FormationService struct {
	configRepo  repository.PricingConfigRepository
	payrollRepo repository.PayrollRepository
	optionRepo  repository.ExtraOptionRepository
}

// NewFormationService creates a new formation service
func NewFormationService(
	configRepo repository.PricingConfigRepository,
	payrollRepo repository.PayrollRepository,
	optionRepo repository.ExtraOptionRepository,
) *FormationService {
	return &FormationService{
		configRepo:  configRepo,
		payrollRepo: payrollRepo,
		optionRepo:  optionRepo,
	}
}

// FormationMaterialInput is one material line of a formation request
type FormationMaterialInput struct {
	Quantity float64
	UnitCost float64
}

// FormationExpenseInput is one expense line of a formation request
type FormationExpenseInput struct {
	Description string
	Amount      float64
}

// FormationExtraInput is one extra line of a formation request; its values
// are interpreted by the referenced option's kind.
type FormationExtraInput struct {
	OptionID    uuid.UUID
	StringValue *string
	Amount1     *float64
	Amount2     *float64
}

// FormationRequest describes one job to price
type FormationRequest struct {
	ProductiveMinutes float64
	Materials         []FormationMaterialInput
	Expenses          []FormationExpenseInput
	Extras            []FormationExtraInput
	MarkupPercent     *float64
}

// Form runs the pipeline against the stored configuration and payroll.
// Guard failures surface as 422s rather than producing Inf or NaN prices.
func (s *FormationService) Form(ctx context.Context, req *FormationRequest) (*pricing.FormationResult, error) {
	if req.ProductiveMinutes < 0 {
		return nil, apperror.NewBadRequestError("Productive minutes must not be negative")
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.payrollRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	extras, err := s.resolveExtras(ctx, req.Extras)
	if err != nil {
		return nil, err
	}

	input := pricing.FormationInput{
		ProductiveMinutes: req.ProductiveMinutes,
		Materials:         formationMaterials(req.Materials),
		Expenses:          formationExpenses(req.Expenses),
		Extras:            extras,
		MarkupPercent:     req.MarkupPercent,
	}

	result, err := pricing.Formation(input, productiveLines(entries), configValues(cfg))
	if err != nil {
		return nil, guardToAppError(err)
	}
	return result, nil
}

func (s *FormationService) resolveExtras(ctx context.Context, inputs []FormationExtraInput) ([]pricing.ExtraValue, error) {
	options, err := s.optionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.ExtraOption, len(options))
	for i := range options {
		byID[options[i].ID] = &options[i]
	}

	values := make([]pricing.ExtraValue, 0, len(inputs))
	for _, in := range inputs {
		option, ok := byID[in.OptionID]
		if !ok {
			return nil, apperror.NewBadRequestError("Unknown extra option " + in.OptionID.String())
		}
		if v, selected := pricing.ValueOf(option.Kind, in.StringValue, in.Amount1, in.Amount2); selected {
			values = append(values, v)
		}
	}
	return values, nil
}

func formationMaterials(inputs []FormationMaterialInput) []pricing.MaterialLine {
	lines := make([]pricing.MaterialLine, 0, len(inputs))
	for _, in := range inputs {
		lines = append(lines, pricing.MaterialLine{Quantity: in.Quantity, UnitCost: in.UnitCost})
	}
	return lines
}

func formationExpenses(inputs []FormationExpenseInput) []pricing.ExpenseLine {
	lines := make([]pricing.ExpenseLine, 0, len(inputs))
	for _, in := range inputs {
		lines = append(lines, pricing.ExpenseLine{Description: in.Description, Amount: in.Amount})
	}
	return lines
}

func guardToAppError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrMissingConfig):
		return apperror.NewAppError(422, "Pricing configuration must be filled in before forming prices")
	case errors.Is(err, pricing.ErrZeroAverageRevenue),
		errors.Is(err, pricing.ErrAbsorptionTooHigh),
		errors.Is(err, pricing.ErrSaleLoadTooHigh):
		return apperror.NewAppError(422, err.Error())
	default:
		return err
	}
}
