package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/serigraf/backoffice-api/internal/domain/entity"
	"github.com/serigraf/backoffice-api/internal/domain/enum"
	"github.com/serigraf/backoffice-api/internal/domain/pricing"
	"github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/pkg/apperror"
)

// PayrollService manages the payroll entries that feed the productive-minute
// cost calculation.
type PayrollService struct {
	payrollRepo repository.PayrollRepository
	auditSvc    *AuditService
}

// NewPayrollService creates a new payroll service
func NewPayrollService(payrollRepo repository.PayrollRepository, auditSvc *AuditService) *PayrollService {
	return &PayrollService{payrollRepo: payrollRepo, auditSvc: auditSvc}
}

// ListEntries returns all payroll entries
func (s *PayrollService) ListEntries(ctx context.Context) ([]entity.PayrollEntry, error) {
	return s.payrollRepo.List(ctx)
}

// GetEntry retrieves a payroll entry by ID
func (s *PayrollService) GetEntry(ctx context.Context, id uuid.UUID) (*entity.PayrollEntry, error) {
	entry, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Payroll entry")
	}
	return entry, nil
}

// MinuteCost returns the current cost of one productive minute derived from
// the productive payroll entries.
func (s *PayrollService) MinuteCost(ctx context.Context) (float64, error) {
	entries, err := s.payrollRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	return pricing.ProductiveMinuteCost(productiveLines(entries)), nil
}

func productiveLines(entries []entity.PayrollEntry) []pricing.PayrollLine {
	lines := make([]pricing.PayrollLine, 0, len(entries))
	for _, e := range entries {
		if !e.IsProductive {
			continue
		}
		lines = append(lines, pricing.PayrollLine{
			TotalWithCharges: e.TotalWithCharges,
			Headcount:        e.Headcount,
		})
	}
	return lines
}

// PayrollEntryInput represents the create/update payroll entry input
type PayrollEntryInput struct {
	Profession       string
	BaseSalary       float64
	Headcount        int
	TotalWithCharges float64
	IsProductive     bool
}

func (in *PayrollEntryInput) validate() error {
	if in.Profession == "" {
		return apperror.NewBadRequestError("Profession is required")
	}
	if in.Headcount <= 0 {
		return apperror.NewBadRequestError("Headcount must be positive")
	}
	if in.BaseSalary <= 0 || in.TotalWithCharges <= 0 {
		return apperror.NewBadRequestError("Salary values must be positive")
	}
	return nil
}

// CreateEntry creates a new payroll entry
func (s *PayrollService) CreateEntry(ctx context.Context, actor Actor, input *PayrollEntryInput) (*entity.PayrollEntry, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	entry := &entity.PayrollEntry{
		Profession:       input.Profession,
		BaseSalary:       input.BaseSalary,
		Headcount:        input.Headcount,
		TotalWithCharges: input.TotalWithCharges,
		IsProductive:     input.IsProductive,
	}
	if err := s.payrollRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionCreate, "payroll_entry", entry.ID.String(),
		"Created payroll entry "+entry.Profession)
	return entry, nil
}

// UpdateEntry updates a payroll entry
func (s *PayrollService) UpdateEntry(ctx context.Context, actor Actor, id uuid.UUID, input *PayrollEntryInput) (*entity.PayrollEntry, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	entry, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Payroll entry")
	}

	entry.Profession = input.Profession
	entry.BaseSalary = input.BaseSalary
	entry.Headcount = input.Headcount
	entry.TotalWithCharges = input.TotalWithCharges
	entry.IsProductive = input.IsProductive
	if err := s.payrollRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionEdit, "payroll_entry", entry.ID.String(),
		"Updated payroll entry "+entry.Profession)
	return entry, nil
}

// DeleteEntry deletes a payroll entry
func (s *PayrollService) DeleteEntry(ctx context.Context, actor Actor, id uuid.UUID) error {
	entry, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperror.NewNotFoundError("Payroll entry")
	}

	if err := s.payrollRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actor, enum.AuditActionDelete, "payroll_entry", id.String(),
		"Deleted payroll entry "+entry.Profession)
	return nil
}
