package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayrollService() (*PayrollService, *fakePayrollRepo) {
	repo := newFakePayrollRepo()
	auditSvc, _ := newTestAuditService()
	return NewPayrollService(repo, auditSvc), repo
}

func TestCreatePayrollEntryRejectsNonPositiveValues(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestPayrollService()
	actor := SystemActor

	tests := []struct {
		name  string
		input PayrollEntryInput
	}{
		{"missing profession", PayrollEntryInput{BaseSalary: 2000, Headcount: 1, TotalWithCharges: 2600}},
		{"zero headcount", PayrollEntryInput{Profession: "Printer", BaseSalary: 2000, TotalWithCharges: 2600}},
		{"negative headcount", PayrollEntryInput{Profession: "Printer", BaseSalary: 2000, Headcount: -1, TotalWithCharges: 2600}},
		{"zero base salary", PayrollEntryInput{Profession: "Printer", Headcount: 1, TotalWithCharges: 2600}},
		{"zero total with charges", PayrollEntryInput{Profession: "Printer", BaseSalary: 2000, Headcount: 1}},
		{"negative base salary", PayrollEntryInput{Profession: "Printer", BaseSalary: -2000, Headcount: 1, TotalWithCharges: 2600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			_, err := svc.CreateEntry(ctx, actor, &input)
			assert.Error(t, err)
		})
	}
}

func TestUpdatePayrollEntrySharesValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestPayrollService()
	actor := SystemActor

	entry, err := svc.CreateEntry(ctx, actor, &PayrollEntryInput{
		Profession:       "Printer",
		BaseSalary:       2000,
		Headcount:        2,
		TotalWithCharges: 5200,
		IsProductive:     true,
	})
	require.NoError(t, err)

	_, err = svc.UpdateEntry(ctx, actor, entry.ID, &PayrollEntryInput{
		Profession:       "Printer",
		BaseSalary:       2000,
		Headcount:        0,
		TotalWithCharges: 5200,
	})
	assert.Error(t, err)

	stored, err := svc.GetEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Headcount)
}

func TestMinuteCostUsesProductiveEntriesOnly(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestPayrollService()
	actor := SystemActor

	_, err := svc.CreateEntry(ctx, actor, &PayrollEntryInput{
		Profession:       "Printer",
		BaseSalary:       2000,
		Headcount:        2,
		TotalWithCharges: 5280,
		IsProductive:     true,
	})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, actor, &PayrollEntryInput{
		Profession:       "Office",
		BaseSalary:       3000,
		Headcount:        1,
		TotalWithCharges: 4000,
		IsProductive:     false,
	})
	require.NoError(t, err)

	cost, err := svc.MinuteCost(ctx)
	require.NoError(t, err)
	// 5280 over 2 heads, 176 hours, 60 minutes
	assert.InDelta(t, 0.25, cost, 1e-9)
}
