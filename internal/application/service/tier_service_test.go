package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTierService() (*TierService, *fakeMarginTierRepo, *fakeMarkupTierRepo) {
	marginRepo := &fakeMarginTierRepo{}
	markupRepo := &fakeMarkupTierRepo{}
	auditSvc, _ := newTestAuditService()
	return NewTierService(marginRepo, markupRepo, auditSvc), marginRepo, markupRepo
}

func f(v float64) *float64 { return &v }

func TestResolveMarginPercent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTierService()
	actor := SystemActor

	_, err := svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 0, RangeEnd: f(100), MarginPercent: 400})
	require.NoError(t, err)
	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 100.01, RangeEnd: f(500), MarginPercent: 250})
	require.NoError(t, err)
	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 500.01, MarginPercent: 120})
	require.NoError(t, err)

	tests := []struct {
		name string
		cost float64
		want *float64
	}{
		{"first tier", 50, f(400)},
		{"first tier upper boundary", 100, f(400)},
		{"second tier lower boundary", 100.01, f(250)},
		{"unbounded tier", 10000, f(120)},
		{"gap between tiers", 100.005, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ResolveMarginPercent(ctx, tt.cost)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.InDelta(t, *tt.want, *got, 1e-9)
			}
		})
	}
}

func TestSuggestedPriceAppliesMargin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTierService()

	_, err := svc.CreateMarginTier(ctx, SystemActor, &MarginTierInput{RangeStart: 0, RangeEnd: f(100), MarginPercent: 400})
	require.NoError(t, err)

	price, err := svc.SuggestedPrice(ctx, 80)
	require.NoError(t, err)
	require.NotNil(t, price)
	// 80 plus 400% of 80
	assert.InDelta(t, 400.0, *price, 1e-9)

	price, err = svc.SuggestedPrice(ctx, 5000)
	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestCreateMarginTierRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTierService()
	actor := SystemActor

	_, err := svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 0, RangeEnd: f(100), MarginPercent: 400})
	require.NoError(t, err)

	// overlapping start
	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 50, RangeEnd: f(200), MarginPercent: 300})
	assert.Error(t, err)

	// touching boundary counts as overlap, ranges are closed
	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 100, RangeEnd: f(200), MarginPercent: 300})
	assert.Error(t, err)

	// unbounded tier overlaps everything above its start
	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 100.01, MarginPercent: 300})
	require.NoError(t, err)
	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 5000, RangeEnd: f(6000), MarginPercent: 200})
	assert.Error(t, err)

	// inverted range is a bad request
	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 10, RangeEnd: f(5), MarginPercent: 100})
	assert.Error(t, err)
}

func TestUpdateMarginTierRevalidatesAgainstOthers(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTierService()
	actor := SystemActor

	first, err := svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 0, RangeEnd: f(100), MarginPercent: 400})
	require.NoError(t, err)
	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 100.01, RangeEnd: f(500), MarginPercent: 250})
	require.NoError(t, err)

	// stretching the first tier into the second must fail
	_, err = svc.UpdateMarginTier(ctx, actor, first.ID, &MarginTierInput{RangeStart: 0, RangeEnd: f(200), MarginPercent: 400})
	assert.Error(t, err)

	// shrinking it is fine, and comparing against itself must not trip
	updated, err := svc.UpdateMarginTier(ctx, actor, first.ID, &MarginTierInput{RangeStart: 0, RangeEnd: f(90), MarginPercent: 350})
	require.NoError(t, err)
	assert.InDelta(t, 350.0, updated.MarginPercent, 1e-9)
}

func TestDeleteMarginTierRenumbersDensely(t *testing.T) {
	ctx := context.Background()
	svc, marginRepo, _ := newTestTierService()
	actor := SystemActor

	_, err := svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 0, RangeEnd: f(100), MarginPercent: 400})
	require.NoError(t, err)
	second, err := svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 100.01, RangeEnd: f(500), MarginPercent: 250})
	require.NoError(t, err)
	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 500.01, MarginPercent: 120})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMarginTier(ctx, actor, second.ID))

	tiers, err := marginRepo.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, 1, tiers[0].Position)
	assert.Equal(t, 2, tiers[1].Position)
	assert.InDelta(t, 400.0, tiers[0].MarginPercent, 1e-9)
	assert.InDelta(t, 120.0, tiers[1].MarginPercent, 1e-9)
}

func TestResolveMarkupPercentFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTierService()
	actor := SystemActor

	// a wide tier ahead of a narrow one shadows it; ordering is the contract
	_, err := svc.CreateMarkupTier(ctx, actor, &MarkupTierInput{UpperBound: f(1000), MarkupPercent: 30})
	require.NoError(t, err)
	_, err = svc.CreateMarkupTier(ctx, actor, &MarkupTierInput{UpperBound: f(100), MarkupPercent: 60})
	require.NoError(t, err)
	_, err = svc.CreateMarkupTier(ctx, actor, &MarkupTierInput{MarkupPercent: 20})
	require.NoError(t, err)

	got, err := svc.ResolveMarkupPercent(ctx, 50)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 30.0, *got, 1e-9, "narrow tier behind a wide one is unreachable")

	got, err = svc.ResolveMarkupPercent(ctx, 5000)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 20.0, *got, 1e-9)
}

func TestReorderMarkupTiers(t *testing.T) {
	ctx := context.Background()
	svc, _, markupRepo := newTestTierService()
	actor := SystemActor

	wide, err := svc.CreateMarkupTier(ctx, actor, &MarkupTierInput{UpperBound: f(1000), MarkupPercent: 30})
	require.NoError(t, err)
	narrow, err := svc.CreateMarkupTier(ctx, actor, &MarkupTierInput{UpperBound: f(100), MarkupPercent: 60})
	require.NoError(t, err)

	require.NoError(t, svc.ReorderMarkupTiers(ctx, actor, []uuid.UUID{narrow.ID, wide.ID}))

	tiers, err := markupRepo.ListOrdered(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 60.0, tiers[0].MarkupPercent, 1e-9)

	got, err := svc.ResolveMarkupPercent(ctx, 50)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 60.0, *got, 1e-9)

	// partial orderings are rejected
	err = svc.ReorderMarkupTiers(ctx, actor, []uuid.UUID{narrow.ID})
	assert.Error(t, err)
}

func TestDeleteMarkupTierRenumbers(t *testing.T) {
	ctx := context.Background()
	svc, _, markupRepo := newTestTierService()
	actor := SystemActor

	first, err := svc.CreateMarkupTier(ctx, actor, &MarkupTierInput{UpperBound: f(100), MarkupPercent: 60})
	require.NoError(t, err)
	_, err = svc.CreateMarkupTier(ctx, actor, &MarkupTierInput{MarkupPercent: 20})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMarkupTier(ctx, actor, first.ID))

	tiers, err := markupRepo.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	assert.Equal(t, 1, tiers[0].Position)
}

func TestCreateMarginTierRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTierService()
	actor := SystemActor

	_, err := svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 0, RangeEnd: f(100), MarginPercent: -50})
	assert.Error(t, err)

	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: -1, RangeEnd: f(100), MarginPercent: 50})
	assert.Error(t, err)

	// rangeEnd must be strictly above rangeStart
	_, err = svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 100, RangeEnd: f(100), MarginPercent: 50})
	assert.Error(t, err)

	// a zero margin is allowed, the cost passes through unchanged
	tier, err := svc.CreateMarginTier(ctx, actor, &MarginTierInput{RangeStart: 0, RangeEnd: f(100), MarginPercent: 0})
	require.NoError(t, err)

	price, err := svc.SuggestedPrice(ctx, 80)
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.InDelta(t, 80.0, *price, 1e-9)

	// the update path shares the same validation
	_, err = svc.UpdateMarginTier(ctx, actor, tier.ID, &MarginTierInput{RangeStart: 0, RangeEnd: f(100), MarginPercent: -10})
	assert.Error(t, err)
	_, err = svc.UpdateMarginTier(ctx, actor, tier.ID, &MarginTierInput{RangeStart: 50, RangeEnd: f(50), MarginPercent: 50})
	assert.Error(t, err)
}

func TestCreateMarkupTierRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTierService()
	actor := SystemActor

	_, err := svc.CreateMarkupTier(ctx, actor, &MarkupTierInput{UpperBound: f(100), MarkupPercent: -20})
	assert.Error(t, err)

	_, err = svc.CreateMarkupTier(ctx, actor, &MarkupTierInput{UpperBound: f(0), MarkupPercent: 20})
	assert.Error(t, err)

	tier, err := svc.CreateMarkupTier(ctx, actor, &MarkupTierInput{UpperBound: f(100), MarkupPercent: 20})
	require.NoError(t, err)

	_, err = svc.UpdateMarkupTier(ctx, actor, tier.ID, &MarkupTierInput{UpperBound: f(-5), MarkupPercent: 20})
	assert.Error(t, err)
	_, err = svc.UpdateMarkupTier(ctx, actor, tier.ID, &MarkupTierInput{UpperBound: f(100), MarkupPercent: -1})
	assert.Error(t, err)

	// zero markup is a valid passthrough tier
	updated, err := svc.UpdateMarkupTier(ctx, actor, tier.ID, &MarkupTierInput{UpperBound: f(100), MarkupPercent: 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, updated.MarkupPercent, 1e-9)
}
