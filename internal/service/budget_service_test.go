package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/service"
	"github.com/alexanderramin/trackveil/internal/testutil"
)

func TestBudgetCreateEntryAndGet(t *testing.T) {
	fx := newServiceFixture(t)
	svc := service.NewBudgetService(fx.store, fx.proj)
	ctx := context.Background()

	b := testutil.NewTestBudget("ws-a", testutil.WithBudgetID(""))
	require.NoError(t, svc.CreateEntry(ctx, b))
	require.NotEmpty(t, b.ID)

	got, err := svc.GetEntry(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "ws-a", got.WorkstreamID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestBudgetCreateEntryRejectsInvalid(t *testing.T) {
	fx := newServiceFixture(t)
	svc := service.NewBudgetService(fx.store, fx.proj)

	b := testutil.NewTestBudget("")
	err := svc.CreateEntry(context.Background(), b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workstream id is required")
}

func TestBudgetCreateForecastRejectsInvalid(t *testing.T) {
	fx := newServiceFixture(t)
	svc := service.NewBudgetService(fx.store, fx.proj)

	f := testutil.NewTestForecast("ws-a", testutil.WithConfidence(1.5))
	err := svc.CreateForecast(context.Background(), f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confidence level")
}

func TestBudgetSummaryScopesToWorkstream(t *testing.T) {
	fx := newServiceFixture(t)
	svc := service.NewBudgetService(fx.store, fx.proj)
	ctx := context.Background()

	require.NoError(t, svc.CreateEntry(ctx, testutil.NewTestBudget("ws-a",
		testutil.WithPlanned(100, 1000), testutil.WithActual(110, 1200))))
	require.NoError(t, svc.CreateEntry(ctx, testutil.NewTestBudget("ws-b",
		testutil.WithPlanned(50, 9999))))
	require.NoError(t, svc.CreateForecast(ctx, testutil.NewTestForecast("ws-a",
		testutil.WithForecast(80, 8000))))
	require.NoError(t, svc.CreateForecast(ctx, testutil.NewTestForecast("ws-b",
		testutil.WithForecast(10, 500))))

	summary, err := svc.Summary(ctx, "ws-a")
	require.NoError(t, err)

	assert.Equal(t, "ws-a", summary.WorkstreamID)
	assert.Equal(t, 1000.0, summary.TotalBudget)
	assert.Equal(t, 1200.0, summary.TotalActual)
	assert.Equal(t, 200.0, summary.Variance)
	assert.InDelta(t, 20.0, summary.VariancePct, 1e-9)
	assert.Equal(t, 8000.0, summary.TotalForecast)
}

func TestDashboardRollupOverStoredRecords(t *testing.T) {
	fx := newServiceFixture(t)
	profileSvc := service.NewProfileService(fx.store, fx.proj)
	wsSvc := service.NewWorkstreamService(fx.store, fx.proj)
	tsSvc := service.NewTimesheetService(fx.store, fx.proj)
	budgetSvc := service.NewBudgetService(fx.store, fx.proj)
	dashSvc := service.NewDashboardService(fx.store)
	ctx := context.Background()

	require.NoError(t, profileSvc.Create(ctx, testutil.NewTestProfile(
		testutil.WithUtilizationTarget(0.95))))
	require.NoError(t, wsSvc.Create(ctx, testutil.NewTestWorkstream(
		testutil.WithWorkstreamID("ws-a"), testutil.WithEstimatedHours(100))))
	require.NoError(t, budgetSvc.CreateEntry(ctx, testutil.NewTestBudget("ws-a",
		testutil.WithPlanned(100, 10000))))
	require.NoError(t, tsSvc.Log(ctx, testutil.NewTestTimesheet("alice", "ws-a",
		testutil.WithHours(40))))

	rollup, err := dashSvc.Rollup(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, rollup.ProfileCount)
	assert.Equal(t, 1, rollup.WorkstreamCount)
	assert.Equal(t, 1, rollup.TimesheetEntries)
	assert.Equal(t, 10000.0, rollup.TotalBudget)
	assert.Equal(t, 4000.0, rollup.TotalSpent)
	assert.InDelta(t, 40.0, rollup.OverallProgress, 1e-9)
	assert.True(t, rollup.ResourceRisk)

	require.Len(t, rollup.Workstreams, 1)
	assert.Equal(t, domain.WorkstreamRollup{
		WorkstreamID:    "ws-a",
		Name:            rollup.Workstreams[0].Name,
		Status:          domain.WorkstreamInProgress,
		BudgetAmount:    10000,
		SpentAmount:     4000,
		RemainingAmount: 6000,
		HoursLogged:     40,
		ProgressPct:     40,
	}, rollup.Workstreams[0])
}
