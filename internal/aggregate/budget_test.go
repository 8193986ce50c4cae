package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/trackveil/internal/aggregate"
	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/testutil"
)

func TestBudgetSummaryVariance(t *testing.T) {
	budgets := []*domain.BudgetEntry{
		testutil.NewTestBudget("ws-a",
			testutil.WithPlanned(100, 1000),
			testutil.WithActual(110, 1200)),
	}

	summary := aggregate.BudgetSummary("ws-a", budgets, nil)

	assert.Equal(t, "ws-a", summary.WorkstreamID)
	assert.Equal(t, 1000.0, summary.TotalBudget)
	assert.Equal(t, 1200.0, summary.TotalActual)
	assert.Equal(t, 200.0, summary.Variance)
	assert.InDelta(t, 20.0, summary.VariancePct, 1e-9)
}

func TestBudgetSummaryZeroPlannedGuardsPercentage(t *testing.T) {
	budgets := []*domain.BudgetEntry{
		testutil.NewTestBudget("ws-a",
			testutil.WithPlanned(0, 0),
			testutil.WithActual(10, 500)),
	}

	summary := aggregate.BudgetSummary("ws-a", budgets, nil)

	assert.Equal(t, 500.0, summary.Variance)
	assert.Zero(t, summary.VariancePct)
}

func TestBudgetSummaryBreakdowns(t *testing.T) {
	budgets := []*domain.BudgetEntry{
		testutil.NewTestBudget("ws-a",
			testutil.WithBudgetProfile("p-1"),
			testutil.WithBudgetType(domain.BudgetLabor),
			testutil.WithBudgetPeriod(domain.PeriodMonthly),
			testutil.WithPlanned(100, 1000),
			testutil.WithActual(90, 900)),
		testutil.NewTestBudget("ws-a",
			testutil.WithBudgetProfile("p-2"),
			testutil.WithBudgetType(domain.BudgetNonLabor),
			testutil.WithBudgetPeriod(domain.PeriodMonthly),
			testutil.WithPlanned(0, 400),
			testutil.WithActual(0, 350)),
		testutil.NewTestBudget("ws-a",
			testutil.WithBudgetType(domain.BudgetLabor),
			testutil.WithBudgetPeriod(domain.PeriodQuarterly),
			testutil.WithPlanned(50, 600),
			testutil.WithActual(20, 250)),
	}

	summary := aggregate.BudgetSummary("ws-a", budgets, nil)

	assert.Equal(t, 2000.0, summary.TotalBudget)
	assert.Equal(t, 1500.0, summary.TotalActual)

	assert.Equal(t, domain.BudgetBreakdown{Planned: 1400, Actual: 1250}, summary.ByPeriod[domain.PeriodMonthly])
	assert.Equal(t, domain.BudgetBreakdown{Planned: 600, Actual: 250}, summary.ByPeriod[domain.PeriodQuarterly])

	assert.Equal(t, domain.BudgetBreakdown{Planned: 1600, Actual: 1150}, summary.ByType[domain.BudgetLabor])
	assert.Equal(t, domain.BudgetBreakdown{Planned: 400, Actual: 350}, summary.ByType[domain.BudgetNonLabor])

	// The third entry carries no profile id and is skipped here only.
	assert.Len(t, summary.ByProfile, 2)
	assert.Equal(t, domain.BudgetBreakdown{Planned: 1000, Actual: 900}, summary.ByProfile["p-1"])
}

func TestBudgetSummaryForecastTotal(t *testing.T) {
	forecasts := []*domain.BudgetForecast{
		testutil.NewTestForecast("ws-a", testutil.WithForecast(80, 8000)),
		testutil.NewTestForecast("ws-a", testutil.WithForecast(40, 3500)),
	}

	summary := aggregate.BudgetSummary("ws-a", nil, forecasts)

	assert.Equal(t, 11500.0, summary.TotalForecast)
	assert.Zero(t, summary.TotalBudget)
	assert.Zero(t, summary.VariancePct)
}
