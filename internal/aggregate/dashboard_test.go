package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/trackveil/internal/aggregate"
	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/testutil"
)

func TestDashboardRollsUpPerWorkstream(t *testing.T) {
	workstreams := []*domain.Workstream{
		testutil.NewTestWorkstream(
			testutil.WithWorkstreamID("ws-a"),
			testutil.WithEstimatedHours(100)),
	}
	profiles := []*domain.Profile{testutil.NewTestProfile()}
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithHours(40)),
	}
	// 10000 over 100 planned hours puts the rate at 100/h.
	budgets := []*domain.BudgetEntry{
		testutil.NewTestBudget("ws-a", testutil.WithPlanned(100, 10000)),
	}

	rollup := aggregate.Dashboard(workstreams, profiles, entries, budgets)

	assert.Equal(t, 1, rollup.ProfileCount)
	assert.Equal(t, 1, rollup.WorkstreamCount)
	assert.Equal(t, 1, rollup.TimesheetEntries)

	require.Len(t, rollup.Workstreams, 1)
	ws := rollup.Workstreams[0]
	assert.Equal(t, "ws-a", ws.WorkstreamID)
	assert.Equal(t, 10000.0, ws.BudgetAmount)
	assert.Equal(t, 4000.0, ws.SpentAmount)
	assert.Equal(t, 6000.0, ws.RemainingAmount)
	assert.Equal(t, 40.0, ws.HoursLogged)
	assert.InDelta(t, 40.0, ws.ProgressPct, 1e-9)

	assert.Equal(t, 10000.0, rollup.TotalBudget)
	assert.Equal(t, 4000.0, rollup.TotalSpent)
	assert.InDelta(t, 40.0, rollup.OverallProgress, 1e-9)
}

func TestDashboardWorkstreamWithoutBudgetCostsZero(t *testing.T) {
	workstreams := []*domain.Workstream{
		testutil.NewTestWorkstream(testutil.WithWorkstreamID("ws-a"), testutil.WithEstimatedHours(0)),
	}
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithHours(12)),
	}

	rollup := aggregate.Dashboard(workstreams, nil, entries, nil)

	require.Len(t, rollup.Workstreams, 1)
	ws := rollup.Workstreams[0]
	assert.Zero(t, ws.BudgetAmount)
	assert.Zero(t, ws.SpentAmount)
	assert.Equal(t, 12.0, ws.HoursLogged)
	// Zero estimate leaves progress at zero rather than dividing by zero.
	assert.Zero(t, ws.ProgressPct)
	assert.Zero(t, rollup.OverallProgress)
}

func TestDashboardResourceRisk(t *testing.T) {
	safe := []*domain.Profile{
		testutil.NewTestProfile(testutil.WithUtilizationTarget(0.8)),
	}
	rollup := aggregate.Dashboard(nil, safe, nil, nil)
	assert.False(t, rollup.ResourceRisk)

	stretched := append(safe, testutil.NewTestProfile(testutil.WithUtilizationTarget(0.95)))
	rollup = aggregate.Dashboard(nil, stretched, nil, nil)
	assert.True(t, rollup.ResourceRisk)
}

func TestDashboardPublicSnapshotKeysByAnonymizedID(t *testing.T) {
	w := testutil.NewTestWorkstream(testutil.WithWorkstreamID(""), testutil.WithEstimatedHours(10))
	w.AnonymizedID = "W11111111"
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("User_aaaa1111", "W11111111", testutil.WithHours(5)),
	}

	rollup := aggregate.Dashboard([]*domain.Workstream{w}, nil, entries, nil)

	require.Len(t, rollup.Workstreams, 1)
	assert.Equal(t, "W11111111", rollup.Workstreams[0].WorkstreamID)
	assert.Equal(t, 5.0, rollup.Workstreams[0].HoursLogged)
}
