package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/repository"
	"github.com/alexanderramin/trackveil/internal/testutil"
)

func TestBudgetRepoRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBudgetRepo(database)
	ctx := context.Background()

	b := testutil.NewTestBudget("ws-1",
		testutil.WithBudgetProfile("p-1"),
		testutil.WithPlanned(100, 10000),
		testutil.WithActual(80, 8200),
	)
	b.AnonymizedID = "B11111111"
	require.NoError(t, repo.Put(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "ws-1", got.WorkstreamID)
	assert.Equal(t, "p-1", got.ProfileID)
	assert.Equal(t, domain.BudgetLabor, got.Type)
	assert.Equal(t, domain.PeriodMonthly, got.Period)
	assert.Equal(t, 100.0, got.PlannedHours)
	assert.Equal(t, 8200.0, got.ActualAmount)
	assert.Equal(t, b.StartDate, got.StartDate)
	assert.Equal(t, b.EndDate, got.EndDate)
}

func TestBudgetRepoListByWorkstream(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBudgetRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testutil.NewTestBudget("ws-a")))
	require.NoError(t, repo.Put(ctx, testutil.NewTestBudget("ws-a")))
	require.NoError(t, repo.Put(ctx, testutil.NewTestBudget("ws-b")))

	entries, err := repo.ListByWorkstream(ctx, "ws-a")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "ws-a", e.WorkstreamID)
	}
}

func TestForecastRepoRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteForecastRepo(database)
	ctx := context.Background()

	f := testutil.NewTestForecast("ws-1",
		testutil.WithForecast(120, 13000),
		testutil.WithConfidence(0.9),
		testutil.WithAssumptions("hiring closes in April"),
	)
	f.AnonymizedID = "F22222222"
	require.NoError(t, repo.Put(ctx, f))

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.ForecastHours)
	assert.Equal(t, 0.9, got.ConfidenceLevel)
	assert.Equal(t, []string{"hiring closes in April"}, got.Assumptions)
}

func TestForecastRepoListPublicByWorkstream(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteForecastRepo(database)
	ctx := context.Background()

	f := testutil.NewTestForecast("")
	f.WorkstreamID = "Workstream_aaaa1111"
	f.AnonymizedID = "F33333333"
	f.ID = ""
	require.NoError(t, repo.PutPublic(ctx, f))

	matches, err := repo.ListPublicByWorkstream(ctx, "Workstream_aaaa1111")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Empty(t, matches[0].ID)

	none, err := repo.ListPublicByWorkstream(ctx, "Workstream_bbbb2222")
	require.NoError(t, err)
	assert.Empty(t, none)
}
