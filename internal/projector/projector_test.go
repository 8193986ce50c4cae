package projector_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/privacy"
	"github.com/alexanderramin/trackveil/internal/projector"
	"github.com/alexanderramin/trackveil/internal/repository"
	"github.com/alexanderramin/trackveil/internal/testutil"
)

func TestSaveTimesheetWritesBothPartitions(t *testing.T) {
	database := testutil.NewTestDB(t)
	anon := privacy.NewAnonymizer(privacy.DefaultSalt)
	pr := projector.New(testutil.NewTestUoW(database), anon)
	ctx := context.Background()

	entry := testutil.NewTestTimesheet("Alice Smith", "Platform Rewrite",
		testutil.WithNotes("refactored auth flow"))
	require.NoError(t, pr.SaveTimesheet(ctx, entry))

	assert.Equal(t, anon.ID(domain.KindTimesheet, entry.ID), entry.AnonymizedID)

	repo := repository.NewSQLiteTimesheetRepo(database)
	secure, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", secure.UserID)

	public, err := repo.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Empty(t, public[0].ID)
	assert.Regexp(t, `^User_[0-9a-f]{8}$`, public[0].UserID)
	assert.Regexp(t, `^Workstream_[0-9a-f]{8}$`, public[0].WorkstreamID)
	assert.Regexp(t, `^Note_[0-9a-f]{8}$`, public[0].Notes)
	assert.Equal(t, entry.Hours, public[0].Hours)
	assert.Equal(t, entry.ApprovalStatus, public[0].ApprovalStatus)
}

func TestSaveProfilePublicRecordCarriesNoOriginals(t *testing.T) {
	database := testutil.NewTestDB(t)
	pr := projector.New(testutil.NewTestUoW(database), privacy.NewAnonymizer(privacy.DefaultSalt))
	ctx := context.Background()

	p := testutil.NewTestProfile(
		testutil.WithSkills("go", "sql"),
		testutil.WithProfileWorkstreams("Platform Rewrite"),
		testutil.WithAllocatedHours(map[string]float64{"Platform Rewrite": 20}),
	)
	originalName := p.Name
	require.NoError(t, pr.SaveProfile(ctx, p))

	public, err := repository.NewSQLiteProfileRepo(database).ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)

	pub := public[0]
	assert.NotEqual(t, originalName, pub.Name)
	assert.Regexp(t, `^User_[0-9a-f]{8}$`, pub.Name)
	for _, skill := range pub.Skills {
		assert.Regexp(t, `^Note_[0-9a-f]{8}$`, skill)
	}
	for _, ws := range pub.Workstreams {
		assert.Regexp(t, `^Workstream_[0-9a-f]{8}$`, ws)
	}
	require.Len(t, pub.AllocatedHours, 1)
	for token, hours := range pub.AllocatedHours {
		assert.Regexp(t, `^Workstream_[0-9a-f]{8}$`, token)
		assert.Equal(t, 20.0, hours)
	}
	// Non-sensitive numeric fields project unchanged.
	assert.Equal(t, p.HourlyRate, pub.HourlyRate)
	assert.Equal(t, p.UtilizationTarget, pub.UtilizationTarget)
}

func TestSaveTimesheetIsIdempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	pr := projector.New(testutil.NewTestUoW(database), privacy.NewAnonymizer(privacy.DefaultSalt))
	ctx := context.Background()

	entry := testutil.NewTestTimesheet("Alice Smith", "Platform Rewrite")
	require.NoError(t, pr.SaveTimesheet(ctx, entry))

	entry.Hours = 6
	require.NoError(t, pr.SaveTimesheet(ctx, entry))

	var secureCount, publicCount, mappings int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM secure_timesheets`).Scan(&secureCount))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM public_timesheets`).Scan(&publicCount))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM token_mappings`).Scan(&mappings))
	assert.Equal(t, 1, secureCount)
	assert.Equal(t, 1, publicCount)
	assert.Equal(t, 2, mappings)
}

func TestSaveTimesheetAssignsMissingID(t *testing.T) {
	database := testutil.NewTestDB(t)
	pr := projector.New(testutil.NewTestUoW(database), privacy.NewAnonymizer(privacy.DefaultSalt))

	entry := testutil.NewTestTimesheet("Alice Smith", "Platform Rewrite", testutil.WithTimesheetID(""))
	require.NoError(t, pr.SaveTimesheet(context.Background(), entry))
	assert.NotEmpty(t, entry.ID)
}

func TestFailedPublicWriteRollsBackEverything(t *testing.T) {
	database := testutil.NewTestDB(t)
	injected := errors.New("disk full")
	// Exec order inside the tx for a bare entry: secure put, user token,
	// workstream token, public put.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: injected}
	pr := projector.New(uow, privacy.NewAnonymizer(privacy.DefaultSalt))

	entry := testutil.NewTestTimesheet("Alice Smith", "Platform Rewrite")
	err := pr.SaveTimesheet(context.Background(), entry)
	require.Error(t, err)

	var de *projector.DesyncError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindTimesheet, de.Kind)
	assert.Equal(t, entry.ID, de.ID)
	assert.ErrorIs(t, err, injected)

	// The rollback must leave neither partition written nor mappings minted.
	var secureCount, publicCount, mappings int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM secure_timesheets`).Scan(&secureCount))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM public_timesheets`).Scan(&publicCount))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM token_mappings`).Scan(&mappings))
	assert.Zero(t, secureCount)
	assert.Zero(t, publicCount)
	assert.Zero(t, mappings)
}

func TestFailedSecureWriteIsNotADesync(t *testing.T) {
	database := testutil.NewTestDB(t)
	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: injected}
	pr := projector.New(uow, privacy.NewAnonymizer(privacy.DefaultSalt))

	err := pr.SaveTimesheet(context.Background(), testutil.NewTestTimesheet("Alice Smith", "Platform Rewrite"))
	require.Error(t, err)

	var de *projector.DesyncError
	assert.False(t, errors.As(err, &de))
	assert.ErrorIs(t, err, injected)
}

func TestSaveWorkstreamTokenizesDependencies(t *testing.T) {
	database := testutil.NewTestDB(t)
	pr := projector.New(testutil.NewTestUoW(database), privacy.NewAnonymizer(privacy.DefaultSalt))
	ctx := context.Background()

	w := testutil.NewTestWorkstream(
		testutil.WithDependencies("ws-infra", "ws-auth"),
		testutil.WithAssignedProfiles("Alice Smith"),
		testutil.WithTags("q3", "platform"),
	)
	require.NoError(t, pr.SaveWorkstream(ctx, w))

	public, err := repository.NewSQLiteWorkstreamRepo(database).ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)

	pub := public[0]
	require.Len(t, pub.Dependencies, 2)
	for _, dep := range pub.Dependencies {
		assert.Regexp(t, `^Workstream_[0-9a-f]{8}$`, dep)
	}
	require.Len(t, pub.AssignedProfiles, 1)
	assert.Regexp(t, `^User_[0-9a-f]{8}$`, pub.AssignedProfiles[0])
	for _, tag := range pub.Tags {
		assert.Regexp(t, `^Note_[0-9a-f]{8}$`, tag)
	}
	assert.Equal(t, w.Status, pub.Status)
	assert.Equal(t, w.EstimatedHours, pub.EstimatedHours)
}

func TestSaveBudgetAndForecastShareWorkstreamToken(t *testing.T) {
	database := testutil.NewTestDB(t)
	pr := projector.New(testutil.NewTestUoW(database), privacy.NewAnonymizer(privacy.DefaultSalt))
	ctx := context.Background()

	b := testutil.NewTestBudget("Platform Rewrite")
	f := testutil.NewTestForecast("Platform Rewrite")
	require.NoError(t, pr.SaveBudget(ctx, b))
	require.NoError(t, pr.SaveForecast(ctx, f))

	publicBudgets, err := repository.NewSQLiteBudgetRepo(database).ListPublic(ctx)
	require.NoError(t, err)
	publicForecasts, err := repository.NewSQLiteForecastRepo(database).ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, publicBudgets, 1)
	require.Len(t, publicForecasts, 1)

	// The same original id always resolves to the same token, so public
	// budgets and forecasts stay joinable per workstream.
	assert.Equal(t, publicBudgets[0].WorkstreamID, publicForecasts[0].WorkstreamID)
	assert.Regexp(t, `^Workstream_[0-9a-f]{8}$`, publicBudgets[0].WorkstreamID)
}
