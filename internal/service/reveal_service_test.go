package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/privacy"
	"github.com/alexanderramin/trackveil/internal/repository"
	"github.com/alexanderramin/trackveil/internal/service"
	"github.com/alexanderramin/trackveil/internal/testutil"
)

func TestRevealFieldToken(t *testing.T) {
	fx := newServiceFixture(t)
	tsSvc := service.NewTimesheetService(fx.store, fx.proj)
	mapper := privacy.NewTokenMapper(fx.db)
	revealSvc := service.NewRevealService(fx.store, mapper)
	ctx := context.Background()

	require.NoError(t, tsSvc.Log(ctx, testutil.NewTestTimesheet("Alice Smith", "Platform Rewrite")))

	public, err := tsSvc.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)

	revealed, err := revealSvc.Reveal(ctx, public[0].UserID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", revealed.Original)
	assert.Equal(t, privacy.CategoryUsers, revealed.Category)
	assert.Nil(t, revealed.Entity)

	revealed, err = revealSvc.Reveal(ctx, public[0].WorkstreamID)
	require.NoError(t, err)
	assert.Equal(t, "Platform Rewrite", revealed.Original)
	assert.Equal(t, privacy.CategoryWorkstreams, revealed.Category)
}

func TestRevealAnonymizedEntityID(t *testing.T) {
	fx := newServiceFixture(t)
	wsSvc := service.NewWorkstreamService(fx.store, fx.proj)
	revealSvc := service.NewRevealService(fx.store, privacy.NewTokenMapper(fx.db))
	ctx := context.Background()

	w := testutil.NewTestWorkstream()
	require.NoError(t, wsSvc.Create(ctx, w))

	revealed, err := revealSvc.Reveal(ctx, w.AnonymizedID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, revealed.Original)
	require.NotNil(t, revealed.Entity)
	assert.Equal(t, domain.KindWorkstream, revealed.Entity.Kind())
}

func TestRevealUnknownToken(t *testing.T) {
	fx := newServiceFixture(t)
	revealSvc := service.NewRevealService(fx.store, privacy.NewTokenMapper(fx.db))

	_, err := revealSvc.Reveal(context.Background(), "User_ffffffff")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRevealIsObserved(t *testing.T) {
	fx := newServiceFixture(t)
	recorder := &recordingObserver{}
	revealSvc := service.NewRevealService(fx.store, privacy.NewTokenMapper(fx.db), recorder)

	_, _ = revealSvc.Reveal(context.Background(), "User_ffffffff")

	events := recorder.byField("token")
	require.Len(t, events, 1)
	assert.Equal(t, "reveal", events[0].Name)
	assert.False(t, events[0].Success)
	assert.Equal(t, "User_ffffffff", events[0].Fields["token"])
}

func TestProfileCreateAndGetByToken(t *testing.T) {
	fx := newServiceFixture(t)
	svc := service.NewProfileService(fx.store, fx.proj)
	ctx := context.Background()

	p := testutil.NewTestProfile(testutil.WithProfileID(""))
	require.NoError(t, svc.Create(ctx, p))
	require.NotEmpty(t, p.AnonymizedID)

	got, err := svc.GetByToken(ctx, p.AnonymizedID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	publics, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, publics, 1)
	assert.NotEqual(t, p.Name, publics[0].Name)
}

func TestProfileCreateRejectsInvalid(t *testing.T) {
	fx := newServiceFixture(t)
	svc := service.NewProfileService(fx.store, fx.proj)

	p := testutil.NewTestProfile(testutil.WithHourlyRate(-5))
	err := svc.Create(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hourly rate")
}
