package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/trackveil/internal/repository"
	"github.com/alexanderramin/trackveil/internal/testutil"
)

func TestProfileRepoPutAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile(
		testutil.WithSkills("go", "sql"),
		testutil.WithAllocatedHours(map[string]float64{"ws-1": 20}),
	)
	p.AnonymizedID = "P12345678"
	require.NoError(t, repo.Put(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.AnonymizedID, got.AnonymizedID)
	assert.Equal(t, []string{"go", "sql"}, got.Skills)
	assert.Equal(t, map[string]float64{"ws-1": 20}, got.AllocatedHours)
}

func TestProfileRepoPutIsUpsert(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile()
	require.NoError(t, repo.Put(ctx, p))

	p.Role = "staff engineer"
	require.NoError(t, repo.Put(ctx, p))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM secure_profiles`).Scan(&count))
	assert.Equal(t, 1, count)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "staff engineer", got.Role)
}

func TestProfileRepoGetByAnonymizedID(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile()
	p.AnonymizedID = "Pabcdef01"
	require.NoError(t, repo.Put(ctx, p))

	got, err := repo.GetByAnonymizedID(ctx, "Pabcdef01")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestProfileRepoGetMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileRepoPublicPartitionHasNoOriginalID(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile()
	p.AnonymizedID = "P00112233"
	p.ID = ""
	require.NoError(t, repo.PutPublic(ctx, p))

	public, err := repo.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Empty(t, public[0].ID)
	assert.Equal(t, "P00112233", public[0].AnonymizedID)
}
