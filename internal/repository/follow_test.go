package repository

import (
	"context"
	"errors"
	"testing"

	"taskhive/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFollowRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	edge := &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}
	require.NoError(t, repo.Create(ctx, edge))

	got, err := repo.Get(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, edge.ID, got.ID)

	// the edge is directed
	reverse, err := repo.Get(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, reverse)
}

func TestFollowRepository_DuplicateEdge(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))

	err := repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestFollowRepository_Delete_ReportsAffectedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))

	affected, err := repo.Delete(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, affected, "deleting a missing edge affects nothing")
}

func TestFollowRepository_NeighborIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	dave := createTestUser(t, db, "dave")

	// alice follows bob and carol; carol and dave follow alice
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: carol.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: carol.ID, FollowingID: alice.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: dave.ID, FollowingID: alice.ID}))

	ids, err := repo.NeighborIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID, dave.ID}, ids,
		"carol appears once despite mutual edges, and alice is never her own neighbor")
}

func TestFollowRepository_FollowersAndFollowing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: carol.ID, FollowingID: alice.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))

	followers, err := repo.Followers(ctx, alice.ID)
	require.NoError(t, err)
	names := make([]string, len(followers))
	for i, u := range followers {
		names[i] = u.Username
	}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	following, err := repo.Following(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)

	count, err := repo.CountFollowers(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountFollowing(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFollowRepository_FollowingIDSet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))

	set, err := repo.FollowingIDSet(ctx, alice.ID, []uint{bob.ID, carol.ID})
	require.NoError(t, err)
	assert.True(t, set[bob.ID])
	assert.False(t, set[carol.ID])

	empty, err := repo.FollowingIDSet(ctx, alice.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
