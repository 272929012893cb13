package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumeo/internal/models"
	"lumeo/internal/testutil"
)

func TestFollowUpdatesCounters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob", "bob@example.com")

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

	var a, b models.User
	require.NoError(t, db.First(&a, alice.ID).Error)
	require.NoError(t, db.First(&b, bob.ID).Error)
	assert.Equal(t, 1, a.FollowingCount)
	assert.Equal(t, 0, a.FollowersCount)
	assert.Equal(t, 1, b.FollowersCount)
	assert.Equal(t, 0, b.FollowingCount)

	exists, err := repo.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowDuplicateConflict(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob", "bob@example.com")

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

	err := repo.Follow(ctx, alice.ID, bob.ID)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeConflict, appErr.Code)

	// Counters untouched by the failed attempt.
	var a models.User
	require.NoError(t, db.First(&a, alice.ID).Error)
	assert.Equal(t, 1, a.FollowingCount)
}

func TestUnfollowUpdatesCounters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob", "bob@example.com")

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))

	var a, b models.User
	require.NoError(t, db.First(&a, alice.ID).Error)
	require.NoError(t, db.First(&b, bob.ID).Error)
	assert.Equal(t, 0, a.FollowingCount)
	assert.Equal(t, 0, b.FollowersCount)

	exists, err := repo.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUnfollowMissingEdge(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob", "bob@example.com")

	err := repo.Unfollow(ctx, alice.ID, bob.ID)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	// Counters must not go negative.
	var a models.User
	require.NoError(t, db.First(&a, alice.ID).Error)
	assert.Equal(t, 0, a.FollowingCount)
}

func TestFollowerAndFollowingIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob", "bob@example.com")
	carol := testutil.CreateUser(t, db, "carol", "carol@example.com")

	require.NoError(t, repo.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, repo.Follow(ctx, carol.ID, alice.ID))
	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

	followers, err := repo.FollowerIDs(ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, followers)

	following, err := repo.FollowingIDs(ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob.ID}, following)

	all, err := repo.AllFollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob.ID}, all)
}

func TestFollowerIDsPagination(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice", "alice@example.com")

	// Backdate each edge so the newest-first ordering is unambiguous.
	base := time.Now().Add(-time.Hour)
	followerIDs := make([]uint, 0, 5)
	for i := 0; i < 5; i++ {
		follower := testutil.CreateUser(t, db, "f", string(rune('a'+i))+"@example.com")
		require.NoError(t, repo.Follow(ctx, follower.ID, alice.ID))
		require.NoError(t, db.Model(&models.Follow{}).
			Where("follower_id = ? AND following_id = ?", follower.ID, alice.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
		followerIDs = append(followerIDs, follower.ID)
	}

	// Newest edge first: the last follower leads.
	expected := []uint{followerIDs[4], followerIDs[3], followerIDs[2], followerIDs[1], followerIDs[0]}

	page1, err := repo.FollowerIDs(ctx, alice.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, expected[0:2], page1)

	page2, err := repo.FollowerIDs(ctx, alice.ID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, expected[2:4], page2)

	page3, err := repo.FollowerIDs(ctx, alice.ID, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, expected[4:5], page3)

	// Pages are disjoint and concatenate to the full follower set in order.
	assert.Equal(t, expected, append(append(append([]uint{}, page1...), page2...), page3...))

	// Out-of-range pages normalize instead of failing.
	clamped, err := repo.FollowerIDs(ctx, alice.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, clamped)
}
