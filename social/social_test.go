package social

import (
	"path/filepath"
	"testing"

	"noteshare/apperrors"
	"noteshare/config"
	"noteshare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "social_test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, authID string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		AuthID:    authID,
		Username:  authID,
		AvatarURL: models.DefaultAvatarURL,
	}).Error)
}

func TestFollowThenStatus(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "auth0|alice")
	seedUser(t, db, "auth0|bob")

	require.NoError(t, Follow(db, "auth0|alice", "auth0|bob"))

	following, err := IsFollowing(db, "auth0|alice", "auth0|bob")
	require.NoError(t, err)
	assert.True(t, following)

	// The edge reads the same from both sides.
	aliceCounts, err := Counts(db, "auth0|alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, aliceCounts.Following)
	assert.EqualValues(t, 0, aliceCounts.Followers)

	bobCounts, err := Counts(db, "auth0|bob")
	require.NoError(t, err)
	assert.EqualValues(t, 1, bobCounts.Followers)
	assert.EqualValues(t, 0, bobCounts.Following)

	// Not symmetric: bob does not follow alice.
	reverse, err := IsFollowing(db, "auth0|bob", "auth0|alice")
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestFollowSelfRejected(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "auth0|alice")

	err := Follow(db, "auth0|alice", "auth0|alice")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestFollowDuplicateConflicts(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "auth0|alice")
	seedUser(t, db, "auth0|bob")

	require.NoError(t, Follow(db, "auth0|alice", "auth0|bob"))
	err := Follow(db, "auth0|alice", "auth0|bob")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestFollowMissingTarget(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "auth0|alice")

	err := Follow(db, "auth0|alice", "auth0|ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUnfollowIsIdempotent(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "auth0|alice")
	seedUser(t, db, "auth0|bob")

	// Unfollowing someone never followed is a no-op.
	require.NoError(t, Unfollow(db, "auth0|alice", "auth0|bob"))

	require.NoError(t, Follow(db, "auth0|alice", "auth0|bob"))
	require.NoError(t, Unfollow(db, "auth0|alice", "auth0|bob"))
	require.NoError(t, Unfollow(db, "auth0|alice", "auth0|bob"))

	following, err := IsFollowing(db, "auth0|alice", "auth0|bob")
	require.NoError(t, err)
	assert.False(t, following)
}

func TestCountsIncludeSharedNotes(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "auth0|alice")

	for _, id := range []string{"n1", "n2", "n3"} {
		require.NoError(t, db.Create(&models.Note{
			PublicID: id, Title: "t", UploaderUID: "auth0|alice",
		}).Error)
	}

	counts, err := Counts(db, "auth0|alice")
	require.NoError(t, err)
	assert.EqualValues(t, 3, counts.SharedNotes)
}
