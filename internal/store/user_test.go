package store_test

import (
	"testing"

	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicateUsername(t *testing.T) {
	gdb := newTestDB(t)

	first, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = store.CreateUser(gdb, "alice", "other@example.com", "secret123")
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)

	// the first registration is unaffected
	unchanged, err := store.GetUserByUsername(gdb, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, unchanged.ID)
	assert.Equal(t, "alice@example.com", unchanged.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	gdb := newTestDB(t)

	_, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = store.CreateUser(gdb, "alice2", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestAuthenticate(t *testing.T) {
	gdb := newTestDB(t)

	created, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	user, err := store.Authenticate(gdb, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = store.Authenticate(gdb, "alice", "wrongpass")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	// unknown user and wrong password collapse into the same error
	_, err = store.Authenticate(gdb, "nobody", "secret123")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestUpdateUserProfilePartial(t *testing.T) {
	gdb := newTestDB(t)

	user, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	bio := "Forever DM"
	updated, err := store.UpdateUserProfile(gdb, user.ID, store.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "Forever DM", updated.Bio)
	// untouched fields stay put
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "alice", updated.Username)
	assert.True(t, updated.IsActive)
}

func TestUpdateUserProfileDuplicateEmail(t *testing.T) {
	gdb := newTestDB(t)

	_, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	bob, err := store.CreateUser(gdb, "bob", "bob@example.com", "secret123")
	require.NoError(t, err)

	taken := "alice@example.com"
	_, err = store.UpdateUserProfile(gdb, bob.ID, store.ProfileUpdate{Email: &taken})
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestUpdateNotificationSettingsPartial(t *testing.T) {
	gdb := newTestDB(t)

	user, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.True(t, user.NotifyOnJoinRequest)

	off := false
	updated, err := store.UpdateNotificationSettings(gdb, user.ID, store.NotificationSettingsUpdate{
		NotifyOnNewStory: &off,
	})
	require.NoError(t, err)

	assert.False(t, updated.NotifyOnNewStory)
	assert.True(t, updated.NotifyOnJoinRequest)
	assert.True(t, updated.NotifyOnRequestApproved)
}
