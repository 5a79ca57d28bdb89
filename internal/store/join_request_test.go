package store_test

import (
	"testing"

	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/store"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTable(t *testing.T, gdb *gorm.DB) (master *models.User, joiner *models.User, table *models.GameTable) {
	t.Helper()

	master, err := store.CreateUser(gdb, "bob", "bob@example.com", "secret123")
	require.NoError(t, err)

	joiner, err = store.CreateUser(gdb, "carol", "carol@example.com", "secret123")
	require.NoError(t, err)

	story, err := store.CreateStory(gdb, master.ID, types.CreateStoryRequest{Title: "The Sunken Keep"})
	require.NoError(t, err)

	table, err = store.CreateTable(gdb, master.ID, "Friday Night", "weekly game", story.ID)
	require.NoError(t, err)

	return master, joiner, table
}

func TestCreateTableUnknownStory(t *testing.T) {
	gdb := newTestDB(t)

	master, err := store.CreateUser(gdb, "bob", "bob@example.com", "secret123")
	require.NoError(t, err)

	_, err = store.CreateTable(gdb, master.ID, "Friday Night", "", "no-such-story")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateJoinRequestDuplicatePending(t *testing.T) {
	gdb := newTestDB(t)
	_, joiner, table := setupTable(t, gdb)

	request, err := store.CreateJoinRequest(gdb, table.ID, joiner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestPending, request.Status)

	_, err = store.CreateJoinRequest(gdb, table.ID, joiner.ID)
	assert.ErrorIs(t, err, store.ErrDuplicateRequest)

	var count int64
	require.NoError(t, gdb.Model(&models.JoinRequest{}).
		Where("table_id = ? AND user_id = ? AND status = ?", table.ID, joiner.ID, models.JoinRequestPending).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateJoinRequestUnknownTable(t *testing.T) {
	gdb := newTestDB(t)
	_, joiner, _ := setupTable(t, gdb)

	_, err := store.CreateJoinRequest(gdb, "no-such-table", joiner.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestApproveJoinRequestAddsPlayerOnce(t *testing.T) {
	gdb := newTestDB(t)
	_, joiner, table := setupTable(t, gdb)

	request, err := store.CreateJoinRequest(gdb, table.ID, joiner.ID)
	require.NoError(t, err)

	managed, err := store.ManageJoinRequest(gdb, table.ID, request.ID, models.JoinRequestApproved)
	require.NoError(t, err)
	assert.Equal(t, request.ID, managed.ID)

	stored, err := store.GetJoinRequestByID(gdb, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestApproved, stored.Status)

	players, err := store.ListPlayers(gdb, table.ID)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, joiner.ID, players[0].ID)

	// a second approval of the same request must not duplicate the player
	_, err = store.ManageJoinRequest(gdb, table.ID, request.ID, models.JoinRequestApproved)
	require.NoError(t, err)

	players, err = store.ListPlayers(gdb, table.ID)
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestDeclineJoinRequest(t *testing.T) {
	gdb := newTestDB(t)
	_, joiner, table := setupTable(t, gdb)

	request, err := store.CreateJoinRequest(gdb, table.ID, joiner.ID)
	require.NoError(t, err)

	_, err = store.ManageJoinRequest(gdb, table.ID, request.ID, models.JoinRequestDeclined)
	require.NoError(t, err)

	players, err := store.ListPlayers(gdb, table.ID)
	require.NoError(t, err)
	assert.Empty(t, players)

	// declining frees the pair for a fresh request
	_, err = store.CreateJoinRequest(gdb, table.ID, joiner.ID)
	assert.NoError(t, err)
}

func TestManageJoinRequestUnknownID(t *testing.T) {
	gdb := newTestDB(t)
	_, _, table := setupTable(t, gdb)

	_, err := store.ManageJoinRequest(gdb, table.ID, "no-such-request", models.JoinRequestApproved)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestManageJoinRequestWrongTable(t *testing.T) {
	gdb := newTestDB(t)
	_, joiner, table := setupTable(t, gdb)

	request, err := store.CreateJoinRequest(gdb, table.ID, joiner.ID)
	require.NoError(t, err)

	_, err = store.ManageJoinRequest(gdb, "another-table", request.ID, models.JoinRequestApproved)
	assert.ErrorIs(t, err, store.ErrNotFound)

	stored, err := store.GetJoinRequestByID(gdb, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestPending, stored.Status)
}

func TestManageJoinRequestRejectsBogusStatus(t *testing.T) {
	gdb := newTestDB(t)
	_, joiner, table := setupTable(t, gdb)

	request, err := store.CreateJoinRequest(gdb, table.ID, joiner.ID)
	require.NoError(t, err)

	_, err = store.ManageJoinRequest(gdb, table.ID, request.ID, "banned")
	assert.Error(t, err)

	stored, err := store.GetJoinRequestByID(gdb, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestPending, stored.Status)
}

func TestJoinRequestAfterMembership(t *testing.T) {
	gdb := newTestDB(t)
	_, joiner, table := setupTable(t, gdb)

	request, err := store.CreateJoinRequest(gdb, table.ID, joiner.ID)
	require.NoError(t, err)

	_, err = store.ManageJoinRequest(gdb, table.ID, request.ID, models.JoinRequestApproved)
	require.NoError(t, err)

	_, err = store.CreateJoinRequest(gdb, table.ID, joiner.ID)
	assert.ErrorIs(t, err, store.ErrAlreadyMember)
}

func TestListPendingJoinRequests(t *testing.T) {
	gdb := newTestDB(t)
	_, joiner, table := setupTable(t, gdb)

	other, err := store.CreateUser(gdb, "dave", "dave@example.com", "secret123")
	require.NoError(t, err)

	first, err := store.CreateJoinRequest(gdb, table.ID, joiner.ID)
	require.NoError(t, err)

	_, err = store.CreateJoinRequest(gdb, table.ID, other.ID)
	require.NoError(t, err)

	pending, err := store.ListPendingJoinRequests(gdb, table.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = store.ManageJoinRequest(gdb, table.ID, first.ID, models.JoinRequestApproved)
	require.NoError(t, err)

	pending, err = store.ListPendingJoinRequests(gdb, table.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, other.ID, pending[0].UserID)
	assert.Equal(t, "dave", pending[0].User.Username)
}
