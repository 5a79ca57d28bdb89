package store_test

import (
	"testing"

	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/store"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStoryWithAssociations(t *testing.T) {
	gdb := newTestDB(t)

	user, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	item, err := store.CreateItem(gdb, user.ID, types.CreateItemRequest{Name: "Sword of Ao", Type: "Weapon", Rarity: "Rare"})
	require.NoError(t, err)

	monster, err := store.CreateMonster(gdb, user.ID, types.CreateMonsterRequest{
		Name: "Gnoll", Size: "Medium", Type: "Humanoid", ArmorClass: 15,
		HitPoints: "22 (5d8)", Speed: "30 ft.", ChallengeRating: "1/2",
	})
	require.NoError(t, err)

	npc, err := store.CreateNPC(gdb, user.ID, types.CreateNPCRequest{Name: "Barkeep Tilda"})
	require.NoError(t, err)

	story, err := store.CreateStory(gdb, user.ID, types.CreateStoryRequest{
		Title:      "The Sunken Keep",
		Synopsis:   "An old fort swallowed by the marsh.",
		ItemIDs:    []string{item.ID},
		MonsterIDs: []string{monster.ID},
		NPCIDs:     []string{npc.ID},
	})
	require.NoError(t, err)

	itemIDs, monsterIDs, npcIDs, err := store.StoryAssociationIDs(gdb, story.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{item.ID}, itemIDs)
	assert.Equal(t, []string{monster.ID}, monsterIDs)
	assert.Equal(t, []string{npc.ID}, npcIDs)
}

func TestCreateStoryDeduplicatesAssociations(t *testing.T) {
	gdb := newTestDB(t)

	user, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	item, err := store.CreateItem(gdb, user.ID, types.CreateItemRequest{Name: "Sword of Ao"})
	require.NoError(t, err)

	// a repeated id must collapse to one relation row, not fail the
	// ownership count or the unique index
	story, err := store.CreateStory(gdb, user.ID, types.CreateStoryRequest{
		Title:   "The Sunken Keep",
		ItemIDs: []string{item.ID, item.ID, item.ID},
	})
	require.NoError(t, err)

	itemIDs, _, _, err := store.StoryAssociationIDs(gdb, story.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{item.ID}, itemIDs)
}

func TestCreateStoryRejectsForeignAssets(t *testing.T) {
	gdb := newTestDB(t)

	alice, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	bob, err := store.CreateUser(gdb, "bob", "bob@example.com", "secret123")
	require.NoError(t, err)

	item, err := store.CreateItem(gdb, alice.ID, types.CreateItemRequest{Name: "Sword of Ao"})
	require.NoError(t, err)

	// bob may not attach alice's item
	_, err = store.CreateStory(gdb, bob.ID, types.CreateStoryRequest{
		Title:   "Stolen Goods",
		ItemIDs: []string{item.ID},
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	// the failed transaction must not leave a story behind
	stories, err := store.ListStoriesByCreator(gdb, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, stories)
}

func TestListItemsPaging(t *testing.T) {
	gdb := newTestDB(t)

	user, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	for _, name := range []string{"Rope", "Lantern", "Rations"} {
		_, err := store.CreateItem(gdb, user.ID, types.CreateItemRequest{Name: name})
		require.NoError(t, err)
	}

	page, err := store.ListItemsByCreator(gdb, user.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	all, err := store.ListItemsByCreator(gdb, user.ID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
