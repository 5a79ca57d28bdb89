package services_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dungeonkeeper-dev/dungeonkeeper/db"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/services"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/store"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	return gdb
}

func seedAccount(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()

	user, err := store.CreateUser(gdb, username, username+"@example.com", "secret123")
	require.NoError(t, err)

	_, err = store.CreateCharacter(gdb, user.ID, types.CreateCharacterRequest{
		Name: "Brandobaris", Race: "Halfling", Class: "Rogue", Level: 3,
	})
	require.NoError(t, err)

	item, err := store.CreateItem(gdb, user.ID, types.CreateItemRequest{
		Name: "Sword of Ao", Type: "Weapon", Rarity: "Rare",
	})
	require.NoError(t, err)

	_, err = store.CreateMonster(gdb, user.ID, types.CreateMonsterRequest{
		Name: "Gnoll", Size: "Medium", Type: "Humanoid", ArmorClass: 15,
		HitPoints: "22 (5d8)", Speed: "30 ft.", ChallengeRating: "1/2",
	})
	require.NoError(t, err)

	_, err = store.CreateNPC(gdb, user.ID, types.CreateNPCRequest{
		Name: "Barkeep Tilda", Role: "Shopkeeper",
	})
	require.NoError(t, err)

	_, err = store.CreateStory(gdb, user.ID, types.CreateStoryRequest{
		Title: "The Sunken Keep", ItemIDs: []string{item.ID},
	})
	require.NoError(t, err)

	return user
}

func TestExportImportRoundTrip(t *testing.T) {
	gdb := newTestDB(t)

	alice := seedAccount(t, gdb, "alice")

	doc, err := services.ExportUserData(gdb, alice.ID)
	require.NoError(t, err)
	require.Len(t, doc.Characters, 1)
	require.Len(t, doc.Items, 1)
	require.Len(t, doc.Monsters, 1)
	require.Len(t, doc.NPCs, 1)
	require.Len(t, doc.Stories, 1)
	assert.Equal(t, []string{doc.Items[0].ID}, doc.Stories[0].ItemIDs)

	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	fresh, err := store.CreateUser(gdb, "restored", "restored@example.com", "secret123")
	require.NoError(t, err)

	summary, err := services.ImportUserData(gdb, fresh.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Created)
	assert.Equal(t, map[string]int{
		"characters": 1, "items": 1, "monsters": 1, "npcs": 1, "stories": 1,
	}, summary.Outcomes)

	// same content, new identities
	items, err := store.ListItemsByCreator(gdb, fresh.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Sword of Ao", items[0].Name)
	assert.Equal(t, "Rare", items[0].Rarity)
	assert.NotEqual(t, doc.Items[0].ID, items[0].ID)
	assert.Equal(t, fresh.ID, items[0].CreatorID)

	characters, err := store.ListCharactersByOwner(gdb, fresh.ID)
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, 3, characters[0].Level)

	// a report row is written for the import
	var reports []models.ImportReport
	require.NoError(t, gdb.Where("user_id = ?", fresh.ID).Find(&reports).Error)
	require.Len(t, reports, 1)
	assert.Equal(t, 5, reports[0].Created)
}

func TestImportSkipsAbsentCollections(t *testing.T) {
	gdb := newTestDB(t)

	user, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	summary, err := services.ImportUserData(gdb, user.ID, []byte(`{"items": [{"name": "Rope"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, map[string]int{"items": 1}, summary.Outcomes)
}

func TestImportMalformedDocument(t *testing.T) {
	gdb := newTestDB(t)

	user, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = services.ImportUserData(gdb, user.ID, []byte("this is not json"))
	assert.ErrorIs(t, err, services.ErrMalformedDocument)
}

func TestImportValidationFailureRollsBack(t *testing.T) {
	gdb := newTestDB(t)

	user, err := store.CreateUser(gdb, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	// first item is fine, second is missing its name
	payload := []byte(`{"items": [{"name": "Rope"}, {"rarity": "Rare"}]}`)

	_, err = services.ImportUserData(gdb, user.ID, payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items[1]")

	// all-or-nothing: the valid record must not survive the rollback
	items, err := store.ListItemsByCreator(gdb, user.ID, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, items)

	var reports []models.ImportReport
	require.NoError(t, gdb.Where("user_id = ?", user.ID).Find(&reports).Error)
	assert.Empty(t, reports)
}

func TestImportDropsForeignAssociations(t *testing.T) {
	gdb := newTestDB(t)

	alice := seedAccount(t, gdb, "alice")

	doc, err := services.ExportUserData(gdb, alice.ID)
	require.NoError(t, err)

	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	fresh, err := store.CreateUser(gdb, "restored", "restored@example.com", "secret123")
	require.NoError(t, err)

	_, err = services.ImportUserData(gdb, fresh.ID, payload)
	require.NoError(t, err)

	stories, err := store.ListStoriesByCreator(gdb, fresh.ID)
	require.NoError(t, err)
	require.Len(t, stories, 1)

	itemIDs, monsterIDs, npcIDs, err := store.StoryAssociationIDs(gdb, stories[0].ID)
	require.NoError(t, err)
	assert.Empty(t, itemIDs)
	assert.Empty(t, monsterIDs)
	assert.Empty(t, npcIDs)
}
