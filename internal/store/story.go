package store

import (
	"errors"
	"fmt"

	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"gorm.io/gorm"
)

// CreateStory inserts the story and its item/monster/npc relation rows in
// one transaction. Every referenced id must exist and belong to the creator.
func CreateStory(gdb *gorm.DB, creatorID string, req types.CreateStoryRequest) (*models.Story, error) {
	req.ItemIDs = dedupeIDs(req.ItemIDs)
	req.MonsterIDs = dedupeIDs(req.MonsterIDs)
	req.NPCIDs = dedupeIDs(req.NPCIDs)

	story := models.Story{
		Title:     req.Title,
		Synopsis:  req.Synopsis,
		CreatorID: creatorID,
	}

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := checkOwnedIDs(tx, &models.Item{}, creatorID, req.ItemIDs, "item"); err != nil {
			return err
		}
		if err := checkOwnedIDs(tx, &models.Monster{}, creatorID, req.MonsterIDs, "monster"); err != nil {
			return err
		}
		if err := checkOwnedIDs(tx, &models.NPC{}, creatorID, req.NPCIDs, "npc"); err != nil {
			return err
		}

		if err := tx.Create(&story).Error; err != nil {
			return err
		}

		for _, itemID := range req.ItemIDs {
			if err := tx.Create(&models.StoryItem{StoryID: story.ID, ItemID: itemID}).Error; err != nil {
				return err
			}
		}

		for _, monsterID := range req.MonsterIDs {
			if err := tx.Create(&models.StoryMonster{StoryID: story.ID, MonsterID: monsterID}).Error; err != nil {
				return err
			}
		}

		for _, npcID := range req.NPCIDs {
			if err := tx.Create(&models.StoryNPC{StoryID: story.ID, NPCID: npcID}).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &story, nil
}

// dedupeIDs drops repeated ids so a duplicated reference neither skews the
// ownership count nor trips the relation-row unique index.
func dedupeIDs(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}

	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}

func checkOwnedIDs(tx *gorm.DB, model interface{}, creatorID string, ids []string, kind string) error {
	if len(ids) == 0 {
		return nil
	}

	var count int64

	err := tx.Model(model).
		Where("creator_id = ? AND id IN ?", creatorID, ids).
		Count(&count).Error

	if err != nil {
		return err
	}

	if count != int64(len(ids)) {
		return fmt.Errorf("unknown %s id in story: %w", kind, ErrNotFound)
	}

	return nil
}

func GetStoryByID(gdb *gorm.DB, id string) (*models.Story, error) {
	var story models.Story

	if err := gdb.Where("id = ?", id).First(&story).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &story, nil
}

func ListStoriesByCreator(gdb *gorm.DB, creatorID string) ([]models.Story, error) {
	var stories []models.Story

	if err := gdb.Where("creator_id = ?", creatorID).Find(&stories).Error; err != nil {
		return nil, err
	}

	return stories, nil
}

// StoryAssociationIDs returns the item, monster and npc ids attached to a
// story, queried from the relation tables.
func StoryAssociationIDs(gdb *gorm.DB, storyID string) (items []string, monsters []string, npcs []string, err error) {
	err = gdb.Model(&models.StoryItem{}).Where("story_id = ?", storyID).Pluck("item_id", &items).Error
	if err != nil {
		return nil, nil, nil, err
	}

	err = gdb.Model(&models.StoryMonster{}).Where("story_id = ?", storyID).Pluck("monster_id", &monsters).Error
	if err != nil {
		return nil, nil, nil, err
	}

	err = gdb.Model(&models.StoryNPC{}).Where("story_id = ?", storyID).Pluck("npc_id", &npcs).Error
	if err != nil {
		return nil, nil, nil, err
	}

	return items, monsters, npcs, nil
}
