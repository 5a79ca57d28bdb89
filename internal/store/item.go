package store

import (
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"gorm.io/gorm"
)

func CreateItem(gdb *gorm.DB, creatorID string, req types.CreateItemRequest) (*models.Item, error) {
	itemType := req.Type
	if itemType == "" {
		itemType = "Mundane"
	}

	rarity := req.Rarity
	if rarity == "" {
		rarity = "Common"
	}

	item := models.Item{
		Name:        req.Name,
		Description: req.Description,
		Type:        itemType,
		Rarity:      rarity,
		CreatorID:   creatorID,
	}

	if err := gdb.Create(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func ListItemsByCreator(gdb *gorm.DB, creatorID string, skip int, limit int) ([]models.Item, error) {
	var items []models.Item

	if err := gdb.Where("creator_id = ?", creatorID).Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}
