package store

import (
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"gorm.io/gorm"
)

func CreateCharacter(gdb *gorm.DB, ownerID string, req types.CreateCharacterRequest) (*models.Character, error) {
	level := req.Level
	if level == 0 {
		level = 1
	}

	character := models.Character{
		Name:    req.Name,
		Race:    req.Race,
		Class:   req.Class,
		Level:   level,
		OwnerID: ownerID,
	}

	if err := gdb.Create(&character).Error; err != nil {
		return nil, err
	}

	return &character, nil
}

func ListCharactersByOwner(gdb *gorm.DB, ownerID string) ([]models.Character, error) {
	var characters []models.Character

	if err := gdb.Where("owner_id = ?", ownerID).Find(&characters).Error; err != nil {
		return nil, err
	}

	return characters, nil
}
