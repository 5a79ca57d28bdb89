package store

import (
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"gorm.io/gorm"
)

func CreateMonster(gdb *gorm.DB, creatorID string, req types.CreateMonsterRequest) (*models.Monster, error) {
	monster := models.Monster{
		Name:            req.Name,
		Size:            req.Size,
		Type:            req.Type,
		ArmorClass:      req.ArmorClass,
		HitPoints:       req.HitPoints,
		Speed:           req.Speed,
		Actions:         req.Actions,
		ChallengeRating: req.ChallengeRating,
		CreatorID:       creatorID,
	}

	if err := gdb.Create(&monster).Error; err != nil {
		return nil, err
	}

	return &monster, nil
}

func ListMonstersByCreator(gdb *gorm.DB, creatorID string, skip int, limit int) ([]models.Monster, error) {
	var monsters []models.Monster

	if err := gdb.Where("creator_id = ?", creatorID).Offset(skip).Limit(limit).Find(&monsters).Error; err != nil {
		return nil, err
	}

	return monsters, nil
}
