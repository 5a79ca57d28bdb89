package store

import (
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"gorm.io/gorm"
)

func CreateNPC(gdb *gorm.DB, creatorID string, req types.CreateNPCRequest) (*models.NPC, error) {
	role := req.Role
	if role == "" {
		role = "Citizen"
	}

	npc := models.NPC{
		Name:        req.Name,
		Description: req.Description,
		Role:        role,
		Location:    req.Location,
		Notes:       req.Notes,
		CreatorID:   creatorID,
	}

	if err := gdb.Create(&npc).Error; err != nil {
		return nil, err
	}

	return &npc, nil
}

func ListNPCsByCreator(gdb *gorm.DB, creatorID string, skip int, limit int) ([]models.NPC, error) {
	var npcs []models.NPC

	if err := gdb.Where("creator_id = ?", creatorID).Offset(skip).Limit(limit).Find(&npcs).Error; err != nil {
		return nil, err
	}

	return npcs, nil
}
