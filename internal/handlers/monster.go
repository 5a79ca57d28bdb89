package handlers

import (
	"log"
	"net/http"

	"github.com/dungeonkeeper-dev/dungeonkeeper/db"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/store"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/utils"
	"github.com/gin-gonic/gin"
)

func CreateMonster(ctx *gin.Context) {
	var body types.CreateMonsterRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	monster, err := store.CreateMonster(db.DB, userID, body)

	if err != nil {
		log.Printf("Failed to create monster: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create monster"})
		return
	}

	ctx.JSON(http.StatusCreated, toMonsterResponse(*monster))
}

func ListMonsters(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	skip, limit, err := utils.GetPageParams(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	monsters, err := store.ListMonstersByCreator(db.DB, userID, skip, limit)

	if err != nil {
		log.Printf("Failed to list monsters: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve monsters"})
		return
	}

	response := make([]types.MonsterResponse, 0, len(monsters))

	for _, monster := range monsters {
		response = append(response, toMonsterResponse(monster))
	}

	ctx.JSON(http.StatusOK, response)
}

func toMonsterResponse(monster models.Monster) types.MonsterResponse {
	return types.MonsterResponse{
		ID:              monster.ID,
		Name:            monster.Name,
		Size:            monster.Size,
		Type:            monster.Type,
		ArmorClass:      monster.ArmorClass,
		HitPoints:       monster.HitPoints,
		Speed:           monster.Speed,
		Actions:         monster.Actions,
		ChallengeRating: monster.ChallengeRating,
		CreatorID:       monster.CreatorID,
	}
}
