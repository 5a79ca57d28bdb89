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

func CreateNPC(ctx *gin.Context) {
	var body types.CreateNPCRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	npc, err := store.CreateNPC(db.DB, userID, body)

	if err != nil {
		log.Printf("Failed to create NPC: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create NPC"})
		return
	}

	ctx.JSON(http.StatusCreated, toNPCResponse(*npc))
}

func ListNPCs(ctx *gin.Context) {
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

	npcs, err := store.ListNPCsByCreator(db.DB, userID, skip, limit)

	if err != nil {
		log.Printf("Failed to list NPCs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve NPCs"})
		return
	}

	response := make([]types.NPCResponse, 0, len(npcs))

	for _, npc := range npcs {
		response = append(response, toNPCResponse(npc))
	}

	ctx.JSON(http.StatusOK, response)
}

func toNPCResponse(npc models.NPC) types.NPCResponse {
	return types.NPCResponse{
		ID:          npc.ID,
		Name:        npc.Name,
		Description: npc.Description,
		Role:        npc.Role,
		Location:    npc.Location,
		Notes:       npc.Notes,
		CreatorID:   npc.CreatorID,
	}
}
