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

func CreateItem(ctx *gin.Context) {
	var body types.CreateItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	item, err := store.CreateItem(db.DB, userID, body)

	if err != nil {
		log.Printf("Failed to create item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	ctx.JSON(http.StatusCreated, toItemResponse(*item))
}

func ListItems(ctx *gin.Context) {
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

	items, err := store.ListItemsByCreator(db.DB, userID, skip, limit)

	if err != nil {
		log.Printf("Failed to list items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}

	response := make([]types.ItemResponse, 0, len(items))

	for _, item := range items {
		response = append(response, toItemResponse(item))
	}

	ctx.JSON(http.StatusOK, response)
}

func toItemResponse(item models.Item) types.ItemResponse {
	return types.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Type:        item.Type,
		Rarity:      item.Rarity,
		CreatorID:   item.CreatorID,
	}
}
