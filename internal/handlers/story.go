package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dungeonkeeper-dev/dungeonkeeper/db"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/services"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/store"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/utils"
	"github.com/gin-gonic/gin"
)

func CreateStory(ctx *gin.Context) {
	var body types.CreateStoryRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	story, err := store.CreateStory(db.DB, userID, body)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create story: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create story"})
		return
	}

	if creator, err := store.GetUserByID(db.DB, userID); err == nil {
		if err := services.NotifyStoryCreated(*creator, *story); err != nil {
			log.Printf("Failed to send story webhook: %v", err)
		}
	}

	ctx.JSON(http.StatusCreated, types.StoryResponse{
		ID:         story.ID,
		Title:      story.Title,
		Synopsis:   story.Synopsis,
		CreatorID:  story.CreatorID,
		ItemIDs:    body.ItemIDs,
		MonsterIDs: body.MonsterIDs,
		NPCIDs:     body.NPCIDs,
	})
}

func ListStories(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	stories, err := store.ListStoriesByCreator(db.DB, userID)

	if err != nil {
		log.Printf("Failed to list stories: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stories"})
		return
	}

	response := make([]types.StoryResponse, 0, len(stories))

	for _, story := range stories {
		itemIDs, monsterIDs, npcIDs, err := store.StoryAssociationIDs(db.DB, story.ID)

		if err != nil {
			log.Printf("Failed to resolve story associations: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stories"})
			return
		}

		response = append(response, types.StoryResponse{
			ID:         story.ID,
			Title:      story.Title,
			Synopsis:   story.Synopsis,
			CreatorID:  story.CreatorID,
			ItemIDs:    itemIDs,
			MonsterIDs: monsterIDs,
			NPCIDs:     npcIDs,
		})
	}

	ctx.JSON(http.StatusOK, response)
}
