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

func CreateCharacter(ctx *gin.Context) {
	var body types.CreateCharacterRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	character, err := store.CreateCharacter(db.DB, userID, body)

	if err != nil {
		log.Printf("Failed to create character: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create character"})
		return
	}

	ctx.JSON(http.StatusCreated, toCharacterResponse(*character))
}

func ListCharacters(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	characters, err := store.ListCharactersByOwner(db.DB, userID)

	if err != nil {
		log.Printf("Failed to list characters: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve characters"})
		return
	}

	response := make([]types.CharacterResponse, 0, len(characters))

	for _, character := range characters {
		response = append(response, toCharacterResponse(character))
	}

	ctx.JSON(http.StatusOK, response)
}

func toCharacterResponse(character models.Character) types.CharacterResponse {
	return types.CharacterResponse{
		ID:      character.ID,
		Name:    character.Name,
		Race:    character.Race,
		Class:   character.Class,
		Level:   character.Level,
		OwnerID: character.OwnerID,
	}
}
