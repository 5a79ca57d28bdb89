package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/dungeonkeeper-dev/dungeonkeeper/db"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/services"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/utils"
	"github.com/gin-gonic/gin"
)

// ExportBackup streams the caller's full data set as one JSON document.
func ExportBackup(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	doc, err := services.ExportUserData(db.DB, userID)

	if err != nil {
		log.Printf("Failed to export user data: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export backup"})
		return
	}

	ctx.JSON(http.StatusOK, doc)
}

// ImportBackup takes a multipart JSON upload and re-creates its records
// under the caller. The whole file is read into memory; imports are small.
func ImportBackup(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	fileHeader, err := ctx.FormFile("file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Backup file is required"})
		return
	}

	file, err := fileHeader.Open()

	if err != nil {
		log.Printf("Failed to open uploaded backup: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read backup file"})
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)

	if err != nil {
		log.Printf("Failed to read uploaded backup: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read backup file"})
		return
	}

	summary, err := services.ImportUserData(db.DB, userID, contents)

	if err != nil {
		if errors.Is(err, services.ErrMalformedDocument) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON file"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to process backup: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"created":  summary.Created,
		"outcomes": summary.Outcomes,
	})
}
