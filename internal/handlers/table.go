package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dungeonkeeper-dev/dungeonkeeper/db"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/services"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/store"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/utils"
	"github.com/gin-gonic/gin"
)

type CreateTableRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StoryID     string `json:"story_id" binding:"required"`
}

type ManageJoinRequestBody struct {
	Status string `json:"status" binding:"required,oneof=approved declined"`
}

func CreateTable(ctx *gin.Context) {
	var body CreateTableRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	table, err := store.CreateTable(db.DB, userID, body.Title, body.Description, body.StoryID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		log.Printf("Failed to create table: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}

	ctx.JSON(http.StatusCreated, types.TableResponse{
		ID:          table.ID,
		Title:       table.Title,
		Description: table.Description,
		MasterID:    table.MasterID,
		StoryID:     table.StoryID,
		Players:     []types.UserResponse{},
	})
}

// ListTables is the public browser over every table, so players can find a
// game to request into.
func ListTables(ctx *gin.Context) {
	skip, limit, err := utils.GetPageParams(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tables, err := store.ListTables(db.DB, skip, limit)

	if err != nil {
		log.Printf("Failed to list tables: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tables"})
		return
	}

	response := make([]types.TableResponse, 0, len(tables))

	for _, table := range tables {
		players, err := store.ListPlayers(db.DB, table.ID)

		if err != nil {
			log.Printf("Failed to list table players: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tables"})
			return
		}

		response = append(response, toTableResponse(table, players))
	}

	ctx.JSON(http.StatusOK, response)
}

func RequestJoinTable(ctx *gin.Context) {
	tableID, err := utils.GetTableID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	request, err := store.CreateJoinRequest(db.DB, tableID, userID)

	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		case errors.Is(err, store.ErrAlreadyMember):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Already a player at this table"})
		case errors.Is(err, store.ErrDuplicateRequest):
			ctx.JSON(http.StatusConflict, gin.H{"error": "A pending join request already exists"})
		default:
			log.Printf("Failed to create join request: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create join request"})
		}
		return
	}

	notifyJoinRequestCreated(tableID, userID)

	ctx.JSON(http.StatusCreated, types.JoinRequestResponse{
		ID:      request.ID,
		TableID: request.TableID,
		UserID:  request.UserID,
		Status:  request.Status,
	})
}

// ListJoinRequests returns the table's pending requests; only the master may
// see them.
func ListJoinRequests(ctx *gin.Context) {
	tableID, err := utils.GetTableID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	table, err := store.GetTableByID(db.DB, tableID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		log.Printf("Failed to fetch table: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve table"})
		return
	}

	if table.MasterID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the table master may view join requests"})
		return
	}

	requests, err := store.ListPendingJoinRequests(db.DB, tableID)

	if err != nil {
		log.Printf("Failed to list join requests: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve join requests"})
		return
	}

	response := make([]types.JoinRequestResponse, 0, len(requests))

	for _, request := range requests {
		response = append(response, types.JoinRequestResponse{
			ID:      request.ID,
			TableID: request.TableID,
			UserID:  request.UserID,
			Status:  request.Status,
			User: types.UserResponse{
				ID:       request.User.ID,
				Username: request.User.Username,
				Email:    request.User.Email,
			},
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// ManageJoinRequest approves or declines a pending request; only the table
// master may decide.
func ManageJoinRequest(ctx *gin.Context) {
	tableID, err := utils.GetTableID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID, err := utils.GetRequestID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body ManageJoinRequestBody

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Status must be approved or declined"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	table, err := store.GetTableByID(db.DB, tableID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		log.Printf("Failed to fetch table: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve table"})
		return
	}

	if table.MasterID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the table master may manage join requests"})
		return
	}

	request, err := store.ManageJoinRequest(db.DB, tableID, requestID, body.Status)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Join request not found"})
			return
		}
		log.Printf("Failed to manage join request: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to manage join request"})
		return
	}

	if body.Status == models.JoinRequestApproved {
		notifyRequestApproved(*table, request.UserID)
	}

	ctx.JSON(http.StatusOK, types.JoinRequestResponse{
		ID:      request.ID,
		TableID: request.TableID,
		UserID:  request.UserID,
		Status:  body.Status,
	})
}

func toTableResponse(table models.GameTable, players []models.User) types.TableResponse {
	playerResponses := make([]types.UserResponse, 0, len(players))

	for _, player := range players {
		playerResponses = append(playerResponses, types.UserResponse{
			ID:       player.ID,
			Username: player.Username,
			Email:    player.Email,
		})
	}

	return types.TableResponse{
		ID:          table.ID,
		Title:       table.Title,
		Description: table.Description,
		MasterID:    table.MasterID,
		StoryID:     table.StoryID,
		Players:     playerResponses,
	}
}

func notifyJoinRequestCreated(tableID string, requesterID string) {
	table, err := store.GetTableByID(db.DB, tableID)
	if err != nil {
		return
	}

	master, err := store.GetUserByID(db.DB, table.MasterID)
	if err != nil {
		return
	}

	requester, err := store.GetUserByID(db.DB, requesterID)
	if err != nil {
		return
	}

	if err := services.NotifyJoinRequestCreated(*master, *requester, *table); err != nil {
		log.Printf("Failed to send join request webhook: %v", err)
	}
}

func notifyRequestApproved(table models.GameTable, playerID string) {
	player, err := store.GetUserByID(db.DB, playerID)
	if err != nil {
		return
	}

	if err := services.NotifyRequestApproved(*player, table); err != nil {
		log.Printf("Failed to send approval webhook: %v", err)
	}
}
