package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dungeonkeeper-dev/dungeonkeeper/db"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/store"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
	Bio   *string `json:"bio"`
}

type UpdateNotificationsRequest struct {
	NotifyOnJoinRequest     *bool `json:"notify_on_join_request"`
	NotifyOnRequestApproved *bool `json:"notify_on_request_approved"`
	NotifyOnNewStory        *bool `json:"notify_on_new_story"`
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := store.GetUserByID(db.DB, currentUser.ID)

	if err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toProfileResponse(user))
}

// UpdateProfile applies a partial patch: only fields present in the body are
// written.
func UpdateProfile(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateProfileRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	patch := store.ProfileUpdate{Bio: body.Bio}

	if body.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*body.Email))
		patch.Email = &email
	}

	user, err := store.UpdateUserProfile(db.DB, currentUser.ID, patch)

	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		log.Printf("Failed to update profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toProfileResponse(user))
}

func UpdateNotificationSettings(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateNotificationsRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := store.UpdateNotificationSettings(db.DB, currentUser.ID, store.NotificationSettingsUpdate{
		NotifyOnJoinRequest:     body.NotifyOnJoinRequest,
		NotifyOnRequestApproved: body.NotifyOnRequestApproved,
		NotifyOnNewStory:        body.NotifyOnNewStory,
	})

	if err != nil {
		log.Printf("Failed to update notification settings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toProfileResponse(user))
}

// UploadAvatar stores the uploaded image under the avatar directory and
// points the profile's avatar_url at the static mount.
func UploadAvatar(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	file, err := ctx.FormFile("file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image format"})
		return
	}

	dir := AvatarDir()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Failed to create avatar directory: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), ext)

	if err := ctx.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		log.Printf("Failed to save avatar: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user, err := store.SetAvatarURL(db.DB, currentUser.ID, "/avatars/"+filename)

	if err != nil {
		log.Printf("Failed to update avatar URL: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toProfileResponse(user))
}

func AvatarDir() string {
	if dir := os.Getenv("AVATAR_DIR"); dir != "" {
		return dir
	}
	return "static/avatars"
}

func toProfileResponse(user *models.User) types.ProfileResponse {
	return types.ProfileResponse{
		ID:                      user.ID,
		Username:                user.Username,
		Email:                   user.Email,
		IsActive:                user.IsActive,
		Bio:                     user.Bio,
		AvatarURL:               user.AvatarURL,
		NotifyOnJoinRequest:     user.NotifyOnJoinRequest,
		NotifyOnRequestApproved: user.NotifyOnRequestApproved,
		NotifyOnNewStory:        user.NotifyOnNewStory,
	}
}
