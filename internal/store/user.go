package store

import (
	"errors"

	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/auth"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"gorm.io/gorm"
)

func CreateUser(gdb *gorm.DB, username string, email string, password string) (*models.User, error) {
	var existing models.User

	err := gdb.Where("username = ?", username).First(&existing).Error

	if err == nil {
		return nil, ErrDuplicateUsername
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = gdb.Where("email = ?", email).First(&existing).Error

	if err == nil {
		return nil, ErrDuplicateEmail
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(password)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,

		NotifyOnJoinRequest:     true,
		NotifyOnRequestApproved: true,
		NotifyOnNewStory:        true,
	}

	if err := gdb.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func GetUserByUsername(gdb *gorm.DB, username string) (*models.User, error) {
	var user models.User

	if err := gdb.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func GetUserByID(gdb *gorm.DB, id string) (*models.User, error) {
	var user models.User

	if err := gdb.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate collapses "no such user" and "wrong password" into the same
// error so callers cannot leak which half failed.
func Authenticate(gdb *gorm.DB, username string, password string) (*models.User, error) {
	user, err := GetUserByUsername(gdb, username)

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ProfileUpdate carries the partial-patch fields of a profile update. Nil
// means "leave untouched".
type ProfileUpdate struct {
	Email *string
	Bio   *string
}

// NotificationSettingsUpdate carries the partial-patch notification flags.
type NotificationSettingsUpdate struct {
	NotifyOnJoinRequest     *bool
	NotifyOnRequestApproved *bool
	NotifyOnNewStory        *bool
}

func UpdateUserProfile(gdb *gorm.DB, userID string, patch ProfileUpdate) (*models.User, error) {
	user, err := GetUserByID(gdb, userID)

	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if patch.Email != nil {
		if *patch.Email != user.Email {
			var existing models.User
			err := gdb.Where("email = ? AND id != ?", *patch.Email, userID).First(&existing).Error
			if err == nil {
				return nil, ErrDuplicateEmail
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		updates["email"] = *patch.Email
	}

	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}

	return applyUserUpdates(gdb, user, updates)
}

func UpdateNotificationSettings(gdb *gorm.DB, userID string, patch NotificationSettingsUpdate) (*models.User, error) {
	user, err := GetUserByID(gdb, userID)

	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if patch.NotifyOnJoinRequest != nil {
		updates["notify_on_join_request"] = *patch.NotifyOnJoinRequest
	}

	if patch.NotifyOnRequestApproved != nil {
		updates["notify_on_request_approved"] = *patch.NotifyOnRequestApproved
	}

	if patch.NotifyOnNewStory != nil {
		updates["notify_on_new_story"] = *patch.NotifyOnNewStory
	}

	return applyUserUpdates(gdb, user, updates)
}

func SetAvatarURL(gdb *gorm.DB, userID string, avatarURL string) (*models.User, error) {
	user, err := GetUserByID(gdb, userID)

	if err != nil {
		return nil, err
	}

	return applyUserUpdates(gdb, user, map[string]interface{}{"avatar_url": avatarURL})
}

func applyUserUpdates(gdb *gorm.DB, user *models.User, updates map[string]interface{}) (*models.User, error) {
	if len(updates) == 0 {
		return user, nil
	}

	if err := gdb.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := gdb.First(user, "id = ?", user.ID).Error; err != nil {
		return nil, err
	}

	return user, nil
}
