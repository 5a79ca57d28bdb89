package store

import (
	"errors"
	"fmt"

	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"gorm.io/gorm"
)

// CreateJoinRequest inserts a pending request unless the user already plays
// at the table or already has a pending request there. The partial unique
// index on (table_id, user_id, status='pending') backs up this pre-check
// under concurrency.
func CreateJoinRequest(gdb *gorm.DB, tableID string, userID string) (*models.JoinRequest, error) {
	var request models.JoinRequest

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := GetTableByID(tx, tableID); err != nil {
			return err
		}

		member, err := IsPlayer(tx, tableID, userID)

		if err != nil {
			return err
		}

		if member {
			return ErrAlreadyMember
		}

		var existing models.JoinRequest

		err = tx.Where("table_id = ? AND user_id = ? AND status = ?",
			tableID, userID, models.JoinRequestPending).First(&existing).Error

		if err == nil {
			return ErrDuplicateRequest
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		request = models.JoinRequest{
			TableID: tableID,
			UserID:  userID,
			Status:  models.JoinRequestPending,
		}

		return tx.Create(&request).Error
	})

	if err != nil {
		return nil, err
	}

	return &request, nil
}

// ManageJoinRequest transitions a request to approved or declined. The
// request must belong to the given table. Approval also adds the requester to
// the table's players, idempotently.
func ManageJoinRequest(gdb *gorm.DB, tableID string, requestID string, newStatus string) (*models.JoinRequest, error) {
	if newStatus != models.JoinRequestApproved && newStatus != models.JoinRequestDeclined {
		return nil, fmt.Errorf("unsupported join request status %q", newStatus)
	}

	var request models.JoinRequest

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND table_id = ?", requestID, tableID).First(&request).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&request).Update("status", newStatus).Error; err != nil {
			return err
		}

		if newStatus == models.JoinRequestApproved {
			if err := AddPlayer(tx, request.TableID, request.UserID); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &request, nil
}

func GetJoinRequestByID(gdb *gorm.DB, requestID string) (*models.JoinRequest, error) {
	var request models.JoinRequest

	if err := gdb.Where("id = ?", requestID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &request, nil
}

func ListPendingJoinRequests(gdb *gorm.DB, tableID string) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest

	err := gdb.Preload("User").
		Where("table_id = ? AND status = ?", tableID, models.JoinRequestPending).
		Find(&requests).Error

	if err != nil {
		return nil, err
	}

	return requests, nil
}
