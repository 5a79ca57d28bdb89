package store

import (
	"errors"

	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"gorm.io/gorm"
)

func CreateTable(gdb *gorm.DB, masterID string, title string, description string, storyID string) (*models.GameTable, error) {
	if _, err := GetStoryByID(gdb, storyID); err != nil {
		return nil, err
	}

	table := models.GameTable{
		Title:       title,
		Description: description,
		MasterID:    masterID,
		StoryID:     storyID,
	}

	if err := gdb.Create(&table).Error; err != nil {
		return nil, err
	}

	return &table, nil
}

func GetTableByID(gdb *gorm.DB, id string) (*models.GameTable, error) {
	var table models.GameTable

	if err := gdb.Where("id = ?", id).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &table, nil
}

// ListTables is the public table browser, paged with skip/limit.
func ListTables(gdb *gorm.DB, skip int, limit int) ([]models.GameTable, error) {
	var tables []models.GameTable

	if err := gdb.Offset(skip).Limit(limit).Find(&tables).Error; err != nil {
		return nil, err
	}

	return tables, nil
}

// ListPlayers resolves a table's approved players from the relation table.
func ListPlayers(gdb *gorm.DB, tableID string) ([]models.User, error) {
	var players []models.User

	err := gdb.
		Joins("JOIN table_players ON table_players.user_id = users.id").
		Where("table_players.table_id = ?", tableID).
		Find(&players).Error

	if err != nil {
		return nil, err
	}

	return players, nil
}

func IsPlayer(gdb *gorm.DB, tableID string, userID string) (bool, error) {
	var count int64

	err := gdb.Model(&models.TablePlayer{}).
		Where("table_id = ? AND user_id = ?", tableID, userID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AddPlayer is idempotent: an existing membership row is left untouched, so
// approving twice never duplicates a player.
func AddPlayer(gdb *gorm.DB, tableID string, userID string) error {
	var membership models.TablePlayer

	return gdb.
		Where(models.TablePlayer{TableID: tableID, UserID: userID}).
		FirstOrCreate(&membership).Error
}
