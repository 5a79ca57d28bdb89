package db

import (
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	return Migrate(DB)
}

// Migrate runs AutoMigrate for every model, relation rows included. Split out
// of MigrateDatabase so tests can run it against their own handle.
func Migrate(gdb *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.Character{},
		&models.Item{},
		&models.Monster{},
		&models.NPC{},
		&models.Story{},
		&models.StoryItem{},
		&models.StoryMonster{},
		&models.StoryNPC{},
		&models.GameTable{},
		&models.TablePlayer{},
		&models.JoinRequest{},
		&models.ImportReport{},
	}

	migrator := gdb.Migrator()

	for _, model := range entities {
		if !migrator.HasTable(model) {
			if err := gdb.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
