package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/crumbs/restaurant-service/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.AllModels()...)
}

// WipeAll deletes every row from every table, children first.
func WipeAll(tx *gorm.DB) error {
	models := types.AllModels()
	for i := len(models) - 1; i >= 0; i-- {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(models[i]).Error; err != nil {
			return fmt.Errorf("wipe %T: %w", models[i], err)
		}
	}
	return nil
}
