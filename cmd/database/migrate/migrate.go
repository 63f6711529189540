package migration

import (
	"fmt"

	"github.com/OojayFidel/plp-hackathon-2/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("migrating users: %w", err)
	}
	if err := db.AutoMigrate(&entities.Device{}); err != nil {
		return fmt.Errorf("migrating devices: %w", err)
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("migrating recipes: %w", err)
	}
	if err := db.AutoMigrate(&entities.SavedRecipe{}); err != nil {
		return fmt.Errorf("migrating saved recipes: %w", err)
	}

	fmt.Println("Database migration complete")
	return nil
}
