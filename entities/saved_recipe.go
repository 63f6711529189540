package entities

import "time"

// SavedRecipe links one Device to one Recipe. The composite unique index is
// what turns a concurrent double-save into a constraint violation instead of a
// duplicate row.
type SavedRecipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeviceID  uint      `gorm:"not null;uniqueIndex:uix_device_recipe" json:"device_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:uix_device_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	Device *Device `gorm:"foreignKey:DeviceID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
