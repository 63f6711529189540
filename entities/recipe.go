package entities

// Recipe is a suggested dish. Rows are deduplicated by Signature: saving the
// same title/desc/img again reuses the existing row.
type Recipe struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"desc"`
	TimeMinutes int    `gorm:"default:20" json:"time"`
	Serves      int    `gorm:"default:2" json:"serves"`
	Level       string `gorm:"size:16;default:Easy" json:"level"`
	ImageURL    string `gorm:"size:512" json:"img"`
	// 191 keeps the unique index under the MySQL 5.7 key length limit.
	Signature string `gorm:"size:191;uniqueIndex" json:"-"`

	Saves []*SavedRecipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
