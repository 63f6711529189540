package entities

// Device identifies an anonymous client. Rows are created lazily on the first
// save for an unknown device id and are never deleted.
type Device struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	DeviceID string `gorm:"size:64;uniqueIndex;not null" json:"device_id"`

	Saves []*SavedRecipe `gorm:"foreignKey:DeviceID"`
	Timestamp
}
