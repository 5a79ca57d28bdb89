package models

type NPC struct {
	BaseModel

	Name        string `gorm:"not null;index"`
	Description string `gorm:"type:text"`
	Role        string `gorm:"default:Citizen"` // "Shopkeeper", "Guard", "Noble", "Villain"
	Location    string
	Notes       string `gorm:"type:text"` // secret notes, master's eyes only
	CreatorID   string `gorm:"type:uuid;not null;index"`

	// Relationships
	Creator User `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
