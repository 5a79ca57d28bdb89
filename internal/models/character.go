package models

type Character struct {
	BaseModel

	Name    string `gorm:"not null;index"`
	Race    string `gorm:"not null"`
	Class   string `gorm:"not null"`
	Level   int    `gorm:"default:1"`
	OwnerID string `gorm:"type:uuid;not null;index"`

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
