package models

type Item struct {
	BaseModel

	Name        string `gorm:"not null;index"`
	Description string
	Type        string `gorm:"default:Mundane"` // "Weapon", "Armor", "Potion", "Mundane"
	Rarity      string `gorm:"default:Common"`  // "Common", "Uncommon", "Rare"
	CreatorID   string `gorm:"type:uuid;not null;index"`

	// Relationships
	Creator User `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
