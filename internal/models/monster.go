package models

type Monster struct {
	BaseModel

	Name            string `gorm:"not null;index"`
	Size            string `gorm:"not null"` // "Medium", "Large", ...
	Type            string `gorm:"not null"` // "Beast", "Undead", "Aberration", ...
	ArmorClass      int    `gorm:"not null"`
	HitPoints       string `gorm:"not null"` // e.g. "22 (4d8 + 4)"
	Speed           string `gorm:"not null"` // e.g. "30 ft."
	Actions         string `gorm:"type:text"`
	ChallengeRating string `gorm:"not null"` // "1/2", "5", ...
	CreatorID       string `gorm:"type:uuid;not null;index"`

	// Relationships
	Creator User `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
