package models

type Story struct {
	BaseModel

	Title     string `gorm:"not null;index"`
	Synopsis  string `gorm:"type:text"`
	CreatorID string `gorm:"type:uuid;not null;index"`

	// Relationships
	Creator User `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
