package models

import (
	"gorm.io/datatypes"
)

// ImportReport is written once per successful backup import and keeps the
// per-collection outcome so an opaque total is never the only record.
type ImportReport struct {
	BaseModel

	UserID   string         `gorm:"type:uuid;not null;index"`
	Created  int            `gorm:"not null"`
	Outcomes datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
