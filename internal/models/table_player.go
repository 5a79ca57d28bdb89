package models

// TablePlayer records an approved player at a table. Membership is a row,
// never graph traversal, and the composite index makes re-insertion a
// conflict instead of a duplicate.
type TablePlayer struct {
	BaseModel

	TableID string `gorm:"type:uuid;not null;uniqueIndex:idx_table_player"`
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:idx_table_player"`

	// Relationships
	Table GameTable `gorm:"foreignKey:TableID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User  User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
