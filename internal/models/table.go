package models

// GameTable is a running game session: one master, one story, and the set of
// approved players.
type GameTable struct {
	BaseModel

	Title       string `gorm:"not null;index"`
	Description string
	MasterID    string `gorm:"type:uuid;not null;index"`
	StoryID     string `gorm:"type:uuid;not null;index"`

	// Relationships
	Master       User          `gorm:"foreignKey:MasterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Story        Story         `gorm:"foreignKey:StoryID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	JoinRequests []JoinRequest `gorm:"foreignKey:TableID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (GameTable) TableName() string {
	return "game_tables"
}
