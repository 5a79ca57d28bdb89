package models

// Explicit relation rows between a story and the assets it references.

type StoryItem struct {
	BaseModel

	StoryID string `gorm:"type:uuid;not null;uniqueIndex:idx_story_item"`
	ItemID  string `gorm:"type:uuid;not null;uniqueIndex:idx_story_item"`

	// Relationships
	Story Story `gorm:"foreignKey:StoryID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Item  Item  `gorm:"foreignKey:ItemID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

type StoryMonster struct {
	BaseModel

	StoryID   string `gorm:"type:uuid;not null;uniqueIndex:idx_story_monster"`
	MonsterID string `gorm:"type:uuid;not null;uniqueIndex:idx_story_monster"`

	// Relationships
	Story   Story   `gorm:"foreignKey:StoryID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Monster Monster `gorm:"foreignKey:MonsterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

type StoryNPC struct {
	BaseModel

	StoryID string `gorm:"type:uuid;not null;uniqueIndex:idx_story_npc"`
	NPCID   string `gorm:"type:uuid;not null;uniqueIndex:idx_story_npc"`

	// Relationships
	Story Story `gorm:"foreignKey:StoryID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	NPC   NPC   `gorm:"foreignKey:NPCID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
