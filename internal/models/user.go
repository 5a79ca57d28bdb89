package models

type User struct {
	BaseModel

	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	IsActive     bool   `gorm:"default:true"`
	Bio          string
	AvatarURL    string

	NotifyOnJoinRequest     bool `gorm:"default:true"`
	NotifyOnRequestApproved bool `gorm:"default:true"`
	NotifyOnNewStory        bool `gorm:"default:true"`

	// Relationships
	Characters []Character `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Items      []Item      `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Monsters   []Monster   `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	NPCs       []NPC       `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Stories    []Story     `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tables     []GameTable `gorm:"foreignKey:MasterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
