package models

const (
	JoinRequestPending  = "pending"
	JoinRequestApproved = "approved"
	JoinRequestDeclined = "declined"
)

type JoinRequest struct {
	BaseModel

	// The partial index keeps concurrent requests from racing the pre-check
	// into a second pending row for the same (table, user) pair.
	TableID string `gorm:"type:uuid;not null;uniqueIndex:udx_pending_join,where:status = 'pending'"`
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:udx_pending_join,where:status = 'pending'"`
	Status  string `gorm:"not null;default:pending;index"`

	// Relationships
	Table GameTable `gorm:"foreignKey:TableID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User  User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
