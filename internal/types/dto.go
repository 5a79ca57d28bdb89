package types

// Request and response shapes shared between handlers and the backup
// service. Create shapes double as the validation target for imported
// backup records.

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProfileResponse struct {
	ID                      string `json:"id"`
	Username                string `json:"username"`
	Email                   string `json:"email"`
	IsActive                bool   `json:"is_active"`
	Bio                     string `json:"bio"`
	AvatarURL               string `json:"avatar_url"`
	NotifyOnJoinRequest     bool   `json:"notify_on_join_request"`
	NotifyOnRequestApproved bool   `json:"notify_on_request_approved"`
	NotifyOnNewStory        bool   `json:"notify_on_new_story"`
}

type CreateCharacterRequest struct {
	Name  string `json:"name" binding:"required"`
	Race  string `json:"race" binding:"required"`
	Class string `json:"class" binding:"required"`
	Level int    `json:"level" binding:"omitempty,min=1"`
}

type CharacterResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Race    string `json:"race"`
	Class   string `json:"class"`
	Level   int    `json:"level"`
	OwnerID string `json:"owner_id"`
}

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Rarity      string `json:"rarity"`
}

type ItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Rarity      string `json:"rarity"`
	CreatorID   string `json:"creator_id"`
}

type CreateMonsterRequest struct {
	Name            string `json:"name" binding:"required"`
	Size            string `json:"size" binding:"required"`
	Type            string `json:"type" binding:"required"`
	ArmorClass      int    `json:"armor_class" binding:"required"`
	HitPoints       string `json:"hit_points" binding:"required"`
	Speed           string `json:"speed" binding:"required"`
	Actions         string `json:"actions"`
	ChallengeRating string `json:"challenge_rating" binding:"required"`
}

type MonsterResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Size            string `json:"size"`
	Type            string `json:"type"`
	ArmorClass      int    `json:"armor_class"`
	HitPoints       string `json:"hit_points"`
	Speed           string `json:"speed"`
	Actions         string `json:"actions"`
	ChallengeRating string `json:"challenge_rating"`
	CreatorID       string `json:"creator_id"`
}

type CreateNPCRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

type NPCResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
	CreatorID   string `json:"creator_id"`
}

type CreateStoryRequest struct {
	Title      string   `json:"title" binding:"required"`
	Synopsis   string   `json:"synopsis"`
	ItemIDs    []string `json:"item_ids"`
	MonsterIDs []string `json:"monster_ids"`
	NPCIDs     []string `json:"npc_ids"`
}

type StoryResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Synopsis   string   `json:"synopsis"`
	CreatorID  string   `json:"creator_id"`
	ItemIDs    []string `json:"item_ids"`
	MonsterIDs []string `json:"monster_ids"`
	NPCIDs     []string `json:"npc_ids"`
}

type TableResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	MasterID    string         `json:"master_id"`
	StoryID     string         `json:"story_id"`
	Players     []UserResponse `json:"players"`
}

type JoinRequestResponse struct {
	ID      string       `json:"id"`
	TableID string       `json:"table_id"`
	UserID  string       `json:"user_id"`
	Status  string       `json:"status"`
	User    UserResponse `json:"user"`
}

// BackupDocument is the export/import format for a user's owned collections.
// Ids and ownership fields are present on export and stripped on import.
type BackupDocument struct {
	Characters []CharacterResponse `json:"characters"`
	Items      []ItemResponse      `json:"items"`
	Monsters   []MonsterResponse   `json:"monsters"`
	NPCs       []NPCResponse       `json:"npcs"`
	Stories    []StoryResponse     `json:"stories"`
}
