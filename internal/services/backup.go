package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/models"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/store"
	"github.com/dungeonkeeper-dev/dungeonkeeper/internal/types"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// ErrMalformedDocument marks an uploaded backup that is not parseable JSON.
var ErrMalformedDocument = errors.New("backup document is not valid JSON")

// ImportSummary reports what a backup import created, per collection.
type ImportSummary struct {
	Created  int            `json:"created"`
	Outcomes map[string]int `json:"outcomes"`
}

// ExportUserData collects everything the user owns into one document. No
// pagination: a backup is always the full set.
func ExportUserData(gdb *gorm.DB, userID string) (*types.BackupDocument, error) {
	doc := types.BackupDocument{
		Characters: []types.CharacterResponse{},
		Items:      []types.ItemResponse{},
		Monsters:   []types.MonsterResponse{},
		NPCs:       []types.NPCResponse{},
		Stories:    []types.StoryResponse{},
	}

	characters, err := store.ListCharactersByOwner(gdb, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range characters {
		doc.Characters = append(doc.Characters, types.CharacterResponse{
			ID: c.ID, Name: c.Name, Race: c.Race, Class: c.Class, Level: c.Level, OwnerID: c.OwnerID,
		})
	}

	items, err := store.ListItemsByCreator(gdb, userID, 0, -1)
	if err != nil {
		return nil, err
	}
	for _, i := range items {
		doc.Items = append(doc.Items, types.ItemResponse{
			ID: i.ID, Name: i.Name, Description: i.Description, Type: i.Type, Rarity: i.Rarity, CreatorID: i.CreatorID,
		})
	}

	monsters, err := store.ListMonstersByCreator(gdb, userID, 0, -1)
	if err != nil {
		return nil, err
	}
	for _, m := range monsters {
		doc.Monsters = append(doc.Monsters, types.MonsterResponse{
			ID: m.ID, Name: m.Name, Size: m.Size, Type: m.Type, ArmorClass: m.ArmorClass,
			HitPoints: m.HitPoints, Speed: m.Speed, Actions: m.Actions,
			ChallengeRating: m.ChallengeRating, CreatorID: m.CreatorID,
		})
	}

	npcs, err := store.ListNPCsByCreator(gdb, userID, 0, -1)
	if err != nil {
		return nil, err
	}
	for _, n := range npcs {
		doc.NPCs = append(doc.NPCs, types.NPCResponse{
			ID: n.ID, Name: n.Name, Description: n.Description, Role: n.Role,
			Location: n.Location, Notes: n.Notes, CreatorID: n.CreatorID,
		})
	}

	stories, err := store.ListStoriesByCreator(gdb, userID)
	if err != nil {
		return nil, err
	}
	for _, s := range stories {
		itemIDs, monsterIDs, npcIDs, err := store.StoryAssociationIDs(gdb, s.ID)
		if err != nil {
			return nil, err
		}
		doc.Stories = append(doc.Stories, types.StoryResponse{
			ID: s.ID, Title: s.Title, Synopsis: s.Synopsis, CreatorID: s.CreatorID,
			ItemIDs: itemIDs, MonsterIDs: monsterIDs, NPCIDs: npcIDs,
		})
	}

	return &doc, nil
}

// importDocument binds only the creation fields of each record; identity and
// ownership fields in the upload are dropped by the decoder.
type importDocument struct {
	Characters []types.CreateCharacterRequest `json:"characters"`
	Items      []types.CreateItemRequest      `json:"items"`
	Monsters   []types.CreateMonsterRequest   `json:"monsters"`
	NPCs       []types.CreateNPCRequest       `json:"npcs"`
	Stories    []types.CreateStoryRequest     `json:"stories"`
}

// ImportUserData re-creates the uploaded records under the given user in one
// transaction: a validation failure anywhere rolls back the whole import.
// Story associations are not carried over, the uploaded ids belong to the
// exporting account.
func ImportUserData(gdb *gorm.DB, userID string, data []byte) (*ImportSummary, error) {
	var doc importDocument

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrMalformedDocument
	}

	summary := ImportSummary{Outcomes: make(map[string]int)}

	err := gdb.Transaction(func(tx *gorm.DB) error {
		for i, rec := range doc.Items {
			if err := validateRecord("items", i, rec); err != nil {
				return err
			}
			if _, err := store.CreateItem(tx, userID, rec); err != nil {
				return err
			}
			summary.Outcomes["items"]++
			summary.Created++
		}

		for i, rec := range doc.Monsters {
			if err := validateRecord("monsters", i, rec); err != nil {
				return err
			}
			if _, err := store.CreateMonster(tx, userID, rec); err != nil {
				return err
			}
			summary.Outcomes["monsters"]++
			summary.Created++
		}

		for i, rec := range doc.NPCs {
			if err := validateRecord("npcs", i, rec); err != nil {
				return err
			}
			if _, err := store.CreateNPC(tx, userID, rec); err != nil {
				return err
			}
			summary.Outcomes["npcs"]++
			summary.Created++
		}

		for i, rec := range doc.Stories {
			if err := validateRecord("stories", i, rec); err != nil {
				return err
			}
			rec.ItemIDs = nil
			rec.MonsterIDs = nil
			rec.NPCIDs = nil
			if _, err := store.CreateStory(tx, userID, rec); err != nil {
				return err
			}
			summary.Outcomes["stories"]++
			summary.Created++
		}

		for i, rec := range doc.Characters {
			if err := validateRecord("characters", i, rec); err != nil {
				return err
			}
			if _, err := store.CreateCharacter(tx, userID, rec); err != nil {
				return err
			}
			summary.Outcomes["characters"]++
			summary.Created++
		}

		outcomes, err := json.Marshal(summary.Outcomes)

		if err != nil {
			return err
		}

		report := models.ImportReport{
			UserID:   userID,
			Created:  summary.Created,
			Outcomes: outcomes,
		}

		return tx.Create(&report).Error
	})

	if err != nil {
		return nil, err
	}

	return &summary, nil
}

func validateRecord(collection string, index int, rec interface{}) error {
	if err := binding.Validator.ValidateStruct(rec); err != nil {
		return fmt.Errorf("%s[%d]: %v", collection, index, err)
	}
	return nil
}
