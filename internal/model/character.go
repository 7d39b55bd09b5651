package model

import (
	"time"

	"github.com/sadroeck/heimdall-go/internal/constants"
)

// Class enumerates the classes a character can be created as (spec.md
// §3). The wider job-change class table from original_source's
// attributes.rs exists in the live client but is out of this server's
// scope (no job-change system is implemented here).
type Class uint16

const (
	ClassNovice   Class = 0
	ClassSummoner Class = 4218
)

// Valid reports whether c is a class a new character may be created as.
func (c Class) Valid() bool { return c == ClassNovice || c == ClassSummoner }

// Stats holds the six base attributes plus derived HP/SP, defaulted per
// spec.md §3 ("stats default to a documented fixed starting vector").
type Stats struct {
	Str, Agi, Vit, Int, Dex, Luk uint8
	HP, MaxHP                    uint32
	SP, MaxSP                    uint16
}

// DefaultStats returns the fixed starting stat vector every new character
// is created with, grounded on original_source/api/src/character/attributes.rs.
func DefaultStats() Stats {
	hp := uint32(40 * 101 / 100)
	sp := uint16(11 * 101 / 100)
	return Stats{Str: 1, Agi: 1, Vit: 1, Int: 1, Dex: 1, Luk: 1, HP: hp, MaxHP: hp, SP: sp, MaxSP: sp}
}

// Experience tracks level/exp/points.
type Experience struct {
	BaseLevel, JobLevel   uint16
	BaseExp, JobExp       uint64
	StatusPoints          uint16
	SkillPoints           uint16
}

// DefaultExperience returns the starting experience block for a new
// character.
func DefaultExperience() Experience {
	return Experience{BaseLevel: 1, JobLevel: 1, StatusPoints: 48}
}

// Currency holds a character's in-game wallet.
type Currency struct {
	Zeny uint32
	Fame int32
}

// Status holds the small set of option/manner/karma/deletion flags the
// character frame serializes. Manner and Karma are optional in the model
// (nil) but always serialize as 0 when absent (spec.md §4.1, §9c).
type Status struct {
	Option     uint32
	Manner     *int32
	Karma      *int32
	DeleteDate *time.Time
	UnbanOn    *time.Time
}

// OptionsIncompatibleWithWeapon masks the Status.Option bits that force
// the wire weapon field to 0 (spec.md §6 Character frame, offset 62).
const OptionsIncompatibleWithWeapon = 0x0FF80020

// Appearance holds the customizable look of a character.
type Appearance struct {
	Hair, HairColor     uint16
	Clothes, ClothesColor uint16
	Body                uint16
}

// Equipment holds the equipped item type codes the character frame
// serializes (not the inventory entries themselves — see Inventory).
type Equipment struct {
	Weapon, Shield               uint16
	HeadTop, HeadMid, HeadBottom uint16
	Robe                         uint32
}

// Grouping holds the party/guild/pet-style associations relevant to the
// character-select frame. original_source's homunculus, elemental and clan
// ids are not carried: no such subsystem exists here.
type Grouping struct {
	PartyID, GuildID, PetID int32
}

// MercenaryGuildRank mirrors original_source's MercenaryGuildRank struct.
type MercenaryGuildRank struct {
	ArchFaith, ArchCalls   int32
	SpearFaith, SpearCalls int32
	SwordFaith, SwordCalls int32
}

// Point is a single map coordinate.
type Point struct {
	MapID uint16
	X, Y  uint16
}

// Location is a character's current position plus optional save/memo
// points.
type Location struct {
	MapName      string
	Last         Point
	Save, Memo   *Point
}

// Skill is one entry of a character's learned-skill list.
type Skill struct {
	ID    uint16
	Level uint8
}

// Settings holds client-facing per-character preferences.
type Settings struct {
	RenameAvailable uint16 // count of renames still available; 0 means none left
}

// Relationship holds the partner/parent/child/friends graph.
type Relationship struct {
	PartnerID, Father, Mother, Child uint32
	Friends                          []Friend
}

// Friend is one entry of a character's friend list.
type Friend struct {
	AccountID   uint32
	CharacterID uint32
	Name        string
}

// Character is a single player character (spec.md §3).
type Character struct {
	ID        uint32
	AccountID uint32
	Slot      uint16
	Name      string
	Sex       constants.Sex
	Class     Class

	Stats      Stats
	Experience Experience
	Currency   Currency
	Status     Status
	Appearance Appearance
	Grouping   Grouping
	Equipment  Equipment
	GuildRank  MercenaryGuildRank
	Location   Location
	Skills     []Skill
	Settings   Settings
	Relations  Relationship
}

// NewCharacter builds a bare character record seeded with id/account_id,
// the way store.CharacterStore.Create does before the caller fills in
// name/slot/stats/appearance/class/sex, grounded on
// original_source/databases/src/character/in_memory.rs's
// `Character::new(char_id, account_id)`.
func NewCharacter(id, accountID uint32) *Character {
	return &Character{
		ID:         id,
		AccountID:  accountID,
		Stats:      DefaultStats(),
		Experience: DefaultExperience(),
		Location:   Location{MapName: "new_1-1.gat"},
	}
}

// NewCharacterRequest is the normalized create-character request the
// character session acts on, independent of which CreateCharacter wire
// opcode (V1/V2/V3) produced it (spec.md Design Notes: "normalize into a
// single internal Request variant").
type NewCharacterRequest struct {
	Name      string
	Slot      uint8
	HairColor uint16
	Hair      uint16
	Class     Class
	Sex       constants.Sex
}
