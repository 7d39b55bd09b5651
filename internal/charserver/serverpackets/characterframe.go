package serverpackets

import (
	"time"

	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/wire"
)

// walkSpeed is the fixed value the client frame always carries; no
// per-character walk speed exists in this core (spec.md §6).
const walkSpeed = 150

// EncodeCharacterFrame writes the 155-byte Character frame exactly as laid
// out in spec.md §6, into buf[:constants.CharacterFrameSize].
//
// The table's field offsets sum to a 147-byte used prefix (sex ends at
// offset 147); the remaining 8 bytes are reserved/zero to reach the
// documented 155-byte total. (The table's own trailing parenthetical names
// 14 reserved bytes, which does not square with its offsets; the offsets
// are followed here as the internally consistent source of truth.)
func EncodeCharacterFrame(buf []byte, c *model.Character) {
	clearFrame(buf[:constants.CharacterFrameSize])

	wire.PutU32(buf[0:4], c.ID)
	wire.PutU32(buf[4:8], uint32(c.Experience.BaseExp))
	wire.PutU32(buf[8:12], c.Currency.Zeny)
	wire.PutU32(buf[12:16], uint32(c.Experience.JobExp))
	wire.PutU32(buf[16:20], uint32(c.Experience.JobLevel))
	// 20..28 reserved zero

	wire.PutU32(buf[28:32], c.Status.Option&^0x40)
	wire.PutU32(buf[32:36], optionalInt32(c.Status.Karma))
	wire.PutU32(buf[36:40], optionalInt32(c.Status.Manner))
	wire.PutU16(buf[40:42], c.Experience.StatusPoints)
	wire.PutU32(buf[42:46], c.Stats.HP)
	wire.PutU32(buf[46:50], c.Stats.MaxHP)
	wire.PutU16(buf[50:52], c.Stats.SP)
	wire.PutU16(buf[52:54], c.Stats.MaxSP)
	wire.PutU16(buf[54:56], walkSpeed)
	wire.PutU16(buf[56:58], uint16(c.Class))
	wire.PutU16(buf[58:60], c.Appearance.Hair)
	wire.PutU16(buf[60:62], c.Appearance.Body)

	weapon := c.Equipment.Weapon
	if c.Status.Option&model.OptionsIncompatibleWithWeapon != 0 {
		weapon = 0
	}
	wire.PutU16(buf[62:64], weapon)

	wire.PutU16(buf[64:66], c.Experience.BaseLevel)
	wire.PutU16(buf[66:68], c.Experience.SkillPoints)
	wire.PutU16(buf[68:70], c.Equipment.HeadBottom)
	wire.PutU16(buf[70:72], c.Equipment.Shield)
	wire.PutU16(buf[72:74], c.Equipment.HeadTop)
	wire.PutU16(buf[74:76], c.Equipment.HeadMid)
	wire.PutU16(buf[76:78], c.Appearance.HairColor)
	wire.PutU16(buf[78:80], c.Appearance.ClothesColor)

	wire.PutString(buf[80:104], c.Name, 24)

	buf[104] = c.Stats.Str
	buf[105] = c.Stats.Agi
	buf[106] = c.Stats.Vit
	buf[107] = c.Stats.Int
	buf[108] = c.Stats.Dex
	buf[109] = c.Stats.Luk

	wire.PutU16(buf[110:112], c.Slot)

	renameAvailable := uint16(1)
	if c.Settings.RenameAvailable > 0 {
		renameAvailable = 0
	}
	wire.PutU16(buf[112:114], renameAvailable)

	wire.PutString(buf[114:130], c.Location.MapName, 16)

	wire.PutU32(buf[130:134], optionalEpoch(c.Status.DeleteDate))
	wire.PutU32(buf[134:138], c.Equipment.Robe)
	wire.PutU32(buf[138:142], 1) // slot_move_enabled
	wire.PutU32(buf[142:146], 1) // rename_enabled

	buf[146] = byte(c.Sex)
	// 147..155 reserved zero
}

func clearFrame(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func optionalInt32(p *int32) uint32 {
	if p == nil {
		return 0
	}
	return uint32(*p)
}

func optionalEpoch(p *time.Time) uint32 {
	if p == nil {
		return 0
	}
	return uint32(p.Unix())
}
