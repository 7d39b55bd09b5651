package serverpackets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/wire"
)

func sampleCharacter() *model.Character {
	return &model.Character{
		ID:        1001,
		AccountID: 1,
		Slot:      0,
		Name:      "Hero",
		Sex:       constants.SexMale,
		Class:     model.ClassNovice,
		Stats:     model.DefaultStats(),
		Equipment: model.Equipment{Weapon: 1201},
		Location:  model.Location{MapName: "new_1-1.gat"},
	}
}

func TestEncodeCharacterFrameBasicFields(t *testing.T) {
	buf := make([]byte, constants.CharacterFrameSize)
	c := sampleCharacter()
	EncodeCharacterFrame(buf, c)

	assert.Equal(t, c.ID, wire.GetU32(buf[0:4]))
	assert.Equal(t, uint16(c.Class), wire.GetU16(buf[56:58]))
	assert.Equal(t, c.Equipment.Weapon, wire.GetU16(buf[62:64]))
	assert.Equal(t, "Hero", wire.GetString(buf[80:104]))
	assert.Equal(t, "new_1-1.gat", wire.GetString(buf[114:130]))
	assert.Equal(t, byte(constants.SexMale), buf[146])
}

func TestEncodeCharacterFrameZeroesWeaponOnIncompatibleOptions(t *testing.T) {
	buf := make([]byte, constants.CharacterFrameSize)
	c := sampleCharacter()
	c.Status.Option = model.OptionsIncompatibleWithWeapon
	EncodeCharacterFrame(buf, c)

	assert.Equal(t, uint16(0), wire.GetU16(buf[62:64]))
}

func TestEncodeCharacterFrameOptionalKarmaMannerZeroWhenNil(t *testing.T) {
	buf := make([]byte, constants.CharacterFrameSize)
	c := sampleCharacter()
	EncodeCharacterFrame(buf, c)

	assert.Equal(t, uint32(0), wire.GetU32(buf[32:36]))
	assert.Equal(t, uint32(0), wire.GetU32(buf[36:40]))
}

func TestEncodeCharacterFrameOptionalKarmaMannerSet(t *testing.T) {
	buf := make([]byte, constants.CharacterFrameSize)
	c := sampleCharacter()
	karma := int32(5)
	manner := int32(-3)
	c.Status.Karma = &karma
	c.Status.Manner = &manner
	EncodeCharacterFrame(buf, c)

	assert.Equal(t, uint32(5), wire.GetU32(buf[32:36]))
	assert.Equal(t, uint32(0xfffffffd), wire.GetU32(buf[36:40]))
}

func TestEncodeCharacterFrameDeleteDateEncodedAsEpoch(t *testing.T) {
	buf := make([]byte, constants.CharacterFrameSize)
	c := sampleCharacter()
	when := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.Status.DeleteDate = &when
	EncodeCharacterFrame(buf, c)

	assert.Equal(t, uint32(when.Unix()), wire.GetU32(buf[130:134]))
}

func TestEncodeCharacterFrameReservedTailIsZero(t *testing.T) {
	buf := make([]byte, constants.CharacterFrameSize)
	EncodeCharacterFrame(buf, sampleCharacter())

	for i := 147; i < constants.CharacterFrameSize; i++ {
		assert.Equal(t, byte(0), buf[i], "byte %d should be reserved zero", i)
	}
}
