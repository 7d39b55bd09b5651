package serverpackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/wire"
)

func TestAccountConnectedEncodesBareAccountID(t *testing.T) {
	buf := make([]byte, AccountConnectedSize)
	n, err := AccountConnected(buf, 7)
	require.NoError(t, err)
	assert.Equal(t, AccountConnectedSize, n)
	assert.Equal(t, uint32(7), wire.GetU32(buf[0:4]))
}

func TestRejectedEncodesReasonByte(t *testing.T) {
	buf := make([]byte, RejectedSize)
	n, err := Rejected(buf, 3)
	require.NoError(t, err)
	assert.Equal(t, RejectedSize, n)
	assert.Equal(t, constants.OpRejected, wire.GetU16(buf[0:2]))
	assert.Equal(t, byte(3), buf[2])
}

func TestCharacterSlotCountExactLayout(t *testing.T) {
	buf := make([]byte, CharacterSlotCountSize)
	n, err := CharacterSlotCount(buf)
	require.NoError(t, err)
	assert.Equal(t, CharacterSlotCountSize, n)
	assert.Equal(t, constants.OpCharacterSlotCountResp, wire.GetU16(buf[0:2]))
	assert.Equal(t, uint16(CharacterSlotCountSize), wire.GetU16(buf[2:4]))
	assert.Equal(t, byte(constants.MaxCharactersPerAccount), buf[4])
}

func TestCharacterInfoSizeAndFraming(t *testing.T) {
	characters := []*model.Character{sampleCharacter(), sampleCharacter()}
	need := CharacterInfoSize(len(characters))
	buf := make([]byte, need)
	n, err := CharacterInfo(buf, characters)
	require.NoError(t, err)
	assert.Equal(t, need, n)
	assert.Equal(t, constants.OpCharacterInfoResp, wire.GetU16(buf[0:2]))
	assert.Equal(t, uint16(need), wire.GetU16(buf[2:4]))
}

func TestBannedCharactersIsEmptyList(t *testing.T) {
	buf := make([]byte, BannedCharactersSize)
	n, err := BannedCharacters(buf)
	require.NoError(t, err)
	assert.Equal(t, BannedCharactersSize, n)
	assert.Equal(t, constants.OpBannedCharactersResp, wire.GetU16(buf[0:2]))
}

func TestPincodeInfoWireOrderIsSeedAccountStatus(t *testing.T) {
	buf := make([]byte, PincodeInfoSize)
	n, err := PincodeInfo(buf, model.PincodeInfo{Seed: 0x11223344, AccountID: 55, Status: model.PincodeCorrect})
	require.NoError(t, err)
	assert.Equal(t, PincodeInfoSize, n)
	assert.Equal(t, uint32(0x11223344), wire.GetU32(buf[2:6]))
	assert.Equal(t, uint32(55), wire.GetU32(buf[6:10]))
	assert.Equal(t, uint16(model.PincodeCorrect), wire.GetU16(buf[10:12]))
}

func TestCharactersSizeAddsTrailerOnlyForThree(t *testing.T) {
	assert.Equal(t, 4+2*constants.CharacterFrameSize, CharactersSize(2))
	assert.Equal(t, 4+3*constants.CharacterFrameSize+4, CharactersSize(3))
	assert.Equal(t, 4+4*constants.CharacterFrameSize, CharactersSize(4))
}

func TestCharactersEncodesTrailerForThreeCharacters(t *testing.T) {
	characters := []*model.Character{sampleCharacter(), sampleCharacter(), sampleCharacter()}
	need := CharactersSize(3)
	buf := make([]byte, need)
	n, err := Characters(buf, characters)
	require.NoError(t, err)
	assert.Equal(t, need, n)

	trailerOff := 4 + 3*constants.CharacterFrameSize
	assert.Equal(t, constants.OpCharactersResp, wire.GetU16(buf[trailerOff:trailerOff+2]))
	assert.Equal(t, uint16(0x0004), wire.GetU16(buf[trailerOff+2:trailerOff+4]))
}

func TestNewCharacterInfoUsesSingleCharacterFraming(t *testing.T) {
	c := sampleCharacter()
	buf := make([]byte, CharacterInfoSize(1))
	n, err := NewCharacterInfo(buf, c)
	require.NoError(t, err)
	assert.Equal(t, CharacterInfoSize(1), n)
}
