// Package serverpackets encodes character-port response frames, grounded
// on original_source/api/src/character/response.rs Response::serialize
// (the opcode table and byte layout follow spec.md §4.1/§6 where the two
// disagree, since that is this task's authoritative contract; original_source
// is used only to fill in the fields spec.md leaves unspecified, e.g.
// CharacterSlotCount's exact byte layout).
package serverpackets

import (
	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/wire"
)

// AccountConnectedSize is the size of the bare account-id announcement —
// the one response in this protocol with no opcode prefix (spec.md §4.5).
const AccountConnectedSize = 4

// AccountConnected encodes the bare 4-byte account_id announcement sent
// immediately after a successful ConnectClient.
func AccountConnected(buf []byte, accountID uint32) (int, error) {
	if len(buf) < AccountConnectedSize {
		return 0, wire.OverflowError{Needed: AccountConnectedSize}
	}
	wire.PutU32(buf[0:4], accountID)
	return AccountConnectedSize, nil
}

// RejectedSize is the fixed Rejected frame size: opcode(2) + reason(1).
const RejectedSize = 3

// Rejected encodes the single-byte rejection response used whenever the
// character session refuses a request (bad ticket, unknown slot, ...).
// The source only ever writes reason 0; this core preserves a reason
// parameter for forward compatibility without assigning further meaning
// to non-zero values.
func Rejected(buf []byte, reason byte) (int, error) {
	if len(buf) < RejectedSize {
		return 0, wire.OverflowError{Needed: RejectedSize}
	}
	wire.PutU16(buf[0:2], constants.OpRejected)
	buf[2] = reason
	return RejectedSize, nil
}

// CharacterSlotCountSize is the fixed CharacterSlotCount-resp frame size,
// grounded on original_source/api/src/character/response.rs: opcode(2) +
// size(2) + 5 slot-count bytes + 20 unused = 29.
const CharacterSlotCountSize = 29

// CharacterSlotCount encodes the fixed per-account slot-count frame.
func CharacterSlotCount(buf []byte) (int, error) {
	if len(buf) < CharacterSlotCountSize {
		return 0, wire.OverflowError{Needed: CharacterSlotCountSize}
	}
	wire.PutU16(buf[0:2], constants.OpCharacterSlotCountResp)
	wire.PutU16(buf[2:4], CharacterSlotCountSize)
	buf[4] = constants.MaxCharactersPerAccount
	buf[5] = constants.MaxCharactersPerAccount
	buf[6] = 0
	buf[7] = constants.MaxCharactersPerAccount
	buf[8] = constants.MaxCharactersPerAccount
	clearFrame(buf[9:29])
	return CharacterSlotCountSize, nil
}

// characterInfoHeaderSize is size(2) + four slot counters(4) + 20 unused,
// following spec.md §4.1's CharacterInfo-resp body description.
const characterInfoHeaderSize = 2 + 4 + 20

// CharacterInfoSize returns the exact frame size for n characters.
func CharacterInfoSize(n int) int {
	return 2 + characterInfoHeaderSize + n*constants.CharacterFrameSize
}

// CharacterInfo encodes the full character-list response sent right after
// AccountConnected (spec.md §4.5).
func CharacterInfo(buf []byte, characters []*model.Character) (int, error) {
	need := CharacterInfoSize(len(characters))
	if len(buf) < need {
		return 0, wire.OverflowError{Needed: need}
	}
	wire.PutU16(buf[0:2], constants.OpCharacterInfoResp)
	wire.PutU16(buf[2:4], uint16(need))
	buf[4] = constants.MaxCharactersPerAccount
	buf[5] = constants.MaxCharactersPerAccount
	buf[6] = constants.MaxCharactersPerAccount
	buf[7] = constants.MaxCharactersPerAccount
	clearFrame(buf[8:28])

	off := 28
	for _, c := range characters {
		EncodeCharacterFrame(buf[off:off+constants.CharacterFrameSize], c)
		off += constants.CharacterFrameSize
	}
	return need, nil
}

// BannedCharactersSize is the fixed BannedCharacters-resp frame size: the
// banned-character list is unimplemented in this core (spec.md §4.5), so
// the body is just its own length field (opcode(2) + size(2) = 4).
const BannedCharactersSize = 4

// BannedCharacters encodes the (always empty) banned-character list.
func BannedCharacters(buf []byte) (int, error) {
	if len(buf) < BannedCharactersSize {
		return 0, wire.OverflowError{Needed: BannedCharactersSize}
	}
	wire.PutU16(buf[0:2], constants.OpBannedCharactersResp)
	wire.PutU16(buf[2:4], BannedCharactersSize)
	return BannedCharactersSize, nil
}

// PincodeInfoSize is the fixed PincodeInfo-resp frame size: opcode(2) +
// seed(4) + account_id(4) + status(2) = 12. Field order on the wire is
// seed, account_id, status — not the status/account_id order the data
// model's field list might suggest (spec.md §4 / original_source
// api/src/character/response.rs).
const PincodeInfoSize = 12

// PincodeInfo encodes the pincode-dialog response sent as the last step of
// ConnectClient handling.
func PincodeInfo(buf []byte, info model.PincodeInfo) (int, error) {
	if len(buf) < PincodeInfoSize {
		return 0, wire.OverflowError{Needed: PincodeInfoSize}
	}
	wire.PutU16(buf[0:2], constants.OpPincodeInfoResp)
	wire.PutU32(buf[2:6], info.Seed)
	wire.PutU32(buf[6:10], info.AccountID)
	wire.PutU16(buf[10:12], uint16(info.Status))
	return PincodeInfoSize, nil
}

// charactersTrailerValue is the second half of the undocumented 4-byte
// trailer (constants.OpCharactersResp, then this value) appended when
// exactly 3 characters are returned (spec.md §9b, preserved bit-exact
// though its purpose is unknown).
const charactersTrailerValue = 0x0004

// CharactersSize returns the exact frame size for n characters, including
// the N==3 trailer quirk.
func CharactersSize(n int) int {
	size := 4 + n*constants.CharacterFrameSize
	if n == 3 {
		size += 4
	}
	return size
}

// Characters encodes the Characters-resp (0x099d) list sent in response to
// ListCharacters.
func Characters(buf []byte, characters []*model.Character) (int, error) {
	need := CharactersSize(len(characters))
	if len(buf) < need {
		return 0, wire.OverflowError{Needed: need}
	}
	wire.PutU16(buf[0:2], constants.OpCharactersResp)
	wire.PutU16(buf[2:4], uint16(need))

	off := 4
	for _, c := range characters {
		EncodeCharacterFrame(buf[off:off+constants.CharacterFrameSize], c)
		off += constants.CharacterFrameSize
	}
	if len(characters) == 3 {
		wire.PutU16(buf[off:off+2], constants.OpCharactersResp)
		wire.PutU16(buf[off+2:off+4], charactersTrailerValue)
	}
	return need, nil
}

// NewCharacterInfo encodes the response to a successful CreateCharacter.
// It uses the same CharacterInfo-resp framing as the full list, with N=1
// (spec.md §4.5 — no separate opcode is defined for this case).
func NewCharacterInfo(buf []byte, c *model.Character) (int, error) {
	return CharacterInfo(buf, []*model.Character{c})
}
