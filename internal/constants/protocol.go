// Package constants holds protocol-level constants shared by the login
// and character servers: opcode numbers, fixed frame widths and the
// small set of numeric limits the wire format and data model depend on.
package constants

// Login request opcodes (client -> login server).
const (
	OpKeepAlive              uint16 = 0x0200
	OpUpdateClientHash       uint16 = 0x0204
	OpClearPasswordLoginV1   uint16 = 0x0064
	OpClearPasswordLoginV2   uint16 = 0x0277
	OpClearPasswordLoginV3   uint16 = 0x02b0
	OpHashedPasswordLoginV1  uint16 = 0x01dd
	OpHashedPasswordLoginV2  uint16 = 0x01fa
	OpHashedPasswordLoginV3  uint16 = 0x027c
	OpHashedPasswordLoginV4  uint16 = 0x0825
	OpCodeKey                uint16 = 0x01db
	OpOneTimePassLogin       uint16 = 0x0acf
	OpCharConnect            uint16 = 0x2710
)

// Login response opcodes (login server -> client).
const (
	OpLoginSuccessV1 uint16 = 0x0069
	OpLoginSuccessV3 uint16 = 0x0ac4
	OpLoginFailed    uint16 = 0x083e
	OpLoginAborted   uint16 = 0x0081
)

// Character request opcodes (client -> character server).
const (
	OpConnectClient             uint16 = 0x0065
	OpSelectCharacter           uint16 = 0x0066
	OpCreateCharacterV1         uint16 = 0x0067
	OpCreateCharacterV2         uint16 = 0x0970
	OpCreateCharacterV3         uint16 = 0x0a39
	OpDeleteCharacterV1         uint16 = 0x0068
	OpDeleteCharacterV2         uint16 = 0x01fb
	OpCharKeepAlive             uint16 = 0x0187
	OpRenameCharacter           uint16 = 0x028d
	OpCaptchaRequest            uint16 = 0x07e5
	OpCaptchaCheck              uint16 = 0x07e7
	OpRequestCharacterDeletion  uint16 = 0x0827
	OpAcceptDeletion            uint16 = 0x0829
	OpCancelDeletion2           uint16 = 0x082b
	OpMoveCharacterSlot         uint16 = 0x08d4
	OpCheckPincode              uint16 = 0x08b8
	OpNewPincode                uint16 = 0x08ba
	OpChangePincode             uint16 = 0x08be
	OpRequestPincode            uint16 = 0x08c5
	OpListCharacters            uint16 = 0x09a1
)

// Character response opcodes (character server -> client).
const (
	OpRejected                    uint16 = 0x006c
	OpCharacterSlotCountResp      uint16 = 0x082d
	OpCharacterInfoResp           uint16 = 0x006b
	OpCharactersResp              uint16 = 0x099d
	OpCharacterPagesAvailableResp uint16 = 0x09a0
	OpBannedCharactersResp        uint16 = 0x020d
	OpPincodeInfoResp             uint16 = 0x08b9
)

// Fixed body sizes, in bytes, excluding the opcode, for request packets
// whose size is implied entirely by the opcode (spec.md §4.1).
const (
	BodyKeepAlive             = 24
	BodyUpdateClientHash      = 16
	BodyClearPasswordLoginV1  = 53
	BodyClearPasswordLoginV2  = 82
	BodyClearPasswordLoginV3  = 83
	BodyHashedPasswordLoginV1 = 45
	BodyHashedPasswordLoginV2 = 46
	BodyHashedPasswordLoginV3 = 58

	BodyConnectClient     = 15
	BodySelectCharacter   = 5
	BodyCreateCharacterV1 = 34
	BodyCharKeepAlive     = 4
	BodyListCharacters    = 0
)

// Data model limits (spec.md §3).
const (
	MaxCharactersPerAccount = 12
	DefaultCharSlots        = 10
	CharacterIDRangeStart   = 2_000_000
	SessionTTLSeconds       = 900

	UserIDMaxLength   = 24
	CharNameMaxLength = 24

	DefaultSendBufSize = 4096
	DefaultReadBufSize = 4096

	CharacterFrameSize = 155
)

// Sex encodes the wire-level sex/gender byte used throughout both
// protocols: Female=0, Male=1, Server=2.
type Sex byte

const (
	SexFemale Sex = 0
	SexMale   Sex = 1
	SexServer Sex = 2
)

// Valid reports whether b decodes to a known Sex value.
func (s Sex) Valid() bool {
	return s == SexFemale || s == SexMale || s == SexServer
}
