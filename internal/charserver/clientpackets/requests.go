// Package clientpackets decodes character-port request frames. Most of
// this protocol's opcodes were never finished in the source this spec was
// distilled from (original_source/api/src/character/request.rs only
// parses KeepAlive); spec.md §4.5 explicitly allows stubbing the rest as
// long as they still parse as valid frames. Opcodes without a spec-given
// fixed body width are decoded as size-prefixed frames (the wire format's
// other supported framing convention, spec.md §4.1) so an unknown body
// layout never risks misreading the stream.
package clientpackets

import (
	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/wire"
)

// Kind tags which character request a Request carries.
type Kind int

const (
	KindConnectClient Kind = iota
	KindKeepAlive
	KindListCharacters
	KindCreateCharacter
	KindSelectCharacter
	KindUnimplemented
)

// Request is the normalized form of a decoded character-port packet.
type Request struct {
	Kind Kind

	// ConnectClient
	AccountID          uint32
	AuthenticationCode uint32
	UserLevel          uint32
	Sex                constants.Sex

	// CreateCharacter
	NewCharacter model.NewCharacterRequest

	// SelectCharacter
	Slot uint8

	// Unimplemented
	Opcode uint16
}

func bodyLen(opcode uint16) (int, bool) {
	switch opcode {
	case constants.OpConnectClient:
		return constants.BodyConnectClient, true
	case constants.OpCharKeepAlive:
		return constants.BodyCharKeepAlive, true
	case constants.OpListCharacters:
		return constants.BodyListCharacters, true
	case constants.OpCreateCharacterV1:
		return constants.BodyCreateCharacterV1, true
	case constants.OpSelectCharacter:
		return constants.BodySelectCharacter, true
	case constants.OpCreateCharacterV2, constants.OpCreateCharacterV3,
		constants.OpDeleteCharacterV1, constants.OpDeleteCharacterV2,
		constants.OpRenameCharacter, constants.OpCaptchaRequest, constants.OpCaptchaCheck,
		constants.OpRequestCharacterDeletion, constants.OpAcceptDeletion, constants.OpCancelDeletion2,
		constants.OpMoveCharacterSlot, constants.OpCheckPincode, constants.OpNewPincode,
		constants.OpChangePincode, constants.OpRequestPincode:
		return wire.SizePrefixed, true
	default:
		return 0, false
	}
}

// Decode reads exactly one request from buf, per the frame's
// fixed/size-prefixed convention. See wire.DecodeFrame for the
// need-more-data / fatal-error contract.
func Decode(buf []byte) (consumed int, req Request, err error) {
	opcode, body, consumed, err := wire.DecodeFrame(buf, bodyLen)
	if err != nil {
		return 0, Request{}, err
	}

	switch opcode {
	case constants.OpConnectClient:
		return decodeConnectClient(body, consumed)
	case constants.OpCharKeepAlive:
		return consumed, Request{Kind: KindKeepAlive}, nil
	case constants.OpListCharacters:
		return consumed, Request{Kind: KindListCharacters}, nil
	case constants.OpCreateCharacterV1:
		return decodeCreateCharacterV1(body, consumed)
	case constants.OpSelectCharacter:
		return consumed, Request{Kind: KindSelectCharacter, Slot: body[0]}, nil
	default:
		return consumed, Request{Kind: KindUnimplemented, Opcode: opcode}, nil
	}
}

// decodeConnectClient parses the 15-byte ConnectClient body: account_id(4),
// authentication_code(4), user_level(4), 1 unused byte, sex(1).
func decodeConnectClient(body []byte, consumed int) (int, Request, error) {
	sex := constants.Sex(body[14])
	if !sex.Valid() {
		return 0, Request{}, wire.DecodeError{Reason: "invalid sex byte in ConnectClient"}
	}
	return consumed, Request{
		Kind:               KindConnectClient,
		AccountID:          wire.GetU32(body[0:4]),
		AuthenticationCode: wire.GetU32(body[4:8]),
		UserLevel:          wire.GetU32(body[8:12]),
		Sex:                sex,
	}, nil
}

// decodeCreateCharacterV1 parses the 34-byte CreateCharacter(V1) body:
// 24-byte name, slot(1), hair_color(2), hair(2), class(2), 2 reserved
// bytes, sex(1). spec.md §4.1 names the same fields but its listed widths
// only sum to 32, two short of its own "34 bytes total"; the 2-byte gap is
// placed here just before sex, the position a trailing pad most commonly
// takes in this protocol family.
func decodeCreateCharacterV1(body []byte, consumed int) (int, Request, error) {
	sex := constants.Sex(body[33])
	if !sex.Valid() {
		return 0, Request{}, wire.DecodeError{Reason: "invalid sex byte in CreateCharacter"}
	}
	class := model.Class(wire.GetU16(body[29:31]))
	return consumed, Request{
		Kind: KindCreateCharacter,
		NewCharacter: model.NewCharacterRequest{
			Name:      wire.GetString(body[0:24]),
			Slot:      body[24],
			HairColor: wire.GetU16(body[25:27]),
			Hair:      wire.GetU16(body[27:29]),
			Class:     class,
			Sex:       sex,
		},
	}, nil
}
