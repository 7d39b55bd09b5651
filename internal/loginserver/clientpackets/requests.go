// Package clientpackets decodes login-port request frames into a single
// normalized Request variant, grounded on
// original_source/src/api/login/request.rs LoginCommand::parse.
package clientpackets

import (
	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/loginagent"
	"github.com/sadroeck/heimdall-go/internal/wire"
)

// Kind tags which login request a Request carries.
type Kind int

const (
	KindKeepAlive Kind = iota
	KindUpdateClientHash
	KindClientLogin
	KindCodeKey
	KindOneTimeToken
	KindCharConnect
)

// Request is the normalized form of any decoded login-port packet. Several
// client versions (V1/V2/V3, clear/hashed) decode to the same KindClientLogin
// with different body widths but an identical field layout at fixed offsets
// (spec.md §9 "Duplicated opcode across client versions").
type Request struct {
	Kind        Kind
	ClientHash  [16]byte
	Credentials loginagent.Credentials
}

// bodyLen is the login protocol's opcode -> fixed-body-length table. Every
// login request opcode has an implicit (non size-prefixed) body.
func bodyLen(opcode uint16) (int, bool) {
	switch opcode {
	case constants.OpKeepAlive:
		return constants.BodyKeepAlive, true
	case constants.OpUpdateClientHash:
		return constants.BodyUpdateClientHash, true
	case constants.OpClearPasswordLoginV1:
		return constants.BodyClearPasswordLoginV1, true
	case constants.OpClearPasswordLoginV2:
		return constants.BodyClearPasswordLoginV2, true
	case constants.OpClearPasswordLoginV3:
		return constants.BodyClearPasswordLoginV3, true
	case constants.OpHashedPasswordLoginV1:
		return constants.BodyHashedPasswordLoginV1, true
	case constants.OpHashedPasswordLoginV2:
		return constants.BodyHashedPasswordLoginV2, true
	case constants.OpHashedPasswordLoginV3:
		return constants.BodyHashedPasswordLoginV3, true
	case constants.OpHashedPasswordLoginV4:
		return 2, true // OTP body, not further parsed (out of scope)
	case constants.OpCodeKey:
		return 2, true
	case constants.OpOneTimePassLogin:
		return 2, true
	case constants.OpCharConnect:
		return 2, true
	default:
		return 0, false
	}
}

// Decode reads exactly one request from buf. It returns wire.ErrNeedMoreData
// if buf does not yet hold a complete frame, and a wire.DecodeError for an
// unknown opcode or invalid enumerated field.
func Decode(buf []byte) (consumed int, req Request, err error) {
	opcode, body, consumed, err := wire.DecodeFrame(buf, bodyLen)
	if err != nil {
		return 0, Request{}, err
	}

	switch opcode {
	case constants.OpKeepAlive:
		return consumed, Request{Kind: KindKeepAlive}, nil
	case constants.OpUpdateClientHash:
		var hash [16]byte
		copy(hash[:], body)
		return consumed, Request{Kind: KindUpdateClientHash, ClientHash: hash}, nil
	case constants.OpClearPasswordLoginV1, constants.OpClearPasswordLoginV2, constants.OpClearPasswordLoginV3:
		creds := parseClearTextCredentials(body)
		return consumed, Request{Kind: KindClientLogin, Credentials: creds}, nil
	case constants.OpHashedPasswordLoginV1, constants.OpHashedPasswordLoginV2, constants.OpHashedPasswordLoginV3:
		creds := parseHashedCredentials(body)
		return consumed, Request{Kind: KindClientLogin, Credentials: creds}, nil
	case constants.OpHashedPasswordLoginV4:
		return consumed, Request{Kind: KindOneTimeToken}, nil
	case constants.OpCodeKey:
		return consumed, Request{Kind: KindCodeKey}, nil
	case constants.OpOneTimePassLogin:
		return consumed, Request{Kind: KindOneTimeToken}, nil
	case constants.OpCharConnect:
		return consumed, Request{Kind: KindCharConnect}, nil
	default:
		return 0, Request{}, wire.DecodeError{Reason: "unreachable: bodyLen/opcode table mismatch"}
	}
}

// parseClearTextCredentials extracts the fixed-offset username/password
// fields shared by all ClearPasswordLogin(V1/V2/V3) variants: 4 unused
// bytes, 24-byte username, 24-byte password, then client_type as the
// packet's last byte.
func parseClearTextCredentials(body []byte) loginagent.Credentials {
	username := wire.GetString(body[4:28])
	password := wire.GetString(body[28:52])
	return loginagent.Credentials{
		Kind:       loginagent.CredentialsClearText,
		ClientType: body[len(body)-1],
		Username:   username,
		ClearText:  password,
	}
}

// parseHashedCredentials mirrors parseClearTextCredentials for the
// HashedPasswordLogin(V1/V2/V3) variants, whose password field is a raw
// 16-byte MD5 digest rather than a NUL-terminated string.
func parseHashedCredentials(body []byte) loginagent.Credentials {
	username := wire.GetString(body[4:28])
	var hashed [16]byte
	copy(hashed[:], body[28:44])
	return loginagent.Credentials{
		Kind:       loginagent.CredentialsHashed,
		ClientType: body[len(body)-1],
		Username:   username,
		Hashed:     hashed,
	}
}
