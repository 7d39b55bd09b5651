// Package serverpackets encodes login server response frames, grounded on
// original_source/api/src/login/response.rs Response::serialize.
package serverpackets

import (
	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/wire"
)

const banTimeFormat = "2006-01-02 15:04"

// charServerRecordSize is the per-server record width within
// LoginSuccessV3 (spec.md §4.1).
const charServerRecordSize = 160

// loginSuccessV3HeaderSize is the fixed portion of LoginSuccessV3 before
// the per-server records: opcode(2) + size(2) + authentication_code(4) +
// account_id(4) + user_level(4) + 30 unused + sex(1) + web_auth_token(16) +
// 1 trailing byte = 64.
const loginSuccessV3HeaderSize = 64

// LoginSuccessV3Size returns the exact frame size for n character servers.
func LoginSuccessV3Size(n int) int {
	return loginSuccessV3HeaderSize + n*charServerRecordSize
}

// LoginSuccessV3 encodes the post-authentication response: the ticket the
// client must relay to the character server, plus the server list. buf
// must be at least LoginSuccessV3Size(len(servers)) bytes; servers is
// truncated to model.MaxCharacterServers.
func LoginSuccessV3(buf []byte, session *model.AuthenticatedSession, servers []model.CharacterServerInfo) (int, error) {
	if len(servers) > model.MaxCharacterServers {
		servers = servers[:model.MaxCharacterServers]
	}
	need := LoginSuccessV3Size(len(servers))
	if len(buf) < need {
		return 0, wire.OverflowError{Needed: need}
	}

	wire.PutU16(buf[0:2], constants.OpLoginSuccessV3)
	wire.PutU16(buf[2:4], uint16(need))
	wire.PutU32(buf[4:8], session.AuthenticationCode)
	wire.PutU32(buf[8:12], session.AccountID)
	wire.PutU32(buf[12:16], session.UserLevel)
	clearRange(buf[16:46]) // unused: last_login_ip + last_login_time
	buf[46] = byte(session.Sex)
	copy(buf[47:63], session.WebAuthToken[:])
	buf[63] = 0

	for i, server := range servers {
		off := 64 + i*charServerRecordSize
		rec := buf[off : off+charServerRecordSize]
		wire.PutIPv4BE(rec[0:4], server.IP)
		wire.PutU16(rec[4:6], server.Port)
		wire.PutString(rec[6:26], server.Name, 20)
		wire.PutU16(rec[26:28], server.Activity)
		// server_type is big-endian like the IP, unlike every other field in
		// this packet — preserved from original_source's serialize() (spec.md §4.1).
		putU16BE(rec[28:30], server.Type)
		clearRange(rec[30:160])
	}

	return need, nil
}

func clearRange(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func putU16BE(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// LoginFailedSize is the fixed LoginFailed frame size: opcode(2) +
// error_code(4) + 20-byte ban-time-or-zero field = 26.
const LoginFailedSize = 26

// LoginFailed encodes a login failure response. For model.ReasonBannedUntil
// the 20-byte trailer carries an ASCII "YYYY-MM-DD HH:MM" timestamp,
// NUL-padded; otherwise it is all zero.
func LoginFailed(buf []byte, failure *model.LoginFailed) (int, error) {
	if len(buf) < LoginFailedSize {
		return 0, wire.OverflowError{Needed: LoginFailedSize}
	}
	wire.PutU16(buf[0:2], constants.OpLoginFailed)
	wire.PutU32(buf[2:6], failure.Reason.ErrorCode())
	clearRange(buf[6:26])
	if failure.Reason == model.ReasonBannedUntil {
		wire.PutString(buf[6:26], failure.BannedUntil.UTC().Format(banTimeFormat), 20)
	}
	return LoginFailedSize, nil
}

// LoginAbortedSize is the fixed LoginAborted frame size: opcode(2) + reason(1).
const LoginAbortedSize = 3

// LoginAborted encodes an abort response for opcodes that are accepted but
// not implemented by this core (spec.md §4.4).
func LoginAborted(buf []byte, reason model.LoginAbortedReason) (int, error) {
	if len(buf) < LoginAbortedSize {
		return 0, wire.OverflowError{Needed: LoginAbortedSize}
	}
	wire.PutU16(buf[0:2], constants.OpLoginAborted)
	buf[2] = byte(reason)
	return LoginAbortedSize, nil
}
