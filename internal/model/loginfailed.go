package model

import "time"

// LoginFailedReason is the full LoginFailed error-code table from
// original_source/api/src/login/response.rs; spec.md §7 only names the
// numeric ranges ("0-15, 99-104"), this restores the named reasons SPEC_FULL
// §4 calls for.
type LoginFailedReason int

const (
	ReasonUnregisteredID LoginFailedReason = iota // 0
	ReasonIncorrectPassword
	ReasonIDIsExpired
	ReasonRejectedFromServer
	ReasonAccountPermanentlySuspended
	ReasonGameExeNotUpToDate
	ReasonBannedUntil
	ReasonServerOverpopulated
	ReasonMaxCompanyCapacityReached
	ReasonBannedByDBA
	ReasonEmailNotConfirmed
	ReasonBannedByGM
	ReasonTemporaryBanForDBWork
	ReasonSelfLock
	ReasonGroupNotPermittedV1
	ReasonGroupNotPermittedV2 // 15
)

const (
	ReasonIDErased LoginFailedReason = iota + 99 // 99
	ReasonLoginInfoRelocated
	ReasonLockedForHackingInvestigation
	ReasonLockedForBugInvestigation
	ReasonDeleteInProgressV1
	ReasonDeleteInProgressV2 // 104
)

// ErrorCode returns the wire-level u32 error code for a LoginFailed reason.
func (r LoginFailedReason) ErrorCode() uint32 { return uint32(r) }

// LoginFailed is the login-agent failure carried back to the login
// server's response encoder. BannedUntil carries the ban deadline so the
// response can format it as an ASCII timestamp (spec.md §4.1).
type LoginFailed struct {
	Reason      LoginFailedReason
	BannedUntil time.Time
	Username    string // set for ReasonUnregisteredID
}

func (e *LoginFailed) Error() string {
	switch e.Reason {
	case ReasonUnregisteredID:
		return "unregistered id: " + e.Username
	case ReasonIncorrectPassword:
		return "incorrect password"
	case ReasonIDIsExpired:
		return "id is expired"
	case ReasonBannedUntil:
		return "banned until " + e.BannedUntil.String()
	default:
		return "rejected from server"
	}
}

// LoginAbortedReason is the small reason table used for login opcodes
// that are accepted but not implemented by this core (spec.md §4.4).
type LoginAbortedReason byte

const (
	AbortServerClosed    LoginAbortedReason = 1
	AbortAlreadyLoggedIn LoginAbortedReason = 2
	AbortAlreadyOnline   LoginAbortedReason = 8
)
