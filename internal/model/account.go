package model

import (
	"time"

	"github.com/sadroeck/heimdall-go/internal/constants"
)

// PasswordKind tags which representation an Account's password is stored
// in. Password is never Kind==PasswordNone after account creation
// (spec.md §3 invariant).
type PasswordKind int

const (
	PasswordNone PasswordKind = iota
	PasswordCleartext
	PasswordMD5Hashed
)

// Password is a variant type: exactly one of Clear/Hash is meaningful,
// selected by Kind.
type Password struct {
	Kind  PasswordKind
	Clear string
	Hash  [16]byte
}

// Cleartext builds a cleartext Password variant.
func Cleartext(s string) Password { return Password{Kind: PasswordCleartext, Clear: s} }

// MD5Hashed builds an MD5-hashed Password variant.
func MD5Hashed(sum [16]byte) Password { return Password{Kind: PasswordMD5Hashed, Hash: sum} }

// AccountStateKind tags the three states an account's standing can be in.
type AccountStateKind int

const (
	AccountNormal AccountStateKind = iota
	AccountBanned
	AccountExpires
)

// AccountState is a tagged union over {Normal, Banned(until), Expires(on)}.
type AccountState struct {
	Kind AccountStateKind
	At   time.Time // meaningful when Kind is AccountBanned or AccountExpires
}

func NormalState() AccountState               { return AccountState{Kind: AccountNormal} }
func BannedUntil(until time.Time) AccountState { return AccountState{Kind: AccountBanned, At: until} }
func ExpiresOn(on time.Time) AccountState      { return AccountState{Kind: AccountExpires, At: on} }

// Account is a single login account (spec.md §3).
type Account struct {
	AccountID uint32
	UserID    string
	Password  Password
	Sex       constants.Sex
	Email     string
	GroupID   *int32
	CharSlots int
	State     AccountState

	LoginCount int32
	LastLogin  time.Time
	LastIP     string
	BirthDate  string

	Pincode       [4]byte
	PincodeChange time.Time

	WebAuthToken        [16]byte
	WebAuthTokenEnabled bool
}
