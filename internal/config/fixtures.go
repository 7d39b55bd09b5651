package config

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// webAuthTokenIterations is the PBKDF2 work factor used to re-derive a
// web_auth_token offline. Not on the authentication hot path (spec.md
// §4.3 keeps that exact-match-as-specified); this exists for maintenance
// tooling (cmd/accounttool) that needs to re-salt a token without a live
// account store.
const webAuthTokenIterations = 10000

// DeriveWebAuthToken derives a 16-byte web_auth_token for userID from a
// deployment-wide secret, the way an operator re-salts a token after a
// suspected leak without touching the in-memory account store directly.
func DeriveWebAuthToken(userID string, secret []byte) [16]byte {
	key := pbkdf2.Key(secret, []byte(userID), webAuthTokenIterations, 16, sha256.New)
	var token [16]byte
	copy(token[:], key)
	return token
}
