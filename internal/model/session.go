package model

import (
	"time"

	"github.com/sadroeck/heimdall-go/internal/constants"
)

// AuthenticatedSession is the cross-server ticket minted by the login
// agent and consumed once by the character server (spec.md §3). TTL is
// constants.SessionTTLSeconds from creation unless the login agent was
// built with a different lifetime.
type AuthenticatedSession struct {
	AccountID           uint32
	AuthenticationCode  uint32
	UserLevel           uint32
	Sex                 constants.Sex
	WebAuthToken        [16]byte
	ExpiresAt           time.Time
}

// Expired reports whether the session ticket's TTL has passed at the
// given instant.
func (s AuthenticatedSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
