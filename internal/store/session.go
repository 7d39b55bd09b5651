package store

import (
	"sync"
	"time"

	"github.com/sadroeck/heimdall-go/internal/model"
)

// SessionStore holds one-shot cross-server authentication tickets minted by
// the login agent and consumed exactly once by the character server
// (spec.md §3). Keyed by account_id: a second ConnectClient for the same
// account_id after the ticket is consumed (or expired) fails.
//
// Grounded on the teacher's sync.Map-backed SessionManager
// (internal/login/session_manager.go) generalized to a remove-on-check
// single ticket instead of a persistent per-account license key.
type SessionStore struct {
	tickets sync.Map // map[uint32]*model.AuthenticatedSession
}

// NewSessionStore builds an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Put stores a freshly minted ticket for an account, replacing any prior
// one (a second login before handoff invalidates the first ticket).
func (s *SessionStore) Put(session *model.AuthenticatedSession) {
	s.tickets.Store(session.AccountID, session)
}

// TakeIfValid atomically removes and returns the ticket for accountID if
// present and not expired. A missing or expired ticket is never returned
// twice: the remove happens whether or not the expiry check passes.
func (s *SessionStore) TakeIfValid(accountID uint32, now time.Time) (*model.AuthenticatedSession, bool) {
	val, loaded := s.tickets.LoadAndDelete(accountID)
	if !loaded {
		return nil, false
	}
	session := val.(*model.AuthenticatedSession)
	if session.Expired(now) {
		return nil, false
	}
	return session, true
}

// Count reports the number of tickets currently pending handoff.
func (s *SessionStore) Count() int {
	count := 0
	s.tickets.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
