package charserver

import "sync"

// accountInfo is the ticket-derived identity a character session carries
// once ConnectClient succeeds (spec.md §4.5). Grounded on
// original_source/character/src/session.rs's AccountInfo. The session holds
// it as a pointer that is nil until ConnectClient succeeds.
type accountInfo struct {
	accountID uint32
	userLevel uint32
}

// session is the per-connection scratch state for one character-port
// connection.
type session struct {
	remoteIP string

	mu      sync.Mutex
	state   SessionState
	account *accountInfo
}

func newSession(remoteIP string) *session {
	return &session{remoteIP: remoteIP, state: StateUnauthenticated}
}

func (s *session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *session) SetState(state SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// Authenticate records the account identity for the remainder of this
// connection's lifetime. Called only after the authenticated-session
// store has already consumed the ticket — never before (spec.md §9a).
func (s *session) Authenticate(accountID, userLevel uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = &accountInfo{accountID: accountID, userLevel: userLevel}
	s.state = StateAccountConnected
}

// Account returns the authenticated account info, or nil if this
// connection never completed ConnectClient.
func (s *session) Account() *accountInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}
