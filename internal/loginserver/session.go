package loginserver

import "sync"

// session is the per-connection scratch state held exclusively by one
// connection's goroutine for its lifetime (spec.md §3 "sessions hold
// shared read-only references to stores and own their transient
// per-connection state"). Grounded on the teacher's login.Client, trimmed
// to the fields this protocol actually needs (no RSA/Blowfish session
// here — the covered protocol is plaintext).
type session struct {
	remoteIP string

	mu         sync.Mutex
	state      ConnectionState
	clientHash [16]byte
}

func newSession(remoteIP string) *session {
	return &session{remoteIP: remoteIP, state: StateBeforeLogin}
}

func (s *session) State() ConnectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *session) SetState(state ConnectionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *session) SetClientHash(hash [16]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientHash = hash
}
