package charserver

// SessionState is the character-port per-connection state machine
// (spec.md §4.5): Unauthenticated → AccountConnected → SlotWindowShown →
// Idle → CharacterPicked → Closed. The account identity is held separately
// on *session as a pointer that stays nil until ConnectClient succeeds;
// session.Authenticate sets it together with StateAccountConnected.
type SessionState int

const (
	StateUnauthenticated SessionState = iota
	StateAccountConnected
	StateSlotWindowShown
	StateIdle
	StateCharacterPicked
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateUnauthenticated:
		return "UNAUTHENTICATED"
	case StateAccountConnected:
		return "ACCOUNT_CONNECTED"
	case StateSlotWindowShown:
		return "SLOT_WINDOW_SHOWN"
	case StateIdle:
		return "IDLE"
	case StateCharacterPicked:
		return "CHARACTER_PICKED"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}
