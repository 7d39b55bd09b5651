package charserver

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/sadroeck/heimdall-go/internal/charserver/clientpackets"
	"github.com/sadroeck/heimdall-go/internal/charserver/serverpackets"
	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/store"
)

// Handler processes decoded character-port requests against the shared
// stores. One Handler is shared by every connection; per-connection state
// lives in *session. Grounded on original_source/character/src/session.rs
// CharacterSession, generalized from its async trait-object stores to this
// package's in-memory store types.
type Handler struct {
	sessions   *store.SessionStore
	characters *store.CharacterStore
	inventory  *store.InventoryStore
	fixtures   StartingCharacterFixtures
}

// NewHandler builds a character-port handler.
func NewHandler(sessions *store.SessionStore, characters *store.CharacterStore, inventory *store.InventoryStore, fixtures StartingCharacterFixtures) *Handler {
	return &Handler{sessions: sessions, characters: characters, inventory: inventory, fixtures: fixtures}
}

// Handle dispatches one decoded request, writing response bytes into buf.
// Multiple responses may need to be emitted for a single request (e.g.
// ConnectClient emits five packets in sequence); Handle writes all of them
// into buf back-to-back and returns the total length, since each has a
// fixed, precomputable size.
func (h *Handler) Handle(s *session, req clientpackets.Request, buf []byte) (int, bool, error) {
	switch req.Kind {
	case clientpackets.KindConnectClient:
		return h.handleConnectClient(s, req, buf)
	case clientpackets.KindKeepAlive:
		return 0, true, nil
	case clientpackets.KindListCharacters:
		return h.handleListCharacters(s, buf)
	case clientpackets.KindCreateCharacter:
		return h.handleCreateCharacter(s, req, buf)
	case clientpackets.KindSelectCharacter:
		return h.handleSelectCharacter(s, req, buf)
	default:
		slog.Debug("unimplemented character request, rejecting", "opcode", req.Opcode, "remote", s.remoteIP)
		n, err := serverpackets.Rejected(buf, 0)
		return n, true, err
	}
}

// handleConnectClient validates the authentication ticket and, on match,
// emits AccountConnected, CharacterSlotCount, CharacterInfo,
// BannedCharacters and PincodeInfo in that exact order (spec.md §4.5).
func (h *Handler) handleConnectClient(s *session, req clientpackets.Request, buf []byte) (int, bool, error) {
	ticket, ok := h.sessions.TakeIfValid(req.AccountID, time.Now())
	if !ok || ticket.AccountID != req.AccountID ||
		ticket.AuthenticationCode != req.AuthenticationCode || ticket.UserLevel != req.UserLevel {
		n, err := serverpackets.Rejected(buf, 0)
		return n, false, err
	}

	s.Authenticate(ticket.AccountID, ticket.UserLevel)

	n := 0
	written, err := serverpackets.AccountConnected(buf[n:], ticket.AccountID)
	if err != nil {
		return 0, false, err
	}
	n += written

	written, err = serverpackets.CharacterSlotCount(buf[n:])
	if err != nil {
		return 0, false, err
	}
	n += written

	characters := h.characters.ByAccountID(ticket.AccountID)
	written, err = serverpackets.CharacterInfo(buf[n:], characters)
	if err != nil {
		return 0, false, err
	}
	n += written

	written, err = serverpackets.BannedCharacters(buf[n:])
	if err != nil {
		return 0, false, err
	}
	n += written

	written, err = serverpackets.PincodeInfo(buf[n:], model.PincodeInfo{
		Status:    model.PincodeCorrect,
		AccountID: ticket.AccountID,
		Seed:      rand.Uint32(),
	})
	if err != nil {
		return 0, false, err
	}
	n += written

	s.SetState(StateSlotWindowShown)
	return n, true, nil
}

func (h *Handler) handleListCharacters(s *session, buf []byte) (int, bool, error) {
	account := s.Account()
	if account == nil {
		n, err := serverpackets.Rejected(buf, 0)
		return n, false, err
	}
	characters := h.characters.ByAccountID(account.accountID)
	n, err := serverpackets.Characters(buf, characters)
	if err != nil {
		return 0, true, err
	}
	s.SetState(StateIdle)
	return n, true, nil
}

func (h *Handler) handleCreateCharacter(s *session, req clientpackets.Request, buf []byte) (int, bool, error) {
	account := s.Account()
	if account == nil {
		n, err := serverpackets.Rejected(buf, 0)
		return n, false, err
	}

	if req.NewCharacter.Slot >= constants.MaxCharactersPerAccount {
		slog.Warn("invalid slot in CreateCharacter", "slot", req.NewCharacter.Slot, "remote", s.remoteIP)
		n, err := serverpackets.Rejected(buf, 0)
		return n, true, err
	}
	if len(h.characters.ByAccountID(account.accountID)) >= constants.MaxCharactersPerAccount {
		slog.Warn("too many characters", "account_id", account.accountID)
		n, err := serverpackets.Rejected(buf, 0)
		return n, true, err
	}
	fixture, ok := h.fixtures[req.NewCharacter.Class]
	if !ok {
		slog.Warn("invalid starting class", "class", req.NewCharacter.Class, "remote", s.remoteIP)
		n, err := serverpackets.Rejected(buf, 0)
		return n, true, err
	}

	character, err := h.characters.Create(account.accountID, req.NewCharacter)
	if err != nil {
		return 0, true, err
	}
	character.Location = fixture.Location
	if err := h.characters.Update(character); err != nil {
		return 0, true, err
	}
	h.inventory.Create(character.ID, fixture.Items)

	n, err := serverpackets.NewCharacterInfo(buf, character)
	return n, true, err
}

func (h *Handler) handleSelectCharacter(s *session, req clientpackets.Request, buf []byte) (int, bool, error) {
	account := s.Account()
	if account == nil {
		n, err := serverpackets.Rejected(buf, 0)
		return n, false, err
	}

	var found *model.Character
	for _, c := range h.characters.ByAccountID(account.accountID) {
		if c.Slot == uint16(req.Slot) {
			found = c
			break
		}
	}
	if found == nil {
		n, err := serverpackets.Rejected(buf, 0)
		return n, true, err
	}

	// Handoff to the map server is an out-of-scope collaborator (spec.md
	// §6 MapServer); this core only reaches the terminal state.
	s.SetState(StateCharacterPicked)
	return 0, false, nil
}
