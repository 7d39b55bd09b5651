package store

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
)

// CharacterStore is the in-memory character table, keyed by character id
// with a secondary index of character ids per account (spec.md §3).
//
// Grounded on original_source/databases/src/character/in_memory.rs
// InMemoryCharacterDB; char_id is drawn from
// [constants.CharacterIDRangeStart, 2^32) and retried until a vacant slot
// is found (no retry cap in the original — the id space is large enough
// that this loop terminates in practice).
type CharacterStore struct {
	mu          sync.RWMutex
	byID        map[uint32]*model.Character
	byAccountID map[uint32][]uint32
}

// NewCharacterStore builds an empty character store.
func NewCharacterStore() *CharacterStore {
	return &CharacterStore{
		byID:        make(map[uint32]*model.Character),
		byAccountID: make(map[uint32][]uint32),
	}
}

// Create allocates a fresh character id and stores a new character for the
// given account.
func (s *CharacterStore) Create(accountID uint32, req model.NewCharacterRequest) (*model.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextCharacterID()
	character := model.NewCharacter(id, accountID)
	character.Name = req.Name
	character.Slot = uint16(req.Slot)
	character.Sex = req.Sex
	character.Class = req.Class
	character.Appearance.Hair = req.Hair
	character.Appearance.HairColor = req.HairColor

	s.byID[id] = character
	s.byAccountID[accountID] = append(s.byAccountID[accountID], id)
	return character, nil
}

// nextCharacterID must be called with mu held.
func (s *CharacterStore) nextCharacterID() uint32 {
	for {
		id := constants.CharacterIDRangeStart + rand.Uint32N(^uint32(0)-constants.CharacterIDRangeStart+1)
		if _, taken := s.byID[id]; !taken {
			return id
		}
	}
}

// ByID returns the character for a character id.
func (s *CharacterStore) ByID(id uint32) (*model.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("store: character %d: %w", id, ErrNotFound)
	}
	return c, nil
}

// ByAccountID returns all characters belonging to an account, ordered by
// slot.
func (s *CharacterStore) ByAccountID(accountID uint32) []*model.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byAccountID[accountID]
	out := make([]*model.Character, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.byID[id]; ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// Update overwrites the stored character.
func (s *CharacterStore) Update(character *model.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[character.ID]; !ok {
		return fmt.Errorf("store: update character %d: %w", character.ID, ErrNotFound)
	}
	s.byID[character.ID] = character
	return nil
}

// Delete removes a character from both indices.
func (s *CharacterStore) Delete(id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("store: delete character %d: %w", id, ErrNotFound)
	}
	delete(s.byID, id)
	ids := s.byAccountID[c.AccountID]
	for i, cid := range ids {
		if cid == id {
			s.byAccountID[c.AccountID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
