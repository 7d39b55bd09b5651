package store

import (
	"fmt"
	"sync"

	"github.com/sadroeck/heimdall-go/internal/model"
)

// InventoryStore holds one inventory per character id (spec.md §3).
// Grounded on original_source/databases/src/inventory/in_memory.rs.
type InventoryStore struct {
	mu   sync.RWMutex
	byID map[uint32]*model.Inventory
}

// NewInventoryStore builds an empty inventory store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{byID: make(map[uint32]*model.Inventory)}
}

// Create seeds an inventory for a newly created character, copying the
// given starting items (spec.md §4.3 per-class starting fixtures).
func (s *InventoryStore) Create(characterID uint32, startingItems []model.Item) *model.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv := model.NewInventory(characterID)
	inv.Items = append(inv.Items, startingItems...)
	s.byID[characterID] = inv
	return inv
}

// ByCharacterID returns the inventory for a character, or an empty one if
// none was created yet.
func (s *InventoryStore) ByCharacterID(characterID uint32) *model.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if inv, ok := s.byID[characterID]; ok {
		return inv
	}
	return model.NewInventory(characterID)
}

// Update overwrites the stored inventory, e.g. after an equip/unequip
// changes EquippedSlot on one of its items (spec.md §3).
func (s *InventoryStore) Update(inv *model.Inventory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[inv.CharacterID]; !ok {
		return fmt.Errorf("store: update inventory %d: %w", inv.CharacterID, ErrNotFound)
	}
	s.byID[inv.CharacterID] = inv
	return nil
}

// Delete removes the inventory for a character (companion to character
// deletion).
func (s *InventoryStore) Delete(characterID uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, characterID)
}
