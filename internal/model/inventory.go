package model

// Item is a single inventory entry (spec.md §3). EquippedSlot is nil when
// the item is not currently equipped.
type Item struct {
	ID           uint32
	Slot         uint16
	Amount       uint16
	Identified   bool
	EquippedSlot *uint8
}

// Inventory is the full set of items owned by one character.
type Inventory struct {
	CharacterID uint32
	Items       []Item
}

// NewInventory builds an empty inventory for the given character.
func NewInventory(characterID uint32) *Inventory {
	return &Inventory{CharacterID: characterID}
}
