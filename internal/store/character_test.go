package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
)

func TestCharacterStoreCreateAndByAccountID(t *testing.T) {
	s := NewCharacterStore()

	c1, err := s.Create(10, model.NewCharacterRequest{Name: "Alice", Slot: 0, Class: model.ClassNovice})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c1.ID, uint32(constants.CharacterIDRangeStart))

	c2, err := s.Create(10, model.NewCharacterRequest{Name: "Bob", Slot: 1, Class: model.ClassNovice})
	require.NoError(t, err)

	characters := s.ByAccountID(10)
	require.Len(t, characters, 2)
	assert.Equal(t, "Alice", characters[0].Name)
	assert.Equal(t, "Bob", characters[1].Name)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestCharacterStoreByAccountIDEmptyForUnknownAccount(t *testing.T) {
	s := NewCharacterStore()
	assert.Empty(t, s.ByAccountID(999))
}

func TestCharacterStoreUpdate(t *testing.T) {
	s := NewCharacterStore()
	c, err := s.Create(1, model.NewCharacterRequest{Name: "Eve", Class: model.ClassNovice})
	require.NoError(t, err)

	c.Location.MapName = "prt_vilg00.gat"
	require.NoError(t, s.Update(c))

	got, err := s.ByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "prt_vilg00.gat", got.Location.MapName)
}

func TestCharacterStoreUpdateUnknownFails(t *testing.T) {
	s := NewCharacterStore()
	err := s.Update(&model.Character{ID: 999})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCharacterStoreDeleteRemovesFromBothIndices(t *testing.T) {
	s := NewCharacterStore()
	c, err := s.Create(5, model.NewCharacterRequest{Name: "Gone", Class: model.ClassNovice})
	require.NoError(t, err)

	require.NoError(t, s.Delete(c.ID))

	_, err = s.ByID(c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, s.ByAccountID(5))
}
