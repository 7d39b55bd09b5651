package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
)

func TestAccountStoreCreateAndLookup(t *testing.T) {
	s := NewAccountStore()

	account, err := s.Create("sadroeck")
	require.NoError(t, err)
	assert.NotZero(t, account.AccountID)
	assert.Equal(t, "sadroeck", account.UserID)

	byID, err := s.ByID(account.AccountID)
	require.NoError(t, err)
	assert.Same(t, account, byID)

	byUser, err := s.ByUserID("sadroeck")
	require.NoError(t, err)
	assert.Same(t, account, byUser)
	assert.Equal(t, constants.DefaultCharSlots, account.CharSlots)
}

func TestAccountStoreSeedInsertsFixedAccount(t *testing.T) {
	s := NewAccountStore()
	s.Seed(&model.Account{AccountID: 2_000_042, UserID: "sadroeck", Password: model.Cleartext("olasenor")})

	byID, err := s.ByID(2_000_042)
	require.NoError(t, err)
	assert.Equal(t, "sadroeck", byID.UserID)

	byUser, err := s.ByUserID("sadroeck")
	require.NoError(t, err)
	assert.Equal(t, uint32(2_000_042), byUser.AccountID)
}

func TestAccountStoreWebTokenLifecycle(t *testing.T) {
	s := NewAccountStore()
	account, err := s.Create("tokened")
	require.NoError(t, err)

	require.NoError(t, s.EnableWebToken(account.AccountID))
	assert.True(t, account.WebAuthTokenEnabled)

	require.NoError(t, s.DisableWebToken(account.AccountID))
	assert.False(t, account.WebAuthTokenEnabled)

	assert.ErrorIs(t, s.EnableWebToken(999), ErrNotFound)
	assert.ErrorIs(t, s.DisableWebToken(999), ErrNotFound)
}

func TestAccountStorePurgeWebTokensClearsEveryAccount(t *testing.T) {
	s := NewAccountStore()
	a, err := s.Create("one")
	require.NoError(t, err)
	b, err := s.Create("two")
	require.NoError(t, err)
	require.NoError(t, s.EnableWebToken(a.AccountID))
	require.NoError(t, s.EnableWebToken(b.AccountID))
	a.WebAuthToken = [16]byte{1, 2, 3}

	s.PurgeWebTokens()

	assert.False(t, a.WebAuthTokenEnabled)
	assert.False(t, b.WebAuthTokenEnabled)
	assert.Equal(t, [16]byte{}, a.WebAuthToken)
}

func TestAccountStoreByIDNotFound(t *testing.T) {
	s := NewAccountStore()
	_, err := s.ByID(123)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountStoreCreateRetriesOnCollision(t *testing.T) {
	s := NewAccountStore()

	calls := 0
	ids := []uint32{1, 1, 2}
	restore := randUint32
	randUint32 = func() uint32 {
		id := ids[calls]
		calls++
		return id
	}
	defer func() { randUint32 = restore }()

	first, err := s.Create("a")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), first.AccountID)

	second, err := s.Create("b")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), second.AccountID)
	assert.Equal(t, 3, calls)
}

func TestAccountStoreCreateExhaustsRetries(t *testing.T) {
	s := NewAccountStore()

	restore := randUint32
	randUint32 = func() uint32 { return 42 }
	defer func() { randUint32 = restore }()

	_, err := s.Create("first")
	require.NoError(t, err)

	_, err = s.Create("second")
	assert.True(t, errors.Is(err, ErrAlreadyExists))
}

func TestAccountStoreSaveUnknownFails(t *testing.T) {
	s := NewAccountStore()
	err := s.Save(&model.Account{AccountID: 999, UserID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountStoreDelete(t *testing.T) {
	s := NewAccountStore()
	account, err := s.Create("todelete")
	require.NoError(t, err)

	s.Delete(account.AccountID)

	_, err = s.ByID(account.AccountID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.ByUserID("todelete")
	assert.ErrorIs(t, err, ErrNotFound)
}
