package store

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
)

var (
	// ErrNotFound is returned when a lookup misses.
	ErrNotFound = errors.New("store: not found")
	// ErrAlreadyExists is returned by Create when every one of its random
	// id draws collides with an existing account.
	ErrAlreadyExists = errors.New("store: already exists")
)

// maxAccountCreateRetries bounds the random-id collision retry loop
// (original_source/databases/src/account/db/in_memory.rs create_account).
const maxAccountCreateRetries = 10

// randUint32 is swappable in tests for deterministic id allocation.
var randUint32 = func() uint32 { return rand.Uint32() }

// AccountStore is the in-memory account table, keyed by account_id with a
// secondary index by user_id (spec.md §3; grounded on
// original_source/databases/src/account/db/in_memory.rs InMemoryAccountDB).
type AccountStore struct {
	mu       sync.RWMutex
	byID     map[uint32]*model.Account
	byUserID map[string]uint32
}

// NewAccountStore builds an empty account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		byID:     make(map[uint32]*model.Account),
		byUserID: make(map[string]uint32),
	}
}

// Seed inserts a fixed account at boot, overwriting any existing secondary
// index entry for the same user_id. Used for the "sadroeck" dev fixture
// account (spec.md §6).
func (s *AccountStore) Seed(account *model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[account.AccountID] = account
	s.byUserID[account.UserID] = account.AccountID
}

// Create allocates a fresh random account_id (retried on collision, capped
// at maxAccountCreateRetries) and stores a new account for it.
func (s *AccountStore) Create(userID string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for retries := 0; retries < maxAccountCreateRetries; retries++ {
		id := randUint32()
		if _, taken := s.byID[id]; taken {
			continue
		}
		account := &model.Account{
			AccountID: id,
			UserID:    userID,
			CharSlots: constants.DefaultCharSlots,
		}
		s.byID[id] = account
		s.byUserID[userID] = id
		return account, nil
	}
	return nil, fmt.Errorf("store: create account for %q: %w", userID, ErrAlreadyExists)
}

// ByID returns the account for an account_id.
func (s *AccountStore) ByID(accountID uint32) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[accountID]
	if !ok {
		return nil, fmt.Errorf("store: account %d: %w", accountID, ErrNotFound)
	}
	return a, nil
}

// ByUserID returns the account for a user_id via the secondary index.
func (s *AccountStore) ByUserID(userID string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUserID[userID]
	if !ok {
		return nil, fmt.Errorf("store: user %q: %w", userID, ErrNotFound)
	}
	return s.byID[id], nil
}

// Save overwrites the stored account (spec.md's save_account).
func (s *AccountStore) Save(account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[account.AccountID]; !ok {
		return fmt.Errorf("store: save account %d: %w", account.AccountID, ErrNotFound)
	}
	s.byID[account.AccountID] = account
	s.byUserID[account.UserID] = account.AccountID
	return nil
}

// EnableWebToken turns on web-auth-token login for an account (spec.md
// §4.2 enable_webtoken), grounded on
// original_source/databases/src/account/db/in_memory.rs's
// enable_webtoken/disable_webtoken/remove_webtokens trio.
func (s *AccountStore) EnableWebToken(accountID uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[accountID]
	if !ok {
		return fmt.Errorf("store: enable webtoken for %d: %w", accountID, ErrNotFound)
	}
	a.WebAuthTokenEnabled = true
	return nil
}

// DisableWebToken turns off web-auth-token login for an account (spec.md
// §4.2 disable_webtoken).
func (s *AccountStore) DisableWebToken(accountID uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[accountID]
	if !ok {
		return fmt.Errorf("store: disable webtoken for %d: %w", accountID, ErrNotFound)
	}
	a.WebAuthTokenEnabled = false
	return nil
}

// PurgeWebTokens disables and clears the web-auth-token on every account
// in the store (spec.md §4.2 purge_webtokens), mirroring the original's
// store-wide remove_webtokens (no single account_id argument).
func (s *AccountStore) PurgeWebTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.byID {
		a.WebAuthTokenEnabled = false
		a.WebAuthToken = [16]byte{}
	}
}

// Delete removes an account from both indices.
func (s *AccountStore) Delete(accountID uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.byID[accountID]; ok {
		delete(s.byUserID, a.UserID)
		delete(s.byID, accountID)
	}
}
