package loginagent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/store"
)

func newTestAgent(t *testing.T) (*Agent, *store.AccountStore) {
	t.Helper()
	accounts := store.NewAccountStore()
	sessions := store.NewSessionStore()
	return New(accounts, sessions), accounts
}

func TestAuthenticateClearTextSuccess(t *testing.T) {
	agent, accounts := newTestAgent(t)
	account, err := accounts.Create("sadroeck")
	require.NoError(t, err)
	account.Password = model.Cleartext("hunter2")
	account.State = model.NormalState()
	require.NoError(t, accounts.Save(account))

	got, failed := agent.Authenticate(Credentials{Kind: CredentialsClearText, Username: "sadroeck", ClearText: "hunter2"})
	require.Nil(t, failed)
	assert.Equal(t, account.AccountID, got.AccountID)
	assert.Equal(t, int32(1), got.LoginCount)
}

func TestAuthenticateUnregisteredClearTextUser(t *testing.T) {
	agent, _ := newTestAgent(t)
	_, failed := agent.Authenticate(Credentials{Kind: CredentialsClearText, Username: "nobody", ClearText: "x"})
	require.NotNil(t, failed)
	assert.Equal(t, model.ReasonUnregisteredID, failed.Reason)
}

func TestAuthenticateUnregisteredHashedUserIsRejectedNotUnregistered(t *testing.T) {
	agent, _ := newTestAgent(t)
	_, failed := agent.Authenticate(Credentials{Kind: CredentialsHashed, Username: "nobody"})
	require.NotNil(t, failed)
	assert.Equal(t, model.ReasonRejectedFromServer, failed.Reason)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	agent, accounts := newTestAgent(t)
	account, err := accounts.Create("bob")
	require.NoError(t, err)
	account.Password = model.Cleartext("correct")
	account.State = model.NormalState()
	require.NoError(t, accounts.Save(account))

	_, failed := agent.Authenticate(Credentials{Kind: CredentialsClearText, Username: "bob", ClearText: "wrong"})
	require.NotNil(t, failed)
	assert.Equal(t, model.ReasonIncorrectPassword, failed.Reason)
}

func TestAuthenticateBannedAccountStillBanned(t *testing.T) {
	agent, accounts := newTestAgent(t)
	account, err := accounts.Create("banned")
	require.NoError(t, err)
	account.Password = model.Cleartext("pw")
	account.State = model.BannedUntil(time.Now().Add(time.Hour))
	require.NoError(t, accounts.Save(account))

	_, failed := agent.Authenticate(Credentials{Kind: CredentialsClearText, Username: "banned", ClearText: "pw"})
	require.NotNil(t, failed)
	assert.Equal(t, model.ReasonBannedUntil, failed.Reason)
}

func TestAuthenticateBanExpiredResetsToNormal(t *testing.T) {
	agent, accounts := newTestAgent(t)
	account, err := accounts.Create("expired-ban")
	require.NoError(t, err)
	account.Password = model.Cleartext("pw")
	account.State = model.BannedUntil(time.Now().Add(-time.Hour))
	require.NoError(t, accounts.Save(account))

	_, failed := agent.Authenticate(Credentials{Kind: CredentialsClearText, Username: "expired-ban", ClearText: "pw"})
	require.Nil(t, failed)

	reloaded, err := accounts.ByUserID("expired-ban")
	require.NoError(t, err)
	assert.Equal(t, model.AccountNormal, reloaded.State.Kind)
}

func TestAuthenticateExpiredIDFails(t *testing.T) {
	agent, accounts := newTestAgent(t)
	account, err := accounts.Create("expired-id")
	require.NoError(t, err)
	account.Password = model.Cleartext("pw")
	account.State = model.ExpiresOn(time.Now().Add(-time.Hour))
	require.NoError(t, accounts.Save(account))

	_, failed := agent.Authenticate(Credentials{Kind: CredentialsClearText, Username: "expired-id", ClearText: "pw"})
	require.NotNil(t, failed)
	assert.Equal(t, model.ReasonIDIsExpired, failed.Reason)
}

func TestCreateSessionMintsOneShotTicket(t *testing.T) {
	agent, accounts := newTestAgent(t)
	account, err := accounts.Create("ticketed")
	require.NoError(t, err)

	session := agent.CreateSession(account)
	assert.Equal(t, account.AccountID, session.AccountID)
	assert.False(t, session.Expired(time.Now()))
}

func TestHashPasswordMatchesWireFormat(t *testing.T) {
	sum := HashPassword("hunter2")
	assert.Len(t, sum, 16)
	assert.Equal(t, HashPassword("hunter2"), sum)
	assert.NotEqual(t, HashPassword("other"), sum)
}
