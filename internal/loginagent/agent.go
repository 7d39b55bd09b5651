package loginagent

import (
	"crypto/md5"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/store"
)

// newAuthenticationCode is swappable in tests for deterministic tickets.
var newAuthenticationCode = func() uint32 { return rand.Uint32() }

// Agent authenticates client credentials against the account store and
// mints cross-server authentication tickets, grounded on
// original_source/login/src/agent.rs LoginAgent.
type Agent struct {
	accounts   *store.AccountStore
	sessions   *store.SessionStore
	sessionTTL time.Duration
}

// New builds a login agent over the given account and session stores,
// using constants.SessionTTLSeconds as the cross-server ticket lifetime.
func New(accounts *store.AccountStore, sessions *store.SessionStore) *Agent {
	return &Agent{accounts: accounts, sessions: sessions, sessionTTL: constants.SessionTTLSeconds * time.Second}
}

// NewWithSessionTTL builds a login agent with a caller-supplied ticket
// lifetime (config.LoginServer.SessionTTLSeconds), overriding the default.
func NewWithSessionTTL(accounts *store.AccountStore, sessions *store.SessionStore, ttl time.Duration) *Agent {
	return &Agent{accounts: accounts, sessions: sessions, sessionTTL: ttl}
}

// Authenticate validates credentials and, on success, bumps the account's
// login bookkeeping and returns the stored account. Failure reasons mirror
// the original agent's branching: an unknown user is UnregisteredId for
// cleartext logins but RejectedFromServer for hashed logins (the original
// treats a hashed-login DB miss as a server-side error, not a bad
// username), and a state gate runs after the password check.
func (a *Agent) Authenticate(creds Credentials) (*model.Account, *model.LoginFailed) {
	account, failed := a.checkPassword(creds)
	if failed != nil {
		return nil, failed
	}

	if failed := checkAccountState(account); failed != nil {
		return nil, failed
	}

	account.LoginCount++
	account.LastLogin = time.Now()
	if err := a.accounts.Save(account); err != nil {
		slog.Error("could not save account", "account_id", account.AccountID, "error", err)
		return nil, &model.LoginFailed{Reason: model.ReasonRejectedFromServer}
	}
	return account, nil
}

func (a *Agent) checkPassword(creds Credentials) (*model.Account, *model.LoginFailed) {
	account, err := a.accounts.ByUserID(creds.Username)
	if err != nil {
		if creds.Kind == CredentialsHashed {
			slog.Error("account lookup failed", "username", creds.Username, "error", err)
			return nil, &model.LoginFailed{Reason: model.ReasonRejectedFromServer}
		}
		return nil, &model.LoginFailed{Reason: model.ReasonUnregisteredID, Username: creds.Username}
	}

	switch creds.Kind {
	case CredentialsHashed:
		if account.Password.Kind != model.PasswordMD5Hashed || account.Password.Hash != creds.Hashed {
			slog.Warn("invalid password", "username", creds.Username)
			return nil, &model.LoginFailed{Reason: model.ReasonIncorrectPassword}
		}
	default:
		if account.Password.Kind != model.PasswordCleartext || account.Password.Clear != creds.ClearText {
			slog.Warn("invalid password", "username", creds.Username)
			return nil, &model.LoginFailed{Reason: model.ReasonIncorrectPassword}
		}
	}
	return account, nil
}

func checkAccountState(account *model.Account) *model.LoginFailed {
	switch account.State.Kind {
	case model.AccountNormal:
		return nil
	case model.AccountBanned:
		if time.Now().After(account.State.At) {
			account.State = model.NormalState()
			return nil
		}
		return &model.LoginFailed{Reason: model.ReasonBannedUntil, BannedUntil: account.State.At}
	case model.AccountExpires:
		if !time.Now().Before(account.State.At) {
			return &model.LoginFailed{Reason: model.ReasonIDIsExpired}
		}
		return nil
	default:
		return nil
	}
}

// CreateSession mints a one-shot cross-server ticket for the given
// account, with a fresh random authentication_code, to be relayed via the
// client and consumed exactly once by the character server.
func (a *Agent) CreateSession(account *model.Account) *model.AuthenticatedSession {
	session := &model.AuthenticatedSession{
		AccountID:          account.AccountID,
		AuthenticationCode: newAuthenticationCode(),
		UserLevel:          0,
		Sex:                account.Sex,
		WebAuthToken:       account.WebAuthToken,
		ExpiresAt:          time.Now().Add(a.sessionTTL),
	}
	a.sessions.Put(session)
	return session
}

// HashPassword computes the MD5 digest used by hashed-credential logins,
// matching the wire format (spec.md §4.1).
func HashPassword(clear string) [16]byte {
	return md5.Sum([]byte(clear))
}
