// Command server runs the login-port and character-select-port listeners
// in a single process, mirroring the teacher's cmd/gameserver/main.go
// shape (errgroup-supervised listeners sharing in-process state) — here
// the shared state is store.SessionStore, the cross-server ticket handoff
// that only works if both ports see the same in-memory store (spec.md §3).
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sadroeck/heimdall-go/internal/charserver"
	"github.com/sadroeck/heimdall-go/internal/config"
	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/loginagent"
	"github.com/sadroeck/heimdall-go/internal/loginserver"
	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/store"
)

// devFixtureAccountID/UserID/Password are the boot-time fixture account
// every scenario in spec.md §8 is written against (e.g. scenario 4,
// "ConnectClient without ticket", references account_id=2_000_042
// directly). Grounded on
// original_source/databases/src/account/db/in_memory.rs's init(), which
// unconditionally inserts this same account before serving any request.
const (
	devFixtureAccountID       = 2_000_042
	devFixtureUserID          = "sadroeck"
	devFixtureCleartextPasswd = "olasenor"
)

const (
	LoginConfigPath     = "config/loginserver.yaml"
	CharacterConfigPath = "config/charserver.yaml"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	loginCfgPath := LoginConfigPath
	if p := os.Getenv("HEIMDALL_LOGIN_CONFIG"); p != "" {
		loginCfgPath = p
	}
	loginCfg, err := config.LoadLoginServer(loginCfgPath)
	if err != nil {
		return fmt.Errorf("loading login config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(loginCfg.LogLevel),
	})))

	slog.Info("heimdall server starting", "log_level", loginCfg.LogLevel)

	charCfgPath := CharacterConfigPath
	if p := os.Getenv("HEIMDALL_CHARACTER_CONFIG"); p != "" {
		charCfgPath = p
	}
	charCfg, err := config.LoadCharacterServer(charCfgPath)
	if err != nil {
		return fmt.Errorf("loading character config: %w", err)
	}

	slog.Info("configs loaded",
		"login_bind", loginCfg.BindAddress, "login_port", loginCfg.Port,
		"char_bind", charCfg.BindAddress, "char_port", charCfg.Port)

	accounts := store.NewAccountStore()
	accounts.Seed(&model.Account{
		AccountID: devFixtureAccountID,
		UserID:    devFixtureUserID,
		Password:  model.Cleartext(devFixtureCleartextPasswd),
		CharSlots: constants.DefaultCharSlots,
		State:     model.NormalState(),
	})
	if err := seedAccounts(accounts, loginCfg.Accounts); err != nil {
		return fmt.Errorf("seeding accounts: %w", err)
	}
	slog.Info("accounts seeded", "count", len(loginCfg.Accounts)+1)

	sessions := store.NewSessionStore()
	characters := store.NewCharacterStore()
	inventory := store.NewInventoryStore()

	agent := loginagent.New(accounts, sessions)
	if loginCfg.SessionTTLSeconds != 0 {
		agent = loginagent.NewWithSessionTTL(accounts, sessions, time.Duration(loginCfg.SessionTTLSeconds)*time.Second)
	}

	characterServers := make([]model.CharacterServerInfo, 0, len(loginCfg.CharacterServers))
	for _, entry := range loginCfg.CharacterServers {
		characterServers = append(characterServers, model.CharacterServerInfo{
			Name:     entry.Name,
			IP:       resolveIPv4(entry.Host),
			Port:     uint16(entry.Port),
			Activity: uint16(entry.Activity),
			Type:     uint16(entry.Type),
		})
	}

	loginHandler := loginserver.NewHandler(agent, characterServers)
	loginSrv := loginserver.NewServer(fmt.Sprintf("%s:%d", loginCfg.BindAddress, loginCfg.Port), loginHandler)

	fixtures := charserver.StartingCharacterFixtures{}
	for _, f := range charCfg.StartingCharacters {
		loc, items := f.ToModel()
		fixtures[model.Class(f.Class)] = charserver.StartingCharacterFixture{Items: items, Location: loc}
	}
	charHandler := charserver.NewHandler(sessions, characters, inventory, fixtures)
	charSrv := charserver.NewServer(fmt.Sprintf("%s:%d", charCfg.BindAddress, charCfg.Port), charHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting login server", "port", loginCfg.Port)
		if err := loginSrv.Run(gctx); err != nil {
			return fmt.Errorf("login server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		slog.Info("starting character server", "port", charCfg.Port)
		if err := charSrv.Run(gctx); err != nil {
			return fmt.Errorf("character server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// seedAccounts provisions the account store from the configured fixture
// list (spec.md Non-goals exclude an account-registration flow).
func seedAccounts(accounts *store.AccountStore, seeds []config.SeedAccount) error {
	for _, s := range seeds {
		account, err := accounts.Create(s.UserID)
		if err != nil {
			return fmt.Errorf("account %q: %w", s.UserID, err)
		}
		raw, err := hex.DecodeString(s.PasswordHash)
		if err != nil || len(raw) != 16 {
			return fmt.Errorf("account %q: password_hash must be 32 hex chars", s.UserID)
		}
		var hash [16]byte
		copy(hash[:], raw)
		account.Password = model.MD5Hashed(hash)
		account.State = model.NormalState()
		if err := accounts.Save(account); err != nil {
			return fmt.Errorf("account %q: %w", s.UserID, err)
		}
	}
	return nil
}

// resolveIPv4 parses a configured host into the IPv4 net.IP the
// CharacterServerInfo wire record expects, falling back to the loopback
// address when the host isn't a literal IP.
func resolveIPv4(host string) net.IP {
	if ip := net.ParseIP(host); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			return v4
		}
	}
	return net.IPv4(127, 0, 0, 1).To4()
}

// parseLogLevel converts a string log level to slog.Level, defaulting to
// Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
