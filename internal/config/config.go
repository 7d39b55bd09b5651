package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoginServer holds all configuration for the login server (spec.md §5/§6).
// This core has no backing relational database: accounts live entirely in
// store.AccountStore, seeded at boot from the Accounts list below (keeping
// the teacher's YAML-config-with-FloodProtection shape while dropping the
// DatabaseConfig block this spec has no use for).
type LoginServer struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error (default: info)

	// Security
	AutoCreateAccounts bool `yaml:"auto_create_accounts"`
	LoginTryBeforeBan  int  `yaml:"login_try_before_ban"`
	LoginBlockAfterBan int  `yaml:"login_block_after_ban"` // seconds

	// Flood protection
	FloodProtection      bool `yaml:"flood_protection"`
	FastConnectionLimit  int  `yaml:"fast_connection_limit"`
	NormalConnectionTime int  `yaml:"normal_connection_time"` // ms
	FastConnectionTime   int  `yaml:"fast_connection_time"`   // ms
	MaxConnectionPerIP   int  `yaml:"max_connection_per_ip"`

	// SessionTTLSeconds overrides constants.SessionTTLSeconds for the
	// cross-server handoff ticket when non-zero.
	SessionTTLSeconds int `yaml:"session_ttl_seconds"`

	// Accounts is the set of accounts store.AccountStore is seeded with at
	// boot. spec.md's Non-goals exclude an account-registration flow, so a
	// static seed list is this core's only provisioning path.
	Accounts []SeedAccount `yaml:"accounts"`

	// CharacterServers is the static character-select server list
	// advertised in LoginSuccessV3 (spec.md §4.4, §6).
	CharacterServers []CharacterServerEntry `yaml:"character_servers"`
}

// SeedAccount is one account provisioned at boot.
type SeedAccount struct {
	UserID       string `yaml:"user_id"`
	PasswordHash string `yaml:"password_hash"` // hex-encoded MD5, per loginagent.HashPassword
}

// CharacterServerEntry is one entry of the character-server list sent to
// the client on successful login.
type CharacterServerEntry struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Activity int    `yaml:"activity"`
	Type     int    `yaml:"type"`
}

// DefaultLoginServer returns LoginServer config with sensible defaults.
func DefaultLoginServer() LoginServer {
	return LoginServer{
		BindAddress:          "0.0.0.0",
		Port:                 2106,
		LogLevel:             "info",
		AutoCreateAccounts:   false,
		LoginTryBeforeBan:    5,
		LoginBlockAfterBan:   900,
		FloodProtection:      true,
		FastConnectionLimit:  15,
		NormalConnectionTime: 700,
		FastConnectionTime:   350,
		MaxConnectionPerIP:   50,
		CharacterServers: []CharacterServerEntry{
			{Name: "Server", Host: "127.0.0.1", Port: 2111, Activity: 0, Type: 0},
		},
	}
}

// LoadLoginServer loads login server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadLoginServer(path string) (LoginServer, error) {
	cfg := DefaultLoginServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
