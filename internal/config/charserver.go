package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sadroeck/heimdall-go/internal/model"
)

// CharacterServer holds all configuration for the character-select server
// (spec.md §5/§6). The teacher's GameServer config (rates, enchant, PvP,
// siege, manor, offline trade...) described gameplay systems this spec's
// Non-goals exclude entirely; what survives here is the ambient shape
// (network, timeouts, flood protection) plus this spec's own data: the
// inline map-name list and the per-class starting-character fixtures.
type CharacterServer struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Write queue / timeouts
	// WriteTimeout (default: 5s) and ReadTimeout (default: 120s) are loaded
	// but not applied: charserver.Server sets no write deadline and does
	// not disconnect idle clients.
	WriteTimeout time.Duration `yaml:"write_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`

	// Flood protection
	FloodProtection      bool `yaml:"flood_protection"`
	FastConnectionLimit  int  `yaml:"fast_connection_limit"`
	NormalConnectionTime int  `yaml:"normal_connection_time"` // ms
	FastConnectionTime   int  `yaml:"fast_connection_time"`   // ms
	MaxConnectionPerIP   int  `yaml:"max_connection_per_ip"`

	// MapNames is the ordered list backing model.MapNameTable (spec.md §3:
	// "append-only ordered list of map names loaded once at boot").
	MapNames []string `yaml:"map_names"`

	// StartingCharacters lists the per-class starting fixture (location +
	// initial items) a newly created character is seeded with (spec.md §6).
	StartingCharacters []StartingCharacterFixture `yaml:"starting_characters"`
}

// StartingCharacterFixture is one creatable class's starting location and
// item list, as configured in YAML.
type StartingCharacterFixture struct {
	Class    uint16               `yaml:"class"`
	MapName  string               `yaml:"map_name"`
	X        uint16               `yaml:"x"`
	Y        uint16               `yaml:"y"`
	Items    []StartingItemFixture `yaml:"items"`
}

// StartingItemFixture is one starting inventory entry.
type StartingItemFixture struct {
	ItemID uint32 `yaml:"item_id"`
	Slot   uint16 `yaml:"slot"`
	Amount uint16 `yaml:"amount"`
}

// MapNameTable builds a model.MapNameTable from the configured map names.
func (c CharacterServer) MapNameTable() *model.MapNameTable {
	return model.NewMapNameTable(c.MapNames)
}

// ToModel converts a configured fixture into the Location/Items pair the
// character server seeds a new character with.
func (f StartingCharacterFixture) ToModel() (model.Location, []model.Item) {
	loc := model.Location{MapName: f.MapName, Last: model.Point{X: f.X, Y: f.Y}}
	items := make([]model.Item, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, model.Item{ID: it.ItemID, Slot: it.Slot, Amount: it.Amount})
	}
	return loc, items
}

// DefaultCharacterServer returns CharacterServer config with sensible
// defaults: Novice and Summoner starting fixtures per spec.md §6.
func DefaultCharacterServer() CharacterServer {
	return CharacterServer{
		BindAddress:          "0.0.0.0",
		Port:                 2111,
		LogLevel:             "info",
		WriteTimeout:         5 * time.Second,
		ReadTimeout:          120 * time.Second,
		FloodProtection:      true,
		FastConnectionLimit:  15,
		NormalConnectionTime: 700,
		FastConnectionTime:   350,
		MaxConnectionPerIP:   50,
		MapNames:             []string{"new_1-1.gat", "prt_vilg00.gat", "moc_ruins02.gat"},
		StartingCharacters: []StartingCharacterFixture{
			{
				Class:   0, // model.ClassNovice
				MapName: "new_1-1.gat",
				X:       53, Y: 111,
				Items: []StartingItemFixture{
					{ItemID: 1201, Slot: 0, Amount: 1}, // Knife
					{ItemID: 2301, Slot: 1, Amount: 1}, // Cotton Shirt
				},
			},
			{
				Class:   4218, // model.ClassSummoner
				MapName: "moc_ruins02.gat",
				X:       32, Y: 135,
				Items: []StartingItemFixture{
					{ItemID: 1201, Slot: 0, Amount: 1},
				},
			},
		},
	}
}

// LoadCharacterServer loads character server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadCharacterServer(path string) (CharacterServer, error) {
	cfg := DefaultCharacterServer()

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
