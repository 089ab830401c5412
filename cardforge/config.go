package cardforge

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/forgelabs/cardforge/cardforge/config"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.Game.applyDefaults()
	return &cfg, nil
}

// DefaultConfig returns a config that runs entirely from the embedded catalog.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Game.applyDefaults()
	return cfg
}

type Config struct {
	Log  LogConfig  `toml:"log"`
	DB   DBConfig   `toml:"db"`
	Game GameConfig `toml:"game"`
}

type LogConfig struct {
	Level     string `toml:"level"`
	Format    string `toml:"format"`
	AddSource bool   `toml:"add_source"`
}

// SlogLevel maps the configured level name onto slog's scale. Empty or
// unknown names keep everything visible.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	}
	return slog.LevelDebug
}

// DBConfig configures the optional Postgres catalog source. When Enabled is
// false the embedded catalog data is used and no connection is opened.
type DBConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

type GameConfig struct {
	DeckCount        int `toml:"deck_count"`
	DeckSize         int `toml:"deck_size"`
	MaxCopiesPerDeck int `toml:"max_copies_per_deck"`
	BaseCardCopies   int `toml:"base_card_copies"`
}

func (g *GameConfig) applyDefaults() {
	if g.DeckCount <= 0 {
		g.DeckCount = config.DeckCount
	}
	if g.DeckSize <= 0 {
		g.DeckSize = config.DeckSize
	}
	if g.MaxCopiesPerDeck <= 0 {
		g.MaxCopiesPerDeck = config.MaxCopiesPerDeck
	}
	if g.BaseCardCopies <= 0 {
		g.BaseCardCopies = config.BaseCardCopies
	}
}
