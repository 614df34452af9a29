package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/memoryflash/internal/grid"
)

const (
	maxColumns = 8
	maxRows    = 8
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible sequences.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// PlayerName is the leaderboard name. Empty means the rules' default.
	PlayerName string

	Columns int
	Rows    int

	// Sound enables tones for flashes and verdicts.
	Sound bool

	// SpectateAddr is the listen address for the spectator feed.
	// Empty disables it.
	SpectateAddr string

	LogFile  string
	LogLevel string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Columns:  grid.DefaultColumns,
		Rows:     grid.DefaultRows,
		Sound:    true,
		LogFile:  "memoryflash.log",
		LogLevel: "info",
	}
}

// ConfigFromEnv builds a Config from MEMFLASH_* variables read through getenv,
// falling back to DefaultConfig for anything unset.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv("MEMFLASH_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("MEMFLASH_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("MEMFLASH_PLAYER"); v != "" {
		cfg.PlayerName = strings.TrimSpace(v)
	}
	if v := getenv("MEMFLASH_COLUMNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("MEMFLASH_COLUMNS: %w", err)
		}
		cfg.Columns = n
	}
	if v := getenv("MEMFLASH_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("MEMFLASH_ROWS: %w", err)
		}
		cfg.Rows = n
	}
	if v := getenv("MEMFLASH_SOUND"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("MEMFLASH_SOUND: %w", err)
		}
		cfg.Sound = on
	}
	if v, ok := lookup(getenv, "MEMFLASH_SPECTATE_ADDR"); ok {
		cfg.SpectateAddr = v
	}
	if v, ok := lookup(getenv, "MEMFLASH_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v := getenv("MEMFLASH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, cfg.Validate()
}

// Validate checks that the grid fits on screen.
func (c Config) Validate() error {
	if c.Columns < 1 || c.Columns > maxColumns {
		return fmt.Errorf("columns must be between 1 and %d, got %d", maxColumns, c.Columns)
	}
	if c.Rows < 1 || c.Rows > maxRows {
		return fmt.Errorf("rows must be between 1 and %d, got %d", maxRows, c.Rows)
	}
	return nil
}

// lookup treats "-" as an explicit empty value so defaults can be switched off.
func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	switch v {
	case "":
		return "", false
	case "-":
		return "", true
	default:
		return v, true
	}
}
