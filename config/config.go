package config

import (
	"math/rand"
	"time"

	"scavenger-board/data"
)

// Config holds the runtime settings
type Config struct {
	// Seed for board generation. Zero picks a time based seed.
	Seed int64
	// Seconds between a level ending and the next board
	TransitionDelay float64
	// Optional JSON board configuration. Empty uses the default 8x8 board.
	BoardConfigPath string
}

// Default returns the settings used when no flags are given
func Default() Config {
	return Config{
		TransitionDelay: 2.0,
	}
}

// ResolveSeed returns the configured seed, or a fresh one when unset
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewRand creates the generator every board of a session draws from
func (c Config) NewRand() *rand.Rand {
	return rand.New(rand.NewSource(c.ResolveSeed()))
}

// Board loads the board configuration
func (c Config) Board() (data.BoardConfig, error) {
	if c.BoardConfigPath == "" {
		return data.DefaultBoardConfig(), nil
	}
	return data.LoadBoardConfig(c.BoardConfigPath)
}
