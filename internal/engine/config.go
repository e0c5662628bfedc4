package engine

import (
	"errors"
	"fmt"
)

// Default engine parameters.
const (
	DefaultSize                = 5
	DefaultStartTiles          = 1
	DefaultWinValue            = 20 // calcium
	DefaultSpawnOneProbability = 0.9
)

// Config holds the engine parameters.
type Config struct {
	Size                int     // Board dimension
	StartTiles          int     // Tiles placed by Reset, all level 1
	WinValue            int     // Level that wins the game
	SpawnOneProbability float64 // Probability a spawned tile is level 1 (else level 2)

	// ContinueAfterWin keeps accepting moves once WinValue has been reached.
	ContinueAfterWin bool
}

// DefaultConfig returns the classic 5x5 configuration.
func DefaultConfig() Config {
	return Config{
		Size:                DefaultSize,
		StartTiles:          DefaultStartTiles,
		WinValue:            DefaultWinValue,
		SpawnOneProbability: DefaultSpawnOneProbability,
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Size < 1 {
		errs = append(errs, fmt.Errorf("size must be at least 1, got %d", c.Size))
	}
	if c.StartTiles < 0 || c.StartTiles > c.Size*c.Size {
		errs = append(errs, fmt.Errorf("start tiles must be within [0, %d], got %d", c.Size*c.Size, c.StartTiles))
	}
	if c.WinValue < 2 {
		errs = append(errs, fmt.Errorf("win value must be at least 2, got %d", c.WinValue))
	}
	if c.SpawnOneProbability < 0 || c.SpawnOneProbability > 1 {
		errs = append(errs, fmt.Errorf("spawn probability must be within [0, 1], got %g", c.SpawnOneProbability))
	}
	return errors.Join(errs...)
}
