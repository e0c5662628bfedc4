package config

import (
	_ "embed"

	"github.com/vovakirdan/periodic2048/internal/engine"
)

//go:embed defaults/periodic.yaml
var defaultPeriodicYAML []byte

// DefaultPeriodicConfig returns the built-in configuration.
func DefaultPeriodicConfig() PeriodicConfig {
	return PeriodicConfig{
		Board: BoardConfig{
			Size:                engine.DefaultSize,
			StartTiles:          engine.DefaultStartTiles,
			WinLevel:            engine.DefaultWinValue,
			SpawnOneProbability: engine.DefaultSpawnOneProbability,
		},
		Trivia: TriviaConfig{
			Enabled:        true,
			IntroSeconds:   5,
			RestartOnWrong: true,
		},
		Server: ServerConfig{
			SSHAddr:     ":2222",
			HTTPAddr:    ":8080",
			HostKeyPath: ".ssh/periodic_ed25519",
		},
	}
}
