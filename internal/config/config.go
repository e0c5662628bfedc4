// Package config provides YAML-based configuration loading, environment
// overrides and difficulty presets for the periodic game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/periodic2048/internal/engine"
)

// PeriodicConfig contains all configuration for a periodic session.
type PeriodicConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Trivia TriviaConfig `yaml:"trivia"`
	Server ServerConfig `yaml:"server"`
}

// BoardConfig defines the merge board.
type BoardConfig struct {
	Size                int     `yaml:"size"`
	StartTiles          int     `yaml:"start_tiles"`
	WinLevel            int     `yaml:"win_level"`
	SpawnOneProbability float64 `yaml:"spawn_one_probability"` // Chance a spawned tile is hydrogen
	ContinueAfterWin    bool    `yaml:"continue_after_win"`
}

// TriviaConfig defines the milestone interstitial.
type TriviaConfig struct {
	Enabled        bool    `yaml:"enabled"`
	IntroSeconds   float64 `yaml:"intro_seconds"` // How long the element card shows before the question
	RestartOnWrong bool    `yaml:"restart_on_wrong"`
	QuestionsFile  string  `yaml:"questions_file"` // Empty means the built-in bank
}

// ServerConfig defines listen addresses for `periodic serve`.
type ServerConfig struct {
	SSHAddr     string `yaml:"ssh_addr"`
	HTTPAddr    string `yaml:"http_addr"`
	HostKeyPath string `yaml:"host_key_path"`
}

// Engine converts the board section into an engine configuration.
func (c PeriodicConfig) Engine() engine.Config {
	return engine.Config{
		Size:                c.Board.Size,
		StartTiles:          c.Board.StartTiles,
		WinValue:            c.Board.WinLevel,
		SpawnOneProbability: c.Board.SpawnOneProbability,
		ContinueAfterWin:    c.Board.ContinueAfterWin,
	}
}

// IntroTicks converts the intro duration to simulation ticks.
func (c TriviaConfig) IntroTicks(tickRate int) int {
	return int(c.IntroSeconds * float64(tickRate))
}

// Validate reports every invalid field at once.
func (c PeriodicConfig) Validate() error {
	var errs []error
	if err := c.Engine().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Trivia.IntroSeconds < 0 {
		errs = append(errs, fmt.Errorf("trivia.intro_seconds must not be negative, got %g", c.Trivia.IntroSeconds))
	}
	if c.Server.SSHAddr == "" && c.Server.HTTPAddr == "" {
		errs = append(errs, errors.New("server: at least one of ssh_addr and http_addr must be set"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case "":
		return PresetNormal, nil
	case PresetEasy, PresetNormal, PresetHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *PeriodicConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Board.Size = 6
		cfg.Board.SpawnOneProbability = 0.95
		cfg.Trivia.RestartOnWrong = false
	case PresetHard:
		cfg.Board.Size = 4
		cfg.Board.SpawnOneProbability = 0.8
		cfg.Trivia.RestartOnWrong = true
		cfg.Trivia.IntroSeconds = 2
	}
}
