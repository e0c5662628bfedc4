package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const configFile = "periodic.yaml"

// LoadPeriodic loads the periodic configuration.
// Search order: customPath -> ~/.periodic/configs/periodic.yaml -> ./configs/periodic.yaml -> embedded default.
// Files are layered over the built-in defaults, so partial files are fine.
func LoadPeriodic(customPath string) (PeriodicConfig, error) {
	cfg := DefaultPeriodicConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fromFile := cfg
		if err := yaml.Unmarshal(data, &fromFile); err == nil {
			return fromFile, nil
		}
	}

	if err := yaml.Unmarshal(defaultPeriodicYAML, &cfg); err != nil {
		return DefaultPeriodicConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".periodic", "configs", filename)
}

// ApplyEnv overrides fields from PERIODIC_* environment variables.
// lookup is usually os.LookupEnv, after .env files have been loaded.
func ApplyEnv(cfg *PeriodicConfig, lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"PERIODIC_BOARD_SIZE":  &cfg.Board.Size,
		"PERIODIC_START_TILES": &cfg.Board.StartTiles,
		"PERIODIC_WIN_LEVEL":   &cfg.Board.WinLevel,
	}
	floats := map[string]*float64{
		"PERIODIC_SPAWN_ONE_PROBABILITY": &cfg.Board.SpawnOneProbability,
		"PERIODIC_INTRO_SECONDS":         &cfg.Trivia.IntroSeconds,
	}
	bools := map[string]*bool{
		"PERIODIC_CONTINUE_AFTER_WIN": &cfg.Board.ContinueAfterWin,
		"PERIODIC_TRIVIA":             &cfg.Trivia.Enabled,
		"PERIODIC_RESTART_ON_WRONG":   &cfg.Trivia.RestartOnWrong,
	}
	strs := map[string]*string{
		"PERIODIC_QUESTIONS_FILE": &cfg.Trivia.QuestionsFile,
		"PERIODIC_SSH_ADDR":       &cfg.Server.SSHAddr,
		"PERIODIC_HTTP_ADDR":      &cfg.Server.HTTPAddr,
		"PERIODIC_HOST_KEY":       &cfg.Server.HostKeyPath,
	}

	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", key, err)
			}
			*dst = n
		}
	}
	for key, dst := range floats {
		if v, ok := lookup(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("config: %s: %w", key, err)
			}
			*dst = f
		}
	}
	for key, dst := range bools {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", key, err)
			}
			*dst = b
		}
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	return nil
}
