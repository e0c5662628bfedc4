package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML PeriodicConfig
	if err := yaml.Unmarshal(defaultPeriodicYAML, &fromYAML); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if fromYAML != DefaultPeriodicConfig() {
		t.Errorf("embedded defaults drifted:\n yaml %+v\n code %+v", fromYAML, DefaultPeriodicConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadPeriodicCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "board:\n  size: 4\ntrivia:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadPeriodic(path)
	if err != nil {
		t.Fatalf("LoadPeriodic: %v", err)
	}
	if cfg.Board.Size != 4 || cfg.Trivia.Enabled {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Board.WinLevel != 20 || cfg.Server.HTTPAddr != ":8080" {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}

	if _, err := LoadPeriodic(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("expected error for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadPeriodic(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PeriodicConfig)
		wantErr string
	}{
		{"defaults", func(c *PeriodicConfig) {}, ""},
		{"zero size", func(c *PeriodicConfig) { c.Board.Size = 0 }, "size"},
		{"probability", func(c *PeriodicConfig) { c.Board.SpawnOneProbability = 1.5 }, "probability"},
		{"negative intro", func(c *PeriodicConfig) { c.Trivia.IntroSeconds = -1 }, "intro_seconds"},
		{"no listeners", func(c *PeriodicConfig) { c.Server = ServerConfig{} }, "ssh_addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPeriodicConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PERIODIC_BOARD_SIZE":         "7",
		"PERIODIC_INTRO_SECONDS":      "1.5",
		"PERIODIC_CONTINUE_AFTER_WIN": "true",
		"PERIODIC_HTTP_ADDR":          "127.0.0.1:9000",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultPeriodicConfig()
	if err := ApplyEnv(&cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Board.Size != 7 || cfg.Trivia.IntroSeconds != 1.5 || !cfg.Board.ContinueAfterWin {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Server.HTTPAddr != "127.0.0.1:9000" || cfg.Server.SSHAddr != ":2222" {
		t.Errorf("server overrides wrong: %+v", cfg.Server)
	}
	if got := cfg.Trivia.IntroTicks(30); got != 45 {
		t.Errorf("IntroTicks(30) = %d, want 45", got)
	}

	env["PERIODIC_WIN_LEVEL"] = "calcium"
	if err := ApplyEnv(&cfg, lookup); err == nil {
		t.Errorf("expected error for a non-numeric level")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in      string
		want    Preset
		size    int
		restart bool
	}{
		{"", PresetNormal, 5, true},
		{"easy", PresetEasy, 6, false},
		{"hard", PresetHard, 4, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			p, err := ParsePreset(tt.in)
			if err != nil || p != tt.want {
				t.Fatalf("ParsePreset(%q) = %q, %v", tt.in, p, err)
			}
			cfg := DefaultPeriodicConfig()
			ApplyPreset(&cfg, p)
			if cfg.Board.Size != tt.size || cfg.Trivia.RestartOnWrong != tt.restart {
				t.Errorf("preset %s gave %+v", p, cfg)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s should validate: %v", p, err)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Errorf("expected error for unknown preset")
	}
}
