package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	var cfg DodgeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultDodgeConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultDodgeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadWithoutFilesUsesEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Obstacles.Capacity != 100 || cfg.Player.Lives != 3 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
player:
  lives: 7
obstacles:
  capacity: 4
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Player.Lives != 7 || cfg.Obstacles.Capacity != 4 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched values keep their defaults
	if cfg.Player.Size != 30 || cfg.World.Width != 800 || cfg.Spawn.MaxIntervalMS != 2000 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadLocalConfigsDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "configs"), "dodge.yaml", "player:\n  speed: 9\n")

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != filepath.Join("configs", "dodge.yaml") {
		t.Errorf("source = %q", source)
	}
	if cfg.Player.Speed != 9 {
		t.Errorf("Player.Speed = %g, expected 9", cfg.Player.Speed)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    filepath.Join(dir, "nope.yaml"),
			wantErr: "failed to read",
		},
		{
			name:    "malformed yaml",
			path:    writeFile(t, dir, "bad.yaml", "player: [1, 2\n"),
			wantErr: "failed to parse",
		},
		{
			name:    "invalid values",
			path:    writeFile(t, dir, "invalid.yaml", "obstacles:\n  min_size: 300\n"),
			wantErr: "invalid obstacle size range",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Load(tc.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgeConfig)
		ok     bool
	}{
		{"defaults", func(*DodgeConfig) {}, true},
		{"zero capacity", func(c *DodgeConfig) { c.Obstacles.Capacity = 0 }, false},
		{"no lives", func(c *DodgeConfig) { c.Player.Lives = 0 }, false},
		{"inverted interval", func(c *DodgeConfig) { c.Spawn.MinIntervalMS = 3000 }, false},
		{"inverted speed", func(c *DodgeConfig) { c.Obstacles.MinSpeed = 30 }, false},
		{"player wider than world", func(c *DodgeConfig) { c.Player.Size = 900 }, false},
		{"unknown clock", func(c *DodgeConfig) { c.Timing.Clock = "sundial" }, false},
		{"wall clock", func(c *DodgeConfig) { c.Timing.Clock = ClockWall }, true},
		{"fixed size range", func(c *DodgeConfig) { c.Obstacles.MinSize, c.Obstacles.MaxSize = 50, 50 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}

	preset, err := ParsePreset("hard")
	if err != nil {
		t.Fatalf("ParsePreset(hard) failed: %v", err)
	}

	cfg := DefaultDodgeConfig()
	ApplyPreset(&cfg, preset)
	if cfg.Player.Lives != 2 {
		t.Errorf("hard lives = %d, expected 2", cfg.Player.Lives)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should validate: %v", err)
	}

	normal := DefaultDodgeConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultDodgeConfig() {
		t.Error("normal preset should not change the config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultDodgeConfig()
	cfg.Timing.Clock = ClockWall

	out, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	parsed, err := parse(out)
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if parsed != cfg {
		t.Errorf("round trip = %+v, expected %+v", parsed, cfg)
	}
}
