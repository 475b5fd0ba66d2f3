package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltIn(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if want := DefaultBlockfallConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded config = %+v, expected %+v", cfg, want)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
board:
  width: 12
timing:
  gravity_interval: 250ms
palette:
  pink: red
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("width = %d, expected 12", cfg.Board.Width)
	}
	if cfg.Board.Height != 22 {
		t.Errorf("height should keep default 22, got %d", cfg.Board.Height)
	}
	if cfg.Timing.GravityInterval != 250*time.Millisecond {
		t.Errorf("gravity = %v, expected 250ms", cfg.Timing.GravityInterval)
	}
	if cfg.Palette["pink"] != "red" || cfg.Palette["dark_blue"] != "blue" {
		t.Errorf("palette not merged: %v", cfg.Palette)
	}
	if DefaultPalette["pink"] != "magenta" {
		t.Error("parsing must not modify DefaultPalette")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "board: [1, 2"},
		{"narrow", "board: {width: 3}"},
		{"spawn off board", "board: {spawn_column: 8}"},
		{"no lookahead", "board: {lookahead: 0}"},
		{"zero gravity", "timing: {gravity_interval: 0s}"},
		{"bad repeat", "timing: {repeat_interval_frames: 0}"},
		{"zero level", "scoring: {level: 0}"},
		{"short table", "scoring: {line_points: [0, 100]}"},
		{"negative points", "scoring: {line_points: [0, -1, 2, 3, 4]}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Errorf("Parse(%q) should fail", tc.yaml)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring: {level: 3}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.Level != 3 {
		t.Errorf("level = %d, expected 3", cfg.Scoring.Level)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.Level != 1 {
		t.Errorf("expected default level 1, got %d", cfg.Scoring.Level)
	}

	writeConfig(t, filepath.Join(work, "configs", fileName), "scoring: {level: 5}\n")
	cfg, _ = Load("")
	if cfg.Scoring.Level != 5 {
		t.Errorf("local config should apply, got level %d", cfg.Scoring.Level)
	}

	writeConfig(t, filepath.Join(home, ".blockfall", "configs", fileName), "scoring: {level: 7}\n")
	cfg, _ = Load("")
	if cfg.Scoring.Level != 7 {
		t.Errorf("user config should win over local, got level %d", cfg.Scoring.Level)
	}

	// A broken user file is skipped.
	writeConfig(t, filepath.Join(home, ".blockfall", "configs", fileName), "scoring: [\n")
	cfg, _ = Load("")
	if cfg.Scoring.Level != 5 {
		t.Errorf("broken user config should fall through to local, got level %d", cfg.Scoring.Level)
	}
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestGravityFrames(t *testing.T) {
	tests := []struct {
		interval time.Duration
		tickRate int
		expected int
	}{
		{time.Second, 60, 60},
		{400 * time.Millisecond, 60, 24},
		{time.Second, 30, 30},
		{time.Millisecond, 60, 1},
		{time.Second, 0, 60},
	}

	for _, tc := range tests {
		cfg := DefaultBlockfallConfig()
		cfg.Timing.GravityInterval = tc.interval
		if got := cfg.GravityFrames(tc.tickRate); got != tc.expected {
			t.Errorf("GravityFrames(%v @ %d) = %d, expected %d", tc.interval, tc.tickRate, got, tc.expected)
		}
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		gravity time.Duration
	}{
		{"easy", 1, time.Second},
		{"normal", 2, 750 * time.Millisecond},
		{"hard", 4, 400 * time.Millisecond},
		{"fixed", 9, 123 * time.Millisecond},
		{"", 9, 123 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			preset, err := ParseDifficulty(tc.name)
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tc.name, err)
			}
			cfg := DefaultBlockfallConfig()
			cfg.Scoring.Level = 9
			cfg.Timing.GravityInterval = 123 * time.Millisecond

			ApplyPreset(&cfg, preset)
			if cfg.Scoring.Level != tc.level || cfg.Timing.GravityInterval != tc.gravity {
				t.Errorf("got level %d gravity %v, expected %d %v",
					cfg.Scoring.Level, cfg.Timing.GravityInterval, tc.level, tc.gravity)
			}
		})
	}

	if _, err := ParseDifficulty("insane"); err == nil || !strings.Contains(err.Error(), "insane") {
		t.Errorf("unknown preset should fail with its name, got %v", err)
	}
}

func TestMarshalIncludesSections(t *testing.T) {
	data, err := Marshal(DefaultBlockfallConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	for _, key := range []string{"board:", "timing:", "scoring:", "palette:", "gravity_interval:"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled config missing %q:\n%s", key, data)
		}
	}
}
