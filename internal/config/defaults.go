package config

import (
	_ "embed"
	"maps"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}

// DefaultPalette maps piece colors to terminal colors.
var DefaultPalette = map[string]string{
	"pink":       "magenta",
	"red":        "red",
	"yellow":     "yellow",
	"green":      "green",
	"orange":     "orange",
	"light_blue": "cyan",
	"dark_blue":  "blue",
}

// DefaultBlockfallConfig returns the built-in configuration. It matches the
// embedded YAML and is used when that cannot be parsed.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:       10,
			Height:      22,
			SpawnColumn: 3,
			Lookahead:   3,
		},
		Timing: TimingConfig{
			GravityInterval:      time.Second,
			ClearAnimationFrames: 12,
			RepeatDelayFrames:    10,
			RepeatIntervalFrames: 3,
		},
		Scoring: ScoringConfig{
			Level:      1,
			LinePoints: []int{0, 100, 300, 500, 800},
		},
		Palette: maps.Clone(DefaultPalette),
	}
}
