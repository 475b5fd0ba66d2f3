package config

import (
	"fmt"
	"time"
)

// DifficultyPreset is a named starting level and gravity speed.
// Presets only pick the starting values; nothing changes during a run.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep the loaded config untouched
)

type presetValues struct {
	level   int
	gravity time.Duration
}

var presets = map[DifficultyPreset]presetValues{
	DifficultyEasy:   {level: 1, gravity: time.Second},
	DifficultyNormal: {level: 2, gravity: 750 * time.Millisecond},
	DifficultyHard:   {level: 4, gravity: 400 * time.Millisecond},
}

// ParseDifficulty validates a preset name. The empty string means fixed.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(name)
	switch p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset overwrites the level and gravity interval for the preset.
func ApplyPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	v, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Scoring.Level = v.level
	cfg.Timing.GravityInterval = v.gravity
}
