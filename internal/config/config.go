// Package config loads Blockfall settings from YAML and applies difficulty
// presets on top of them.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BlockfallConfig contains every tunable of the game.
type BlockfallConfig struct {
	Board   BoardConfig       `yaml:"board"`
	Timing  TimingConfig      `yaml:"timing"`
	Scoring ScoringConfig     `yaml:"scoring"`
	Palette map[string]string `yaml:"palette"` // piece color name -> terminal color name
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SpawnColumn int `yaml:"spawn_column"`
	Lookahead   int `yaml:"lookahead"`
}

// TimingConfig defines gravity and animation pacing.
type TimingConfig struct {
	GravityInterval      time.Duration `yaml:"gravity_interval"`
	ClearAnimationFrames int           `yaml:"clear_animation_frames"`
	RepeatDelayFrames    int           `yaml:"repeat_delay_frames"`    // frames a held key waits before repeating
	RepeatIntervalFrames int           `yaml:"repeat_interval_frames"` // frames between repeats
}

// ScoringConfig defines the line award table and the level multiplier.
type ScoringConfig struct {
	Level      int   `yaml:"level"`
	LinePoints []int `yaml:"line_points"` // award for clearing 0..4 rows at once
}

// Validate reports the first setting that cannot produce a playable game.
func (c BlockfallConfig) Validate() error {
	b := c.Board
	switch {
	case b.Width < 4 || b.Height < 4:
		return fmt.Errorf("config: board %dx%d is smaller than 4x4", b.Width, b.Height)
	case b.SpawnColumn < 0 || b.SpawnColumn+4 > b.Width:
		return fmt.Errorf("config: spawn_column %d does not fit width %d", b.SpawnColumn, b.Width)
	case b.Lookahead < 1:
		return fmt.Errorf("config: lookahead must be at least 1, got %d", b.Lookahead)
	}

	t := c.Timing
	switch {
	case t.GravityInterval <= 0:
		return errors.New("config: gravity_interval must be positive")
	case t.ClearAnimationFrames < 0:
		return fmt.Errorf("config: clear_animation_frames must not be negative, got %d", t.ClearAnimationFrames)
	case t.RepeatDelayFrames < 0 || t.RepeatIntervalFrames < 1:
		return fmt.Errorf("config: invalid key repeat %d/%d", t.RepeatDelayFrames, t.RepeatIntervalFrames)
	}

	if c.Scoring.Level < 1 {
		return fmt.Errorf("config: level must be at least 1, got %d", c.Scoring.Level)
	}
	if len(c.Scoring.LinePoints) != 5 {
		return fmt.Errorf("config: line_points needs 5 entries (0-4 rows), got %d", len(c.Scoring.LinePoints))
	}
	for i, p := range c.Scoring.LinePoints {
		if p < 0 {
			return fmt.Errorf("config: line_points[%d] is negative", i)
		}
	}
	return nil
}

// GravityFrames converts the gravity interval into a frame count at the
// given tick rate. The result is at least 1.
func (c BlockfallConfig) GravityFrames(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	frames := int(c.Timing.GravityInterval * time.Duration(tickRate) / time.Second)
	return max(frames, 1)
}
