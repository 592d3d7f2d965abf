// Package config provides YAML-based configuration loading and difficulty
// presets for the platformer.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Campaign CampaignConfig `yaml:"campaign"`
	Controls ControlsConfig `yaml:"controls"`
}

// PhysicsConfig defines physics parameters. Units are tiles and seconds.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	PlayerXSpeed float64 `yaml:"player_x_speed"`
	WobbleSpeed  float64 `yaml:"wobble_speed"`
	WobbleDist   float64 `yaml:"wobble_dist"`
}

// Sim converts the section into simulation tuning.
func (p PhysicsConfig) Sim() sim.Physics {
	return sim.Physics{
		Gravity:      p.Gravity,
		JumpSpeed:    p.JumpSpeed,
		PlayerXSpeed: p.PlayerXSpeed,
		WobbleSpeed:  p.WobbleSpeed,
		WobbleDist:   p.WobbleDist,
	}
}

// CampaignConfig defines how a run through the levels is scored.
type CampaignConfig struct {
	Lives      int     `yaml:"lives"`
	EndDelay   float64 `yaml:"end_delay"` // Seconds a finished level stays on screen
	CoinPoints int     `yaml:"coin_points"`
	LevelBonus int     `yaml:"level_bonus"`
}

// EndDelayDuration returns EndDelay as a duration.
func (c CampaignConfig) EndDelayDuration() time.Duration {
	return time.Duration(c.EndDelay * float64(time.Second))
}

// ControlsConfig defines keyboard handling.
type ControlsConfig struct {
	// HoldTicks is how long a key counts as held after its last key event.
	// Terminals only report presses and auto-repeats, never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that the configuration can drive a game.
func (c PlatformerConfig) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_speed", c.Physics.JumpSpeed},
		{"physics.player_x_speed", c.Physics.PlayerXSpeed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{Field: p.field, Message: fmt.Sprintf("must be positive, got %v", p.value)}
		}
	}

	if c.Physics.WobbleSpeed < 0 || c.Physics.WobbleDist < 0 {
		return ValidationError{Field: "physics.wobble", Message: "must not be negative"}
	}
	if c.Campaign.Lives < 1 {
		return ValidationError{Field: "campaign.lives", Message: fmt.Sprintf("must be at least 1, got %d", c.Campaign.Lives)}
	}
	if c.Campaign.EndDelay < 0 {
		return ValidationError{Field: "campaign.end_delay", Message: "must not be negative"}
	}
	if c.Controls.HoldTicks < 1 {
		return ValidationError{Field: "controls.hold_ticks", Message: fmt.Sprintf("must be at least 1, got %d", c.Controls.HoldTicks)}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal or hard)", s)
	}
}

// LivesForPreset returns the starting lives for a difficulty preset.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 1
	default:
		return 3
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	cfg.Campaign.Lives = LivesForPreset(preset)
}
