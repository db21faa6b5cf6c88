// Package config provides YAML/TOML game configuration loading and
// difficulty management for wordfall.
package config

import (
	"errors"
	"fmt"
)

// WordfallConfig contains all tunable parameters of the simulation.
// Distances are in field units; the field is rendered scaled to the terminal.
type WordfallConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Targets    TargetConfig     `yaml:"targets" toml:"targets"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Actor      ActorConfig      `yaml:"actor" toml:"actor"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Tiers      TiersConfig      `yaml:"tiers" toml:"tiers"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FieldConfig defines the play field.
type FieldConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	MaxFrameDelta float64 `yaml:"max_frame_delta" toml:"max_frame_delta"` // Seconds; longer frames are clamped
}

// TargetConfig defines falling meteor targets.
type TargetConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	MinSpeed      int     `yaml:"min_speed" toml:"min_speed"` // Units per tick
	MaxSpeed      int     `yaml:"max_speed" toml:"max_speed"`
	AnimationRate float64 `yaml:"animation_rate" toml:"animation_rate"` // Phase units per second
	FallFrames    float64 `yaml:"fall_frames" toml:"fall_frames"`
	BoomFrames    float64 `yaml:"boom_frames" toml:"boom_frames"`
}

// SpawnConfig defines level placement constraints.
type SpawnConfig struct {
	LeftPad      float64 `yaml:"left_pad" toml:"left_pad"`
	RightPad     float64 `yaml:"right_pad" toml:"right_pad"`
	MinSpacing   float64 `yaml:"min_spacing" toml:"min_spacing"`
	TextMargin   float64 `yaml:"text_margin" toml:"text_margin"` // Word must fit in target width minus this
	MinOffset    int     `yaml:"min_offset" toml:"min_offset"`   // Spawn height above the field
	MaxOffset    int     `yaml:"max_offset" toml:"max_offset"`
	InnerRetries int     `yaml:"inner_retries" toml:"inner_retries"`
	OuterRetries int     `yaml:"outer_retries" toml:"outer_retries"`
}

// ProjectileConfig defines the interceptor.
type ProjectileConfig struct {
	Speed           float64 `yaml:"speed" toml:"speed"` // Units per second
	BaseRadius      float64 `yaml:"base_radius" toml:"base_radius"`
	Thickness       float64 `yaml:"thickness" toml:"thickness"`
	OscillationRate float64 `yaml:"oscillation_rate" toml:"oscillation_rate"`
	Magnitude       float64 `yaml:"magnitude" toml:"magnitude"`
}

// ActorConfig defines the launcher that fires projectiles.
type ActorConfig struct {
	X             float64 `yaml:"x" toml:"x"`
	Y             float64 `yaml:"y" toml:"y"`
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	MuzzleOffsetX float64 `yaml:"muzzle_offset_x" toml:"muzzle_offset_x"`
	MuzzleOffsetY float64 `yaml:"muzzle_offset_y" toml:"muzzle_offset_y"`
	Frames        float64 `yaml:"frames" toml:"frames"`
	AnimationRate float64 `yaml:"animation_rate" toml:"animation_rate"`
}

// GameplayConfig defines run-level rules.
type GameplayConfig struct {
	Lives int    `yaml:"lives" toml:"lives"`
	Tier  string `yaml:"tier" toml:"tier"` // "easy", "medium" or "hard"
}

// LengthRange is an inclusive word length range in runes.
type LengthRange struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// TiersConfig maps word tiers to length ranges.
type TiersConfig struct {
	Easy   LengthRange `yaml:"easy" toml:"easy"`
	Medium LengthRange `yaml:"medium" toml:"medium"`
	Hard   LengthRange `yaml:"hard" toml:"hard"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "level", "score", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// Validate reports the first configuration value that would break the simulation.
func (c WordfallConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Targets.Width <= 0 || c.Targets.Height <= 0 {
		errs = append(errs, fmt.Errorf("target size must be positive, got %gx%g", c.Targets.Width, c.Targets.Height))
	}
	if c.Targets.MinSpeed <= 0 || c.Targets.MaxSpeed < c.Targets.MinSpeed {
		errs = append(errs, fmt.Errorf("target speed range invalid: %d..%d", c.Targets.MinSpeed, c.Targets.MaxSpeed))
	}
	if c.Targets.FallFrames <= 0 || c.Targets.BoomFrames <= 0 {
		errs = append(errs, errors.New("target animation frame counts must be positive"))
	}
	if c.Spawn.MinOffset < 0 || c.Spawn.MaxOffset < c.Spawn.MinOffset {
		errs = append(errs, fmt.Errorf("spawn offset range invalid: %d..%d", c.Spawn.MinOffset, c.Spawn.MaxOffset))
	}
	if c.Projectile.Speed <= 0 {
		errs = append(errs, fmt.Errorf("projectile speed must be positive, got %g", c.Projectile.Speed))
	}
	if c.Actor.Frames <= 0 || c.Actor.AnimationRate <= 0 {
		errs = append(errs, errors.New("actor frames and animation rate must be positive"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// TierForPreset returns the word tier a preset starts on.
func TierForPreset(preset DifficultyPreset) string {
	switch preset {
	case DifficultyNormal:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "easy"
	}
}

// ApplyPreset sets the starting word tier for a difficulty preset.
// Speed scaling is switched by DifficultyManager.ApplyPreset.
func ApplyPreset(cfg *WordfallConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyFixed {
		return
	}
	cfg.Gameplay.Tier = TierForPreset(preset)
}
