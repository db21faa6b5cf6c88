package config

import (
	_ "embed"
)

//go:embed defaults/wordfall.yaml
var defaultWordfallYAML []byte

// DefaultWordfallConfig returns the default configuration.
// Field geometry and projectile values follow a 1200x700 reference field.
func DefaultWordfallConfig() WordfallConfig {
	return WordfallConfig{
		Field: FieldConfig{
			Width:         1200,
			Height:        700,
			MaxFrameDelta: 0.25,
		},
		Targets: TargetConfig{
			Width:         240,
			Height:        100,
			MinSpeed:      4,
			MaxSpeed:      5,
			AnimationRate: 10,
			FallFrames:    6,
			BoomFrames:    6,
		},
		Spawn: SpawnConfig{
			LeftPad:      50,
			RightPad:     50,
			MinSpacing:   60,
			TextMargin:   10,
			MinOffset:    10,
			MaxOffset:    50,
			InnerRetries: 50,
			OuterRetries: 1000,
		},
		Projectile: ProjectileConfig{
			Speed:           1200,
			BaseRadius:      20,
			Thickness:       4,
			OscillationRate: 30,
			Magnitude:       5,
		},
		Actor: ActorConfig{
			X:             69,
			Y:             509,
			Width:         160,
			Height:        160,
			MuzzleOffsetX: 30,
			MuzzleOffsetY: -20,
			Frames:        4,
			AnimationRate: 10,
		},
		Gameplay: GameplayConfig{
			Lives: 7,
			Tier:  "easy",
		},
		Tiers: TiersConfig{
			Easy:   LengthRange{Min: 4, Max: 6},
			Medium: LengthRange{Min: 7, Max: 12},
			Hard:   LengthRange{Min: 13, Max: 18},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 15,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultWordfallYAML
}
