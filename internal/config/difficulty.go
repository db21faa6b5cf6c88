package config

import "math"

// DifficultyManager calculates dynamic game parameters based on level/score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// ApplyPreset switches progression and the initial level to a preset.
// Fixed turns progression off and keeps the configured initial level.
func (d *DifficultyManager) ApplyPreset(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.SetEnabled(false)
	default:
		d.SetEnabled(true)
		d.SetInitialLevel(InitialLevelForPreset(preset))
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a run that
// has reached levelNumber (1-based) with the given score.
func (d *DifficultyManager) Level(levelNumber int, score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "level":
		// Level 1 is the baseline
		progress = float64(levelNumber-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scaled speed for the current difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, levelNumber int, score int) float64 {
	level := d.Level(levelNumber, score)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpeedRange returns the integer per-tick speed bounds for a level.
// The minimum never drops below 1.
func (d *DifficultyManager) SpeedRange(minSpeed, maxSpeed, levelNumber, score int) (int, int) {
	lo := int(math.Round(d.Speed(float64(minSpeed), levelNumber, score)))
	hi := int(math.Round(d.Speed(float64(maxSpeed), levelNumber, score)))
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
