package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the nominal duration of one tick.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Current level number (1-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Cue is a fire-and-forget notification for the audio layer.
type Cue int

const (
	CueNone   Cue = iota
	CueGong       // Actor finished its wind-up and launched a projectile
	CueImpact     // A projectile struck a target
	CueMiss       // A target reached the ground unclaimed
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueGong:
		return "Gong"
	case CueImpact:
		return "Impact"
	case CueMiss:
		return "Miss"
	default:
		return "None"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any cues emitted during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
