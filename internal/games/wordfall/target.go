package wordfall

import (
	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
)

// TargetState is the lifecycle stage of a meteor target.
type TargetState int

const (
	StateFalling   TargetState = iota // Unclaimed, moving down
	StateTyped                        // Claimed by the player, still moving
	StateHit                          // Struck this tick, explosion pending
	StateExploding                    // Explosion animation running
	StateDone                         // Ready for removal
)

// String returns a human-readable name for the state.
func (s TargetState) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateTyped:
		return "typed"
	case StateHit:
		return "hit"
	case StateExploding:
		return "exploding"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Target is a falling meteor carrying one word.
// States only move forward: Falling -> Typed -> Hit -> Exploding -> Done,
// Falling -> Done (missed), or Typed -> Done (escaped).
type Target struct {
	ID    uint64
	Text  string
	Speed int // Units per tick

	X, Y, W, H float64

	State   TargetState
	Phase   float64
	Booming bool
	Missed  bool // Reached the ground unclaimed
	Escaped bool // Reached the ground claimed but never struck

	rate       float64
	fallFrames float64
	boomFrames float64
}

// NewTarget creates a falling target at (x, y).
func NewTarget(id uint64, text string, speed int, x, y float64, cfg config.TargetConfig) *Target {
	return &Target{
		ID:         id,
		Text:       text,
		Speed:      speed,
		X:          x,
		Y:          y,
		W:          cfg.Width,
		H:          cfg.Height,
		State:      StateFalling,
		rate:       cfg.AnimationRate,
		fallFrames: cfg.FallFrames,
		boomFrames: cfg.BoomFrames,
	}
}

// Bounds returns the collision box of the target.
func (t *Target) Bounds() core.RectF {
	return core.NewRectF(t.X, t.Y, t.W, t.H)
}

// Center returns the centre of the target.
func (t *Target) Center() core.Vec2 {
	return t.Bounds().Center()
}

// Bottom returns the y-coordinate of the bottom edge.
func (t *Target) Bottom() float64 {
	return t.Y + t.H
}

// Typed reports whether the player has claimed this target.
func (t *Target) Typed() bool {
	return t.State != StateFalling && !t.Missed
}

// Struck reports whether a projectile has hit this target.
func (t *Target) Struck() bool {
	return t.Booming
}

// Strikable reports whether a projectile may hit this target.
func (t *Target) Strikable() bool {
	return t.State == StateTyped
}

// Claim marks the target as typed. No-op unless falling.
func (t *Target) Claim() bool {
	if t.State != StateFalling {
		return false
	}
	t.State = StateTyped
	return true
}

// Strike starts the explosion. No-op unless typed and not yet struck.
func (t *Target) Strike() bool {
	if t.State != StateTyped {
		return false
	}
	t.State = StateHit
	t.Booming = true
	t.Phase = 0
	return true
}

// MarkMissed retires an unclaimed target that reached the ground.
func (t *Target) MarkMissed() bool {
	if t.State != StateFalling {
		return false
	}
	t.State = StateDone
	t.Missed = true
	return true
}

// MarkEscaped retires a claimed, unstruck target that reached the ground.
func (t *Target) MarkEscaped() bool {
	if t.State != StateTyped {
		return false
	}
	t.State = StateDone
	t.Escaped = true
	return true
}

// IsPastBoundary reports whether the bottom edge is below the field.
func (t *Target) IsPastBoundary(fieldH float64) bool {
	return t.Bottom() > fieldH
}

// Advance moves and animates the target by one tick.
// Returns true once the target is ready for removal.
func (t *Target) Advance(dt float64) bool {
	switch t.State {
	case StateFalling, StateTyped:
		// Movement is per tick, animation per second
		t.Y += float64(t.Speed)
		t.Phase = LoopPhase(t.Phase, t.rate, dt, t.fallFrames)
	case StateHit:
		t.State = StateExploding
		fallthrough
	case StateExploding:
		var done bool
		t.Phase, done = AdvancePhase(t.Phase, t.rate, dt, t.boomFrames)
		if done {
			t.State = StateDone
		}
	}
	return t.State == StateDone
}

// Frame returns the sprite frame index: 0-5 while falling, then the
// explosion frames after them.
func (t *Target) Frame() int {
	if t.Booming {
		f := int(t.fallFrames) + int(t.Phase)
		last := int(t.fallFrames+t.boomFrames) - 1
		if f > last {
			return last
		}
		return f
	}
	return int(t.Phase)
}
