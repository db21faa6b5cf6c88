package wordfall

import (
	"math"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
)

// Projectile is an oscillating ring that flies toward a claimed target.
type Projectile struct {
	Origin core.Vec2
	Target core.Vec2
	Dir    core.Vec2 // Unit vector, fixed at launch
	Pos    core.Vec2

	Speed           float64 // Units per second
	BaseRadius      float64
	Radius          float64
	Thickness       float64
	Magnitude       float64
	OscillationRate float64
	Phase           float64

	TargetID uint64
	Done     bool
}

// NewProjectile launches a projectile from origin toward target.
// A zero-length path flies straight up.
func NewProjectile(origin, target core.Vec2, targetID uint64, cfg config.ProjectileConfig) *Projectile {
	dir := core.Vec2{X: 0, Y: -1}
	delta := target.Sub(origin)
	if dist := delta.Len(); dist != 0 {
		dir = delta.Scale(1 / dist)
	}

	return &Projectile{
		Origin:          origin,
		Target:          target,
		Dir:             dir,
		Pos:             origin,
		Speed:           cfg.Speed,
		BaseRadius:      cfg.BaseRadius,
		Radius:          cfg.BaseRadius,
		Thickness:       cfg.Thickness,
		Magnitude:       cfg.Magnitude,
		OscillationRate: cfg.OscillationRate,
		TargetID:        targetID,
	}
}

// Bounds returns the square collision box centred on the projectile.
func (p *Projectile) Bounds() core.RectF {
	return core.CenteredRectF(p.Pos, 2*p.Radius, 2*p.Radius)
}

// Advance moves the projectile and updates its radius.
// It finishes once the target point is reached on both axes or it
// leaves the field. Returns the done flag.
func (p *Projectile) Advance(dt float64, field core.RectF) bool {
	if p.Done {
		return true
	}

	p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))

	p.Phase += p.OscillationRate * dt
	p.Radius = math.Max(p.Thickness, math.Floor(p.BaseRadius+p.Magnitude*math.Sin(p.Phase)))

	if (reached(p.Dir.X, p.Pos.X, p.Target.X) && reached(p.Dir.Y, p.Pos.Y, p.Target.Y)) ||
		!p.Bounds().Intersects(field) {
		p.Done = true
	}
	return p.Done
}

// reached reports whether pos has met or passed target moving along d.
func reached(d, pos, target float64) bool {
	switch {
	case d > 0:
		return pos >= target
	case d < 0:
		return pos <= target
	default:
		return true
	}
}
