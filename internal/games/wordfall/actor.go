package wordfall

import (
	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
)

// Actor is the launcher that winds up before each shot. Claims queue up
// in order; one wind-up runs at a time and each completion releases the
// target ID at the head of the queue.
type Actor struct {
	cfg     config.ActorConfig
	queue   []uint64
	phase   float64
	winding bool
}

// NewActor creates an idle actor.
func NewActor(cfg config.ActorConfig) *Actor {
	return &Actor{cfg: cfg}
}

// Claimed queues a launch at the given target.
func (a *Actor) Claimed(targetID uint64) {
	a.queue = append(a.queue, targetID)
	if !a.winding {
		a.winding = true
		a.phase = 0
	}
}

// Advance runs the wind-up by dt and returns the target IDs whose wind-up
// completed during this call, in claim order.
func (a *Actor) Advance(dt float64) []uint64 {
	if !a.winding {
		return nil
	}

	var done bool
	a.phase, done = AdvancePhase(a.phase, a.cfg.AnimationRate, dt, a.cfg.Frames)
	if !done {
		return nil
	}

	launched := []uint64{a.queue[0]}
	a.queue = a.queue[1:]
	a.phase = 0
	a.winding = len(a.queue) > 0
	return launched
}

// Winding reports whether a wind-up is in progress.
func (a *Actor) Winding() bool {
	return a.winding
}

// Pending returns the number of queued launches, including the current one.
func (a *Actor) Pending() int {
	return len(a.queue)
}

// Frame returns the current wind-up frame, 0 when idle.
func (a *Actor) Frame() int {
	if !a.winding {
		return 0
	}
	f := int(a.phase)
	if last := int(a.cfg.Frames) - 1; f > last {
		return last
	}
	return f
}

// Bounds returns the actor's box on the field.
func (a *Actor) Bounds() core.RectF {
	return core.NewRectF(a.cfg.X, a.cfg.Y, a.cfg.Width, a.cfg.Height)
}

// Muzzle returns the point projectiles are launched from.
func (a *Actor) Muzzle() core.Vec2 {
	c := a.Bounds().Center()
	return core.Vec2{X: c.X + a.cfg.MuzzleOffsetX, Y: c.Y + a.cfg.MuzzleOffsetY}
}

// Reset drops all queued launches.
func (a *Actor) Reset() {
	a.queue = a.queue[:0]
	a.phase = 0
	a.winding = false
}
