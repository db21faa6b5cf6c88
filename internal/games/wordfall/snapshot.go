package wordfall

import "math"

// TargetView is the read-only view of one target.
type TargetView struct {
	ID        uint64
	Text      string
	X, Y      float64
	W, H      float64
	State     TargetState
	Typed     bool // Claimed by the player, not missed
	Struck    bool // Hit by a projectile
	Phase     float64
	Frame     int
	Highlight []bool // Runes of Text covered by the active input
}

// ProjectileView is the read-only view of one projectile.
type ProjectileView struct {
	X, Y   float64
	Radius float64
}

// Snapshot is the per-tick state handed to renderers and tests.
type Snapshot struct {
	Tick     uint64
	Elapsed  float64 // Simulated seconds since the run started
	Score    int
	Lives    int
	Level    int
	Tier     string
	Paused   bool
	GameOver bool

	Input     string
	Generated int
	Typed     int
	Missed    int

	ActorFrame   int
	ActorWinding bool
	ActorQueued  int // Launches waiting, including the current wind-up
	Targets      []TargetView
	Projectiles  []ProjectileView
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	lvl := &g.ctx.Level

	targets := make([]TargetView, len(lvl.Targets))
	for i, t := range lvl.Targets {
		targets[i] = TargetView{
			ID:        t.ID,
			Text:      t.Text,
			X:         t.X,
			Y:         t.Y,
			W:         t.W,
			H:         t.H,
			State:     t.State,
			Typed:     t.Typed(),
			Struck:    t.Struck(),
			Phase:     t.Phase,
			Frame:     t.Frame(),
			Highlight: PrefixHighlight(t.Text, g.input),
		}
	}

	projectiles := make([]ProjectileView, len(lvl.Projectiles))
	for i, p := range lvl.Projectiles {
		projectiles[i] = ProjectileView{X: p.Pos.X, Y: p.Pos.Y, Radius: p.Radius}
	}

	return Snapshot{
		Tick:     g.clock.Ticks(),
		Elapsed:  g.clock.Elapsed(),
		Score:    g.ctx.Player.Score,
		Lives:    g.ctx.Player.Lives,
		Level:    lvl.Number,
		Tier:     g.ctx.Tier.String(),
		Paused:   g.clock.Paused(),
		GameOver: g.ctx.Player.GameOver(),

		Input:     g.input,
		Generated: lvl.Generated,
		Typed:     lvl.Typed,
		Missed:    lvl.Missed,

		ActorFrame:   g.actor.Frame(),
		ActorWinding: g.actor.Winding(),
		ActorQueued:  g.actor.Pending(),
		Targets:      targets,
		Projectiles:  projectiles,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	for _, t := range snap.Targets {
		h = h*31 + t.ID
		h = h*31 + math.Float64bits(t.X)
		h = h*31 + math.Float64bits(t.Y)
		h = h*31 + uint64(t.State) //#nosec G115 -- hash computation
		for _, r := range t.Text {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
	}
	for _, p := range snap.Projectiles {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
		h = h*31 + math.Float64bits(p.Radius)
	}
	return h
}
