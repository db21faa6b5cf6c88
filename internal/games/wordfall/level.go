package wordfall

import (
	"io"
	"math/rand"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/words"
)

// LevelState tracks one batch of targets.
// Typed + Missed never exceeds Generated.
type LevelState struct {
	Number    int
	Generated int
	Typed     int
	Missed    int
	Escaped   int // Typed targets that reached the ground unstruck

	Targets     []*Target
	Projectiles []*Projectile

	Pending bool // Next tick generates the level
}

// PlayerState is the run-wide score and lives.
type PlayerState struct {
	Lives int
	Score int
}

// GameOver reports whether the run has ended.
func (p PlayerState) GameOver() bool {
	return p.Lives <= 0
}

// SimulationContext is the mutable state threaded through every controller call.
type SimulationContext struct {
	Level  LevelState
	Player PlayerState
	Tier   words.Tier
	RNG    *rand.Rand
}

// NewSimulationContext creates a context seeded for reproducible runs.
func NewSimulationContext(tier words.Tier, seed int64) *SimulationContext {
	return &SimulationContext{
		Tier: tier,
		RNG:  rand.New(rand.NewSource(seed)),
	}
}

// TickReport summarizes what happened during one controller tick.
type TickReport struct {
	Generated     int      // Targets placed when a level was generated this tick
	Struck        []uint64 // Targets hit by a projectile
	Missed        []uint64 // Unclaimed targets that reached the ground
	Escaped       []uint64 // Claimed targets that reached the ground unstruck
	LevelComplete bool
	GameOver      bool // Lives ran out this tick
}

// Score returns the points for claiming text at the given speed.
func Score(text string, speed int) int {
	n := utf8.RuneCountInString(text)
	return speed * n * 10 * (n / 3)
}

// LevelController owns level generation, matching, collisions and the
// miss/score bookkeeping.
type LevelController struct {
	cfg        config.WordfallConfig
	catalog    *words.Catalog
	planner    *SpawnPlanner
	difficulty *config.DifficultyManager
	logger     *log.Logger

	index  *intmap.Map[uint64, *Target]
	nextID uint64
	field  core.RectF
}

// NewLevelController creates a controller. A nil logger discards output.
func NewLevelController(cfg config.WordfallConfig, catalog *words.Catalog, m TextMeasurer, logger *log.Logger) *LevelController {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if catalog == nil {
		catalog = words.NewCatalog(nil, words.DefaultTiers())
	}
	return &LevelController{
		cfg:        cfg,
		catalog:    catalog,
		planner:    NewSpawnPlanner(cfg.Spawn, m),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     logger,
		index:      intmap.New[uint64, *Target](32),
		field:      core.NewRectF(0, 0, cfg.Field.Width, cfg.Field.Height),
	}
}

// Planner returns the spawn planner.
func (c *LevelController) Planner() *SpawnPlanner {
	return c.planner
}

// SetPreset applies a difficulty preset to target speed scaling.
func (c *LevelController) SetPreset(preset config.DifficultyPreset) {
	c.difficulty.ApplyPreset(preset)
}

// Field returns the play field rectangle.
func (c *LevelController) Field() core.RectF {
	return c.field
}

// Target looks up a live target by ID.
func (c *LevelController) Target(id uint64) (*Target, bool) {
	return c.index.Get(id)
}

// Reset restores start values: full lives, zero score, level 1 pending.
func (c *LevelController) Reset(ctx *SimulationContext) {
	ctx.Player = PlayerState{Lives: c.cfg.Gameplay.Lives}
	ctx.Level = LevelState{Number: 1, Pending: true}
	c.index.Clear()
}

// GenerateLevel populates the current level with Number targets, or as
// many as fit. Returns the number placed.
func (c *LevelController) GenerateLevel(ctx *SimulationContext) int {
	lvl := &ctx.Level
	requested := lvl.Number

	if c.catalog.Len(ctx.Tier) == 0 {
		c.logger.Warn("word tier is empty, level has no targets", "tier", ctx.Tier, "level", lvl.Number)
	}

	supply := func(rng *rand.Rand) (string, bool) {
		return c.catalog.Draw(ctx.Tier, rng)
	}
	placements := c.planner.Plan(supply, requested, c.cfg.Targets.Width, c.cfg.Targets.Height, c.cfg.Field.Width, ctx.RNG)
	if len(placements) < requested {
		c.logger.Warn("placed fewer targets than requested",
			"level", lvl.Number, "requested", requested, "placed", len(placements))
	}

	lo, hi := c.difficulty.SpeedRange(c.cfg.Targets.MinSpeed, c.cfg.Targets.MaxSpeed, lvl.Number, ctx.Player.Score)

	lvl.Targets = lvl.Targets[:0]
	lvl.Projectiles = lvl.Projectiles[:0]
	c.index.Clear()
	for _, p := range placements {
		speed := lo + ctx.RNG.Intn(hi-lo+1)
		c.nextID++
		t := NewTarget(c.nextID, p.Text, speed, p.X, p.Y, c.cfg.Targets)
		lvl.Targets = append(lvl.Targets, t)
		c.index.Put(t.ID, t)
	}

	lvl.Generated = len(placements)
	lvl.Typed = 0
	lvl.Missed = 0
	lvl.Escaped = 0
	lvl.Pending = false

	c.logger.Debug("level generated", "level", lvl.Number, "tier", ctx.Tier, "targets", lvl.Generated, "speed_min", lo, "speed_max", hi)
	return lvl.Generated
}

// OnSubmission matches a submitted word against falling targets. On a
// match the target is claimed and scored; the caller queues the launch.
func (c *LevelController) OnSubmission(ctx *SimulationContext, text string) *Target {
	if ctx.Player.GameOver() {
		return nil
	}
	t := Resolve(text, ctx.Level.Targets)
	if t == nil {
		return nil
	}

	t.Claim()
	ctx.Level.Typed++
	ctx.Player.Score += Score(t.Text, t.Speed)
	return t
}

// Launch fires a projectile from origin at the target's current centre.
// Dropped if the target is gone or no longer awaiting a strike.
func (c *LevelController) Launch(ctx *SimulationContext, targetID uint64, origin core.Vec2) *Projectile {
	t, ok := c.index.Get(targetID)
	if !ok || !t.Strikable() {
		return nil
	}
	p := NewProjectile(origin, t.Center(), targetID, c.cfg.Projectile)
	ctx.Level.Projectiles = append(ctx.Level.Projectiles, p)
	return p
}

// Tick advances one frame: generation, movement, collisions, removals,
// then level completion and game over.
func (c *LevelController) Tick(ctx *SimulationContext, dt float64) TickReport {
	var report TickReport
	if ctx.Player.GameOver() {
		return report
	}

	lvl := &ctx.Level
	if lvl.Pending {
		report.Generated = c.GenerateLevel(ctx)
	}

	for _, t := range lvl.Targets {
		t.Advance(dt)
	}
	for _, p := range lvl.Projectiles {
		p.Advance(dt, c.field)
	}

	report.Struck = c.collide(lvl)

	// Boundary checks happen after collisions so a claimed target can
	// still be hit on the tick it crosses the ground.
	for _, t := range lvl.Targets {
		if !t.IsPastBoundary(c.cfg.Field.Height) {
			continue
		}
		switch {
		case t.MarkMissed():
			lvl.Missed++
			ctx.Player.Lives--
			report.Missed = append(report.Missed, t.ID)
		case t.MarkEscaped():
			lvl.Escaped++
			report.Escaped = append(report.Escaped, t.ID)
			c.logger.Debug("claimed target escaped", "id", t.ID, "word", t.Text)
		}
	}

	c.removeFinished(lvl)

	if lvl.Generated > 0 && lvl.Typed+lvl.Missed >= lvl.Generated &&
		len(lvl.Targets) == 0 && len(lvl.Projectiles) == 0 {
		c.logger.Info("level complete", "level", lvl.Number, "typed", lvl.Typed, "missed", lvl.Missed, "score", ctx.Player.Score)
		lvl.Number++
		lvl.Pending = true
		report.LevelComplete = true
	}

	if ctx.Player.Lives <= 0 {
		ctx.Player.Lives = 0
		report.GameOver = true
		c.logger.Info("game over", "level", lvl.Number, "score", ctx.Player.Score)
	}

	return report
}

// collide strikes at most one claimed target per live projectile.
func (c *LevelController) collide(lvl *LevelState) []uint64 {
	var struck []uint64
	for _, p := range lvl.Projectiles {
		if p.Done {
			continue
		}
		box := p.Bounds()
		for _, t := range lvl.Targets {
			if t.Strikable() && box.Intersects(t.Bounds()) {
				t.Strike()
				p.Done = true
				struck = append(struck, t.ID)
				break
			}
		}
	}
	return struck
}

// removeFinished drops done targets and spent projectiles.
func (c *LevelController) removeFinished(lvl *LevelState) {
	var done []int
	for i, t := range lvl.Targets {
		if t.State == StateDone {
			done = append(done, i)
		}
	}
	lvl.Targets = compact(lvl.Targets, done, func(t *Target) { c.index.Del(t.ID) })

	done = done[:0]
	for i, p := range lvl.Projectiles {
		if p.Done {
			done = append(done, i)
		}
	}
	lvl.Projectiles = compact(lvl.Projectiles, done, nil)
}

// compact removes the items at the given ascending indices in place.
func compact[T any](items []*T, remove []int, onRemove func(*T)) []*T {
	if len(remove) == 0 {
		return items
	}
	kept := items[:0]
	next := 0
	for i, item := range items {
		if next < len(remove) && remove[next] == i {
			next++
			if onRemove != nil {
				onRemove(item)
			}
			continue
		}
		kept = append(kept, item)
	}
	for i := len(kept); i < len(items); i++ {
		items[i] = nil
	}
	return kept
}
