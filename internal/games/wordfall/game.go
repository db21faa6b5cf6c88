package wordfall

import (
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/words"
)

// Minimum terminal size for a playable field.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the wordfall typing game.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.WordfallConfig
	logger  *log.Logger

	wordList []string
	catalog  *words.Catalog

	ctx   *SimulationContext
	ctrl  *LevelController
	actor *Actor
	clock *Clock

	input      string
	pauseTier  words.Tier // Tier when the pause began
	cellWidth  func(string) int
	lastReport TickReport
	lastCues   []core.Cue

	screenTooSmall bool
}

// New creates a game drawing words from list. A nil logger discards output.
func New(list []string, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		wordList:  list,
		logger:    logger,
		cellWidth: utf8.RuneCountInString,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "wordfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Wordfall"
}

// SetCellWidth sets the function measuring text in terminal cells.
func (g *Game) SetCellWidth(f func(string) int) {
	if f == nil {
		f = utf8.RuneCountInString
	}
	g.cellWidth = f
	if g.ctrl != nil {
		g.ctrl.Planner().SetMeasurer(g.measurer())
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		g.logger.Warn("config unavailable, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultWordfallConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	tier, err := words.ParseTier(cfg.Gameplay.Tier)
	if err != nil {
		g.logger.Warn("unknown tier in config, using easy", "tier", cfg.Gameplay.Tier)
	}

	g.catalog = words.NewCatalog(g.wordList, tiersFromConfig(cfg.Tiers))
	g.ctrl = NewLevelController(cfg, g.catalog, g.measurer(), g.logger)
	g.ctrl.SetPreset(difficultyPreset)
	g.actor = NewActor(cfg.Actor)
	g.clock = NewClock(cfg.Field.MaxFrameDelta)
	g.ctx = NewSimulationContext(tier, runtime.Seed)
	g.ctrl.Reset(g.ctx)

	g.input = ""
	g.pauseTier = tier
	g.lastReport = TickReport{}
	g.lastCues = nil
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	counts := g.catalog.Counts()
	g.logger.Info("game reset", "seed", runtime.Seed, "tier", tier, "words", g.catalog.Size(),
		"easy", counts[words.TierEasy], "medium", counts[words.TierMedium], "hard", counts[words.TierHard])
}

// Resize adapts rendering to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
	if g.ctrl != nil {
		g.ctrl.Planner().SetMeasurer(g.measurer())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.lastCues = g.lastCues[:0]

	if g.ctx.Player.GameOver() {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Pause and tier selection apply before the clock runs
	for _, ev := range in.Events {
		switch ev.Action {
		case core.ActionPause:
			g.togglePause()
		case core.ActionTierEasy:
			g.selectTier(words.TierEasy)
		case core.ActionTierMedium:
			g.selectTier(words.TierMedium)
		case core.ActionTierHard:
			g.selectTier(words.TierHard)
		}
	}

	elapsed := in.Elapsed
	if elapsed <= 0 {
		elapsed = g.runtime.FrameDuration()
	}
	if g.clock.Paused() || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	dt := g.clock.Advance(elapsed)

	// Wind-ups that finish now were claimed on an earlier frame
	for _, id := range g.actor.Advance(dt) {
		g.lastCues = append(g.lastCues, core.CueGong)
		if g.ctrl.Launch(g.ctx, id, g.actor.Muzzle()) == nil {
			g.logger.Debug("launch dropped", "id", id)
		}
	}

	for _, ev := range in.Events {
		switch ev.Action {
		case core.ActionNone:
			g.input += ev.Text
		case core.ActionBackspace:
			g.backspace()
		case core.ActionSubmit:
			g.submit()
		}
	}

	g.lastReport = g.ctrl.Tick(g.ctx, dt)
	for range g.lastReport.Struck {
		g.lastCues = append(g.lastCues, core.CueImpact)
	}
	for range g.lastReport.Missed {
		g.lastCues = append(g.lastCues, core.CueMiss)
	}
	if g.lastReport.GameOver {
		g.input = ""
		g.actor.Reset()
	}

	return core.StepResult{State: g.State(), Cues: append([]core.Cue(nil), g.lastCues...)}
}

// submit resolves the typed word and queues a launch on a match.
func (g *Game) submit() {
	text := g.input
	g.input = ""
	if t := g.ctrl.OnSubmission(g.ctx, text); t != nil {
		g.actor.Claimed(t.ID)
		g.logger.Debug("target claimed", "id", t.ID, "word", t.Text, "score", g.ctx.Player.Score)
	}
}

// backspace removes the last typed rune.
func (g *Game) backspace() {
	if g.input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(g.input)
	g.input = g.input[:len(g.input)-size]
}

// togglePause holds or resumes the simulation. Resuming after a tier
// change starts a new run.
func (g *Game) togglePause() {
	if !g.clock.Paused() {
		g.clock.Pause()
		g.pauseTier = g.ctx.Tier
		return
	}

	g.clock.Resume()
	if g.ctx.Tier != g.pauseTier {
		g.logger.Info("tier changed, starting over", "from", g.pauseTier, "to", g.ctx.Tier)
		g.newRun()
	}
	g.pauseTier = g.ctx.Tier
}

// selectTier changes the word tier. Only allowed while paused.
func (g *Game) selectTier(t words.Tier) {
	if g.clock.Paused() {
		g.ctx.Tier = t
	}
}

// restart begins a new run after game over, held in pause so a tier can
// be chosen first.
func (g *Game) restart() {
	g.newRun()
	g.clock.Pause()
	g.pauseTier = g.ctx.Tier
}

// newRun resets score, lives and level while keeping the tier.
func (g *Game) newRun() {
	g.ctrl.Reset(g.ctx)
	g.actor.Reset()
	g.input = ""
	g.lastReport = TickReport{}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctx.Player.Score,
		Lives:    g.ctx.Player.Lives,
		Level:    g.ctx.Level.Number,
		GameOver: g.ctx.Player.GameOver(),
		Paused:   g.clock.Paused(),
	}
}

// Tier returns the active word tier.
func (g *Game) Tier() words.Tier {
	return g.ctx.Tier
}

// Input returns the text typed so far.
func (g *Game) Input() string {
	return g.input
}

// measurer converts cell widths to field units for the current screen.
func (g *Game) measurer() TextMeasurer {
	cols := g.runtime.ScreenW
	if cols <= 0 {
		cols = core.DefaultConfig().ScreenW
	}
	unitsPerCell := g.cfg.Field.Width / float64(cols)
	cellWidth := g.cellWidth
	return MeasureFunc(func(text string) float64 {
		return float64(cellWidth(text)) * unitsPerCell
	})
}

// tiersFromConfig converts configured length ranges to catalog tiers.
func tiersFromConfig(c config.TiersConfig) words.Tiers {
	return words.Tiers{
		Easy:   words.Range{Min: c.Easy.Min, Max: c.Easy.Max},
		Medium: words.Range{Min: c.Medium.Min, Max: c.Medium.Max},
		Hard:   words.Range{Min: c.Hard.Min, Max: c.Hard.Max},
	}
}
