package wordfall

import (
	"unicode/utf8"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/words"
)

const testDT = 1.0 / 60.0

// testConfig returns defaults with fixed, slow targets and no progression.
func testConfig() config.WordfallConfig {
	cfg := config.DefaultWordfallConfig()
	cfg.Difficulty.Enabled = false
	cfg.Targets.MinSpeed = 1
	cfg.Targets.MaxSpeed = 1
	return cfg
}

// runeMeasure measures 10 units per rune.
var runeMeasure = MeasureFunc(func(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * 10
})

func newTestController(cfg config.WordfallConfig, list []string) (*LevelController, *SimulationContext) {
	catalog := words.NewCatalog(list, words.DefaultTiers())
	c := NewLevelController(cfg, catalog, runeMeasure, nil)
	ctx := NewSimulationContext(words.TierEasy, 1)
	c.Reset(ctx)
	return c, ctx
}

// addTarget inserts a hand-placed target into the current level.
func addTarget(c *LevelController, ctx *SimulationContext, text string, x, y float64, speed int) *Target {
	c.nextID++
	t := NewTarget(c.nextID, text, speed, x, y, c.cfg.Targets)
	ctx.Level.Targets = append(ctx.Level.Targets, t)
	ctx.Level.Generated++
	ctx.Level.Pending = false
	c.index.Put(t.ID, t)
	return t
}

func typeFrame(text string) core.InputFrame {
	in := core.NewInputFrame()
	in.Type(text)
	in.Set(core.ActionSubmit)
	return in
}

func actionFrame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
