package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordfall/internal/core"
)

// fakeGame records what the platform hands it.
type fakeGame struct {
	resets   int
	frames   []core.InputFrame
	sizes    [][2]int
	measure  func(string) int
	state    core.GameState
	cues     []core.Cue
	rendered int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(w, h int) { g.sizes = append(g.sizes, [2]int{w, h}) }
func (g *fakeGame) SetCellWidth(f func(string) int) { g.measure = f }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state, Cues: g.cues}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.rendered++
	dst.Clear()
	dst.DrawText(0, 0, "HELLO")
}

type fakePlayer struct {
	played []core.Cue
}

func (p *fakePlayer) Play(c core.Cue) {
	p.played = append(p.played, c)
}

func newTestModel(g *fakeGame, p CuePlayer) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewModel(g, p, nil, cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelReservesHelpRow(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, want 23", m.screen.Height())
	}
	if g.measure == nil || g.measure("日本") != 4 {
		t.Error("cell width should be installed on the game")
	}
	if m.Init() == nil || g.resets != 1 {
		t.Error("Init should reset the game and start ticking")
	}
}

func TestModelKeysReachGameInOrder(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, runeKey("a"))
	m, _ = update(t, m, runeKey("b"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, runeKey("c"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg(time.Unix(100, 0)))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}

	if len(g.frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(g.frames))
	}
	events := g.frames[0].Events
	want := []core.InputEvent{
		{Text: "a"}, {Text: "b"}, {Action: core.ActionBackspace}, {Text: "c"}, {Action: core.ActionSubmit},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}

	// Input is cleared after each tick
	m, _ = update(t, m, TickMsg(time.Unix(100, 0).Add(20*time.Millisecond)))
	if n := len(g.frames[1].Events); n != 0 {
		t.Errorf("second frame has %d events, want 0", n)
	}
	_ = m
}

func TestModelTickElapsed(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	start := time.Unix(100, 0)

	m, _ = update(t, m, TickMsg(start))
	m, _ = update(t, m, TickMsg(start.Add(40*time.Millisecond)))
	_, _ = update(t, m, TickMsg(start.Add(50*time.Millisecond)))

	want := []time.Duration{0, 40 * time.Millisecond, 10 * time.Millisecond}
	for i, w := range want {
		if g.frames[i].Elapsed != w {
			t.Errorf("frame %d elapsed = %v, want %v", i, g.frames[i].Elapsed, w)
		}
	}
}

func TestModelPlaysCues(t *testing.T) {
	g := &fakeGame{cues: []core.Cue{core.CueGong, core.CueImpact}}
	p := &fakePlayer{}
	m := newTestModel(g, p)

	_, _ = update(t, m, TickMsg(time.Unix(1, 0)))
	if len(p.played) != 2 || p.played[0] != core.CueGong || p.played[1] != core.CueImpact {
		t.Errorf("played %v", p.played)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelKeysFollowGameState(t *testing.T) {
	g := &fakeGame{state: core.GameState{Paused: true}}
	m := newTestModel(g, nil)
	m, _ = update(t, m, TickMsg(time.Unix(1, 0)))

	m, _ = update(t, m, runeKey("2"))
	_, _ = update(t, m, TickMsg(time.Unix(2, 0)))

	if !g.frames[1].Has(core.ActionTierMedium) {
		t.Error("2 should select the medium tier while paused")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize reset the game %d times", g.resets-1)
	}
	if len(g.sizes) != 1 || g.sizes[0] != [2]int{100, 29} {
		t.Errorf("sizes = %v", g.sizes)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	view := m.View()
	if !strings.Contains(view, "HELLO") {
		t.Error("view should contain the rendered screen")
	}
	if !strings.Contains(view, "fire") {
		t.Error("view should contain the help line")
	}
}
