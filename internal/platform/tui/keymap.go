package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordfall/internal/core"
)

// KeyMap defines the key bindings for the game screen. Bindings are
// enabled per game state, so the same key can mean different things:
// "1" selects a tier while paused and is typed text while playing.
type KeyMap struct {
	Submit     key.Binding
	Backspace  key.Binding
	Pause      key.Binding
	Restart    key.Binding
	TierEasy   key.Binding
	TierMedium key.Binding
	TierHard   key.Binding
	Screenshot key.Binding
	QuitPaused key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Submit, k.Backspace, k.Restart,
		k.TierEasy, k.TierMedium, k.TierHard,
		k.Pause, k.QuitPaused, k.Quit,
	}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Backspace, k.Pause},
		{k.TierEasy, k.TierMedium, k.TierHard},
		{k.Restart, k.Screenshot, k.QuitPaused, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings in the playing state.
func DefaultKeyMap() KeyMap {
	k := KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fire"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "play again"),
		),
		TierEasy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		TierMedium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		TierHard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		QuitPaused: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
	k.SetState(core.GameState{})
	return k
}

// SetState enables the bindings that apply to the given game state.
func (k *KeyMap) SetState(st core.GameState) {
	playing := !st.Paused && !st.GameOver
	paused := st.Paused && !st.GameOver

	k.Submit.SetEnabled(playing)
	k.Backspace.SetEnabled(playing)
	k.Pause.SetEnabled(!st.GameOver)
	k.Restart.SetEnabled(st.GameOver)
	k.TierEasy.SetEnabled(paused)
	k.TierMedium.SetEnabled(paused)
	k.TierHard.SetEnabled(paused)
	k.QuitPaused.SetEnabled(paused || st.GameOver)

	if paused {
		k.Pause.SetHelp("esc", "resume")
	} else {
		k.Pause.SetHelp("esc", "pause")
	}
}

// MapKeyToFrame records the action or text for a key press in frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit), key.Matches(msg, k.QuitPaused):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.TierEasy):
		frame.Set(core.ActionTierEasy)
	case key.Matches(msg, k.TierMedium):
		frame.Set(core.ActionTierMedium)
	case key.Matches(msg, k.TierHard):
		frame.Set(core.ActionTierHard)
	case key.Matches(msg, k.Submit):
		frame.Set(core.ActionSubmit)
	case key.Matches(msg, k.Backspace):
		frame.Set(core.ActionBackspace)
	case k.Submit.Enabled() && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace):
		frame.Type(string(msg.Runes))
	}
	return false
}
