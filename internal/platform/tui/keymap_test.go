package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordfall/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyToFrame(t *testing.T) {
	playing := core.GameState{}
	paused := core.GameState{Paused: true}
	over := core.GameState{GameOver: true}

	tests := []struct {
		name     string
		state    core.GameState
		msg      tea.KeyMsg
		action   core.Action
		text     string
		wantQuit bool
	}{
		{"enter submits", playing, tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSubmit, "", false},
		{"backspace", playing, tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionBackspace, "", false},
		{"esc pauses", playing, tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, "", false},
		{"letter is text", playing, runeKey("a"), core.ActionNone, "a", false},
		{"digit is text while playing", playing, runeKey("1"), core.ActionNone, "1", false},
		{"q is text while playing", playing, runeKey("q"), core.ActionNone, "q", false},
		{"accented letter", playing, runeKey("á"), core.ActionNone, "á", false},
		{"ctrl+c quits", playing, tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, "", true},

		{"digit selects tier", paused, runeKey("3"), core.ActionTierHard, "", false},
		{"esc resumes", paused, tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, "", false},
		{"q quits while paused", paused, runeKey("q"), core.ActionQuit, "", true},
		{"no typing while paused", paused, runeKey("a"), core.ActionNone, "", false},
		{"no submit while paused", paused, tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone, "", false},

		{"enter restarts", over, tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart, "", false},
		{"r restarts", over, runeKey("r"), core.ActionRestart, "", false},
		{"no pause after game over", over, tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := DefaultKeyMap()
			k.SetState(tt.state)
			frame := core.NewInputFrame()

			quit := k.MapKeyToFrame(tt.msg, &frame)
			if quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", quit, tt.wantQuit)
			}

			var gotAction core.Action
			var gotText string
			for _, ev := range frame.Events {
				if ev.Action != core.ActionNone {
					gotAction = ev.Action
				}
				gotText += ev.Text
			}
			if gotAction != tt.action {
				t.Errorf("action = %v, want %v", gotAction, tt.action)
			}
			if gotText != tt.text {
				t.Errorf("text = %q, want %q", gotText, tt.text)
			}
		})
	}
}

func TestKeyMapHelpFollowsState(t *testing.T) {
	k := DefaultKeyMap()
	if !k.Submit.Enabled() || k.TierEasy.Enabled() {
		t.Error("playing state should enable typing, not tiers")
	}

	k.SetState(core.GameState{Paused: true})
	if k.Submit.Enabled() || !k.TierEasy.Enabled() {
		t.Error("paused state should enable tiers, not typing")
	}
	if k.Pause.Help().Desc != "resume" {
		t.Errorf("pause help = %q, want resume", k.Pause.Help().Desc)
	}

	k.SetState(core.GameState{GameOver: true})
	if !k.Restart.Enabled() || k.Pause.Enabled() {
		t.Error("game over should enable restart only")
	}
}

func TestCellWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"BALAY", 5},
		{"BÁLAY", 5},
		{"日本", 4},
	}
	for _, tt := range tests {
		if got := CellWidth(tt.text); got != tt.want {
			t.Errorf("CellWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
