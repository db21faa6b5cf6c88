package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionSubmit            // Enter - submit the typed word
	ActionBackspace         // Backspace - delete the last typed character
	ActionPause             // Esc - pause/unpause game
	ActionRestart           // Enter/R after game over - start a new run
	ActionQuit              // Ctrl+C - exit
	ActionTierEasy          // 1 while paused - short words
	ActionTierMedium        // 2 while paused - medium words
	ActionTierHard          // 3 while paused - long words
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSubmit:
		return "Submit"
	case ActionBackspace:
		return "Backspace"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionTierEasy:
		return "TierEasy"
	case ActionTierMedium:
		return "TierMedium"
	case ActionTierHard:
		return "TierHard"
	default:
		return "Unknown"
	}
}

// InputEvent is one decoded input signal. Order matters for typing:
// "ab<backspace>c<enter>" must submit "ac", so a frame keeps events in
// arrival order instead of a set.
type InputEvent struct {
	Action Action
	Text   string // Appended text when Action is ActionNone
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Events lists actions and typed text in arrival order.
	Events []InputEvent

	// Elapsed is the wall time covered by this frame. Zero means the
	// nominal frame duration of the runtime config.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Events = append(f.Events, InputEvent{Action: a})
}

// Type appends typed text to this frame.
func (f *InputFrame) Type(text string) {
	if text == "" {
		return
	}
	f.Events = append(f.Events, InputEvent{Text: text})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Events = append([]InputEvent(nil), f.Events...)
	clone.Elapsed = f.Elapsed
	return clone
}
