// Package wordfall implements the falling-word typing game: meteor targets
// carry words down the field, typing a word claims its target, and a
// launched interceptor destroys it.
package wordfall

// AdvancePhase advances a sprite phase by rate*dt and reports whether it
// has reached frames. It never wraps; looping callers reset the phase.
func AdvancePhase(phase, rate, dt, frames float64) (float64, bool) {
	phase += rate * dt
	return phase, phase >= frames
}

// LoopPhase advances a cyclic phase, restarting at zero when it reaches frames.
func LoopPhase(phase, rate, dt, frames float64) float64 {
	phase, done := AdvancePhase(phase, rate, dt, frames)
	if done {
		return 0
	}
	return phase
}
