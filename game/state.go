package game

// GameState is the phase of the simulation
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateVictory
)

// String returns the state name
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameOver"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the state only leaves through Reset
func (s GameState) IsTerminal() bool {
	return s == StateGameOver || s == StateVictory
}

// GameStats are the counters owned by the engine
type GameStats struct {
	Score            int
	Lives            int
	Wave             int
	EnemiesDestroyed int
}

// setState moves the engine to next and notifies the observer
func (e *Engine) setState(next GameState) {
	prev := e.State
	if prev == next {
		return
	}
	e.State = next
	e.events.stateChanged(prev, next)
}

// TogglePause flips between playing and paused. Other states ignore it.
func (e *Engine) TogglePause() {
	switch e.State {
	case StatePlaying:
		e.setState(StatePaused)
	case StatePaused:
		e.setState(StatePlaying)
	}
}
