package game

// Events holds the callbacks the engine uses to notify its host. Any of them may be nil.
// They run synchronously inside Update and must not call back into the engine's
// Update or Render.
type Events struct {
	// LevelUp fires after a new wave has been set up, with the new wave number
	LevelUp func(wave int)

	// StateChanged fires on every state transition
	StateChanged func(from, to GameState)

	// EnemyDestroyed fires when a player projectile kills an enemy
	EnemyDestroyed func(kind EnemyKind, points int)

	// PlayerHit fires when an enemy projectile costs the player a life
	PlayerHit func(livesLeft int)
}

func (ev *Events) levelUp(wave int) {
	if ev != nil && ev.LevelUp != nil {
		ev.LevelUp(wave)
	}
}

func (ev *Events) stateChanged(from, to GameState) {
	if ev != nil && ev.StateChanged != nil {
		ev.StateChanged(from, to)
	}
}

func (ev *Events) enemyDestroyed(kind EnemyKind, points int) {
	if ev != nil && ev.EnemyDestroyed != nil {
		ev.EnemyDestroyed(kind, points)
	}
}

func (ev *Events) playerHit(livesLeft int) {
	if ev != nil && ev.PlayerHit != nil {
		ev.PlayerHit(livesLeft)
	}
}
