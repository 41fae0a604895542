package game

import "image/color"

var (
	colorHitboxPlayer = color.NRGBA{0, 255, 255, 80}
	colorHitboxEnemy  = color.NRGBA{255, 0, 255, 80}
	colorHitboxShot   = color.NRGBA{255, 255, 255, 120}
)

// DebugState holds debug flags that persist across game resets
type DebugState struct {
	ShowHitboxes bool // Overlay the collision box of every live entity
}

// Debug returns the engine's debug flags for the host to toggle
func (e *Engine) Debug() *DebugState {
	return &e.debug
}

// renderHitboxes overlays the boxes the collision resolver tests against
func renderHitboxes(c Canvas, e *Engine) {
	if e.Player != nil {
		c.FillRect(e.Player.Bounds(), colorHitboxPlayer)
	}
	for _, enemy := range e.Enemies {
		if enemy.IsAlive {
			c.FillRect(enemy.Bounds(), colorHitboxEnemy)
		}
	}
	for _, p := range e.Projectiles {
		if p.IsActive {
			c.FillRect(p.Bounds(), colorHitboxShot)
		}
	}
}
