package game

import "image/color"

// Renderer handles rendering of game entities
type Renderer struct {
	background color.Color
}

// NewRenderer creates a new renderer clearing to background
func NewRenderer(background color.Color) *Renderer {
	return &Renderer{background: background}
}

// Render draws one frame back to front: background, player, enemies, projectiles,
// explosions. Shots and explosions therefore always sit above the ships.
func (r *Renderer) Render(c Canvas, e *Engine) {
	c.Clear(r.background)

	if e.Player != nil {
		e.Player.Render(c)
	}
	for _, enemy := range e.Enemies {
		enemy.Render(c)
	}
	for _, p := range e.Projectiles {
		p.Render(c)
	}
	for _, x := range e.Explosions {
		x.Render(c)
	}

	if e.debug.ShowHitboxes {
		renderHitboxes(c, e)
	}
}
