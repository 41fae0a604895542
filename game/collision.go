package game

import "image/color"

var (
	colorEnemyExplosion  = color.RGBA{255, 170, 40, 255}
	colorPlayerExplosion = color.RGBA{255, 60, 60, 255}
)

// CollisionSystem resolves projectile hits. Both passes test hitboxes pairwise in
// slice order, so the first living enemy in the formation wins a tie.
type CollisionSystem struct {
	engine *Engine
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(engine *Engine) *CollisionSystem {
	return &CollisionSystem{engine: engine}
}

// CheckCollisions runs the player-projectile pass, then the enemy-projectile pass
func (c *CollisionSystem) CheckCollisions() {
	c.checkPlayerProjectiles()
	if c.engine.State != StatePlaying {
		return
	}
	c.checkEnemyProjectiles()
}

// eligible reports whether p may collide this tick. A projectile never collides on the
// tick it was fired.
func (c *CollisionSystem) eligible(p *Projectile) bool {
	return p.IsActive && p.spawnTick != c.engine.tick
}

// checkPlayerProjectiles lets every player shot kill at most one enemy
func (c *CollisionSystem) checkPlayerProjectiles() {
	e := c.engine
	for _, p := range e.Projectiles {
		if !p.IsPlayerProjectile || !c.eligible(p) {
			continue
		}
		shot := NewHitbox(p.Bounds())
		for _, enemy := range e.Enemies {
			if !enemy.IsAlive {
				continue
			}
			if !shot.Overlaps(NewHitbox(enemy.Bounds())) {
				continue
			}
			c.HandleEnemyHit(p, enemy)
			break // no piercing
		}
	}
}

// HandleEnemyHit kills enemy with projectile p
func (c *CollisionSystem) HandleEnemyHit(p *Projectile, enemy *Enemy) {
	e := c.engine
	p.IsActive = false
	enemy.IsAlive = false

	e.Stats.Score += enemy.Points
	e.Stats.EnemiesDestroyed++
	e.spawnExplosion(enemy.Center(), colorEnemyExplosion)
	e.events.enemyDestroyed(enemy.Kind, enemy.Points)
}

// checkEnemyProjectiles applies enemy shots to the player
func (c *CollisionSystem) checkEnemyProjectiles() {
	e := c.engine
	if e.Player == nil {
		return
	}
	player := NewHitbox(e.Player.Bounds())
	for _, p := range e.Projectiles {
		if p.IsPlayerProjectile || !c.eligible(p) {
			continue
		}
		if !NewHitbox(p.Bounds()).Overlaps(player) {
			continue
		}
		c.HandlePlayerHit(p)
		if e.State != StatePlaying {
			return
		}
	}
}

// HandlePlayerHit consumes p and, unless the player is invulnerable, costs one life
func (c *CollisionSystem) HandlePlayerHit(p *Projectile) {
	e := c.engine
	p.IsActive = false
	if e.Player.Invulnerable {
		return
	}

	e.Stats.Lives--
	if e.Stats.Lives < 0 {
		e.Stats.Lives = 0
	}
	e.Player.Hit(e.config.InvulnerabilityMs)
	e.spawnExplosion(e.Player.Center(), colorPlayerExplosion)
	e.events.playerHit(e.Stats.Lives)

	if e.Stats.Lives == 0 {
		e.setState(StateGameOver)
	}
}
