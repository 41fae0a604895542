package game

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// cullMargin is how far past the top or bottom edge a projectile may travel before it is culled
const cullMargin = 20.0

// Player is the ship controlled by the user
type Player struct {
	Pos  Vec2
	Size Size

	// Speed in pixels per tick
	Speed float64

	// Direction is -1 (left), 0 (idle) or +1 (right)
	Direction int

	// Invulnerable is set by a hit and cleared when InvulnerableMs runs out
	Invulnerable   bool
	InvulnerableMs float64

	// Sprite may be nil, in which case a fallback shape is drawn
	Sprite image.Image

	lastShotMs float64
	hasShot    bool
}

// NewPlayer creates the player centred at the bottom of the canvas
func NewPlayer(cfg GameConfig, sprite image.Image) *Player {
	return &Player{
		Pos: Vec2{
			X: (cfg.CanvasWidth - cfg.PlayerWidth) / 2,
			Y: cfg.PlayerStartY(),
		},
		Size:   Size{Width: cfg.PlayerWidth, Height: cfg.PlayerHeight},
		Speed:  cfg.PlayerSpeed,
		Sprite: sprite,
	}
}

// MoveLeft starts moving the player left
func (p *Player) MoveLeft() { p.Direction = -1 }

// MoveRight starts moving the player right
func (p *Player) MoveRight() { p.Direction = 1 }

// Stop stops horizontal movement
func (p *Player) Stop() { p.Direction = 0 }

// MoveTo centres the player on x (touch steering), clamped to the canvas
func (p *Player) MoveTo(x, canvasWidth float64) {
	p.Direction = 0
	p.Pos.X = clamp(x-p.Size.Width/2, 0, canvasWidth-p.Size.Width)
}

// Move applies one tick of horizontal movement, clamped to the canvas
func (p *Player) Move(canvasWidth float64) {
	if p.Direction == 0 {
		return
	}
	p.Pos.X = clamp(p.Pos.X+float64(p.Direction)*p.Speed, 0, canvasWidth-p.Size.Width)
}

// UpdateTimers ticks the invulnerability timer down by dtMs of game time
func (p *Player) UpdateTimers(dtMs float64) {
	if !p.Invulnerable {
		return
	}
	p.InvulnerableMs -= dtMs
	if p.InvulnerableMs <= 0 {
		p.InvulnerableMs = 0
		p.Invulnerable = false
	}
}

// Hit starts the invulnerability window after a hit
func (p *Player) Hit(durationMs float64) {
	if durationMs <= 0 {
		return
	}
	p.Invulnerable = true
	p.InvulnerableMs = durationMs
}

// CanFire reports whether fireDelayMs has elapsed since the last shot
func (p *Player) CanFire(nowMs, fireDelayMs float64) bool {
	if !p.hasShot {
		return true
	}
	return nowMs-p.lastShotMs >= fireDelayMs
}

// MarkFired records a shot at nowMs
func (p *Player) MarkFired(nowMs float64) {
	p.lastShotMs = nowMs
	p.hasShot = true
}

// Bounds returns the current bounding box
func (p *Player) Bounds() Rect { return RectAt(p.Pos, p.Size) }

// Center returns the centre of the ship
func (p *Player) Center() Vec2 { return p.Bounds().Center() }

// visible is false on the "off" half of the invulnerability blink
func (p *Player) visible() bool {
	if !p.Invulnerable {
		return true
	}
	return int(p.InvulnerableMs/100)%2 == 0
}

// Render draws the player, or a triangle when no sprite is available
func (p *Player) Render(c Canvas) {
	if !p.visible() {
		return
	}
	b := p.Bounds()
	if p.Sprite != nil {
		c.DrawSprite(p.Sprite, b)
		return
	}
	clr := color.RGBA{0, 200, 255, 255}
	c.FillTriangle(
		Vec2{X: b.X + b.Width/2, Y: b.Y},
		Vec2{X: b.X, Y: b.Bottom()},
		Vec2{X: b.Right(), Y: b.Bottom()},
		clr,
	)
}

// Enemy is a single invader of the formation
type Enemy struct {
	Pos     Vec2
	Size    Size
	IsAlive bool
	Points  int
	Kind    EnemyKind

	// Row and Col are the enemy's slot in the formation grid
	Row, Col int

	Sprite image.Image
}

// NewEnemy creates a living enemy of the kind derived from its row
func NewEnemy(pos Vec2, size Size, row, col int, assets *Assets) *Enemy {
	kind := EnemyKindForRow(row)
	kindConfig := GetEnemyKindConfig(kind)
	return &Enemy{
		Pos:     pos,
		Size:    size,
		IsAlive: true,
		Points:  kindConfig.Points,
		Kind:    kind,
		Row:     row,
		Col:     col,
		Sprite:  assets.Get(kindConfig.Sprite),
	}
}

// Bounds returns the current bounding box
func (e *Enemy) Bounds() Rect { return RectAt(e.Pos, e.Size) }

// Center returns the centre of the enemy
func (e *Enemy) Center() Vec2 { return e.Bounds().Center() }

// Render draws a living enemy
func (e *Enemy) Render(c Canvas) {
	if !e.IsAlive {
		return
	}
	b := e.Bounds()
	if e.Sprite != nil {
		c.DrawSprite(e.Sprite, b)
		return
	}
	c.FillRect(b, GetEnemyKindConfig(e.Kind).Color)
}

// Projectile is a shot fired by the player or by an enemy
type Projectile struct {
	Pos  Vec2
	Size Size

	// Speed in pixels per tick, negative moves up
	Speed float64

	IsActive           bool
	IsPlayerProjectile bool

	// spawnTick is the engine tick the projectile was created on
	spawnTick uint64
}

// NewProjectile creates an active projectile whose top-left corner is at pos
func NewProjectile(pos Vec2, size Size, speed float64, isPlayer bool, tick uint64) *Projectile {
	return &Projectile{
		Pos:                pos,
		Size:               size,
		Speed:              speed,
		IsActive:           true,
		IsPlayerProjectile: isPlayer,
		spawnTick:          tick,
	}
}

// Update advances the projectile one tick
func (p *Projectile) Update() {
	if !p.IsActive {
		return
	}
	p.Pos.Y += p.Speed
}

// InBounds reports whether y is strictly inside the culling band [-20, canvasHeight+20]
func (p *Projectile) InBounds(canvasHeight float64) bool {
	return p.Pos.Y > -cullMargin && p.Pos.Y < canvasHeight+cullMargin
}

// Bounds returns the current bounding box
func (p *Projectile) Bounds() Rect { return RectAt(p.Pos, p.Size) }

// Render draws the projectile as a coloured bar
func (p *Projectile) Render(c Canvas) {
	if !p.IsActive {
		return
	}
	clr := color.RGBA{255, 255, 0, 255} // Yellow
	if !p.IsPlayerProjectile {
		clr = color.RGBA{255, 60, 60, 255} // Red
	}
	c.FillRect(p.Bounds(), clr)
}

// shard is a single debris particle of an explosion
type shard struct {
	pos  Vec2
	vel  Vec2
	size float64
}

// Explosion is a short-lived visual effect
type Explosion struct {
	Pos    Vec2
	Color  color.RGBA
	Sprite image.Image

	frame    int
	lifetime int
	shards   []shard
}

const explosionShards = 12

// NewExplosion creates an explosion centred at pos lasting lifetime ticks
func NewExplosion(pos Vec2, clr color.RGBA, sprite image.Image, lifetime int, rng *rand.Rand) *Explosion {
	x := &Explosion{
		Pos:      pos,
		Color:    clr,
		Sprite:   sprite,
		lifetime: lifetime,
		shards:   make([]shard, explosionShards),
	}
	for i := range x.shards {
		angle := rng.Float64() * 2 * math.Pi
		speed := 0.5 + rng.Float64()*2.5
		x.shards[i] = shard{
			pos:  pos,
			vel:  Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			size: 1.5 + rng.Float64()*2,
		}
	}
	return x
}

// Update advances the animation one tick
func (x *Explosion) Update() {
	if x.IsDone() {
		return
	}
	x.frame++
	for i := range x.shards {
		s := &x.shards[i]
		s.pos.X += s.vel.X
		s.pos.Y += s.vel.Y
	}
}

// IsDone reports whether the animation has finished
func (x *Explosion) IsDone() bool { return x.frame >= x.lifetime }

// progress returns the animation progress in [0,1]
func (x *Explosion) progress() float64 {
	if x.lifetime <= 0 {
		return 1
	}
	return math.Min(1, float64(x.frame)/float64(x.lifetime))
}

// Render draws the sprite (if any) and fading debris
func (x *Explosion) Render(c Canvas) {
	if x.IsDone() {
		return
	}
	t := x.progress()
	if x.Sprite != nil {
		size := 32 + 32*t
		c.DrawSprite(x.Sprite, Rect{X: x.Pos.X - size/2, Y: x.Pos.Y - size/2, Width: size, Height: size})
	}

	clr := color.NRGBA{R: x.Color.R, G: x.Color.G, B: x.Color.B, A: uint8(float64(x.Color.A) * (1 - t))}
	c.FillCircle(x.Pos, 4+16*t, clr)
	for _, s := range x.shards {
		c.FillCircle(s.pos, s.size*(1-t)+0.5, clr)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
