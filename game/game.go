package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"
)

// Engine is the simulation core. The host calls Update then Render once per frame and
// reads the exported fields afterwards.
type Engine struct {
	config GameConfig
	canvas Canvas
	assets *Assets
	input  InputSource
	events *Events
	rng    *rand.Rand
	clock  *GameClock
	mobile bool

	collisionSystem *CollisionSystem
	waves           *WaveController
	renderer        *Renderer

	// State may be written by the host, e.g. to force a resume
	State GameState

	// Stats may be written by the host when restoring a game
	Stats GameStats

	Player      *Player
	Enemies     []*Enemy
	Projectiles []*Projectile
	Explosions  []*Explosion

	// Mobile auto-fire
	autoFire       bool
	lastAutoFireMs float64

	// tick counts playing ticks since the last reset
	tick uint64

	debug DebugState

	closed bool
}

// Option customises an Engine at construction
type Option func(*Engine)

// WithConfig replaces the default tuning. The canvas size is always taken from the surface.
func WithConfig(config GameConfig) Option {
	return func(e *Engine) { e.config = config }
}

// WithEvents registers the host's callbacks
func WithEvents(events Events) Option {
	return func(e *Engine) { e.events = &events }
}

// WithLevelUp registers only a level-up callback
func WithLevelUp(fn func(wave int)) Option {
	return func(e *Engine) {
		if e.events == nil {
			e.events = &Events{}
		}
		e.events.LevelUp = fn
	}
}

// WithInput replaces the platform input source
func WithInput(input InputSource) Option {
	return func(e *Engine) { e.input = input }
}

// WithTimeProvider replaces the wall clock used for frame deltas
func WithTimeProvider(provider TimeProvider) Option {
	return func(e *Engine) { e.clock = NewGameClock(provider) }
}

// WithRand replaces the random source used for enemy fire and explosion debris
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// NewEngine creates an engine drawing onto surface. mobile selects touch input with
// auto-fire instead of the keyboard. assets may be nil; missing sprites are drawn as
// plain shapes.
func NewEngine(surface Surface, mobile bool, assets *Assets, opts ...Option) (*Engine, error) {
	if surface == nil {
		return nil, fmt.Errorf("create engine: %w", ErrNoContext)
	}
	canvas, err := surface.Context2D()
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	e := &Engine{
		config: DefaultConfig(),
		canvas: canvas,
		assets: assets,
		mobile: mobile,
	}
	for _, opt := range opts {
		opt(e)
	}

	width, height := surface.Size()
	e.config.CanvasWidth = float64(width)
	e.config.CanvasHeight = float64(height)
	if err := e.config.Validate(); err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	if e.input == nil {
		if mobile {
			e.input = NewTouchInput()
		} else {
			e.input = NewKeyboardInput()
		}
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.clock == nil {
		e.clock = NewGameClock(MonotonicTimeProvider{})
	}
	e.autoFire = mobile

	e.collisionSystem = NewCollisionSystem(e)
	e.waves = NewWaveController(e.config, e.assets, e.rng)
	e.renderer = NewRenderer(e.config.BackgroundColor)

	e.resetWorld()
	return e, nil
}

// Config returns the tuning the engine runs with
func (e *Engine) Config() GameConfig { return e.config }

// Mobile reports whether the engine was built for touch input
func (e *Engine) Mobile() bool { return e.mobile }

// EnemySpeed returns the current formation speed
func (e *Engine) EnemySpeed() float64 { return e.waves.EnemySpeed() }

// EnemyFireRate returns the current delay between enemy shots in milliseconds
func (e *Engine) EnemyFireRate() float64 { return e.waves.EnemyFireRate() }

// GameTimeMs returns the accumulated playing time
func (e *Engine) GameTimeMs() float64 { return e.clock.NowMs() }

// Update advances the simulation by one frame. Only the pause key is honoured outside
// of the playing state.
func (e *Engine) Update() {
	if e.closed {
		return
	}
	delta := e.clock.Tick()
	controls := e.input.Poll()
	if controls.Pause {
		e.TogglePause()
	}
	if e.State != StatePlaying {
		return
	}

	e.tick++
	e.clock.Advance(delta)
	dtMs := float64(delta) / float64(time.Millisecond)
	nowMs := e.clock.NowMs()

	// 1. Input, movement and player fire
	e.handleControls(controls, nowMs)

	// 2. Player timers
	e.Player.UpdateTimers(dtMs)

	// 3. Formation movement and invasion check
	e.waves.MoveFormation(e.Enemies)
	if ReachedLine(e.Enemies, e.Player.Pos.Y) {
		e.setState(StateGameOver)
		return
	}

	// 4. Enemy fire
	if e.waves.ReadyToFire(nowMs) {
		e.EnemyFire()
	}

	// 5. Projectiles
	e.updateProjectiles()

	// 6. Explosions
	e.updateExplosions()

	// 7. Collisions
	e.collisionSystem.CheckCollisions()
	if e.State != StatePlaying {
		return
	}

	// 8. Wave completion
	if Cleared(e.Enemies) {
		e.completeWave()
	}
}

// handleControls steers the player and fires on the desktop fire key or the mobile
// auto-fire interval
func (e *Engine) handleControls(c Controls, nowMs float64) {
	switch {
	case c.Touching:
		e.Player.MoveTo(c.TouchX, e.config.CanvasWidth)
	case c.Left && !c.Right:
		e.Player.MoveLeft()
	case c.Right && !c.Left:
		e.Player.MoveRight()
	default:
		e.Player.Stop()
	}
	e.Player.Move(e.config.CanvasWidth)

	if e.autoFire {
		if nowMs-e.lastAutoFireMs >= e.config.AutoFireIntervalMs {
			e.lastAutoFireMs = nowMs
			e.Fire()
		}
		return
	}
	if c.Fire {
		e.Fire()
	}
}

// Fire shoots from the top centre of the player, honouring the fire delay. Returns
// false when the shot was rate limited.
func (e *Engine) Fire() bool {
	nowMs := e.clock.NowMs()
	if !e.Player.CanFire(nowMs, e.config.FireDelayMs) {
		return false
	}
	e.Player.MarkFired(nowMs)

	size := Size{Width: e.config.ProjectileWidth, Height: e.config.ProjectileHeight}
	center := e.Player.Center()
	pos := Vec2{X: center.X - size.Width/2, Y: e.Player.Pos.Y - size.Height}
	e.Projectiles = append(e.Projectiles, NewProjectile(pos, size, -e.config.PlayerProjectileSpeed, true, e.tick))
	return true
}

// EnemyFire shoots from the bottom centre of a random living enemy
func (e *Engine) EnemyFire() bool {
	shooter := e.waves.PickShooter(e.Enemies)
	if shooter == nil {
		return false
	}
	e.waves.MarkFired(e.clock.NowMs())

	size := Size{Width: e.config.ProjectileWidth, Height: e.config.ProjectileHeight}
	b := shooter.Bounds()
	pos := Vec2{X: b.X + b.Width/2 - size.Width/2, Y: b.Bottom()}
	e.Projectiles = append(e.Projectiles, NewProjectile(pos, size, e.config.EnemyProjectileSpeed, false, e.tick))
	return true
}

// updateProjectiles advances every projectile and drops the inactive or off-canvas ones
func (e *Engine) updateProjectiles() {
	kept := e.Projectiles[:0]
	for _, p := range e.Projectiles {
		p.Update()
		if p.IsActive && p.InBounds(e.config.CanvasHeight) {
			kept = append(kept, p)
		}
	}
	clear(e.Projectiles[len(kept):])
	e.Projectiles = kept
}

// updateExplosions advances every explosion and drops the finished ones
func (e *Engine) updateExplosions() {
	kept := e.Explosions[:0]
	for _, x := range e.Explosions {
		x.Update()
		if !x.IsDone() {
			kept = append(kept, x)
		}
	}
	clear(e.Explosions[len(kept):])
	e.Explosions = kept
}

// spawnExplosion adds an explosion centred at pos
func (e *Engine) spawnExplosion(pos Vec2, clr color.RGBA) {
	x := NewExplosion(pos, clr, e.assets.Get(AssetExplosion), e.config.ExplosionFrames, e.rng)
	e.Explosions = append(e.Explosions, x)
}

// completeWave ends the game in victory on the last configured wave, otherwise starts
// the next one
func (e *Engine) completeWave() {
	if e.config.MaxWaves > 0 && e.Stats.Wave >= e.config.MaxWaves {
		e.Projectiles = nil
		e.setState(StateVictory)
		return
	}
	e.NextWave()
}

// NextWave raises the difficulty, lays out a fresh formation and clears all projectiles
func (e *Engine) NextWave() {
	e.Stats.Wave++
	e.waves.Escalate()
	e.Enemies = e.waves.InitEnemies()
	e.Projectiles = nil
	e.events.levelUp(e.Stats.Wave)
}

// Render draws the current frame. It never changes engine state.
func (e *Engine) Render() {
	if e.canvas == nil {
		return
	}
	e.renderer.Render(e.canvas, e)
}

// Reset starts a new game from any state
func (e *Engine) Reset() {
	e.resetWorld()
	e.setState(StatePlaying)
}

// resetWorld puts stats, entities and clocks back to their configured defaults
func (e *Engine) resetWorld() {
	e.Stats = GameStats{
		Lives: e.config.InitialLives,
		Wave:  1,
	}
	e.Player = NewPlayer(e.config, e.assets.Get(AssetPlayer))
	e.waves.Reset()
	e.Enemies = e.waves.InitEnemies()
	e.Projectiles = nil
	e.Explosions = nil
	e.clock.Reset()
	e.lastAutoFireMs = 0
	e.tick = 0
}

// Cleanup stops auto-fire, releases the input source and the canvas. The engine is
// inert afterwards.
func (e *Engine) Cleanup() {
	if e.closed {
		return
	}
	e.closed = true
	e.autoFire = false
	e.input.Close()
	e.canvas = nil
}
