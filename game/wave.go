package game

import (
	"math"
	"math/rand"
)

// WaveController owns the formation layout and the per-wave difficulty
type WaveController struct {
	config GameConfig
	assets *Assets
	rng    *rand.Rand

	enemySpeed    float64
	enemyFireRate float64

	// direction is +1 while the formation walks right, -1 while it walks left
	direction int

	lastShotMs float64
}

// NewWaveController creates a controller at wave-one difficulty
func NewWaveController(config GameConfig, assets *Assets, rng *rand.Rand) *WaveController {
	w := &WaveController{
		config: config,
		assets: assets,
		rng:    rng,
	}
	w.Reset()
	return w
}

// Reset restores wave-one difficulty
func (w *WaveController) Reset() {
	w.enemySpeed = w.config.EnemySpeed
	w.enemyFireRate = w.config.EnemyFireRateMs
	w.direction = 1
	w.lastShotMs = 0
}

// EnemySpeed returns the formation speed in pixels per tick
func (w *WaveController) EnemySpeed() float64 { return w.enemySpeed }

// EnemyFireRate returns the delay between enemy shots in milliseconds
func (w *WaveController) EnemyFireRate() float64 { return w.enemyFireRate }

// Direction returns +1 or -1
func (w *WaveController) Direction() int { return w.direction }

// InitEnemies lays out a fresh rows x cols grid, centred horizontally
func (w *WaveController) InitEnemies() []*Enemy {
	cfg := w.config
	size := Size{Width: cfg.EnemyWidth, Height: cfg.EnemyHeight}
	startX := (cfg.CanvasWidth - cfg.FormationWidth()) / 2

	enemies := make([]*Enemy, 0, cfg.EnemyRows*cfg.EnemyCols)
	for row := 0; row < cfg.EnemyRows; row++ {
		for col := 0; col < cfg.EnemyCols; col++ {
			pos := Vec2{
				X: startX + float64(col)*(cfg.EnemyWidth+cfg.EnemyPadding),
				Y: cfg.EnemyTopOffset + float64(row)*(cfg.EnemyHeight+cfg.EnemyPadding),
			}
			enemies = append(enemies, NewEnemy(pos, size, row, col, w.assets))
		}
	}
	return enemies
}

// Escalate applies one wave's worth of difficulty
func (w *WaveController) Escalate() {
	w.enemySpeed += w.config.EnemySpeedStep
	w.enemyFireRate = math.Max(w.config.EnemyFireRateFloorMs, w.enemyFireRate-w.config.EnemyFireRateStepMs)
	w.direction = 1
}

// MoveFormation moves all living enemies as one block. When any of them would step
// past a side of the canvas the block turns around and descends instead of moving
// sideways. Returns true on a descend tick.
func (w *WaveController) MoveFormation(enemies []*Enemy) bool {
	step := w.enemySpeed * float64(w.direction)

	hitEdge := false
	for _, e := range enemies {
		if !e.IsAlive {
			continue
		}
		nextX := e.Pos.X + step
		if nextX < 0 || nextX+e.Size.Width > w.config.CanvasWidth {
			hitEdge = true
			break
		}
	}

	if hitEdge {
		w.direction = -w.direction
		for _, e := range enemies {
			if e.IsAlive {
				e.Pos.Y += w.config.EnemyDescend
			}
		}
		return true
	}

	for _, e := range enemies {
		if e.IsAlive {
			e.Pos.X += step
		}
	}
	return false
}

// ReadyToFire reports whether the enemy fire cooldown has elapsed at nowMs
func (w *WaveController) ReadyToFire(nowMs float64) bool {
	return nowMs-w.lastShotMs >= w.enemyFireRate
}

// MarkFired records an enemy shot at nowMs
func (w *WaveController) MarkFired(nowMs float64) {
	w.lastShotMs = nowMs
}

// PickShooter returns a living enemy chosen uniformly at random, or nil
func (w *WaveController) PickShooter(enemies []*Enemy) *Enemy {
	alive := make([]*Enemy, 0, len(enemies))
	for _, e := range enemies {
		if e.IsAlive {
			alive = append(alive, e)
		}
	}
	if len(alive) == 0 {
		return nil
	}
	return alive[w.rng.Intn(len(alive))]
}

// Cleared reports whether no enemy of the wave is alive
func Cleared(enemies []*Enemy) bool {
	for _, e := range enemies {
		if e.IsAlive {
			return false
		}
	}
	return true
}

// ReachedLine reports whether a living enemy's bottom edge is at or below y
func ReachedLine(enemies []*Enemy, y float64) bool {
	for _, e := range enemies {
		if e.IsAlive && e.Bounds().Bottom() >= y {
			return true
		}
	}
	return false
}
