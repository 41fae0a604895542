package game

import (
	"errors"
	"fmt"
	"image/color"
)

// GameConfig holds the tuning constants of a game. It is copied into the engine at
// construction and never mutated afterwards.
type GameConfig struct {
	// CanvasWidth is the logical canvas width in pixels
	CanvasWidth float64

	// CanvasHeight is the logical canvas height in pixels
	CanvasHeight float64

	// BackgroundColor is the clear colour of each frame
	BackgroundColor color.RGBA

	// PlayerSpeed is the horizontal player speed in pixels per tick
	PlayerSpeed float64

	// PlayerWidth and PlayerHeight are the player's bounding box
	PlayerWidth  float64
	PlayerHeight float64

	// PlayerBottomMargin is the gap between the player and the canvas bottom
	PlayerBottomMargin float64

	// FireDelayMs is the minimum game time between two player shots
	FireDelayMs float64

	// AutoFireIntervalMs is the mobile auto-fire period
	AutoFireIntervalMs float64

	// PlayerProjectileSpeed and EnemyProjectileSpeed are in pixels per tick (magnitudes)
	PlayerProjectileSpeed float64
	EnemyProjectileSpeed  float64

	// ProjectileWidth and ProjectileHeight are the projectile bounding box
	ProjectileWidth  float64
	ProjectileHeight float64

	// EnemyRows and EnemyCols define the formation grid
	EnemyRows int
	EnemyCols int

	// EnemyWidth and EnemyHeight are the enemy bounding box
	EnemyWidth  float64
	EnemyHeight float64

	// EnemyPadding is the gap between two grid cells
	EnemyPadding float64

	// EnemyTopOffset is the y of the first row
	EnemyTopOffset float64

	// EnemySpeed is the initial formation speed in pixels per tick
	EnemySpeed float64

	// EnemySpeedStep is added to the formation speed on each new wave
	EnemySpeedStep float64

	// EnemyDescend is the vertical drop when the formation hits an edge
	EnemyDescend float64

	// EnemyFireRateMs is the initial delay between two enemy shots
	EnemyFireRateMs float64

	// EnemyFireRateStepMs is subtracted from the fire delay on each new wave
	EnemyFireRateStepMs float64

	// EnemyFireRateFloorMs is the lowest fire delay reachable
	EnemyFireRateFloorMs float64

	// InitialLives is the number of hits the player can take
	InitialLives int

	// InvulnerabilityMs is the grace period after a hit (0 disables it)
	InvulnerabilityMs float64

	// ExplosionFrames is the lifetime of an explosion in ticks
	ExplosionFrames int

	// MaxWaves ends the game in victory once that wave is cleared (0 = endless)
	MaxWaves int
}

// DefaultConfig returns a default configuration
func DefaultConfig() GameConfig {
	return GameConfig{
		CanvasWidth:           800,
		CanvasHeight:          600,
		BackgroundColor:       color.RGBA{0, 0, 20, 255},
		PlayerSpeed:           5,
		PlayerWidth:           50,
		PlayerHeight:          30,
		PlayerBottomMargin:    20,
		FireDelayMs:           250,
		AutoFireIntervalMs:    300,
		PlayerProjectileSpeed: 7,
		EnemyProjectileSpeed:  5,
		ProjectileWidth:       4,
		ProjectileHeight:      12,
		EnemyRows:             5,
		EnemyCols:             8,
		EnemyWidth:            40,
		EnemyHeight:           30,
		EnemyPadding:          15,
		EnemyTopOffset:        50,
		EnemySpeed:            1,
		EnemySpeedStep:        0.5,
		EnemyDescend:          20,
		EnemyFireRateMs:       1000,
		EnemyFireRateStepMs:   100,
		EnemyFireRateFloorMs:  300,
		InitialLives:          3,
		InvulnerabilityMs:     1500,
		ExplosionFrames:       30,
		MaxWaves:              0,
	}
}

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid game config")

// Validate reports the first inconsistent value in the config
func (c GameConfig) Validate() error {
	switch {
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %.0fx%.0f", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case c.EnemyRows <= 0 || c.EnemyCols <= 0:
		return fmt.Errorf("%w: enemy grid must be positive, got %dx%d", ErrInvalidConfig, c.EnemyRows, c.EnemyCols)
	case c.FormationWidth() > c.CanvasWidth:
		return fmt.Errorf("%w: formation (%.0fpx) wider than canvas (%.0fpx)", ErrInvalidConfig, c.FormationWidth(), c.CanvasWidth)
	case c.InitialLives <= 0:
		return fmt.Errorf("%w: initial lives must be positive, got %d", ErrInvalidConfig, c.InitialLives)
	case c.EnemyFireRateFloorMs < 0 || c.EnemyFireRateMs < c.EnemyFireRateFloorMs:
		return fmt.Errorf("%w: enemy fire rate %.0fms below floor %.0fms", ErrInvalidConfig, c.EnemyFireRateMs, c.EnemyFireRateFloorMs)
	case c.PlayerProjectileSpeed <= 0 || c.EnemyProjectileSpeed <= 0:
		return fmt.Errorf("%w: projectile speeds must be positive", ErrInvalidConfig)
	case c.MaxWaves < 0:
		return fmt.Errorf("%w: max waves must not be negative, got %d", ErrInvalidConfig, c.MaxWaves)
	}
	return nil
}

// FormationWidth returns the width of the full enemy grid including inner padding
func (c GameConfig) FormationWidth() float64 {
	return float64(c.EnemyCols)*(c.EnemyWidth+c.EnemyPadding) - c.EnemyPadding
}

// PlayerStartY returns the y of the player's top edge
func (c GameConfig) PlayerStartY() float64 {
	return c.CanvasHeight - c.PlayerHeight - c.PlayerBottomMargin
}
