package game

import "image/color"

// EnemyKind defines the different kinds of invaders
type EnemyKind int

const (
	EnemyKindBasic EnemyKind = iota
	EnemyKindFast
	EnemyKindHeavy
)

// String returns the kind name used in logs and asset keys
func (k EnemyKind) String() string {
	switch k {
	case EnemyKindBasic:
		return "basic"
	case EnemyKindFast:
		return "fast"
	case EnemyKindHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// EnemyKindConfig holds configuration for each enemy kind
type EnemyKindConfig struct {
	Kind   EnemyKind
	Points int
	Sprite AssetKey
	Color  color.RGBA // Fallback colour when the sprite is missing
}

// GetEnemyKindConfig returns configuration for an enemy kind
func GetEnemyKindConfig(kind EnemyKind) EnemyKindConfig {
	switch kind {
	case EnemyKindFast:
		return EnemyKindConfig{
			Kind:   EnemyKindFast,
			Points: 30,
			Sprite: AssetEnemyFast,
			Color:  color.RGBA{255, 80, 200, 255}, // Magenta
		}
	case EnemyKindHeavy:
		return EnemyKindConfig{
			Kind:   EnemyKindHeavy,
			Points: 20,
			Sprite: AssetEnemyHeavy,
			Color:  color.RGBA{255, 160, 0, 255}, // Orange
		}
	default:
		return EnemyKindConfig{
			Kind:   EnemyKindBasic,
			Points: 10,
			Sprite: AssetEnemyBasic,
			Color:  color.RGBA{80, 255, 80, 255}, // Green
		}
	}
}

// EnemyKindForRow maps a grid row to its kind: row 0 fast, rows 1-2 basic, the rest heavy
func EnemyKindForRow(row int) EnemyKind {
	switch {
	case row == 0:
		return EnemyKindFast
	case row < 3:
		return EnemyKindBasic
	default:
		return EnemyKindHeavy
	}
}
