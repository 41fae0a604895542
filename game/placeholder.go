package game

import (
	"image"
	"image/color"
	"math"
)

// placeholderSize is the edge length of generated fallback sprites
const placeholderSize = 32

// placeholderColor picks the fallback colour for an asset
func placeholderColor(key AssetKey) color.RGBA {
	switch key {
	case AssetPlayer:
		return color.RGBA{100, 150, 255, 255}
	case AssetEnemyBasic:
		return GetEnemyKindConfig(EnemyKindBasic).Color
	case AssetEnemyFast:
		return GetEnemyKindConfig(EnemyKindFast).Color
	case AssetEnemyHeavy:
		return GetEnemyKindConfig(EnemyKindHeavy).Color
	case AssetExplosion:
		return colorEnemyExplosion
	default:
		return color.RGBA{200, 200, 200, 255}
	}
}

// newPlaceholderImage draws a flat stand-in for an asset that failed to load: a
// triangle for the player, a disc for explosions and a notched block for invaders.
func newPlaceholderImage(key AssetKey) image.Image {
	size := placeholderSize
	clr := placeholderColor(key)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			relX := float64(x) + 0.5 - half
			relY := float64(y) + 0.5 - half

			var inside bool
			switch key {
			case AssetPlayer:
				// Triangle pointing up
				edgeX := half * (relY + half) / float64(size)
				inside = math.Abs(relX) < edgeX
			case AssetExplosion:
				inside = relX*relX+relY*relY < half*half
			default:
				// Block with two notches at the bottom for legs
				inside = math.Abs(relY) < half*0.6 &&
					!(relY > half*0.3 && math.Abs(relX) < half*0.25)
			}
			if inside {
				img.SetRGBA(x, y, clr)
			}
		}
	}
	return img
}
