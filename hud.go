package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"invaders/game"
)

var (
	colorHUDText    = color.RGBA{220, 220, 220, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 160}
	colorTitle      = color.RGBA{255, 220, 60, 255}
	colorBarOutline = color.RGBA{120, 120, 140, 255}
	colorBarFill    = color.RGBA{60, 200, 255, 255}
)

// HUD draws the score line and the state overlays on top of the engine frame
type HUD struct {
	face   text.Face
	width  float64
	height float64
}

// NewHUD creates a HUD for a width x height screen
func NewHUD(width, height int) *HUD {
	return &HUD{
		face:   text.NewGoXFace(basicfont.Face7x13),
		width:  float64(width),
		height: float64(height),
	}
}

// Draw draws the stats line and, outside of play, the matching overlay
func (h *HUD) Draw(screen *ebiten.Image, e *game.Engine, fps float64) {
	stats := e.Stats
	line := fmt.Sprintf("SCORE %06d   LIVES %d   WAVE %d", stats.Score, stats.Lives, stats.Wave)
	h.drawText(screen, line, 10, 10, colorHUDText, text.AlignStart)
	if fps > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", fps), int(h.width)-80, int(h.height)-20)
	}

	switch e.State {
	case game.StatePaused:
		h.drawOverlay(screen, "PAUSED", "press P to resume")
	case game.StateGameOver:
		h.drawOverlay(screen, "GAME OVER", fmt.Sprintf("score %d - press R to restart", stats.Score))
	case game.StateVictory:
		h.drawOverlay(screen, "VICTORY", fmt.Sprintf("score %d - press R to play again", stats.Score))
	}
}

// DrawLoading draws the asset progress bar shown before the engine exists
func (h *HUD) DrawLoading(screen *ebiten.Image, progress float64) {
	const barW, barH = 300, 16
	x := float32((h.width - barW) / 2)
	y := float32(h.height / 2)

	h.drawText(screen, "LOADING", h.width/2, float64(y)-24, colorHUDText, text.AlignCenter)
	vector.StrokeRect(screen, x, y, barW, barH, 1, colorBarOutline, false)
	vector.DrawFilledRect(screen, x+2, y+2, float32(progress)*(barW-4), barH-4, colorBarFill, false)
}

func (h *HUD) drawOverlay(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(h.height), colorOverlay, false)
	h.drawText(screen, title, h.width/2, h.height/2-20, colorTitle, text.AlignCenter)
	h.drawText(screen, hint, h.width/2, h.height/2+4, colorHUDText, text.AlignCenter)
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, h.face, op)
}
