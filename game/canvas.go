package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrNoContext is returned when a surface cannot provide a 2D drawing context
var ErrNoContext = errors.New("2d drawing context unavailable")

// Canvas is the 2D drawing context the renderer draws into
type Canvas interface {
	Clear(clr color.Color)
	FillRect(r Rect, clr color.Color)
	FillCircle(center Vec2, radius float64, clr color.Color)
	FillTriangle(a, b, c Vec2, clr color.Color)
	DrawSprite(img image.Image, dst Rect)
}

// Surface is the drawable area the engine is constructed against
type Surface interface {
	// Size returns the logical size in pixels
	Size() (width, height int)

	// Context2D returns the drawing context, or an error wrapping ErrNoContext
	Context2D() (Canvas, error)
}

// Screen adapts an ebiten screen image to Surface and Canvas. The host attaches the
// frame's screen in Draw before asking the engine to render.
type Screen struct {
	width, height int
	target        *ebiten.Image
	white         *ebiten.Image

	// ebiten copies of decoded sprites, keyed by the source image
	images map[image.Image]*ebiten.Image
}

// NewScreen creates a surface of the given logical size
func NewScreen(width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		images: make(map[image.Image]*ebiten.Image),
	}
}

// Size returns the logical size in pixels
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Context2D returns the screen itself as its drawing context
func (s *Screen) Context2D() (Canvas, error) {
	if s == nil {
		return nil, ErrNoContext
	}
	if s.width <= 0 || s.height <= 0 {
		return nil, fmt.Errorf("screen %dx%d: %w", s.width, s.height, ErrNoContext)
	}
	return s, nil
}

// Attach sets the image drawn into until the next Attach or Detach
func (s *Screen) Attach(target *ebiten.Image) {
	s.target = target
}

// Detach drops the current target; drawing becomes a no-op
func (s *Screen) Detach() {
	s.target = nil
}

// Clear fills the whole target with clr
func (s *Screen) Clear(clr color.Color) {
	if s.target == nil {
		return
	}
	s.target.Fill(clr)
}

// FillRect draws a filled rectangle
func (s *Screen) FillRect(r Rect, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

// FillCircle draws a filled circle
func (s *Screen) FillCircle(center Vec2, radius float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

// FillTriangle draws a filled triangle
func (s *Screen) FillTriangle(a, b, c Vec2, clr color.Color) {
	if s.target == nil {
		return
	}
	var path vector.Path
	path.MoveTo(float32(a.X), float32(a.Y))
	path.LineTo(float32(b.X), float32(b.Y))
	path.LineTo(float32(c.X), float32(c.Y))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, bl, al := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(al) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	s.target.DrawTriangles(vs, is, s.whiteImage(), op)
}

// whiteImage returns a 1x1 white source image for triangle fills
func (s *Screen) whiteImage() *ebiten.Image {
	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.white
}

// DrawSprite draws img scaled into dst
func (s *Screen) DrawSprite(img image.Image, dst Rect) {
	if s.target == nil || img == nil {
		return
	}
	eimg := s.ebitenImage(img)
	w, h := eimg.Bounds().Dx(), eimg.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(w), dst.Height/float64(h))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(eimg, op)
}

// ebitenImage returns the GPU copy of img, uploading it on first use
func (s *Screen) ebitenImage(img image.Image) *ebiten.Image {
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	if eimg, ok := s.images[img]; ok {
		return eimg
	}
	eimg := ebiten.NewImageFromImage(img)
	s.images[img] = eimg
	return eimg
}
