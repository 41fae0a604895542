package game

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"testing"
	"time"
)

// recordingCanvas records every draw call as a string
type recordingCanvas struct {
	ops []string
}

func (c *recordingCanvas) Clear(clr color.Color) {
	c.ops = append(c.ops, fmt.Sprintf("clear %v", clr))
}

func (c *recordingCanvas) FillRect(r Rect, clr color.Color) {
	c.ops = append(c.ops, fmt.Sprintf("rect %v %v", r, clr))
}

func (c *recordingCanvas) FillCircle(center Vec2, radius float64, clr color.Color) {
	c.ops = append(c.ops, fmt.Sprintf("circle %v %.3f %v", center, radius, clr))
}

func (c *recordingCanvas) FillTriangle(a, b, cc Vec2, clr color.Color) {
	c.ops = append(c.ops, fmt.Sprintf("triangle %v %v %v %v", a, b, cc, clr))
}

func (c *recordingCanvas) DrawSprite(img image.Image, dst Rect) {
	c.ops = append(c.ops, fmt.Sprintf("sprite %v %v", img.Bounds(), dst))
}

func (c *recordingCanvas) reset() { c.ops = c.ops[:0] }

// fakeSurface hands out a fixed canvas, or err
type fakeSurface struct {
	width, height int
	canvas        Canvas
	err           error
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

func (s *fakeSurface) Context2D() (Canvas, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.canvas, nil
}

// scriptedInput returns next on every poll. Pause is delivered once.
type scriptedInput struct {
	next   Controls
	closed bool
}

func (s *scriptedInput) Poll() Controls {
	if s.closed {
		return Controls{}
	}
	c := s.next
	s.next.Pause = false
	return c
}

func (s *scriptedInput) Close() { s.closed = true }

// testEngine bundles an engine with the fakes driving it
type testEngine struct {
	*Engine
	canvas *recordingCanvas
	input  *scriptedInput
	time   *MockTimeProvider
}

const frame = 16 * time.Millisecond

// quietConfig keeps enemies from shooting during a test
func quietConfig() GameConfig {
	cfg := DefaultConfig()
	cfg.EnemyFireRateMs = 1e9
	return cfg
}

func newTestEngine(t *testing.T, mobile bool, opts ...Option) *testEngine {
	t.Helper()

	te := &testEngine{
		canvas: &recordingCanvas{},
		input:  &scriptedInput{},
		time:   NewMockTimeProvider(time.Unix(0, 0)),
	}
	surface := &fakeSurface{width: 800, height: 600, canvas: te.canvas}

	base := []Option{
		WithInput(te.input),
		WithTimeProvider(te.time),
		WithRand(rand.New(rand.NewSource(1))),
	}
	e, err := NewEngine(surface, mobile, nil, append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	te.Engine = e
	return te
}

// step advances mock time by d and runs n updates
func (te *testEngine) step(n int, d time.Duration) {
	for i := 0; i < n; i++ {
		te.time.Advance(d)
		te.Update()
	}
}

// collide resolves collisions on a fresh tick so projectiles created with tick 0 count
func (te *testEngine) collide() {
	te.tick++
	te.collisionSystem.CheckCollisions()
}

// enemyShotAt returns an enemy projectile overlapping the player
func (te *testEngine) enemyShotAt() *Projectile {
	c := te.Player.Center()
	return NewProjectile(Vec2{X: c.X - 2, Y: c.Y - 6}, Size{Width: 4, Height: 12}, 5, false, 0)
}

func countPlayerShots(ps []*Projectile) int {
	n := 0
	for _, p := range ps {
		if p.IsPlayerProjectile {
			n++
		}
	}
	return n
}

func countAlive(enemies []*Enemy) int {
	n := 0
	for _, e := range enemies {
		if e.IsAlive {
			n++
		}
	}
	return n
}
