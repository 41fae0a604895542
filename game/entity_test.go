package game

import (
	"image/color"
	"math/rand"
	"testing"
)

func TestPlayerMovement(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		start float64
		dir   func(p *Player)
		want  float64
	}{
		{"left", 100, (*Player).MoveLeft, 95},
		{"right", 100, (*Player).MoveRight, 105},
		{"stop", 100, (*Player).Stop, 100},
		{"left edge", 2, (*Player).MoveLeft, 0},
		{"right edge", 748, (*Player).MoveRight, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(cfg, nil)
			p.Pos.X = tt.start
			tt.dir(p)
			p.Move(cfg.CanvasWidth)
			if p.Pos.X != tt.want {
				t.Errorf("x = %v, want %v", p.Pos.X, tt.want)
			}
		})
	}
}

func TestPlayerInvulnerability(t *testing.T) {
	p := NewPlayer(DefaultConfig(), nil)

	p.Hit(0)
	if p.Invulnerable {
		t.Fatal("zero-length window made the player invulnerable")
	}

	p.Hit(200)
	if !p.Invulnerable || !p.visible() {
		t.Fatal("fresh hit should be invulnerable and drawn")
	}
	p.UpdateTimers(100)
	if p.visible() {
		t.Error("player drawn on the off half of the blink")
	}
	p.UpdateTimers(100)
	if p.Invulnerable || p.InvulnerableMs != 0 {
		t.Errorf("window not over: invulnerable %v, %vms left", p.Invulnerable, p.InvulnerableMs)
	}
	if !p.visible() {
		t.Error("player hidden after the window")
	}
}

func TestPlayerFireDelay(t *testing.T) {
	p := NewPlayer(DefaultConfig(), nil)
	if !p.CanFire(0, 250) {
		t.Fatal("first shot blocked")
	}
	p.MarkFired(0)
	if p.CanFire(249, 250) {
		t.Error("fired inside the delay")
	}
	if !p.CanFire(250, 250) {
		t.Error("blocked once the delay elapsed")
	}
}

func TestExplosionLifecycle(t *testing.T) {
	x := NewExplosion(Vec2{X: 100, Y: 100}, color.RGBA{255, 0, 0, 255}, nil, 3, rand.New(rand.NewSource(1)))

	c := &recordingCanvas{}
	x.Render(c)
	if len(c.ops) != 1+explosionShards {
		t.Errorf("draw calls = %d, want %d", len(c.ops), 1+explosionShards)
	}

	for i := 0; i < 3; i++ {
		if x.IsDone() {
			t.Fatalf("done after %d frames", i)
		}
		x.Update()
	}
	if !x.IsDone() {
		t.Fatal("not done after its lifetime")
	}

	c.reset()
	x.Render(c)
	if len(c.ops) != 0 {
		t.Error("finished explosion still drawn")
	}
}

func TestDeadEnemyNotRendered(t *testing.T) {
	e := NewEnemy(Vec2{X: 10, Y: 10}, Size{Width: 40, Height: 30}, 0, 0, nil)
	c := &recordingCanvas{}

	e.Render(c)
	if len(c.ops) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(c.ops))
	}

	e.IsAlive = false
	c.reset()
	e.Render(c)
	if len(c.ops) != 0 {
		t.Error("dead enemy drawn")
	}
}

func TestKeyboardInputClosed(t *testing.T) {
	k := NewKeyboardInput()
	k.Close()
	if got := k.Poll(); got != (Controls{}) {
		t.Errorf("closed keyboard polled %+v", got)
	}
}
