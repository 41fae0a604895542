package game

import (
	"math/rand"
	"testing"
)

func newTestWaves() *WaveController {
	return NewWaveController(DefaultConfig(), nil, rand.New(rand.NewSource(1)))
}

func TestInitEnemiesLayout(t *testing.T) {
	w := newTestWaves()
	enemies := w.InitEnemies()

	if len(enemies) != 40 {
		t.Fatalf("len(enemies) = %d, want 40", len(enemies))
	}

	// (800 - (8*55 - 15)) / 2
	const startX = 187.5
	first, last := enemies[0], enemies[len(enemies)-1]
	if first.Pos != (Vec2{X: startX, Y: 50}) {
		t.Errorf("first enemy at %v, want {%v 50}", first.Pos, startX)
	}
	if last.Pos != (Vec2{X: startX + 7*55, Y: 50 + 4*45}) {
		t.Errorf("last enemy at %v", last.Pos)
	}

	// Centred: equal margins left and right
	left := first.Pos.X
	right := 800 - last.Bounds().Right()
	if left != right {
		t.Errorf("margins %v / %v, want equal", left, right)
	}

	for i, e := range enemies {
		if !e.IsAlive {
			t.Errorf("enemy %d starts dead", i)
		}
		if e.Row != i/8 || e.Col != i%8 {
			t.Errorf("enemy %d at row %d col %d", i, e.Row, e.Col)
		}
	}
}

func TestEnemyKindsByRow(t *testing.T) {
	tests := []struct {
		row    int
		kind   EnemyKind
		points int
	}{
		{0, EnemyKindFast, 30},
		{1, EnemyKindBasic, 10},
		{2, EnemyKindBasic, 10},
		{3, EnemyKindHeavy, 20},
		{4, EnemyKindHeavy, 20},
	}

	enemies := newTestWaves().InitEnemies()
	for _, tt := range tests {
		e := enemies[tt.row*8]
		if e.Kind != tt.kind || e.Points != tt.points {
			t.Errorf("row %d: kind %s points %d, want %s %d", tt.row, e.Kind, e.Points, tt.kind, tt.points)
		}
	}
}

func TestEscalate(t *testing.T) {
	w := newTestWaves()

	prevSpeed, prevRate := w.EnemySpeed(), w.EnemyFireRate()
	for i := 0; i < 12; i++ {
		w.Escalate()
		if w.EnemySpeed() <= prevSpeed {
			t.Fatalf("wave %d: speed %v not above %v", i+2, w.EnemySpeed(), prevSpeed)
		}
		if w.EnemyFireRate() > prevRate {
			t.Fatalf("wave %d: fire rate %v rose above %v", i+2, w.EnemyFireRate(), prevRate)
		}
		if w.EnemyFireRate() < 300 {
			t.Fatalf("wave %d: fire rate %v below floor", i+2, w.EnemyFireRate())
		}
		prevSpeed, prevRate = w.EnemySpeed(), w.EnemyFireRate()
	}

	if w.EnemySpeed() != 1+12*0.5 {
		t.Errorf("speed after 12 escalations = %v, want 7", w.EnemySpeed())
	}
	if w.EnemyFireRate() != 300 {
		t.Errorf("fire rate after 12 escalations = %v, want floor 300", w.EnemyFireRate())
	}

	w.Reset()
	if w.EnemySpeed() != 1 || w.EnemyFireRate() != 1000 || w.Direction() != 1 {
		t.Errorf("Reset left speed %v rate %v direction %d", w.EnemySpeed(), w.EnemyFireRate(), w.Direction())
	}
}

func TestMoveFormationSideways(t *testing.T) {
	w := newTestWaves()
	enemies := w.InitEnemies()
	enemies[3].IsAlive = false
	before := enemies[3].Pos

	if descended := w.MoveFormation(enemies); descended {
		t.Fatal("descended away from the edge")
	}
	if enemies[0].Pos != (Vec2{X: 188.5, Y: 50}) {
		t.Errorf("enemy 0 at %v, want {188.5 50}", enemies[0].Pos)
	}
	if enemies[3].Pos != before {
		t.Errorf("dead enemy moved from %v to %v", before, enemies[3].Pos)
	}
}

func TestMoveFormationDescendsAtEdge(t *testing.T) {
	w := newTestWaves()
	enemies := w.InitEnemies()

	// Push the block so the rightmost column is half a pixel from the edge
	shift := 800 - enemies[7].Bounds().Right() - 0.5
	for _, e := range enemies {
		e.Pos.X += shift
	}
	xs := make([]float64, len(enemies))
	ys := make([]float64, len(enemies))
	for i, e := range enemies {
		xs[i], ys[i] = e.Pos.X, e.Pos.Y
	}

	if !w.MoveFormation(enemies) {
		t.Fatal("expected a descend tick")
	}
	if w.Direction() != -1 {
		t.Errorf("direction = %d, want -1", w.Direction())
	}
	for i, e := range enemies {
		if e.Pos.X != xs[i] {
			t.Fatalf("enemy %d moved sideways on a descend tick", i)
		}
		if e.Pos.Y != ys[i]+20 {
			t.Fatalf("enemy %d y = %v, want %v", i, e.Pos.Y, ys[i]+20)
		}
	}

	// Next tick walks left
	if w.MoveFormation(enemies) {
		t.Fatal("descended twice in a row")
	}
	if enemies[0].Pos.X != xs[0]-1 {
		t.Errorf("enemy 0 x = %v, want %v", enemies[0].Pos.X, xs[0]-1)
	}
}

func TestMoveFormationIgnoresDeadAtEdge(t *testing.T) {
	w := newTestWaves()
	enemies := w.InitEnemies()

	// A dead enemy past the edge must not turn the formation
	enemies[7].IsAlive = false
	enemies[7].Pos.X = 790

	if w.MoveFormation(enemies) {
		t.Error("dead enemy triggered a descend")
	}
}

func TestPickShooterOnlyAlive(t *testing.T) {
	w := newTestWaves()
	enemies := w.InitEnemies()
	for _, e := range enemies {
		e.IsAlive = false
	}
	if got := w.PickShooter(enemies); got != nil {
		t.Fatalf("PickShooter with no survivors = %v, want nil", got)
	}

	enemies[17].IsAlive = true
	for i := 0; i < 20; i++ {
		if got := w.PickShooter(enemies); got != enemies[17] {
			t.Fatalf("PickShooter picked a dead enemy")
		}
	}
}

func TestFireCooldown(t *testing.T) {
	w := newTestWaves()
	if w.ReadyToFire(999) {
		t.Error("ready before the first cooldown elapsed")
	}
	if !w.ReadyToFire(1000) {
		t.Error("not ready after the first cooldown")
	}
	w.MarkFired(1000)
	if w.ReadyToFire(1500) {
		t.Error("ready 500ms after a shot")
	}
}

func TestClearedAndReachedLine(t *testing.T) {
	enemies := newTestWaves().InitEnemies()
	if Cleared(enemies) {
		t.Error("fresh wave reported cleared")
	}
	if !Cleared(nil) {
		t.Error("empty wave not cleared")
	}

	last := enemies[len(enemies)-1]
	if ReachedLine(enemies, last.Bounds().Bottom()+1) {
		t.Error("reached line below the formation")
	}
	if !ReachedLine(enemies, last.Bounds().Bottom()) {
		t.Error("bottom edge on the line must count")
	}

	for _, e := range enemies {
		e.IsAlive = false
	}
	if !Cleared(enemies) {
		t.Error("all dead not cleared")
	}
	if ReachedLine(enemies, 0) {
		t.Error("dead enemies reached the line")
	}
}
