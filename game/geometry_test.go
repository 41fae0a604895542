package game

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"contained", Rect{X: 15, Y: 15, Width: 5, Height: 5}, true},
		{"containing", Rect{X: 0, Y: 0, Width: 100, Height: 100}, true},
		{"partial overlap", Rect{X: 25, Y: 25, Width: 20, Height: 20}, true},
		{"thin vertical bar through", Rect{X: 19, Y: 0, Width: 2, Height: 50}, true},
		{"touching right edge", Rect{X: 30, Y: 10, Width: 10, Height: 10}, false},
		{"touching left edge", Rect{X: 0, Y: 10, Width: 10, Height: 10}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, Width: 10, Height: 10}, false},
		{"touching top edge", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"separate horizontally", Rect{X: 50, Y: 10, Width: 10, Height: 10}, false},
		{"separate vertically", Rect{X: 10, Y: 50, Width: 10, Height: 10}, false},
		{"corner overlap by a fraction", Rect{X: 29.5, Y: 29.5, Width: 10, Height: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := RectAt(Vec2{X: 5, Y: 10}, Size{Width: 20, Height: 30})
	if r.Right() != 25 || r.Bottom() != 40 {
		t.Errorf("Right/Bottom = %v/%v, want 25/40", r.Right(), r.Bottom())
	}
	if c := r.Center(); c != (Vec2{X: 15, Y: 25}) {
		t.Errorf("Center = %v, want {15 25}", c)
	}
}

func TestHitboxOverlap(t *testing.T) {
	enemy := NewHitbox(Rect{X: 100, Y: 50, Width: 40, Height: 30})

	tests := []struct {
		name string
		shot Rect
		want bool
	}{
		{"inside", Rect{X: 118, Y: 60, Width: 4, Height: 12}, true},
		{"clipping the bottom", Rect{X: 118, Y: 79, Width: 4, Height: 12}, true},
		{"resting on the bottom edge", Rect{X: 118, Y: 80, Width: 4, Height: 12}, false},
		{"flush with the left edge", Rect{X: 96, Y: 60, Width: 4, Height: 12}, false},
		{"below", Rect{X: 118, Y: 100, Width: 4, Height: 12}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shot := NewHitbox(tt.shot)
			if got := shot.Overlaps(enemy); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := enemy.Overlaps(shot); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v", tt.shot)
			}
		})
	}
}
