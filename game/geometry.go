package game

import (
	"math"

	"github.com/solarlune/resolv"
)

// Vec2 is a position or velocity in canvas pixels
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair in canvas pixels
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned bounding box anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAt builds the bounding box of something at pos with the given size
func RectAt(pos Vec2, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Right returns the x of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the centre point of the box
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether two boxes overlap. Boxes that only share an edge do not.
func (r Rect) Intersects(o Rect) bool {
	return NewHitbox(r).Overlaps(NewHitbox(o))
}

// Hitbox is the collision shape of an entity, built fresh from its current bounds
type Hitbox struct {
	rect  Rect
	shape *resolv.ConvexPolygon
}

// NewHitbox creates the collision shape covering r
func NewHitbox(r Rect) Hitbox {
	return Hitbox{
		rect:  r,
		shape: resolv.NewRectangleTopLeft(r.X, r.Y, r.Width, r.Height),
	}
}

// Overlaps reports whether the shapes share a positive area
func (h Hitbox) Overlaps(o Hitbox) bool {
	if !h.shape.IsIntersecting(o.shape) {
		return false
	}
	// The separating-axis test counts shared edges as contact
	a, b := h.rect, o.rect
	return math.Min(a.Right(), b.Right()) > math.Max(a.X, b.X) &&
		math.Min(a.Bottom(), b.Bottom()) > math.Max(a.Y, b.Y)
}
