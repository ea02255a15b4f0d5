package tint

import (
	"image"
	"math"
)

// Rect is an axis-aligned bounding box given by its top-left corner and
// its size. Compare with ==.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from two corner points.
// The corners are normalized so W and H are never negative.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X: math.Min(x0, x1),
		Y: math.Min(y0, y1),
		W: math.Abs(x1 - x0),
		H: math.Abs(y1 - y0),
	}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty reports whether r encloses no area.
func (r Rect) Empty() bool {
	return !(r.W > 0 && r.H > 0)
}

// Contains returns true if the point is inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.MaxX() && y >= r.Y && y <= r.MaxY()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle contributes nothing.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return NewRect(
		math.Min(r.X, other.X), math.Min(r.Y, other.Y),
		math.Max(r.MaxX(), other.MaxX()), math.Max(r.MaxY(), other.MaxY()),
	)
}

// Image returns the smallest integer rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.MaxX())), int(math.Ceil(r.MaxY())),
	)
}
