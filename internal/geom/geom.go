// Package geom holds the plain value types shared across the
// rasterization pipeline: points, axis-aligned rectangles, integer
// rectangles, and quadrilaterals.
package geom

import "math"

// Point is a point in double-precision user space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in double-precision user space.
type Rect struct {
	X, Y, W, H float64
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle containing both r and other. An
// empty operand is ignored so Union can fold over a polygon's bounds.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.X+r.W, other.X+other.W)
	y1 := math.Max(r.Y+r.H, other.Y+other.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the overlap of r and other; the result IsEmpty if
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.W, other.X+other.W)
	y1 := math.Min(r.Y+r.H, other.Y+other.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ToIntRect rounds r outward to integer pixel bounds.
func (r Rect) ToIntRect() IntRect {
	if r.IsEmpty() {
		return IntRect{}
	}
	x0 := int(math.Floor(r.X))
	y0 := int(math.Floor(r.Y))
	x1 := int(math.Ceil(r.X + r.W))
	y1 := int(math.Ceil(r.Y + r.H))
	return IntRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// IntRect is an axis-aligned rectangle in destination pixel coordinates.
type IntRect struct {
	X, Y, W, H int
}

// IsEmpty reports whether the rectangle has no area.
func (r IntRect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect returns the overlap of r and other.
func (r IntRect) Intersect(other IntRect) IntRect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.W, other.X+other.W)
	y1 := min(r.Y+r.H, other.Y+other.H)
	if x1 <= x0 || y1 <= y0 {
		return IntRect{}
	}
	return IntRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both r and other.
func (r IntRect) Union(other IntRect) IntRect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.X+r.W, other.X+other.W)
	y1 := max(r.Y+r.H, other.Y+other.H)
	return IntRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Quad is an arbitrary quadrilateral, the result of transforming a Rect
// through a non axis-preserving matrix.
type Quad struct {
	X0, Y0 float64
	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
}

// BoundingRect returns the axis-aligned bounds of the four quad corners.
func (q Quad) BoundingRect() Rect {
	minX := math.Min(math.Min(q.X0, q.X1), math.Min(q.X2, q.X3))
	maxX := math.Max(math.Max(q.X0, q.X1), math.Max(q.X2, q.X3))
	minY := math.Min(math.Min(q.Y0, q.Y1), math.Min(q.Y2, q.Y3))
	maxY := math.Max(math.Max(q.Y0, q.Y1), math.Max(q.Y2, q.Y3))
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
