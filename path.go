package vgraphics

import "github.com/rastereng/vgraphics/internal/pathfig"

// Path accumulates a move/line/curve/close command stream independent
// of any Shape, for building geometry incrementally before handing it
// to NewPath.
type Path struct {
	b *pathfig.Builder
}

// NewPathBuilder returns an empty Path.
func NewPathBuilder() *Path { return &Path{b: &pathfig.Builder{}} }

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) { p.b.MoveTo(x, y) }

// LineTo appends a straight segment to (x,y).
func (p *Path) LineTo(x, y float64) { p.b.LineTo(x, y) }

// QuadraticTo appends a quadratic Bezier segment through control point
// (cx,cy) to (x,y).
func (p *Path) QuadraticTo(cx, cy, x, y float64) { p.b.QuadraticTo(cx, cy, x, y) }

// SmoothQuadraticTo appends a quadratic Bezier segment reflecting the
// previous segment's control point.
func (p *Path) SmoothQuadraticTo(x, y float64) { p.b.SmoothQuadraticTo(x, y) }

// CubicTo appends a cubic Bezier segment through control points
// (cx0,cy0) and (cx1,cy1) to (x,y).
func (p *Path) CubicTo(cx0, cy0, cx1, cy1, x, y float64) {
	p.b.CubicTo(cx0, cy0, cx1, cy1, x, y)
}

// SmoothCubicTo appends a cubic Bezier segment reflecting the previous
// segment's last control point.
func (p *Path) SmoothCubicTo(cx1, cy1, x, y float64) { p.b.SmoothCubicTo(cx1, cy1, x, y) }

// ArcTo appends an elliptical arc segment to (x,y), in the SVG arc
// parameterization (radii, x-axis rotation, large-arc and sweep flags).
func (p *Path) ArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) {
	p.b.ArcTo(rx, ry, xAxisRotation, largeArc, sweep, x, y)
}

// Close ends the current subpath, optionally joining it back to its
// start point.
func (p *Path) Close(closed bool) { p.b.Close(closed) }

// Clear discards all accumulated commands.
func (p *Path) Clear() { p.b.Clear() }
