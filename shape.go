package vgraphics

import (
	"github.com/rastereng/vgraphics/internal/bifigure"
	"github.com/rastereng/vgraphics/internal/pathfig"
	"github.com/rastereng/vgraphics/internal/rendertree"
	"github.com/rastereng/vgraphics/internal/scanraster"
)

// FillRule selects how a shape's winding count maps to "inside".
type FillRule = scanraster.FillRule

const (
	FillNonZero = scanraster.NonZero
	FillEvenOdd = scanraster.EvenOdd
)

// StrokeJoin selects the geometry used on the convex side of a turn
// between two stroke segments.
type StrokeJoin = pathfig.Join

const (
	JoinMiter = pathfig.MiterJoin
	JoinRound = pathfig.RoundJoin
	JoinBevel = pathfig.BevelJoin
)

// StrokeCap selects the geometry closing an open subpath's ends.
type StrokeCap = pathfig.Cap

const (
	CapButt   = pathfig.ButtCap
	CapRound  = pathfig.RoundCap
	CapSquare = pathfig.SquareCap
)

// StrokeLocation selects how a stroke's width is split relative to the
// path it follows.
type StrokeLocation = pathfig.Location

const (
	StrokeCenter  = pathfig.Center
	StrokeInside  = pathfig.Inside
	StrokeOutside = pathfig.Outside
)

// DrawMode selects which of a shape's fill and stroke are drawn.
type DrawMode = bifigure.DrawMode

const (
	DrawFill          = bifigure.DrawFill
	DrawStroke        = bifigure.DrawStroke
	DrawFillAndStroke = bifigure.DrawFill | bifigure.DrawStroke
)

// Shape is a renderer over a path's fill and/or stroke: rectangle,
// circle, ellipse, line and arbitrary path all share this type, and
// differ only in how the underlying path commands are produced.
type Shape struct {
	*Renderer
	impl *rendertree.Shape
}

func wrapShape(impl *rendertree.Shape) *Shape {
	return &Shape{Renderer: wrapRenderer(impl), impl: impl}
}

// NewRectangle returns a Shape whose path is an axis-aligned rectangle
// at (x,y) sized w x h, optionally with uniformly rounded corners.
func NewRectangle(x, y, w, h, cornerRadius float64) *Shape {
	return wrapShape(rendertree.NewRectangle(x, y, w, h, cornerRadius))
}

// NewCircle returns a Shape whose path is a circle centered at (cx,cy).
func NewCircle(cx, cy, radius float64) *Shape {
	return wrapShape(rendertree.NewCircle(cx, cy, radius))
}

// NewEllipse returns a Shape whose path is an ellipse centered at
// (cx,cy) with the given radii.
func NewEllipse(cx, cy, rx, ry float64) *Shape {
	return wrapShape(rendertree.NewEllipse(cx, cy, rx, ry))
}

// NewLine returns a Shape whose path is a single open segment from
// (x0,y0) to (x1,y1); it has no fill and is typically drawn with
// SetDrawMode(DrawStroke).
func NewLine(x0, y0, x1, y1 float64) *Shape {
	return wrapShape(rendertree.NewLine(x0, y0, x1, y1))
}

// NewPath returns a Shape over an independently built Path.
func NewPath(p *Path) *Shape {
	return wrapShape(rendertree.NewPath(p.b.Commands))
}

// Path returns the shape's own path builder, for mutating geometry in
// place (e.g. appending segments to a Shape built with NewPath).
func (s *Shape) Path() *Path { return &Path{b: &s.impl.Path} }

// SetFillColor sets the flat color a shape's fill interior is painted
// with when no FillRenderer is set.
func (s *Shape) SetFillColor(c Color) { s.impl.FillColor = c }

// FillColor returns the current flat fill color.
func (s *Shape) FillColor() Color { return s.impl.FillColor }

// SetFillRenderer sets a renderer whose output paints the fill interior
// instead of a flat color; pass nil to fall back to FillColor.
func (s *Shape) SetFillRenderer(r *Renderer) {
	if r == nil {
		s.impl.FillPaint = nil
		return
	}
	s.impl.FillPaint = r.r
}

// FillRenderer returns the current fill paint source, or nil.
func (s *Shape) FillRenderer() *Renderer { return wrapRenderer(s.impl.FillPaint) }

// SetFillRule sets the rule used to decide whether a point is inside
// the fill figure.
func (s *Shape) SetFillRule(rule FillRule) { s.impl.FillRule = rule }

// FillRule returns the current fill rule.
func (s *Shape) FillRule() FillRule { return s.impl.FillRule }

// SetStrokeWeight sets the stroke width; a weight <= 0 disables
// stroking regardless of draw mode.
func (s *Shape) SetStrokeWeight(w float64) { s.impl.StrokeWeight = w }

// StrokeWeight returns the current stroke width.
func (s *Shape) StrokeWeight() float64 { return s.impl.StrokeWeight }

// SetStrokeColor sets the flat color a shape's stroke is painted with
// when no StrokeRenderer is set.
func (s *Shape) SetStrokeColor(c Color) { s.impl.StrokeColor = c }

// StrokeColor returns the current flat stroke color.
func (s *Shape) StrokeColor() Color { return s.impl.StrokeColor }

// SetStrokeRenderer sets a renderer whose output paints the stroke
// instead of a flat color; pass nil to fall back to StrokeColor.
func (s *Shape) SetStrokeRenderer(r *Renderer) {
	if r == nil {
		s.impl.StrokePaint = nil
		return
	}
	s.impl.StrokePaint = r.r
}

// StrokeRenderer returns the current stroke paint source, or nil.
func (s *Shape) StrokeRenderer() *Renderer { return wrapRenderer(s.impl.StrokePaint) }

// SetStrokeLocation sets how the stroke width is split relative to the
// path.
func (s *Shape) SetStrokeLocation(loc StrokeLocation) { s.impl.StrokeLocation = loc }

// SetStrokeCap sets the geometry closing an open subpath's ends.
func (s *Shape) SetStrokeCap(c StrokeCap) { s.impl.StrokeCap = c }

// SetStrokeJoin sets the geometry used on the convex side of a turn.
func (s *Shape) SetStrokeJoin(join StrokeJoin) { s.impl.StrokeJoin = join }

// SetDash installs a dash pattern the stroke is split against, starting
// offset into the pattern by start; an empty lengths clears dashing.
func (s *Shape) SetDash(start float64, lengths ...float64) {
	if len(lengths) == 0 {
		s.impl.Dash = nil
		return
	}
	s.impl.Dash = pathfig.NewDashPattern(start, lengths...)
}

// ClearDash removes any dash pattern, making the stroke solid.
func (s *Shape) ClearDash() { s.impl.Dash = nil }

// SetDrawMode selects which of fill and stroke are drawn.
func (s *Shape) SetDrawMode(mode DrawMode) { s.impl.Mode = mode }
