package pathfig

import (
	"math"

	"github.com/rastereng/vgraphics/internal/curve"
	"github.com/rastereng/vgraphics/internal/geom"
)

// Join selects the stroke-join geometry used on the convex side of a
// turn between two stroke segments.
type Join int

const (
	MiterJoin Join = iota
	RoundJoin
	BevelJoin
)

// Cap selects the stroke-cap geometry closing an open polygon's ends.
type Cap int

const (
	ButtCap Cap = iota
	RoundCap
	SquareCap
)

// Location selects how the stroke width is split relative to the
// original path.
type Location int

const (
	Center Location = iota
	Inside
	Outside
)

// Options configures StrokedGenerator.
type Options struct {
	Width      float64
	Location   Location
	Cap        Cap
	Join       Join
	MiterLimit float64 // default 4.0 when <= 0
	Flatness   float64 // default curve.DefaultFlatness when <= 0
}

func (o Options) miterLimit() float64 {
	if o.MiterLimit <= 0 {
		return 4.0
	}
	return o.MiterLimit
}

func (o Options) flatness() float64 {
	if o.Flatness <= 0 {
		return curve.DefaultFlatness
	}
	return o.Flatness
}

// railOffsets returns the (outer, inner) rail distances from the
// original path for the configured width/location: Center splits the
// width evenly; Inside puts the whole width on the inner rail; Outside
// puts it on the outer rail. This directly produces the annulus radii
// a stroked shape's inner and outer boundary are expected to sit at.
func (o Options) railOffsets() (outer, inner float64) {
	switch o.Location {
	case Inside:
		return 0, o.Width
	case Outside:
		return o.Width, 0
	default:
		return o.Width / 2, o.Width / 2
	}
}

// StrokedGenerator builds the stroke figure: for each input polygon it
// produces a single closed polygon whose interior is the stroked
// region.
type StrokedGenerator struct {
	Opts   Options
	Figure *Figure

	points []geom.Point
	closed bool
}

// NewStrokedGenerator returns a generator writing into a fresh figure.
func NewStrokedGenerator(opts Options) *StrokedGenerator {
	return &StrokedGenerator{Opts: opts, Figure: NewFigure()}
}

func (g *StrokedGenerator) PolygonAdd() {
	g.flush()
	g.points = nil
	g.closed = false
}

func (g *StrokedGenerator) VertexAdd(x, y float64) {
	g.points = append(g.points, geom.Point{X: x, Y: y})
}

func (g *StrokedGenerator) PolygonClose(closed bool) {
	g.closed = closed
}

func (g *StrokedGenerator) Done() {
	g.flush()
}

// flush processes the just-completed polygon's point list into stroke
// geometry and appends the result to the figure.
func (g *StrokedGenerator) flush() {
	defer func() { g.points = nil }()
	if len(g.points) < 2 {
		return
	}
	poly := buildStrokeOutline(g.points, g.closed, g.Opts)
	if poly != nil {
		g.Figure.AppendPolygon(poly)
	}
}

func normalize(dx, dy float64) (float64, float64) {
	d := math.Hypot(dx, dy)
	if d < 1e-12 {
		return 0, 0
	}
	return dx / d, dy / d
}

// edgeNormal returns the unit normal pointing to the right of the
// direction (x0,y0)->(x1,y1) (i.e. (dy,-dx) normalized).
func edgeNormal(x0, y0, x1, y1 float64) (float64, float64) {
	dx, dy := x1-x0, y1-y0
	nx, ny := normalize(dy, -dx)
	return nx, ny
}

// buildStrokeOutline runs a per-vertex join/cap scan, building the
// outer and inner rails as it walks the polygon, then merges them into
// a single closed outline.
func buildStrokeOutline(pts []geom.Point, closed bool, opts Options) *Polygon {
	n := len(pts)
	outerW, innerW := opts.railOffsets()

	type edge struct{ nx, ny float64 }
	edges := make([]edge, 0, n)
	segCount := n - 1
	if closed {
		segCount = n
	}
	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		nx, ny := edgeNormal(a.X, a.Y, b.X, b.Y)
		edges = append(edges, edge{nx, ny})
	}
	if len(edges) == 0 {
		return nil
	}

	outer := NewPolygon()
	inner := NewPolygon()

	appendOffset := func(poly *Polygon, p geom.Point, e edge, dist float64) {
		poly.Append(p.X+e.nx*dist, p.Y+e.ny*dist)
	}

	joinAt := func(outerPoly *Polygon, p geom.Point, e0, e1 edge, dist float64, convexSign float64) {
		cross := e0.nx*e1.ny - e0.ny*e1.nx
		turnsSameWayAsOffset := cross*convexSign <= 0
		if dist == 0 {
			outerPoly.Append(p.X, p.Y)
			return
		}
		if turnsSameWayAsOffset || opts.Join == BevelJoin {
			appendOffset(outerPoly, p, e0, dist)
			appendOffset(outerPoly, p, e1, dist)
			return
		}
		switch opts.Join {
		case MiterJoin:
			mx, my, ok := lineIntersect(
				p.X+e0.nx*dist, p.Y+e0.ny*dist, e0.ny, -e0.nx,
				p.X+e1.nx*dist, p.Y+e1.ny*dist, e1.ny, -e1.nx,
			)
			if ok {
				mdist := math.Hypot(mx-p.X, my-p.Y)
				if mdist/dist <= opts.miterLimit() {
					outerPoly.Append(mx, my)
					return
				}
			}
			appendOffset(outerPoly, p, e0, dist)
			appendOffset(outerPoly, p, e1, dist)
		case RoundJoin:
			a0 := math.Atan2(e0.ny, e0.nx)
			a1 := math.Atan2(e1.ny, e1.nx)
			sweepArcPoints(outerPoly, p, dist, a0, a1, cross >= 0, opts.flatness())
		}
	}

	// An open polygon starts its rails at offset points along the first
	// edge; a closed one gets them from the join at vertex 0, made last.
	if !closed {
		appendOffset(outer, pts[0], edges[0], outerW)
		appendOffset(inner, pts[0], edges[0], -innerW)
	}

	startIdx := 1
	endIdx := n - 1
	if closed {
		endIdx = n + 1
	}
	for i := startIdx; i < endIdx; i++ {
		p := pts[i%n]
		e0 := edges[(i-1)%len(edges)]
		e1 := edges[i%len(edges)]
		joinAt(outer, p, e0, e1, outerW, 1)
		joinAt(inner, p, edge{-e0.nx, -e0.ny}, edge{-e1.nx, -e1.ny}, innerW, -1)
	}

	if !closed {
		last := pts[n-1]
		lastEdge := edges[len(edges)-1]
		appendOffset(outer, last, lastEdge, outerW)
		appendOffset(inner, last, lastEdge, -innerW)
	}

	result := NewPolygon()
	for _, p := range outer.Points {
		result.Append(p.X, p.Y)
	}

	if closed {
		// The outer ring, a bridge to the inner ring walked in reverse so
		// its winding opposes the outer ring, and the same bridge back:
		// the two bridge sides cancel, leaving an annulus under the
		// nonzero winding rule.
		result.Append(outer.Points[0].X, outer.Points[0].Y)
		for i := len(inner.Points) - 1; i >= 0; i-- {
			p := inner.Points[i]
			result.Append(p.X, p.Y)
		}
		innerStart := inner.Points[len(inner.Points)-1]
		result.Append(innerStart.X, innerStart.Y)
		result.Closed = true
		return result
	}

	// Open path: cap at the end, walk back along the inner rail, cap at
	// the start, and close the ring.
	last := pts[n-1]
	lastEdge := edges[len(edges)-1]
	capGeometry(result, last, lastEdge, outerW, innerW, opts.Cap, opts.flatness())

	for i := len(inner.Points) - 1; i >= 0; i-- {
		p := inner.Points[i]
		result.Append(p.X, p.Y)
	}

	first := pts[0]
	firstEdge := edges[0]
	// Seen from the start cap, the inner rail is on the normal's side.
	firstEdge.nx, firstEdge.ny = -firstEdge.nx, -firstEdge.ny
	capGeometry(result, first, firstEdge, innerW, outerW, opts.Cap, opts.flatness())

	result.Closed = true
	return result
}

// capGeometry appends the points closing the outer rail (offset by
// fromDist along edge's normal) to the inner rail (offset by -toDist),
// per the configured cap style, for an open (unclosed) input polygon.
func capGeometry(poly *Polygon, p geom.Point, e struct{ nx, ny float64 }, fromDist, toDist float64, cap Cap, flatness float64) {
	switch cap {
	case ButtCap:
		// Nothing: the two rail endpoints are connected directly.
	case SquareCap:
		tx, ty := -e.ny, e.nx // tangent (direction of travel)
		poly.Append(p.X+e.nx*fromDist+tx*fromDist, p.Y+e.ny*fromDist+ty*fromDist)
		poly.Append(p.X-e.nx*toDist+tx*toDist, p.Y-e.ny*toDist+ty*toDist)
	case RoundCap:
		a0 := math.Atan2(e.ny, e.nx)
		a1 := math.Atan2(-e.ny, -e.nx)
		sweepArcPoints(poly, p, (fromDist+toDist)/2, a0, a1, true, flatness)
	}
}

// sweepArcPoints appends points of a circular arc of radius r centered
// at p, from angle a0 to a1, for Round joins and caps. The arc is
// expressed as an SVG-style endpoint arc and flattened by curve.Arc, so
// joins and caps subdivide to the same flatness tolerance as the rest
// of a stroked path's curves.
func sweepArcPoints(poly *Polygon, p geom.Point, r, a0, a1 float64, ccw bool, flatness float64) {
	if r <= 0 {
		return
	}
	delta := a1 - a0
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	if ccw && delta < 0 {
		delta += 2 * math.Pi
	}
	if !ccw && delta > 0 {
		delta -= 2 * math.Pi
	}
	if delta == 0 {
		return
	}
	x0, y0 := p.X+r*math.Cos(a0), p.Y+r*math.Sin(a0)
	a1 = a0 + delta
	x1, y1 := p.X+r*math.Cos(a1), p.Y+r*math.Sin(a1)
	largeArc := math.Abs(delta) > math.Pi
	sweep := delta > 0
	curve.Arc(x0, y0, r, r, 0, largeArc, sweep, x1, y1, flatness, curve.SinkFunc(func(x, y float64) {
		poly.Append(x, y)
	}))
}

// lineIntersect intersects the line through (x0,y0) with direction
// (dx0,dy0) and the line through (x1,y1) with direction (dx1,dy1),
// returning ok=false if they are parallel.
func lineIntersect(x0, y0, dx0, dy0, x1, y1, dx1, dy1 float64) (x, y float64, ok bool) {
	denom := dx0*dy1 - dy0*dx1
	if math.Abs(denom) < 1e-12 {
		return 0, 0, false
	}
	t := ((x1-x0)*dy1 - (y1-y0)*dx1) / denom
	return x0 + dx0*t, y0 + dy0*t, true
}
