package pathfig

// StrokelessGenerator builds a single figure whose polygons are direct
// outlines of the command stream, with no offset geometry.
type StrokelessGenerator struct {
	Figure  *Figure
	current *Polygon
}

// NewStrokelessGenerator returns a generator writing into a fresh
// figure.
func NewStrokelessGenerator() *StrokelessGenerator {
	return &StrokelessGenerator{Figure: NewFigure()}
}

func (g *StrokelessGenerator) PolygonAdd() {
	g.current = NewPolygon()
	g.Figure.AppendPolygon(g.current)
}

func (g *StrokelessGenerator) VertexAdd(x, y float64) {
	if g.current == nil {
		g.PolygonAdd()
	}
	g.current.Append(x, y)
}

func (g *StrokelessGenerator) PolygonClose(closed bool) {
	if g.current != nil {
		g.current.Closed = closed
		// A closed outline whose last vertex lands back on its first (an
		// arc or line ending at the start point) drops that repeat, which
		// would otherwise form a zero-length closing side.
		if pts := g.current.Points; closed && len(pts) > 2 {
			first, last := pts[0], pts[len(pts)-1]
			if absf(first.X-last.X) < g.current.Threshold && absf(first.Y-last.Y) < g.current.Threshold {
				g.current.Points = pts[:len(pts)-1]
			}
		}
	}
}

func (g *StrokelessGenerator) Done() {}
