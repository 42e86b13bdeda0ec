package pathfig

import "github.com/rastereng/vgraphics/internal/geom"

// DefaultMergeThreshold is the distance below which consecutive points
// are merged into one.
const DefaultMergeThreshold = 1.0 / 256.0

// Polygon is an ordered list of points with a closed/open flag and
// cached bounds.
type Polygon struct {
	Points    []geom.Point
	Closed    bool
	Threshold float64

	boundsValid bool
	xmin, ymin  float64
	xmax, ymax  float64
}

// NewPolygon returns an empty open polygon with the default merge
// threshold.
func NewPolygon() *Polygon {
	return &Polygon{Threshold: DefaultMergeThreshold}
}

// Append adds a point, merging it into the last point if the two lie
// within Threshold of each other.
func (p *Polygon) Append(x, y float64) {
	if n := len(p.Points); n > 0 {
		last := p.Points[n-1]
		th := p.Threshold
		if th <= 0 {
			th = DefaultMergeThreshold
		}
		if absf(last.X-x) < th && absf(last.Y-y) < th {
			return
		}
	}
	p.Points = append(p.Points, geom.Point{X: x, Y: y})
	p.updateBounds(x, y)
}

func (p *Polygon) updateBounds(x, y float64) {
	if !p.boundsValid {
		p.xmin, p.xmax, p.ymin, p.ymax = x, x, y, y
		p.boundsValid = true
		return
	}
	if x < p.xmin {
		p.xmin = x
	}
	if x > p.xmax {
		p.xmax = x
	}
	if y < p.ymin {
		p.ymin = y
	}
	if y > p.ymax {
		p.ymax = y
	}
}

// Bounds returns the polygon's cached axis-aligned bounds.
func (p *Polygon) Bounds() geom.Rect {
	if !p.boundsValid {
		return geom.Rect{}
	}
	return geom.Rect{X: p.xmin, Y: p.ymin, W: p.xmax - p.xmin, H: p.ymax - p.ymin}
}

// Valid reports whether the polygon has enough points to be usable for
// the given draw mode: at least 2 points if open+stroke, at least 3 if
// closed or filled.
func (p *Polygon) Valid(fillMode bool) bool {
	if len(p.Points) < 2 {
		return false
	}
	if (p.Closed || fillMode) && len(p.Points) < 3 {
		return false
	}
	return true
}

// Merge appends to_merge's points after p's, dropping to_merge's first
// point when it coincides with p's last point within p's threshold.
func (p *Polygon) Merge(toMerge *Polygon) {
	if len(toMerge.Points) == 0 {
		return
	}
	start := 0
	if len(p.Points) > 0 {
		last := p.Points[len(p.Points)-1]
		first := toMerge.Points[0]
		th := p.Threshold
		if th <= 0 {
			th = DefaultMergeThreshold
		}
		if absf(last.X-first.X) < th && absf(last.Y-first.Y) < th {
			start = 1
		}
	}
	for _, pt := range toMerge.Points[start:] {
		p.Append(pt.X, pt.Y)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Figure is an ordered list of polygons defining a 2D region; Bounds
// computes the union of its polygons' bounds on each call.
type Figure struct {
	Polygons []*Polygon
}

// NewFigure returns an empty figure.
func NewFigure() *Figure { return &Figure{} }

// AppendPolygon adds p to the figure.
func (f *Figure) AppendPolygon(p *Polygon) {
	f.Polygons = append(f.Polygons, p)
}

// Bounds returns the union of all polygon bounds.
func (f *Figure) Bounds() geom.Rect {
	var r geom.Rect
	for _, p := range f.Polygons {
		r = r.Union(p.Bounds())
	}
	return r
}
