// Package edge builds the fixed-point vector table a figure's polygons
// are reduced to before scanline rasterization: one entry per polygon
// side, carrying its endpoints and a normalized line equation used for
// signed-distance antialiasing. The vector-table construction follows
// Enesim's rasterizer, translated from 65536-scaled doubles to this
// module's 16.16 fixed-point type.
package edge

import (
	"fmt"
	"math"

	"github.com/rastereng/vgraphics/internal/fixed"
	"github.com/rastereng/vgraphics/internal/pathfig"
)

// lengthPad matches the 1+1/32 length inflation Enesim applies before
// normalizing the line coefficients, which keeps the antialiasing
// falloff from the edge slightly gentler than an exact unit normal.
const lengthPad = 1 + 1.0/32.0

// Vector is one polygon side reduced to fixed-point endpoints and a
// normalized line equation a*x + b*y + c, scaled so evaluating it at a
// point gives a 16.16 signed distance estimate in pixel units.
type Vector struct {
	X0, Y0 fixed.Point16p16
	X1, Y1 fixed.Point16p16
	A, B, C fixed.Point16p16
}

// Table is the full set of vectors for a figure, plus the integer pixel
// bounds of their union, used to clip scanline iteration before any
// per-edge work begins.
type Table struct {
	Vectors []Vector
	Left, Top, Right, Bottom int
}

// ErrDegenerateEdge is returned when a polygon side collapses to a
// point shorter than the quantization grid can represent.
var ErrDegenerateEdge = fmt.Errorf("edge: degenerate side shorter than minimum length")

// Build reduces fig's polygons to a vector table. Each polygon
// contributes one vector per consecutive point pair; closed polygons
// additionally close from the last point back to the first.
func Build(fig *pathfig.Figure) (*Table, error) {
	t := &Table{
		Left: math.MaxInt32, Top: math.MaxInt32,
		Right: math.MinInt32, Bottom: math.MinInt32,
	}
	for _, poly := range fig.Polygons {
		pts := poly.Points
		n := len(pts)
		if n < 2 {
			continue
		}
		segCount := n - 1
		if poly.Closed {
			segCount = n
		}
		for i := 0; i < segCount; i++ {
			p0 := pts[i]
			p1 := pts[(i+1)%n]
			v, err := buildVector(p0.X, p0.Y, p1.X, p1.Y)
			if err != nil {
				return nil, err
			}
			t.Vectors = append(t.Vectors, v)
			updateBounds(t, v)
		}
	}
	if len(t.Vectors) == 0 {
		t.Left, t.Top, t.Right, t.Bottom = 0, 0, 0, 0
	}
	return t, nil
}

func buildVector(x0, y0, x1, y1 float64) (Vector, error) {
	// Quantize to 1/256 before measuring length, matching the source
	// precision the fixed-point endpoints will actually carry.
	x0 = math.Trunc(x0*256) / 256
	x1 = math.Trunc(x1*256) / 256
	y0 = math.Trunc(y0*256) / 256
	y1 = math.Trunc(y1*256) / 256

	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length < 1.0/256.0 {
		return Vector{}, fmt.Errorf("%w: (%g,%g)-(%g,%g) length %g", ErrDegenerateEdge, x0, y0, x1, y1, length)
	}
	length *= lengthPad

	a := -dy * 65536 / length
	b := dx * 65536 / length
	c := (65536 * ((y1 * x0) - (x1 * y0))) / length

	return Vector{
		X0: fixed.FromDouble(x0), Y0: fixed.FromDouble(y0),
		X1: fixed.FromDouble(x1), Y1: fixed.FromDouble(y1),
		A: fixed.Point16p16(a), B: fixed.Point16p16(b), C: fixed.Point16p16(c),
	}, nil
}

func updateBounds(t *Table, v Vector) {
	yMin, yMax := v.Y0, v.Y1
	if yMax < yMin {
		yMin, yMax = yMax, yMin
	}
	xMin, xMax := v.X0, v.X1
	if xMax < xMin {
		xMin, xMax = xMax, xMin
	}
	if top := fixed.ToInt(yMin); top < t.Top {
		t.Top = top
	}
	if bottom := fixed.ToInt(yMax); bottom > t.Bottom {
		t.Bottom = bottom
	}
	if left := fixed.ToInt(xMin); left < t.Left {
		t.Left = left
	}
	if right := fixed.ToInt(xMax); right > t.Right {
		t.Right = right
	}
}

// Eval evaluates v's line equation at fixed-point point (x,y), i.e.
// a*x + b*y + c, all in 16.16, using a 64-bit intermediate so the
// products don't overflow before the final shift back to 16.16.
func (v Vector) Eval(x, y fixed.Point16p16) fixed.Point16p16 {
	ax := (int64(v.A) * int64(x)) >> 16
	by := (int64(v.B) * int64(y)) >> 16
	return fixed.Point16p16(ax + by + int64(v.C))
}

// YRange returns v's vertical extent as (min, max) fixed-point y.
func (v Vector) YRange() (fixed.Point16p16, fixed.Point16p16) {
	if v.Y1 < v.Y0 {
		return v.Y1, v.Y0
	}
	return v.Y0, v.Y1
}

// XRange returns v's horizontal extent as (min, max) fixed-point x.
func (v Vector) XRange() (fixed.Point16p16, fixed.Point16p16) {
	if v.X1 < v.X0 {
		return v.X1, v.X0
	}
	return v.X0, v.X1
}

// ActiveAt reports whether v can affect row y (in 16.16), using the
// same +/-1 pixel slop Enesim's scanline loop applies so edges whose
// endpoint sits exactly on a scanline are still considered.
func (v Vector) ActiveAt(y fixed.Point16p16) bool {
	y0, y1 := v.YRange()
	return y+fixed.One >= y0 && y <= y1+fixed.One
}
