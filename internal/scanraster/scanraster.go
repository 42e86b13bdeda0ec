// Package scanraster evaluates an edge.Table row by row, producing an
// A8 coverage mask for each output span under either fill rule. For
// every active edge the signed value of its line equation at the pixel
// center both casts a vote toward the winding count and, near the
// edge, contributes an antialiasing blend.
package scanraster

import (
	"github.com/rastereng/vgraphics/internal/edge"
	"github.com/rastereng/vgraphics/internal/fixed"
	"github.com/rastereng/vgraphics/internal/matrix"
)

// FillRule selects how a winding count maps to "inside".
type FillRule int

const (
	// NonZero treats a pixel as inside the figure whenever the signed
	// crossing count is not zero.
	NonZero FillRule = iota
	// EvenOdd treats a pixel as inside whenever the crossing count is
	// odd, regardless of sign.
	EvenOdd
)

func (r FillRule) inside(count int) bool {
	if r == EvenOdd {
		return count&1 != 0
	}
	return count != 0
}

// Rasterizer evaluates one edge.Table against successive scanlines. The
// table's vectors live in the figure space they were built in; xform is
// the inverse of whatever origin/transformation maps that figure space
// onto the destination, so Span can walk device pixels while sampling
// the table in its own space.
type Rasterizer struct {
	table *edge.Table
	rule  FillRule
	xform matrix.Matrix
	kind  matrix.Kind
}

// New returns a Rasterizer for table under rule, defaulted to an
// identity transform (device and figure space coincide).
func New(table *edge.Table, rule FillRule) *Rasterizer {
	return &Rasterizer{table: table, rule: rule, xform: matrix.NewIdentity(), kind: matrix.Identity}
}

// SetTransform installs inv, the inverse of the renderer's active
// origin+transformation, used to map each destination pixel back into
// the table's figure space before evaluating coverage. Call before
// Span; an identity inv (the New default) reproduces the untransformed
// behavior.
func (r *Rasterizer) SetTransform(inv matrix.Matrix) {
	r.xform = inv
	r.kind = inv.Kind()
}

// Bounds returns the integer pixel bounds within which the rasterizer
// can produce non-zero coverage.
func (r *Rasterizer) Bounds() (left, top, right, bottom int) {
	return r.table.Left, r.table.Top, r.table.Right, r.table.Bottom
}

// Span computes one row of coverage at device row y, for device x in
// [x0, x0+length), writing a 0-255 coverage value per pixel into cov.
// cov must have length >= length. Each device pixel center is mapped
// into figure space through xform before sampling, dispatched to one
// of three paths depending on xform's kind: an axis-aligned fast path
// (pure scale/translate, figure-space y constant across the row) for
// Identity or shear-free Affine, a general affine path that steps
// figure x and y together per column, and a projective path that steps
// a homogeneous accumulator and perspective-divides every pixel.
func (r *Rasterizer) Span(y, x0, length int, cov []uint8) {
	switch {
	case r.kind == matrix.Identity:
		r.spanAxisAligned(y, x0, length, cov, matrix.NewIdentity())
	case r.kind == matrix.Affine && r.xform.Xy == 0 && r.xform.Yx == 0:
		r.spanAxisAligned(y, x0, length, cov, r.xform)
	case r.kind == matrix.Affine:
		r.spanAffine(y, x0, length, cov)
	default:
		r.spanProjective(y, x0, length, cov)
	}
}

// spanAxisAligned handles a transform with no rotation or shear: figure
// y is the same for every pixel in the row, and figure x advances by a
// constant step (m.Xx) per device column, so both are computed once
// per row rather than per pixel.
func (r *Rasterizer) spanAxisAligned(y, x0, length int, cov []uint8, m matrix.Matrix) {
	py := float64(y) + 0.5
	fy := fixed.FromDouble(m.Yy*py + m.Yz)
	px0 := float64(x0) + 0.5
	fx := fixed.FromDouble(m.Xx*px0 + m.Xz)
	step := fixed.FromDouble(m.Xx)
	for i := 0; i < length; i++ {
		cov[i] = r.samplePixel(fx, fy)
		fx += step
	}
}

// spanAffine handles a transform with rotation or shear: figure x and y
// both change as the device column advances, so both accumulators step
// together by the transform's x-column coefficients (Xx, Yx).
func (r *Rasterizer) spanAffine(y, x0, length int, cov []uint8) {
	m := r.xform
	px0, py := float64(x0)+0.5, float64(y)+0.5
	ex := m.Xx*px0 + m.Xy*py + m.Xz
	ey := m.Yx*px0 + m.Yy*py + m.Yz
	dex, dey := m.Xx, m.Yx
	for i := 0; i < length; i++ {
		cov[i] = r.samplePixel(fixed.FromDouble(ex), fixed.FromDouble(ey))
		ex += dex
		ey += dey
	}
}

// spanProjective handles a non-affine transform: x, y and the
// homogeneous weight w are carried as separate accumulators, each
// stepped per column by the transform's x-column coefficients (Xx, Yx,
// Zx), with the perspective divide (x/w, y/w) applied per pixel rather
// than folded into the step, since it is not itself linear in x.
func (r *Rasterizer) spanProjective(y, x0, length int, cov []uint8) {
	m := r.xform
	px0, py := float64(x0)+0.5, float64(y)+0.5
	ex := m.Xx*px0 + m.Xy*py + m.Xz
	ey := m.Yx*px0 + m.Yy*py + m.Yz
	ew := m.Zx*px0 + m.Zy*py + m.Zz
	dex, dey, dew := m.Xx, m.Yx, m.Zx
	for i := 0; i < length; i++ {
		fx, fy := ex, ey
		if ew != 0 {
			fx, fy = ex/ew, ey/ew
		}
		cov[i] = r.samplePixel(fixed.FromDouble(fx), fixed.FromDouble(fy))
		ex += dex
		ey += dey
		ew += dew
	}
}

// samplePixel evaluates every edge active at row fy against the point
// (fx, fy), producing a winding count (for the fill-rule inside test)
// and, independent of the winding decision, a distance-based
// antialiasing fade along whichever edge passes nearest the pixel.
func (r *Rasterizer) samplePixel(fx, fy fixed.Point16p16) uint8 {
	count := 0
	nearest := int64(1) << 32 // effectively "no nearby edge"

	for _, v := range r.table.Vectors {
		if !v.ActiveAt(fy) {
			continue
		}
		y0, y1 := v.YRange()
		e := v.Eval(fx, fy)
		if fy >= y0 && fy < y1 {
			if e >= 0 {
				count++
			} else {
				count--
			}
		}
		d := int64(e)
		if d < 0 {
			d = -d
		}
		x0, x1 := v.XRange()
		if fx+fixed.One >= x0 && fx <= x1+fixed.One && d < nearest {
			nearest = d
		}
	}

	inside := r.rule.inside(count)
	if inside {
		return 255
	}
	// Antialias the outside-but-near-the-boundary rim: a pixel whose
	// center falls within one unit (16.16 "1.0") of the nearest active
	// edge gets partial coverage proportional to how close it is.
	if nearest < int64(fixed.One) {
		frac := 255 - int((nearest*255)/int64(fixed.One))
		if frac < 0 {
			frac = 0
		}
		if frac > 255 {
			frac = 255
		}
		return uint8(frac)
	}
	return 0
}
