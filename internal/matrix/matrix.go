// Package matrix implements a 3x3 transformation matrix, classified as
// Identity, Affine, or Projective on every mutation, plus its 16.16
// fixed-point mirror used by the scanline rasterizer (internal/edge,
// internal/scanraster).
package matrix

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"

	"github.com/rastereng/vgraphics/internal/fixed"
	"github.com/rastereng/vgraphics/internal/geom"
)

// ErrSingular is returned by Inverse when the matrix determinant is too
// small in magnitude to invert reliably.
var ErrSingular = errors.New("matrix: singular, cannot invert")

// Kind classifies a Matrix's structure, recomputed after every mutation.
type Kind int

const (
	Identity Kind = iota
	Affine
	Projective
)

func (k Kind) String() string {
	switch k {
	case Identity:
		return "Identity"
	case Affine:
		return "Affine"
	default:
		return "Projective"
	}
}

// zeroTolerance is the threshold below which an off-diagonal element is
// treated as exactly zero for classification purposes.
const zeroTolerance = 1.0 / 65536.0

// Matrix is a 3x3 transformation matrix with named fields in row-major
// layout: xx xy xz / yx yy yz / zx zy zz.
type Matrix struct {
	Xx, Xy, Xz float64
	Yx, Yy, Yz float64
	Zx, Zy, Zz float64

	kind Kind
}

// New builds a Matrix from its nine components and classifies it.
func New(xx, xy, xz, yx, yy, yz, zx, zy, zz float64) Matrix {
	m := Matrix{Xx: xx, Xy: xy, Xz: xz, Yx: yx, Yy: yy, Yz: yz, Zx: zx, Zy: zy, Zz: zz}
	m.classify()
	return m
}

// NewIdentity returns the identity matrix.
func NewIdentity() Matrix {
	return New(1, 0, 0, 0, 1, 0, 0, 0, 1)
}

// NewTranslate returns a translation matrix.
func NewTranslate(dx, dy float64) Matrix {
	return New(1, 0, dx, 0, 1, dy, 0, 0, 1)
}

// NewScale returns a scale matrix.
func NewScale(sx, sy float64) Matrix {
	return New(sx, 0, 0, 0, sy, 0, 0, 0, 1)
}

// NewRotate returns a rotation matrix for angleRad radians.
func NewRotate(angleRad float64) Matrix {
	c, s := math.Cos(angleRad), math.Sin(angleRad)
	return New(c, -s, 0, s, c, 0, 0, 0, 1)
}

// classify recomputes m.kind from the current components, tolerating
// |v| < 1/65536 as zero for the off-diagonal elements.
func (m *Matrix) classify() {
	isZero := func(v float64) bool { return math.Abs(v) < zeroTolerance }

	if !isZero(m.Zx) || !isZero(m.Zy) || math.Abs(m.Zz-1) > zeroTolerance {
		m.kind = Projective
		return
	}
	if isZero(m.Xy) && isZero(m.Yx) &&
		math.Abs(m.Xx-1) < zeroTolerance && math.Abs(m.Yy-1) < zeroTolerance &&
		isZero(m.Xz) && isZero(m.Yz) {
		m.kind = Identity
		return
	}
	m.kind = Affine
}

// Kind returns the matrix's classification.
func (m Matrix) Kind() Kind { return m.kind }

// Compose returns a∘b, i.e. applying b first then a: p' = M * p with
// M = a composed over b.
func Compose(a, b Matrix) Matrix {
	return New(
		a.Xx*b.Xx+a.Xy*b.Yx+a.Xz*b.Zx,
		a.Xx*b.Xy+a.Xy*b.Yy+a.Xz*b.Zy,
		a.Xx*b.Xz+a.Xy*b.Yz+a.Xz*b.Zz,

		a.Yx*b.Xx+a.Yy*b.Yx+a.Yz*b.Zx,
		a.Yx*b.Xy+a.Yy*b.Yy+a.Yz*b.Zy,
		a.Yx*b.Xz+a.Yy*b.Yz+a.Yz*b.Zz,

		a.Zx*b.Xx+a.Zy*b.Yx+a.Zz*b.Zx,
		a.Zx*b.Xy+a.Zy*b.Yy+a.Zz*b.Zy,
		a.Zx*b.Xz+a.Zy*b.Yz+a.Zz*b.Zz,
	)
}

func (m Matrix) determinant() float64 {
	return m.Xx*(m.Yy*m.Zz-m.Yz*m.Zy) -
		m.Xy*(m.Yx*m.Zz-m.Yz*m.Zx) +
		m.Xz*(m.Yx*m.Zy-m.Yy*m.Zx)
}

// Inverse returns the matrix inverse, or ErrSingular when the
// determinant magnitude is below 1e-12.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.determinant()
	if math.Abs(det) < 1e-12 {
		return Matrix{}, ErrSingular
	}
	invDet := 1.0 / det

	return New(
		(m.Yy*m.Zz-m.Yz*m.Zy)*invDet,
		(m.Xz*m.Zy-m.Xy*m.Zz)*invDet,
		(m.Xy*m.Yz-m.Xz*m.Yy)*invDet,

		(m.Yz*m.Zx-m.Yx*m.Zz)*invDet,
		(m.Xx*m.Zz-m.Xz*m.Zx)*invDet,
		(m.Xz*m.Yx-m.Xx*m.Yz)*invDet,

		(m.Yx*m.Zy-m.Yy*m.Zx)*invDet,
		(m.Xy*m.Zx-m.Xx*m.Zy)*invDet,
		(m.Xx*m.Yy-m.Xy*m.Yx)*invDet,
	), nil
}

// PointTransform applies the matrix to a point, dividing through by the
// homogeneous w coordinate for projective matrices.
func (m Matrix) PointTransform(p geom.Point) geom.Point {
	x := m.Xx*p.X + m.Xy*p.Y + m.Xz
	y := m.Yx*p.X + m.Yy*p.Y + m.Yz
	if m.kind == Projective {
		w := m.Zx*p.X + m.Zy*p.Y + m.Zz
		if w != 0 {
			x /= w
			y /= w
		}
	}
	return geom.Point{X: x, Y: y}
}

// RectangleTransform maps a rectangle's four corners through the matrix,
// returning the resulting (possibly non-axis-aligned) quadrilateral.
func (m Matrix) RectangleTransform(r geom.Rect) geom.Quad {
	p0 := m.PointTransform(geom.Point{X: r.X, Y: r.Y})
	p1 := m.PointTransform(geom.Point{X: r.X + r.W, Y: r.Y})
	p2 := m.PointTransform(geom.Point{X: r.X + r.W, Y: r.Y + r.H})
	p3 := m.PointTransform(geom.Point{X: r.X, Y: r.Y + r.H})
	return geom.Quad{
		X0: p0.X, Y0: p0.Y,
		X1: p1.X, Y1: p1.Y,
		X2: p2.X, Y2: p2.Y,
		X3: p3.X, Y3: p3.Y,
	}
}

// BoundsUntransform maps rect through m's inverse; if m is singular it
// falls back to returning rect unchanged under the identity, the
// conventional recovery for a non-invertible transform.
func (m Matrix) BoundsUntransform(r geom.Rect) geom.Rect {
	inv, err := m.Inverse()
	if err != nil {
		return r
	}
	q := inv.RectangleTransform(r)
	return q.BoundingRect()
}

// F16p16 is the fixed-point mirror of a Matrix, cached on a renderer at
// setup time and consumed directly by internal/edge and
// internal/scanraster's per-pixel stepping.
type F16p16 struct {
	Xx, Xy, Xz fixed.Point16p16
	Yx, Yy, Yz fixed.Point16p16
	Zx, Zy, Zz fixed.Point16p16
}

// ToF16p16 converts m to its fixed-point mirror by per-element
// conversion.
func (m Matrix) ToF16p16() F16p16 {
	return F16p16{
		Xx: fixed.FromDouble(m.Xx), Xy: fixed.FromDouble(m.Xy), Xz: fixed.FromDouble(m.Xz),
		Yx: fixed.FromDouble(m.Yx), Yy: fixed.FromDouble(m.Yy), Yz: fixed.FromDouble(m.Yz),
		Zx: fixed.FromDouble(m.Zx), Zy: fixed.FromDouble(m.Zy), Zz: fixed.FromDouble(m.Zz),
	}
}

// Affine returns the matrix's affine part as an x/image/math/f64.Aff3,
// for interop with the wider x/image ecosystem (e.g. compositing our
// output alongside golang.org/x/image/draw operations). The projective
// row is discarded; callers should check Kind() != Projective first.
func (m Matrix) Affine() f64.Aff3 {
	return f64.Aff3{m.Xx, m.Xy, m.Xz, m.Yx, m.Yy, m.Yz}
}

// FromAff3 builds an affine Matrix from an x/image/math/f64.Aff3.
func FromAff3(a f64.Aff3) Matrix {
	return New(a[0], a[1], a[2], a[3], a[4], a[5], 0, 0, 1)
}
