package rendertree

import (
	"math"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/matrix"
)

// Solid is the background renderer: it fills every pixel of whatever
// area it is drawn into with a single color, unbounded like Checker
// and Stripes rather than clipped to a finite shape.
type Solid struct {
	Base
}

// NewSolid returns a Solid renderer with the given fill color,
// auto-named, visible, and defaulted to identity transform / Fill rop.
func NewSolid(color colorspace.Color) *Solid {
	s := &Solid{}
	s.InitDefaults(AutoName(s.BaseName()))
	s.Current.Color = color
	return s
}

func (s *Solid) BaseName() string { return "Solid" }

func (s *Solid) Bounds() geom.Rect {
	return geom.Rect{X: math.Inf(-1), Y: math.Inf(-1), W: math.Inf(1), H: math.Inf(1)}
}

func (s *Solid) DestinationBounds() geom.IntRect {
	return geom.IntRect{X: math.MinInt32 / 2, Y: math.MinInt32 / 2, W: math.MaxInt32, H: math.MaxInt32}
}

func (s *Solid) FeatureFlags() Features {
	return FeatureTranslate | FeatureAffine | FeatureProjective | FeatureARGB8888 | FeatureColorMask | FeatureROP
}

func (s *Solid) HasChanged() bool { return s.HasChangedBase() }

func (s *Solid) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(s, oldBounds, cb)
}

func (s *Solid) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := s.BeginSetup(); err != nil {
		return nil, err
	}
	color := s.Current.Color
	fn := colorspace.SelectSpanFunc(rop, false)
	return func(x, y, length int, dst []colorspace.Color) {
		fn(dst, length, nil, color, nil)
	}, nil
}

func (s *Solid) Cleanup(target *Surface) {
	s.EndCleanup()
}

// transformedBounds maps r through state's transformation and origin,
// falling back to identity when the transform is singular, per the
// BoundsUntransform recovery contract.
func transformedBounds(r geom.Rect, st State) geom.Rect {
	q := st.Transformation.RectangleTransform(r)
	b := q.BoundingRect()
	return geom.Rect{X: b.X + st.OriginX, Y: b.Y + st.OriginY, W: b.W, H: b.H}
}

// forwardTransform returns the full figure-to-destination map a
// renderer's Current state describes: its Transformation, followed by
// translating by Origin.
func forwardTransform(st State) matrix.Matrix {
	return matrix.Compose(matrix.NewTranslate(st.OriginX, st.OriginY), st.Transformation)
}

// inverseTransform returns the destination-to-figure map, the inverse
// of forwardTransform(st), used to sample a renderer's geometry or
// paint at a destination pixel. Falls back to the identity when the
// combined transform is singular, the same recovery BoundsUntransform
// applies to bounds mapping.
func inverseTransform(st State) matrix.Matrix {
	inv, err := forwardTransform(st).Inverse()
	if err != nil {
		return matrix.NewIdentity()
	}
	return inv
}

// defaultDamages implements the vtable's default damage contract: if
// the renderer has changed, emit old_bounds and destination_bounds.
func defaultDamages(r Renderer, oldBounds geom.IntRect, cb DamageFunc) {
	if !r.HasChanged() {
		return
	}
	cb(oldBounds, true)
	cb(r.DestinationBounds(), false)
}
