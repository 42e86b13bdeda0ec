package rendertree

import (
	"math"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/matrix"
)

// Stripes tiles the plane with horizontal bands alternating between two
// colors and two thicknesses, with antialiased band edges.
type Stripes struct {
	Base
	Color1, Color2     colorspace.Color
	Thickness1, Thickness2 float64
}

// NewStripes returns a Stripes renderer.
func NewStripes(c1, c2 colorspace.Color, t1, t2 float64) *Stripes {
	s := &Stripes{Color1: c1, Color2: c2, Thickness1: t1, Thickness2: t2}
	s.InitDefaults(AutoName(s.BaseName()))
	return s
}

func (s *Stripes) BaseName() string { return "Stripes" }

func (s *Stripes) Bounds() geom.Rect {
	return geom.Rect{X: math.Inf(-1), Y: math.Inf(-1), W: math.Inf(1), H: math.Inf(1)}
}

func (s *Stripes) DestinationBounds() geom.IntRect {
	return geom.IntRect{X: math.MinInt32 / 2, Y: math.MinInt32 / 2, W: math.MaxInt32, H: math.MaxInt32}
}

func (s *Stripes) FeatureFlags() Features {
	return FeatureTranslate | FeatureAffine | FeatureProjective | FeatureARGB8888 | FeatureQuality
}

func (s *Stripes) HasChanged() bool { return s.HasChangedBase() }

func (s *Stripes) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(s, oldBounds, cb)
}

func (s *Stripes) colorAt(py float64) colorspace.Color {
	period := s.Thickness1 + s.Thickness2
	if period <= 0 {
		return s.Color1
	}
	fy := math.Mod(py, period)
	if fy < 0 {
		fy += period
	}
	const feather = 0.5
	if fy < s.Thickness1 {
		d := math.Min(fy, s.Thickness1-fy)
		if d < feather {
			return colorspace.Interp256(int32(d/feather*256), s.Color1, s.Color2)
		}
		return s.Color1
	}
	fy -= s.Thickness1
	d := math.Min(fy, s.Thickness2-fy)
	if d < feather {
		return colorspace.Interp256(int32(d/feather*256), s.Color2, s.Color1)
	}
	return s.Color2
}

func (s *Stripes) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := s.BeginSetup(); err != nil {
		return nil, err
	}
	fn := colorspace.SelectSpanFunc(rop, true)
	colorMask := s.Current.Color
	if colorMask == 0 {
		colorMask = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}
	inv := inverseTransform(s.Current)
	return func(x, y, length int, dst []colorspace.Color) {
		src := make([]colorspace.Color, length)
		if inv.Kind() != matrix.Identity && (inv.Kind() != matrix.Affine || inv.Xy != 0) {
			for i := 0; i < length; i++ {
				p := inv.PointTransform(geom.Point{X: float64(x + i), Y: float64(y)})
				src[i] = s.colorAt(p.Y)
			}
			fn(dst, length, src, colorMask, nil)
			return
		}
		// No rotation/shear: figure y is constant across the row, so the
		// color only needs computing once.
		p := inv.PointTransform(geom.Point{X: float64(x), Y: float64(y)})
		c := s.colorAt(p.Y)
		for i := range src {
			src[i] = c
		}
		fn(dst, length, src, colorMask, nil)
	}, nil
}

func (s *Stripes) Cleanup(target *Surface) { s.EndCleanup() }
