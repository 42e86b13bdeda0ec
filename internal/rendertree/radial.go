package rendertree

import (
	"math"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

// RadialDistortion warps samples of a wrapped renderer radially around
// Center: a pixel at distance r from Center samples the source at
// distance r*(1+Strength*(r/Radius)^2), a simple barrel/pincushion
// lens-style distortion (positive Strength bulges outward, negative
// pinches inward).
type RadialDistortion struct {
	Base
	Source   Renderer
	Center   geom.Point
	Radius   float64
	Strength float64

	span SpanFunc
}

// NewRadialDistortion returns a RadialDistortion wrapping source.
func NewRadialDistortion(source Renderer, center geom.Point, radius, strength float64) *RadialDistortion {
	r := &RadialDistortion{Source: source, Center: center, Radius: radius, Strength: strength}
	r.InitDefaults(AutoName(r.BaseName()))
	return r
}

func (r *RadialDistortion) BaseName() string { return "RadialDistortion" }

func (r *RadialDistortion) Bounds() geom.Rect { return r.Source.Bounds() }

func (r *RadialDistortion) DestinationBounds() geom.IntRect { return r.Source.DestinationBounds() }

func (r *RadialDistortion) FeatureFlags() Features {
	return r.Source.FeatureFlags() & (FeatureTranslate | FeatureAffine | FeatureARGB8888)
}

func (r *RadialDistortion) HasChanged() bool { return r.HasChangedBase() || r.Source.HasChanged() }

func (r *RadialDistortion) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(r, oldBounds, cb)
}

func (r *RadialDistortion) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := r.BeginSetup(); err != nil {
		return nil, err
	}
	span, err := r.Source.Setup(target, colorspace.Fill)
	if err != nil {
		r.setUp = false
		return nil, err
	}
	r.span = span
	fn := colorspace.SelectSpanFunc(rop, true)
	colorMask := r.Current.Color
	if colorMask == 0 {
		colorMask = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}
	radius := r.Radius
	if radius <= 0 {
		radius = 1
	}
	inv := inverseTransform(r.Current)
	return func(x, y, length int, dst []colorspace.Color) {
		src := make([]colorspace.Color, length)
		one := make([]colorspace.Color, 1)
		for i := 0; i < length; i++ {
			p := inv.PointTransform(geom.Point{X: float64(x + i), Y: float64(y)})
			px, py := p.X, p.Y
			dx, dy := px-r.Center.X, py-r.Center.Y
			dist := math.Hypot(dx, dy)
			if dist == 0 {
				r.span(x+i, y, 1, one)
				src[i] = one[0]
				continue
			}
			scaled := dist * (1 + r.Strength*(dist/radius)*(dist/radius))
			ux, uy := dx/dist, dy/dist
			sx := r.Center.X + ux*scaled
			sy := r.Center.Y + uy*scaled
			r.span(int(math.Round(sx)), int(math.Round(sy)), 1, one)
			src[i] = one[0]
		}
		fn(dst, length, src, colorMask, nil)
	}, nil
}

func (r *RadialDistortion) Cleanup(target *Surface) {
	r.Source.Cleanup(target)
	r.span = nil
	r.EndCleanup()
}
