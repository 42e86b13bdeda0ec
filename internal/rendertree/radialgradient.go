package rendertree

import (
	"math"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

// RadialGradient computes a gradient parameter from a focal point through
// the circle (Center, Radius) and looks the result up in the same sorted
// stop list a LinearGradient uses. When Focal equals Center it degrades
// to the common concentric case, t = distance(p, Center)/Radius; a
// distinct Focal gives the "two-point conical" gradient shape used by
// CSS/SVG radial gradients with an off-center focal point. The focal
// point itself is a static property, set once and never animated,
// rather than a per-frame input.
type RadialGradient struct {
	Base
	Center geom.Point
	Focal  geom.Point
	Radius float64
	Stops  []Stop
	Spread Spread
}

// NewRadialGradient returns a gradient renderer whose stops radiate from
// focal through the circle (center, radius). Pass focal equal to center
// for the plain concentric case.
func NewRadialGradient(center, focal geom.Point, radius float64, stops []Stop) *RadialGradient {
	cp := sortStops(stops)
	g := &RadialGradient{Center: center, Focal: focal, Radius: radius, Stops: cp}
	g.InitDefaults(AutoName(g.BaseName()))
	return g
}

func (g *RadialGradient) BaseName() string { return "RadialGradient" }

func (g *RadialGradient) Bounds() geom.Rect {
	return geom.Rect{X: math.Inf(-1), Y: math.Inf(-1), W: math.Inf(1), H: math.Inf(1)}
}

func (g *RadialGradient) DestinationBounds() geom.IntRect {
	return geom.IntRect{X: math.MinInt32 / 2, Y: math.MinInt32 / 2, W: math.MaxInt32, H: math.MaxInt32}
}

func (g *RadialGradient) FeatureFlags() Features {
	return FeatureTranslate | FeatureAffine | FeatureProjective | FeatureARGB8888 | FeatureQuality
}

func (g *RadialGradient) HasChanged() bool { return g.HasChangedBase() }

func (g *RadialGradient) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(g, oldBounds, cb)
}

// tAt solves for the gradient parameter at p. With the ray from Focal
// through p parametrized as Focal + s*(p-Focal), it finds the s at which
// that ray crosses the Radius-circle around Center and returns 1/s,
// which is 1.0 exactly on the circle and scales linearly inward from
// there, matching the concentric dist/Radius case when Focal == Center.
func (g *RadialGradient) tAt(p geom.Point) float64 {
	radius := g.Radius
	if radius <= 0 {
		radius = 1
	}
	if g.Focal == g.Center {
		dx, dy := p.X-g.Center.X, p.Y-g.Center.Y
		return math.Hypot(dx, dy) / radius
	}
	dx, dy := p.X-g.Focal.X, p.Y-g.Focal.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	fcx, fcy := g.Focal.X-g.Center.X, g.Focal.Y-g.Center.Y
	a := dx*dx + dy*dy
	b := 2 * (fcx*dx + fcy*dy)
	c := fcx*fcx + fcy*fcy - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		// p's ray from the focal point never reaches the circle (a
		// malformed focal point outside Radius of Center); fall back to
		// the concentric measure rather than propagating NaN.
		return math.Hypot(p.X-g.Center.X, p.Y-g.Center.Y) / radius
	}
	sqrtDisc := math.Sqrt(disc)
	s1 := (-b + sqrtDisc) / (2 * a)
	s2 := (-b - sqrtDisc) / (2 * a)
	s := math.Max(s1, s2)
	if s <= 0 {
		return 0
	}
	return 1 / s
}

func (g *RadialGradient) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := g.BeginSetup(); err != nil {
		return nil, err
	}
	fn := colorspace.SelectSpanFunc(rop, true)
	color := g.Current.Color
	if color == 0 {
		color = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}
	inv := inverseTransform(g.Current)
	return func(x, y, length int, dst []colorspace.Color) {
		src := make([]colorspace.Color, length)
		for i := 0; i < length; i++ {
			p := inv.PointTransform(geom.Point{X: float64(x + i), Y: float64(y)})
			t := g.tAt(p)
			src[i] = spreadColorAt(g.Stops, g.Spread, t)
		}
		fn(dst, length, src, color, nil)
	}, nil
}

func (g *RadialGradient) Cleanup(target *Surface) { g.EndCleanup() }
