package rendertree

import (
	"math"
	"sort"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

// Spread selects how a gradient's t parameter outside [0,1] is mapped
// back into range.
type Spread int

const (
	SpreadPad Spread = iota
	SpreadRepeat
	SpreadReflect
)

// Stop is one color stop of a gradient, Position in [0,1].
type Stop struct {
	Position float64
	Color    colorspace.Color
}

// LinearGradient computes t = ((p-p0)·(p1-p0))/|p1-p0|^2 per pixel and
// looks the result up in a sorted stop list.
type LinearGradient struct {
	Base
	P0, P1 geom.Point
	Stops  []Stop
	Spread Spread
}

// sortStops returns a copy of stops sorted by Position, shared by every
// gradient constructor.
func sortStops(stops []Stop) []Stop {
	cp := append([]Stop(nil), stops...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Position < cp[j].Position })
	return cp
}

// NewLinearGradient returns a gradient renderer from p0 to p1 with the
// given stops (sorted by Position on construction).
func NewLinearGradient(p0, p1 geom.Point, stops []Stop) *LinearGradient {
	cp := sortStops(stops)
	g := &LinearGradient{P0: p0, P1: p1, Stops: cp}
	g.InitDefaults(AutoName(g.BaseName()))
	return g
}

func (g *LinearGradient) BaseName() string { return "LinearGradient" }

func (g *LinearGradient) Bounds() geom.Rect {
	return geom.Rect{X: math.Inf(-1), Y: math.Inf(-1), W: math.Inf(1), H: math.Inf(1)}
}

func (g *LinearGradient) DestinationBounds() geom.IntRect {
	return geom.IntRect{X: math.MinInt32 / 2, Y: math.MinInt32 / 2, W: math.MaxInt32, H: math.MaxInt32}
}

func (g *LinearGradient) FeatureFlags() Features {
	return FeatureTranslate | FeatureAffine | FeatureProjective | FeatureARGB8888 | FeatureQuality
}

func (g *LinearGradient) HasChanged() bool { return g.HasChangedBase() }

func (g *LinearGradient) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(g, oldBounds, cb)
}

func (g *LinearGradient) colorAt(t float64) colorspace.Color {
	return spreadColorAt(g.Stops, g.Spread, t)
}

// spreadColorAt maps t through spread's wraparound policy and looks the
// result up in stops (sorted ascending by Position), shared by every
// gradient variant's per-pixel color lookup.
func spreadColorAt(stops []Stop, spread Spread, t float64) colorspace.Color {
	switch spread {
	case SpreadRepeat:
		t = t - math.Floor(t)
	case SpreadReflect:
		t = math.Mod(t, 2)
		if t < 0 {
			t += 2
		}
		if t > 1 {
			t = 2 - t
		}
	default: // SpreadPad
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
	}
	if len(stops) == 0 {
		return colorspace.Transparent
	}
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Position {
			span := b.Position - a.Position
			if span <= 0 {
				return b.Color
			}
			frac := (t - a.Position) / span
			return colorspace.Interp256(int32((1-frac)*256), a.Color, b.Color)
		}
	}
	return last.Color
}

func (g *LinearGradient) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := g.BeginSetup(); err != nil {
		return nil, err
	}
	dx := g.P1.X - g.P0.X
	dy := g.P1.Y - g.P0.Y
	lenSq := dx*dx + dy*dy
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
			var t float64
			if lenSq > 0 {
				t = ((p.X-g.P0.X)*dx + (p.Y-g.P0.Y)*dy) / lenSq
			}
			src[i] = g.colorAt(t)
		}
		fn(dst, length, src, color, nil)
	}, nil
}

func (g *LinearGradient) Cleanup(target *Surface) { g.EndCleanup() }
