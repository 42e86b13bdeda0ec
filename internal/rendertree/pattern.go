package rendertree

import (
	"math"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

// Pattern repeats another renderer's window: sampling outside the
// window wraps coordinates back into it, like a tileable source.
type Pattern struct {
	Base
	Source Renderer
	Window geom.Rect

	span SpanFunc
}

// NewPattern returns a Pattern tiling source's window rectangle.
func NewPattern(source Renderer, window geom.Rect) *Pattern {
	p := &Pattern{Source: source, Window: window}
	p.InitDefaults(AutoName(p.BaseName()))
	return p
}

func (p *Pattern) BaseName() string { return "Pattern" }

func (p *Pattern) Bounds() geom.Rect {
	return geom.Rect{X: math.Inf(-1), Y: math.Inf(-1), W: math.Inf(1), H: math.Inf(1)}
}

func (p *Pattern) DestinationBounds() geom.IntRect {
	return geom.IntRect{X: math.MinInt32 / 2, Y: math.MinInt32 / 2, W: math.MaxInt32, H: math.MaxInt32}
}

func (p *Pattern) FeatureFlags() Features { return p.Source.FeatureFlags() }

func (p *Pattern) HasChanged() bool { return p.HasChangedBase() || p.Source.HasChanged() }

func (p *Pattern) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(p, oldBounds, cb)
}

func (p *Pattern) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := p.BeginSetup(); err != nil {
		return nil, err
	}
	span, err := p.Source.Setup(target, colorspace.Fill)
	if err != nil {
		p.setUp = false
		return nil, err
	}
	p.span = span
	fn := colorspace.SelectSpanFunc(rop, true)
	colorMask := p.Current.Color
	if colorMask == 0 {
		colorMask = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}
	w, h := p.Window.W, p.Window.H
	inv := inverseTransform(p.Current)
	return func(x, y, length int, dst []colorspace.Color) {
		src := make([]colorspace.Color, length)
		for i := 0; i < length; i++ {
			fig := inv.PointTransform(geom.Point{X: float64(x + i), Y: float64(y)})
			px := wrapInto(fig.X, p.Window.X, w)
			py := wrapInto(fig.Y, p.Window.Y, h)
			one := make([]colorspace.Color, 1)
			p.span(int(px), int(py), 1, one)
			src[i] = one[0]
		}
		fn(dst, length, src, colorMask, nil)
	}, nil
}

func wrapInto(v, origin, size float64) float64 {
	if size <= 0 {
		return origin
	}
	off := math.Mod(v-origin, size)
	if off < 0 {
		off += size
	}
	return origin + off
}

func (p *Pattern) Cleanup(target *Surface) {
	p.Source.Cleanup(target)
	p.span = nil
	p.EndCleanup()
}
