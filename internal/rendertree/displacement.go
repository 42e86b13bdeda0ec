package rendertree

import (
	"math"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/surface"
)

// Channel selects which color channel of the displacement map drives
// an axis of the offset.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
)

func (c Channel) sample(col colorspace.Color) uint8 {
	switch c {
	case ChannelRed:
		return col.R()
	case ChannelGreen:
		return col.G()
	case ChannelBlue:
		return col.B()
	default:
		return col.A()
	}
}

// Displacement samples Source offset by a per-pixel vector decoded
// from Map: each map pixel's XChannel/YChannel value, centered at 0.5
// and scaled by Factor, becomes the (dx,dy) sampling offset.
type Displacement struct {
	Base
	Source, Map        *surface.Buffer
	Factor             float64
	XChannel, YChannel Channel
}

// NewDisplacement returns a Displacement renderer.
func NewDisplacement(source, mapBuf *surface.Buffer, factor float64, xc, yc Channel) *Displacement {
	d := &Displacement{Source: source, Map: mapBuf, Factor: factor, XChannel: xc, YChannel: yc}
	d.InitDefaults(AutoName(d.BaseName()))
	return d
}

func (d *Displacement) BaseName() string { return "Displacement" }

func (d *Displacement) Bounds() geom.Rect {
	return geom.Rect{X: 0, Y: 0, W: float64(d.Map.Width), H: float64(d.Map.Height)}
}

func (d *Displacement) DestinationBounds() geom.IntRect {
	return transformedBounds(d.Bounds(), d.Current).ToIntRect()
}

func (d *Displacement) FeatureFlags() Features {
	return FeatureTranslate | FeatureAffine | FeatureARGB8888
}

func (d *Displacement) HasChanged() bool { return d.HasChangedBase() }

func (d *Displacement) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(d, oldBounds, cb)
}

func (d *Displacement) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := d.BeginSetup(); err != nil {
		return nil, err
	}
	fn := colorspace.SelectSpanFunc(rop, true)
	colorMask := d.Current.Color
	if colorMask == 0 {
		colorMask = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}
	inv := inverseTransform(d.Current)
	return func(x, y, length int, dst []colorspace.Color) {
		src := make([]colorspace.Color, length)
		for i := 0; i < length; i++ {
			p := inv.PointTransform(geom.Point{X: float64(x + i), Y: float64(y)})
			px, py := p.X, p.Y
			mx, my := int(px), int(py)
			mapPixel := bufferPixel(d.Map, mx, my)
			dx := (float64(d.XChannel.sample(mapPixel))/255 - 0.5) * d.Factor
			dy := (float64(d.YChannel.sample(mapPixel))/255 - 0.5) * d.Factor
			src[i] = bufferPixel(d.Source, int(math.Round(px+dx)), int(math.Round(py+dy)))
		}
		fn(dst, length, src, colorMask, nil)
	}, nil
}

func (d *Displacement) Cleanup(target *Surface) { d.EndCleanup() }
