package rendertree

import (
	"math"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

// Hswitch dissolves horizontally between two child renderers at a
// moving vertical seam: pixels left of the seam sample Left, pixels
// right of it sample Right (wrapping back to x=0), and the seam column
// itself blends both, following the classic horizontal-switch wipe.
type Hswitch struct {
	Base
	Left, Right Renderer
	Width       int
	Step        float64 // in [0,1]: the seam sits at Width*(1-Step), moving from Width toward 0 as Step grows
}

// NewHswitch returns an Hswitch renderer of the given tile width.
func NewHswitch(left, right Renderer, width int, step float64) *Hswitch {
	h := &Hswitch{Left: left, Right: right, Width: width, Step: step}
	h.InitDefaults(AutoName(h.BaseName()))
	return h
}

func (h *Hswitch) BaseName() string { return "Hswitch" }

func (h *Hswitch) Bounds() geom.Rect {
	return geom.Rect{X: math.Inf(-1), Y: math.Inf(-1), W: math.Inf(1), H: math.Inf(1)}
}

func (h *Hswitch) DestinationBounds() geom.IntRect {
	return geom.IntRect{X: math.MinInt32 / 2, Y: math.MinInt32 / 2, W: math.MaxInt32, H: math.MaxInt32}
}

func (h *Hswitch) FeatureFlags() Features {
	return h.Left.FeatureFlags() & h.Right.FeatureFlags()
}

func (h *Hswitch) HasChanged() bool {
	return h.HasChangedBase() || h.Left.HasChanged() || h.Right.HasChanged()
}

func (h *Hswitch) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(h, oldBounds, cb)
}

func (h *Hswitch) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := h.BeginSetup(); err != nil {
		return nil, err
	}
	leftSpan, err := h.Left.Setup(target, colorspace.Fill)
	if err != nil {
		h.setUp = false
		return nil, err
	}
	rightSpan, err := h.Right.Setup(target, colorspace.Fill)
	if err != nil {
		h.Left.Cleanup(target)
		h.setUp = false
		return nil, err
	}
	fn := colorspace.SelectSpanFunc(rop, true)
	colorMask := h.Current.Color
	if colorMask == 0 {
		colorMask = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}
	seam := float64(h.Width) - float64(h.Width)*h.Step
	mx := int(math.Floor(seam))
	frac := seam - float64(mx)
	inv := inverseTransform(h.Current)
	return func(x, y, length int, dst []colorspace.Color) {
		src := make([]colorspace.Color, length)
		one := make([]colorspace.Color, 1)
		for i := 0; i < length; i++ {
			fig := inv.PointTransform(geom.Point{X: float64(x + i), Y: float64(y)})
			px, py := int(math.Round(fig.X)), int(math.Round(fig.Y))
			switch {
			case px > mx:
				rightSpan(px, py, 1, one)
				src[i] = one[0]
			case px < mx:
				leftSpan(px, py, 1, one)
				src[i] = one[0]
			default:
				var l, r colorspace.Color
				leftSpan(px, py, 1, one)
				l = one[0]
				rightSpan(0, py, 1, one)
				r = one[0]
				src[i] = colorspace.Interp256(int32(frac*256), r, l)
			}
		}
		fn(dst, length, src, colorMask, nil)
	}, nil
}

func (h *Hswitch) Cleanup(target *Surface) {
	h.Right.Cleanup(target)
	h.Left.Cleanup(target)
	h.EndCleanup()
}
