package rendertree

import (
	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

// Transition blends two child renderers per pixel by linear
// interpolation at a given level in [0,1]: 0 is fully Source, 1 is
// fully Target.
type Transition struct {
	Base
	Source, Target Renderer
	Level          float64
}

// NewTransition returns a Transition renderer between source and
// target at the given level.
func NewTransition(source, target Renderer, level float64) *Transition {
	t := &Transition{Source: source, Target: target, Level: level}
	t.InitDefaults(AutoName(t.BaseName()))
	return t
}

func (t *Transition) BaseName() string { return "Transition" }

func (t *Transition) Bounds() geom.Rect {
	return t.Source.Bounds().Union(t.Target.Bounds())
}

func (t *Transition) DestinationBounds() geom.IntRect {
	return t.Source.DestinationBounds().Union(t.Target.DestinationBounds())
}

func (t *Transition) FeatureFlags() Features {
	return t.Source.FeatureFlags() & t.Target.FeatureFlags()
}

func (t *Transition) HasChanged() bool {
	return t.HasChangedBase() || t.Source.HasChanged() || t.Target.HasChanged()
}

func (t *Transition) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	t.Source.Damages(oldBounds, cb)
	t.Target.Damages(oldBounds, cb)
}

func (t *Transition) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := t.BeginSetup(); err != nil {
		return nil, err
	}
	srcSpan, err := t.Source.Setup(target, colorspace.Fill)
	if err != nil {
		t.setUp = false
		return nil, err
	}
	dstSpan, err := t.Target.Setup(target, colorspace.Fill)
	if err != nil {
		t.Source.Cleanup(target)
		t.setUp = false
		return nil, err
	}
	fn := colorspace.SelectSpanFunc(rop, true)
	colorMask := t.Current.Color
	if colorMask == 0 {
		colorMask = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}
	level := t.Level
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	a := int32((1 - level) * 256)
	return func(x, y, length int, dst []colorspace.Color) {
		srcRow := make([]colorspace.Color, length)
		dstRow := make([]colorspace.Color, length)
		srcSpan(x, y, length, srcRow)
		dstSpan(x, y, length, dstRow)
		blended := make([]colorspace.Color, length)
		for i := range blended {
			blended[i] = colorspace.Interp256(a, srcRow[i], dstRow[i])
		}
		fn(dst, length, blended, colorMask, nil)
	}, nil
}

func (t *Transition) Cleanup(target *Surface) {
	t.Target.Cleanup(target)
	t.Source.Cleanup(target)
	t.EndCleanup()
}
