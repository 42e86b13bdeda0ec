package rendertree

import (
	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/vgerr"
)

// Layer is one entry of a Compound renderer's ordered layer list.
type Layer struct {
	Renderer Renderer
	Rop      colorspace.Rop
}

// Compound draws an ordered list of layers into the same destination,
// each under its own rop; bounds is the union of the layers' bounds.
type Compound struct {
	Base
	Layers []Layer

	spans []SpanFunc
}

// NewCompound returns a Compound renderer over the given layers, drawn
// bottom to top in list order.
func NewCompound(layers ...Layer) *Compound {
	c := &Compound{Layers: layers}
	c.InitDefaults(AutoName(c.BaseName()))
	return c
}

func (c *Compound) BaseName() string { return "Compound" }

func (c *Compound) Bounds() geom.Rect {
	var b geom.Rect
	first := true
	for _, l := range c.Layers {
		lb := l.Renderer.Bounds()
		if first {
			b = lb
			first = false
			continue
		}
		b = b.Union(lb)
	}
	return b
}

func (c *Compound) DestinationBounds() geom.IntRect {
	var b geom.IntRect
	first := true
	for _, l := range c.Layers {
		lb := l.Renderer.DestinationBounds()
		if first {
			b = lb
			first = false
			continue
		}
		b = b.Union(lb)
	}
	return b
}

func (c *Compound) FeatureFlags() Features {
	flags := FeatureTranslate | FeatureAffine | FeatureProjective | FeatureARGB8888 | FeatureROP
	for _, l := range c.Layers {
		flags &= l.Renderer.FeatureFlags() | FeatureROP
	}
	return flags
}

func (c *Compound) HasChanged() bool {
	if c.HasChangedBase() {
		return true
	}
	for _, l := range c.Layers {
		if l.Renderer.HasChanged() {
			return true
		}
	}
	return false
}

func (c *Compound) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	for _, l := range c.Layers {
		l.Renderer.Damages(oldBounds, cb)
	}
}

// Setup sets up every layer; on any failure, already-set-up layers are
// cleaned up and ChildSetupFailed is returned.
func (c *Compound) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := c.BeginSetup(); err != nil {
		return nil, err
	}
	c.spans = make([]SpanFunc, 0, len(c.Layers))
	for _, l := range c.Layers {
		span, err := l.Renderer.Setup(target, l.Rop)
		if err != nil {
			for i := len(c.spans) - 1; i >= 0; i-- {
				c.Layers[i].Renderer.Cleanup(target)
			}
			c.setUp = false
			return nil, &vgerr.SetupError{
				Kind: vgerr.ErrChildSetupFailed,
				Log:  vgerr.SetupLog{Entries: []vgerr.LogEntry{{Renderer: c.Name(), Func: "Compound.Setup", Message: err.Error()}}},
			}
		}
		c.spans = append(c.spans, span)
	}
	layers := c.Layers
	spans := c.spans
	return func(x, y, length int, dst []colorspace.Color) {
		for i := range layers {
			spans[i](x, y, length, dst)
		}
	}, nil
}

func (c *Compound) Cleanup(target *Surface) {
	for _, l := range c.Layers {
		l.Renderer.Cleanup(target)
	}
	c.spans = nil
	c.EndCleanup()
}
