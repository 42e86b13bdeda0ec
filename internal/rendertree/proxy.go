package rendertree

import (
	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

// Proxy forwards every vtable call to a wrapped renderer; bounds and
// damage propagate unchanged. Useful for giving a shared renderer a
// distinct name/state in more than one place in a tree without
// duplicating its setup.
type Proxy struct {
	Base
	Wrapped Renderer
}

// NewProxy returns a Proxy forwarding to wrapped.
func NewProxy(wrapped Renderer) *Proxy {
	p := &Proxy{Wrapped: wrapped}
	p.InitDefaults(AutoName(p.BaseName()))
	return p
}

func (p *Proxy) BaseName() string { return "Proxy" }

func (p *Proxy) Bounds() geom.Rect { return p.Wrapped.Bounds() }

func (p *Proxy) DestinationBounds() geom.IntRect { return p.Wrapped.DestinationBounds() }

func (p *Proxy) FeatureFlags() Features { return p.Wrapped.FeatureFlags() }

func (p *Proxy) HasChanged() bool { return p.HasChangedBase() || p.Wrapped.HasChanged() }

func (p *Proxy) Damages(oldBounds geom.IntRect, cb DamageFunc) { p.Wrapped.Damages(oldBounds, cb) }

func (p *Proxy) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := p.BeginSetup(); err != nil {
		return nil, err
	}
	span, err := p.Wrapped.Setup(target, rop)
	if err != nil {
		p.setUp = false
		return nil, err
	}
	return span, nil
}

func (p *Proxy) Cleanup(target *Surface) {
	p.Wrapped.Cleanup(target)
	p.EndCleanup()
}
