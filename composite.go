package vgraphics

import "github.com/rastereng/vgraphics/internal/rendertree"

// Layer is one entry of a Compound renderer's ordered layer list.
type Layer struct {
	Renderer *Renderer
	Rop      Rop
}

// NewCompound returns a renderer that composites an ordered list of
// layers, each under its own raster operation; if any layer's setup
// fails, layers already set up are rolled back.
func NewCompound(layers ...Layer) *Renderer {
	ls := make([]rendertree.Layer, len(layers))
	for i, l := range layers {
		ls[i] = rendertree.Layer{Renderer: l.Renderer.r, Rop: l.Rop}
	}
	return wrapRenderer(rendertree.NewCompound(ls...))
}

// NewClipper returns a renderer that restricts content's output to
// rect, touching no pixel outside it.
func NewClipper(content *Renderer, rect Rect) *Renderer {
	return wrapRenderer(rendertree.NewClipper(content.r, rect))
}

// NewTransition returns a renderer that linearly interpolates between
// source (at level 0) and target (at level 1) per pixel.
func NewTransition(source, target *Renderer, level float64) *Renderer {
	return wrapRenderer(rendertree.NewTransition(source.r, target.r, level))
}

// SetTransitionLevel updates an existing transition renderer's
// interpolation level. r must have been returned by NewTransition.
func SetTransitionLevel(r *Renderer, level float64) {
	r.r.(*rendertree.Transition).Level = level
}

// NewProxy returns a renderer that forwards every operation to wrapped
// unchanged, useful for sharing one renderer instance as multiple tree
// nodes with independent names.
func NewProxy(wrapped *Renderer) *Renderer {
	return wrapRenderer(rendertree.NewProxy(wrapped.r))
}
