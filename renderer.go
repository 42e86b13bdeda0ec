package vgraphics

import (
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/rendertree"
)

// Point is a point in user space.
type Point = geom.Point

// Rect is an axis-aligned rectangle in user space.
type Rect = geom.Rect

// IntRect is an axis-aligned rectangle in destination pixel coordinates.
type IntRect = geom.IntRect

// DamageFunc receives one rectangle Draw needs to repaint, and whether
// it reflects the renderer's prior (true) or current (false) bounds.
type DamageFunc func(r IntRect, wasOld bool)

// Renderer wraps any node of the renderer tree: a leaf fill, a shape, or
// a composite operator over other renderers.
type Renderer struct {
	r rendertree.Renderer
}

func wrapRenderer(r rendertree.Renderer) *Renderer {
	if r == nil {
		return nil
	}
	return &Renderer{r: r}
}

func (r *Renderer) holder() rendertree.PropertyHolder {
	return r.r.(rendertree.PropertyHolder)
}

// Name returns the renderer's instance name, auto-assigned at
// construction unless overridden with SetName.
func (r *Renderer) Name() string { return r.holder().Name() }

// SetName overrides the auto-assigned instance name.
func (r *Renderer) SetName(name string) { r.holder().SetName(name) }

// SetVisible toggles whether Draw evaluates this renderer at all.
func (r *Renderer) SetVisible(v bool) { r.holder().SetVisible(v) }

// Visible reports the current visibility.
func (r *Renderer) Visible() bool { return r.holder().Visible() }

// SetColor sets the color mask multiplied into every output pixel.
func (r *Renderer) SetColor(c Color) { r.holder().SetColorMask(c) }

// Color returns the current color mask.
func (r *Renderer) Color() Color { return r.holder().ColorMask() }

// SetRop sets the raster operation Draw composites this renderer's
// output with.
func (r *Renderer) SetRop(rop Rop) { r.holder().SetRop(rop) }

// Rop returns the current raster operation.
func (r *Renderer) Rop() Rop { return r.holder().RopValue() }

// SetTransformation sets the matrix mapping this renderer's own
// coordinate space into its parent's.
func (r *Renderer) SetTransformation(m Matrix) { r.holder().SetTransformation(m) }

// Transformation returns the current transformation matrix.
func (r *Renderer) Transformation() Matrix { return r.holder().TransformationValue() }

// SetOrigin sets the translation applied after Transformation.
func (r *Renderer) SetOrigin(x, y float64) { r.holder().SetOrigin(x, y) }

// Origin returns the current origin offset.
func (r *Renderer) Origin() (x, y float64) { return r.holder().OriginValue() }

// SetMask sets this renderer's mask, or clears it when passed nil. The
// mask is part of the renderer's state (HasChanged and Draw's cycle
// check see it); no renderer applies it to its drawn output.
func (r *Renderer) SetMask(mask *Renderer) {
	if mask == nil {
		r.holder().SetMask(nil)
		return
	}
	r.holder().SetMask(mask.r)
}

// Mask returns the current mask, or nil if none is set.
func (r *Renderer) Mask() *Renderer { return wrapRenderer(r.holder().MaskValue()) }

// Bounds returns bounds in the renderer's own coordinate space, before
// origin and transformation are applied.
func (r *Renderer) Bounds() Rect { return r.r.Bounds() }

// DestinationBounds returns bounds in destination pixel coordinates,
// after origin and transformation.
func (r *Renderer) DestinationBounds() IntRect { return r.r.DestinationBounds() }

// HasChanged reports whether any property differs from the last Draw's
// committed state, including nested renderers recursively.
func (r *Renderer) HasChanged() bool { return r.r.HasChanged() }

// Damages reports the rectangles that need to be repainted given the
// renderer's bounds as of the last Draw.
func (r *Renderer) Damages(oldBounds IntRect, cb DamageFunc) {
	r.r.Damages(oldBounds, func(rect geom.IntRect, wasOld bool) { cb(rect, wasOld) })
}

// Draw renders r into target, restricted to clip (or the unbounded
// plane when clip is nil) intersected with target's and r's own
// bounds, offset by (dx,dy).
func Draw(target *Surface, r *Renderer, clip *IntRect, dx, dy int) error {
	return rendertree.Draw(target.surf, r.r, clip, dx, dy)
}

// DrawList is Draw's multi-rectangle form: each clip rectangle is
// processed independently under one setup/cleanup pair.
func DrawList(target *Surface, r *Renderer, clips []IntRect, dx, dy int) error {
	return rendertree.DrawList(target.surf, r.r, clips, dx, dy)
}
