package rendertree

import (
	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

// Clipper draws a content renderer restricted to a rectangle; pixels
// outside the rectangle are left untouched.
type Clipper struct {
	Base
	Content Renderer
	Rect    geom.Rect

	span SpanFunc
}

// NewClipper returns a Clipper drawing content inside rect.
func NewClipper(content Renderer, rect geom.Rect) *Clipper {
	c := &Clipper{Content: content, Rect: rect}
	c.InitDefaults(AutoName(c.BaseName()))
	return c
}

func (c *Clipper) BaseName() string { return "Clipper" }

func (c *Clipper) Bounds() geom.Rect { return c.Content.Bounds().Intersect(c.Rect) }

func (c *Clipper) DestinationBounds() geom.IntRect {
	return transformedBounds(c.Rect, c.Current).ToIntRect().Intersect(c.Content.DestinationBounds())
}

func (c *Clipper) FeatureFlags() Features { return c.Content.FeatureFlags() }

func (c *Clipper) HasChanged() bool { return c.HasChangedBase() || c.Content.HasChanged() }

func (c *Clipper) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	clip := c.DestinationBounds()
	c.Content.Damages(oldBounds, func(r geom.IntRect, wasOld bool) {
		cb(r.Intersect(clip), wasOld)
	})
}

func (c *Clipper) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := c.BeginSetup(); err != nil {
		return nil, err
	}
	span, err := c.Content.Setup(target, rop)
	if err != nil {
		c.setUp = false
		return nil, err
	}
	c.span = span
	clip := c.DestinationBounds()
	return func(x, y, length int, dst []colorspace.Color) {
		if y < clip.Y || y >= clip.Y+clip.H {
			return
		}
		lo := x
		hi := x + length
		if lo < clip.X {
			lo = clip.X
		}
		if hi > clip.X+clip.W {
			hi = clip.X + clip.W
		}
		if lo >= hi {
			return
		}
		c.span(lo, y, hi-lo, dst[lo-x:hi-x])
	}, nil
}

func (c *Clipper) Cleanup(target *Surface) {
	c.Content.Cleanup(target)
	c.EndCleanup()
}
