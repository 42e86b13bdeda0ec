// Package bifigure composites a shape's fill and stroke in a single
// pass: one scanline evaluation producing both the fill interior
// decision and the stroke band's antialiased coverage, then resolving
// the two against each other and an optional per-pixel paint source.
// Follows Enesim's combined stroke+fill draw routine, including its
// cheap fallback for hairline strokes.
package bifigure

import (
	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/edge"
	"github.com/rastereng/vgraphics/internal/matrix"
	"github.com/rastereng/vgraphics/internal/pathfig"
	"github.com/rastereng/vgraphics/internal/scanraster"
)

// DrawMode selects which of a shape's fill and stroke are active.
type DrawMode int

const (
	DrawFill DrawMode = 1 << iota
	DrawStroke
)

// thinStrokeThreshold is the stroke weight below which Enesim's
// basic rasterizer skips building a separate offset outline and
// instead treats the path itself as the antialiased stroke line
// (the "stroke_weight <= 1" fast path).
const thinStrokeThreshold = 1.0

// Figure is a fill figure plus an optional stroke figure, the unit
// bifigure resolves pixel-by-pixel.
type Figure struct {
	Fill         *pathfig.Figure
	FillRule     scanraster.FillRule
	Stroke       *pathfig.Figure
	StrokeWeight float64
	Mode         DrawMode
}

// Compositor evaluates a Figure against scanlines, producing composited
// pixels directly (as opposed to scanraster's raw coverage masks).
type Compositor struct {
	fig        Figure
	fillRaster *scanraster.Rasterizer
	fillTable  *edge.Table
	strokeRaster *scanraster.Rasterizer
	strokeTable  *edge.Table
}

// New builds the edge tables and rasterizers for fig. Both the fill and
// stroke figures are optional depending on fig.Mode.
func New(fig Figure) (*Compositor, error) {
	c := &Compositor{fig: fig}
	if fig.Mode&DrawFill != 0 && fig.Fill != nil {
		tbl, err := edge.Build(fig.Fill)
		if err != nil {
			return nil, err
		}
		c.fillTable = tbl
		c.fillRaster = scanraster.New(tbl, fig.FillRule)
	}
	if fig.Mode&DrawStroke != 0 && fig.Stroke != nil {
		strokeFig := fig.Stroke
		if fig.StrokeWeight <= thinStrokeThreshold && fig.Fill != nil {
			// Hairline fast path: stroke the original path outline
			// rather than a full offset polygon.
			strokeFig = fig.Fill
		}
		tbl, err := edge.Build(strokeFig)
		if err != nil {
			return nil, err
		}
		c.strokeTable = tbl
		c.strokeRaster = scanraster.New(tbl, scanraster.NonZero)
	}
	return c, nil
}

// SetTransform installs inv, the inverse of the shape's active
// origin+transformation, on every active rasterizer, so Span maps
// destination pixels back into the figures' own space before
// evaluating coverage.
func (c *Compositor) SetTransform(inv matrix.Matrix) {
	if c.fillRaster != nil {
		c.fillRaster.SetTransform(inv)
	}
	if c.strokeRaster != nil {
		c.strokeRaster.SetTransform(inv)
	}
}

// Bounds returns the union of the active fill/stroke rasterizers'
// pixel bounds.
func (c *Compositor) Bounds() (left, top, right, bottom int) {
	have := false
	union := func(l, t, r, b int) {
		if !have {
			left, top, right, bottom = l, t, r, b
			have = true
			return
		}
		if l < left {
			left = l
		}
		if t < top {
			top = t
		}
		if r > right {
			right = r
		}
		if b > bottom {
			bottom = b
		}
	}
	if c.fillRaster != nil {
		union(c.fillRaster.Bounds())
	}
	if c.strokeRaster != nil {
		union(c.strokeRaster.Bounds())
	}
	return
}

// Span composites length pixels of row y starting at device x0 into
// dst, given per-pixel fill and stroke paint sources (nil for a solid
// fillColor/strokeColor instead) and the two solid colors. This mirrors
// the five-branch pixel resolution of the source routine: both
// fill+stroke covered blends stroke over fill by the stroke's
// antialiasing fraction; fill-only or stroke-only each reduce to a
// single masked span write; neither covered leaves the pixel untouched
// (transparent).
func (c *Compositor) Span(y, x0, length int, dst []colorspace.Color, fillSrc, strokeSrc []colorspace.Color, fillColor, strokeColor colorspace.Color) {
	fillCov := make([]uint8, length)
	strokeCov := make([]uint8, length)
	if c.fillRaster != nil {
		c.fillRaster.Span(y, x0, length, fillCov)
	}
	if c.strokeRaster != nil {
		c.strokeRaster.Span(y, x0, length, strokeCov)
	}

	for i := 0; i < length; i++ {
		fc, sc := fillCov[i], strokeCov[i]
		if fc == 0 && sc == 0 {
			dst[i] = colorspace.Transparent
			continue
		}

		var fillPixel colorspace.Color
		if fc > 0 {
			fillPixel = fillColor
			if fillSrc != nil {
				fillPixel = colorspace.Mul4Sym(fillColor, fillSrc[i])
			}
			if fc < 255 {
				fillPixel = colorspace.Mul256(int32(fc)+int32(fc>>7), fillPixel)
			}
		}

		if sc == 0 {
			dst[i] = fillPixel
			continue
		}

		strokePixel := strokeColor
		if strokeSrc != nil {
			strokePixel = colorspace.Mul4Sym(strokeColor, strokeSrc[i])
		}
		if sc < 255 {
			strokePixel = colorspace.Mul256(int32(sc)+int32(sc>>7), strokePixel)
		}

		if fc == 0 {
			dst[i] = strokePixel
			continue
		}
		dst[i] = colorspace.Over(strokePixel, fillPixel)
	}
}
