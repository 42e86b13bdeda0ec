package vgraphics

import (
	"github.com/rastereng/vgraphics/internal/rendertree"
)

// NewSolid returns a renderer that fills its destination bounds with a
// single color.
func NewSolid(c Color) *Renderer { return wrapRenderer(rendertree.NewSolid(c)) }

// Spread selects how a gradient's position parameter outside [0,1] maps
// back into range.
type Spread = rendertree.Spread

const (
	SpreadPad     = rendertree.SpreadPad
	SpreadRepeat  = rendertree.SpreadRepeat
	SpreadReflect = rendertree.SpreadReflect
)

// Stop is one color stop of a gradient, Position in [0,1].
type Stop = rendertree.Stop

// NewLinearGradient returns a renderer whose color at a point is looked
// up from stops by the point's projection onto the p0->p1 axis.
func NewLinearGradient(p0, p1 Point, stops []Stop) *Renderer {
	g := rendertree.NewLinearGradient(p0, p1, stops)
	return wrapRenderer(g)
}

// SetSpread sets a gradient renderer's out-of-range behavior. r must
// have been returned by NewLinearGradient or NewRadialGradient.
func SetSpread(r *Renderer, spread Spread) {
	switch g := r.r.(type) {
	case *rendertree.LinearGradient:
		g.Spread = spread
	case *rendertree.RadialGradient:
		g.Spread = spread
	}
}

// NewRadialGradient returns a renderer whose color at a point is looked
// up from stops by that point's position between focal and the circle
// (center, radius). Pass focal equal to center for a plain concentric
// gradient; an off-center focal produces the CSS/SVG-style skewed
// radial shape.
func NewRadialGradient(center, focal Point, radius float64, stops []Stop) *Renderer {
	g := rendertree.NewRadialGradient(center, focal, radius, stops)
	return wrapRenderer(g)
}

// NewChecker returns a renderer that tiles two colors in a checkerboard
// pattern, tileW x tileH pixels per tile, with antialiased boundaries.
func NewChecker(c1, c2 Color, tileW, tileH int) *Renderer {
	return wrapRenderer(rendertree.NewChecker(c1, c2, tileW, tileH))
}

// NewStripes returns a renderer that bands two colors in alternating
// horizontal stripes of thickness t1 and t2, with antialiased edges.
func NewStripes(c1, c2 Color, t1, t2 float64) *Renderer {
	return wrapRenderer(rendertree.NewStripes(c1, c2, t1, t2))
}

// Quality selects an Image renderer's sampling kernel.
type Quality = rendertree.Quality

const (
	QualityFast = rendertree.QualityFast
	QualityGood = rendertree.QualityGood
	QualityBest = rendertree.QualityBest
)

// NewImage returns a renderer that samples buf, scaling it to destW x
// destH under the given quality.
func NewImage(buf *Buffer, destW, destH int, quality Quality) *Renderer {
	return wrapRenderer(rendertree.NewImage(buf.buf, destW, destH, quality))
}

// NewPattern returns a renderer that tiles source's output over window,
// wrapping destination coordinates back into window.
func NewPattern(source *Renderer, window Rect) *Renderer {
	return wrapRenderer(rendertree.NewPattern(source.r, window))
}

// NewPerlin returns a value-noise renderer summing octaves octaves of
// hashed-lattice noise at the given base frequency, each octave scaled
// by persistence, mapped onto the low->high color range.
func NewPerlin(octaves int, persistence, xfreq, yfreq float64, low, high Color) *Renderer {
	return wrapRenderer(rendertree.NewPerlin(octaves, persistence, xfreq, yfreq, low, high))
}

// Channel selects a pixel's color channel for Displacement's offset
// lookup.
type Channel = rendertree.Channel

const (
	ChannelRed   = rendertree.ChannelRed
	ChannelGreen = rendertree.ChannelGreen
	ChannelBlue  = rendertree.ChannelBlue
	ChannelAlpha = rendertree.ChannelAlpha
)

// NewDisplacement returns a renderer that samples source offset by a
// per-pixel vector decoded from mapBuf's xChannel/yChannel, centered at
// 0.5 and scaled by factor.
func NewDisplacement(source, mapBuf *Buffer, factor float64, xChannel, yChannel Channel) *Renderer {
	return wrapRenderer(rendertree.NewDisplacement(source.buf, mapBuf.buf, factor, xChannel, yChannel))
}

// NewRadialDistortion returns a renderer that warps samples of source
// radially around center, a barrel (positive strength) or pincushion
// (negative strength) lens-style distortion.
func NewRadialDistortion(source *Renderer, center Point, radius, strength float64) *Renderer {
	return wrapRenderer(rendertree.NewRadialDistortion(source.r, center, radius, strength))
}

// NewHswitch returns a renderer that dissolves between left and right
// at a seam whose position within [0,width] is controlled by step in
// [0,1].
func NewHswitch(left, right *Renderer, width int, step float64) *Renderer {
	return wrapRenderer(rendertree.NewHswitch(left.r, right.r, width, step))
}
