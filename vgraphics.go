// Package vgraphics is a 2D vector-graphics rasterization and
// compositing engine: a tree of renderers (solid colors, gradients,
// procedural fills, images, shapes, and composite operators) is drawn
// into a pixel buffer through a common draw/setup/cleanup contract,
// with scanlines striped across worker goroutines for large areas.
package vgraphics

import (
	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/config"
	"github.com/rastereng/vgraphics/internal/matrix"
)

// Color is a premultiplied ARGB pixel, the value type every renderer
// property and paint source traffics in.
type Color = colorspace.Color

// Format enumerates the pixel encodings a Buffer can hold at its
// boundary; internally every renderer works in premultiplied ARGB8888.
type Format = colorspace.Format

const (
	FormatARGB8888    = colorspace.ARGB8888
	FormatARGB8888Pre = colorspace.ARGB8888Pre
	FormatXRGB8888    = colorspace.XRGB8888
	FormatRGB888      = colorspace.RGB888
	FormatBGR888      = colorspace.BGR888
	FormatRGB565      = colorspace.RGB565
	FormatA8          = colorspace.A8
	FormatGray8       = colorspace.Gray8
	FormatCMYK        = colorspace.CMYK
	FormatCMYKAdobe   = colorspace.CMYKAdobe
)

// Rop selects how a renderer's output composites with whatever is
// already in the destination.
type Rop = colorspace.Rop

const (
	RopFill  = colorspace.Fill
	RopBlend = colorspace.Blend
)

// Matrix is an affine or projective 2D transformation.
type Matrix = matrix.Matrix

// Identity, Translate, Scale and Rotate build the common matrix kinds.
func Identity() Matrix                        { return matrix.NewIdentity() }
func Translate(dx, dy float64) Matrix         { return matrix.NewTranslate(dx, dy) }
func Scale(sx, sy float64) Matrix             { return matrix.NewScale(sx, sy) }
func Rotate(angleRad float64) Matrix          { return matrix.NewRotate(angleRad) }

// ARGB packs four 8-bit premultiplied channels into a Color.
func ARGB(a, r, g, b uint8) Color { return colorspace.ARGB(a, r, g, b) }

// SetWorkerCount configures how many goroutines the driver stripes
// scanlines across for subsequent Draw/DrawList calls; zero or
// negative selects single-threaded drawing.
func SetWorkerCount(n int) {
	cfg := config.Get()
	cfg.WorkerCount = n
	config.Set(cfg)
}

// SetCurveFlatness configures the deviation a flattened curve segment
// may have from its control polygon.
func SetCurveFlatness(tolerance float64) {
	cfg := config.Get()
	cfg.CurveFlatness = tolerance
	config.Set(cfg)
}
