package rendertree

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/surface"
)

// Quality selects the Image renderer's sampling kernel.
type Quality int

const (
	QualityFast Quality = iota // nearest
	QualityGood                // bilinear
	QualityBest                // pre-downscale + bilinear for shrinks >= 2x
)

// Image samples a source Buffer under the renderer's transformation,
// emitting transparent for out-of-range samples.
type Image struct {
	Base
	Source  *surface.Buffer
	Quality Quality
	DestW, DestH int

	resized *image.NRGBA // cache for QualityBest's pre-downscale step
}

// NewImage returns an Image renderer sampling src at the given
// destination size.
func NewImage(src *surface.Buffer, destW, destH int, quality Quality) *Image {
	img := &Image{Source: src, DestW: destW, DestH: destH, Quality: quality}
	img.InitDefaults(AutoName(img.BaseName()))
	return img
}

func (img *Image) BaseName() string { return "Image" }

func (img *Image) Bounds() geom.Rect {
	return geom.Rect{X: 0, Y: 0, W: float64(img.DestW), H: float64(img.DestH)}
}

func (img *Image) DestinationBounds() geom.IntRect {
	return transformedBounds(img.Bounds(), img.Current).ToIntRect()
}

func (img *Image) FeatureFlags() Features {
	return FeatureTranslate | FeatureAffine | FeatureProjective | FeatureARGB8888 | FeatureQuality
}

func (img *Image) HasChanged() bool { return img.HasChangedBase() }

func (img *Image) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(img, oldBounds, cb)
}

// sourceAsNRGBA converts the source buffer's premultiplied ARGB8888
// pixels to a stdlib image.NRGBA for the x/image/draw pre-downscale
// step (draw.Draw requires a concrete image.Image source).
func (img *Image) sourceAsNRGBA() *image.NRGBA {
	w, h := img.Source.Width, img.Source.Height
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	bpp := colorspace.BytesPerPixel(img.Source.Format)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*img.Source.Stride + x*bpp
			if off+4 > len(img.Source.Data) {
				continue
			}
			var c colorspace.Color
			switch img.Source.Format {
			case colorspace.ARGB8888, colorspace.ARGB8888Pre:
				v := uint32(img.Source.Data[off])<<24 | uint32(img.Source.Data[off+1])<<16 |
					uint32(img.Source.Data[off+2])<<8 | uint32(img.Source.Data[off+3])
				c = colorspace.Color(v)
			default:
				c = colorspace.Transparent
			}
			nc := premulToNRGBA(c)
			out.SetNRGBA(x, y, nc)
		}
	}
	return out
}

func premulToNRGBA(c colorspace.Color) color.NRGBA {
	a := c.A()
	if a == 0 {
		return color.NRGBA{}
	}
	unmul := func(v uint8) uint8 {
		return uint8((uint32(v) * 255) / uint32(a))
	}
	return color.NRGBA{R: unmul(c.R()), G: unmul(c.G()), B: unmul(c.B()), A: a}
}

// Setup selects the sampling kernel. QualityBest pre-downscales with
// draw.CatmullRom whenever the destination is less than half the
// source size in either dimension, then falls back to bilinear
// sampling of the reduced image, the "pre-downscale + bilinear for
// shrinks >=2x" contract.
func (img *Image) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := img.BeginSetup(); err != nil {
		return nil, err
	}
	sampleSource := img.Source
	var nrgba *image.NRGBA
	sampleW, sampleH := img.Source.Width, img.Source.Height
	if img.Quality == QualityBest {
		src := img.sourceAsNRGBA()
		shrinkX := float64(img.Source.Width) / float64(max1(img.DestW))
		shrinkY := float64(img.Source.Height) / float64(max1(img.DestH))
		if shrinkX >= 2 || shrinkY >= 2 {
			dst := image.NewNRGBA(image.Rect(0, 0, img.DestW, img.DestH))
			draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
			nrgba = dst
			sampleW, sampleH = img.DestW, img.DestH
		} else {
			nrgba = src
		}
	}

	// scaleX/scaleY map a destination pixel coordinate back into the
	// coordinate space of whatever is actually being sampled (the raw
	// source, or its QualityBest pre-downscale), anchoring the first and
	// last destination pixel exactly onto the first and last sample so a
	// destination sized differently from its source stretches to fit
	// rather than sampling out of bounds.
	scaleX := cornerScale(sampleW, img.DestW)
	scaleY := cornerScale(sampleH, img.DestH)

	fn := colorspace.SelectSpanFunc(rop, true)
	color_ := img.Current.Color
	if color_ == 0 {
		color_ = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}

	inv := inverseTransform(img.Current)
	return func(x, y, length int, dst []colorspace.Color) {
		src := make([]colorspace.Color, length)
		for i := 0; i < length; i++ {
			p := inv.PointTransform(geom.Point{X: float64(x + i), Y: float64(y)})
			px := p.X * scaleX
			py := p.Y * scaleY
			src[i] = img.sample(sampleSource, nrgba, px, py)
		}
		fn(dst, length, src, color_, nil)
	}, nil
}

// cornerScale returns the per-pixel step that maps dest pixel index 0
// onto sample index 0 and dest pixel index destN-1 onto sample index
// sampleN-1, so destination corners always land exactly on source
// corners regardless of the two sizes' ratio.
func cornerScale(sampleN, destN int) float64 {
	if destN <= 1 || sampleN <= 1 {
		return 0
	}
	return float64(sampleN-1) / float64(destN-1)
}

func (img *Image) sample(buf *surface.Buffer, nrgba *image.NRGBA, px, py float64) colorspace.Color {
	if nrgba != nil {
		return sampleNRGBA(nrgba, px, py, img.Quality)
	}
	return sampleBuffer(buf, px, py, img.Quality)
}

func sampleBuffer(buf *surface.Buffer, px, py float64, q Quality) colorspace.Color {
	if q == QualityFast {
		x, y := int(px), int(py)
		return bufferPixel(buf, x, y)
	}
	x0, y0 := int(px), int(py)
	fx, fy := px-float64(x0), py-float64(y0)
	c00 := bufferPixel(buf, x0, y0)
	c10 := bufferPixel(buf, x0+1, y0)
	c01 := bufferPixel(buf, x0, y0+1)
	c11 := bufferPixel(buf, x0+1, y0+1)
	top := colorspace.Interp256(int32((1-fx)*256), c00, c10)
	bot := colorspace.Interp256(int32((1-fx)*256), c01, c11)
	return colorspace.Interp256(int32((1-fy)*256), top, bot)
}

func bufferPixel(buf *surface.Buffer, x, y int) colorspace.Color {
	if x < 0 || y < 0 || x >= buf.Width || y >= buf.Height {
		return colorspace.Transparent
	}
	bpp := colorspace.BytesPerPixel(buf.Format)
	off := y*buf.Stride + x*bpp
	if off+4 > len(buf.Data) {
		return colorspace.Transparent
	}
	v := uint32(buf.Data[off])<<24 | uint32(buf.Data[off+1])<<16 |
		uint32(buf.Data[off+2])<<8 | uint32(buf.Data[off+3])
	return colorspace.Color(v)
}

func sampleNRGBA(img *image.NRGBA, px, py float64, q Quality) colorspace.Color {
	nearest := func(x, y int) colorspace.Color {
		if x < 0 || y < 0 || x >= img.Rect.Dx() || y >= img.Rect.Dy() {
			return colorspace.Transparent
		}
		c := img.NRGBAAt(x, y)
		return colorspace.ARGB(c.A, mulDiv255(c.R, c.A), mulDiv255(c.G, c.A), mulDiv255(c.B, c.A))
	}
	if q == QualityFast {
		return nearest(int(px), int(py))
	}
	x0, y0 := int(px), int(py)
	fx, fy := px-float64(x0), py-float64(y0)
	c00 := nearest(x0, y0)
	c10 := nearest(x0+1, y0)
	c01 := nearest(x0, y0+1)
	c11 := nearest(x0+1, y0+1)
	top := colorspace.Interp256(int32((1-fx)*256), c00, c10)
	bot := colorspace.Interp256(int32((1-fx)*256), c01, c11)
	return colorspace.Interp256(int32((1-fy)*256), top, bot)
}

func mulDiv255(v, a uint8) uint8 {
	return uint8((uint32(v) * uint32(a)) / 255)
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func (img *Image) Cleanup(target *Surface) { img.EndCleanup() }
