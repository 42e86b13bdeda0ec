package rendertree

import (
	"math"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

// Checker tiles the plane with two colors on a TileW x TileH grid,
// antialiasing tile boundaries under any transformation.
type Checker struct {
	Base
	Color1, Color2 colorspace.Color
	TileW, TileH   int
}

// NewChecker returns a Checker renderer with the given tile colors and
// size.
func NewChecker(c1, c2 colorspace.Color, tileW, tileH int) *Checker {
	c := &Checker{Color1: c1, Color2: c2, TileW: tileW, TileH: tileH}
	c.InitDefaults(AutoName(c.BaseName()))
	return c
}

func (c *Checker) BaseName() string { return "Checker" }

func (c *Checker) Bounds() geom.Rect {
	return geom.Rect{X: math.Inf(-1), Y: math.Inf(-1), W: math.Inf(1), H: math.Inf(1)}
}

func (c *Checker) DestinationBounds() geom.IntRect {
	return geom.IntRect{X: math.MinInt32 / 2, Y: math.MinInt32 / 2, W: math.MaxInt32, H: math.MaxInt32}
}

func (c *Checker) FeatureFlags() Features {
	return FeatureTranslate | FeatureAffine | FeatureProjective | FeatureARGB8888 | FeatureQuality
}

func (c *Checker) HasChanged() bool {
	return c.HasChangedBase()
}

func (c *Checker) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(c, oldBounds, cb)
}

// coverageAt returns how much of the pixel centered at (px,py) falls in
// the Color1 tile, 0 for fully Color2, 255 for fully Color1, with a
// one-pixel-wide antialiased ramp at tile boundaries.
func (c *Checker) coverageAt(px, py float64) uint8 {
	fx := math.Mod(px, float64(c.TileW))
	if fx < 0 {
		fx += float64(c.TileW)
	}
	fy := math.Mod(py, float64(c.TileH))
	if fy < 0 {
		fy += float64(c.TileH)
	}
	tileX := int(fx) / (c.TileW / 2)
	tileY := int(fy) / (c.TileH / 2)
	if c.TileW < 2 {
		tileX = 0
	}
	if c.TileH < 2 {
		tileY = 0
	}
	on := (tileX+tileY)%2 == 0

	edgeDist := math.Min(distToHalf(fx, float64(c.TileW)), distToHalf(fy, float64(c.TileH)))
	if edgeDist >= 1 {
		if on {
			return 255
		}
		return 0
	}
	// On a boundary the pixel is split evenly between the two tiles; its
	// own tile's share grows to full one unit inside.
	blend := uint8(edgeDist * 127)
	if on {
		return 128 + blend
	}
	return 127 - blend
}

func distToHalf(v, period float64) float64 {
	half := period / 2
	m := math.Mod(v, half)
	return math.Min(m, half-m)
}

func (c *Checker) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := c.BeginSetup(); err != nil {
		return nil, err
	}
	fn := colorspace.SelectSpanFunc(rop, true)
	colorMask := c.Current.Color
	if colorMask == 0 {
		colorMask = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}
	inv := inverseTransform(c.Current)
	return func(x, y, length int, dst []colorspace.Color) {
		src := make([]colorspace.Color, length)
		for i := 0; i < length; i++ {
			p := inv.PointTransform(geom.Point{X: float64(x + i), Y: float64(y)})
			cov := int32(c.coverageAt(p.X, p.Y))
			cov += cov >> 7 // 0..255 coverage onto Interp256's 0..256 range
			src[i] = colorspace.Interp256(cov, c.Color1, c.Color2)
		}
		fn(dst, length, src, colorMask, nil)
	}, nil
}

func (c *Checker) Cleanup(target *Surface) { c.EndCleanup() }
