package rendertree

import (
	"math"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

// Perlin renders coherent noise as a grayscale (or two-color) field,
// built from octaves of integer-lattice noise smoothed by bilinear
// interpolation, following the classic value-noise construction: a
// hashed per-lattice-point pseudo-random value in [-1,1], bilinearly
// interpolated between lattice cells, summed across octaves of
// doubling frequency and persistence-scaled amplitude.
type Perlin struct {
	Base
	Octaves     int
	Persistence float64
	XFreq, YFreq float64
	Low, High   colorspace.Color
}

// NewPerlin returns a Perlin renderer mapping noise in [-1,1] to a
// blend between low and high.
func NewPerlin(octaves int, persistence, xfreq, yfreq float64, low, high colorspace.Color) *Perlin {
	if octaves < 1 {
		octaves = 1
	}
	p := &Perlin{Octaves: octaves, Persistence: persistence, XFreq: xfreq, YFreq: yfreq, Low: low, High: high}
	p.InitDefaults(AutoName(p.BaseName()))
	return p
}

func (p *Perlin) BaseName() string { return "Perlin" }

func (p *Perlin) Bounds() geom.Rect {
	return geom.Rect{X: math.Inf(-1), Y: math.Inf(-1), W: math.Inf(1), H: math.Inf(1)}
}

func (p *Perlin) DestinationBounds() geom.IntRect {
	return geom.IntRect{X: math.MinInt32 / 2, Y: math.MinInt32 / 2, W: math.MaxInt32, H: math.MaxInt32}
}

func (p *Perlin) FeatureFlags() Features {
	return FeatureTranslate | FeatureAffine | FeatureARGB8888
}

func (p *Perlin) HasChanged() bool { return p.HasChangedBase() }

func (p *Perlin) Damages(oldBounds geom.IntRect, cb DamageFunc) {
	defaultDamages(p, oldBounds, cb)
}

// latticeNoise hashes an integer lattice point to a pseudo-random
// value in [-1,1].
func latticeNoise(x, y int) float64 {
	n := x + y*57
	n = (n << 13) ^ n
	n = (n*(n*n*15731+789221) + 1376312589) & 0x7fffffff
	return 1 - float64(n)/1073741824.0
}

func smoothInterp(fx, x0, x1 float64) float64 {
	return x0 + (x1-x0)*fx
}

func interpolatedNoise(x, y float64) float64 {
	ix, iy := math.Floor(x), math.Floor(y)
	fx, fy := x-ix, y-iy
	v1 := latticeNoise(int(ix), int(iy))
	v2 := latticeNoise(int(ix)+1, int(iy))
	v3 := latticeNoise(int(ix), int(iy)+1)
	v4 := latticeNoise(int(ix)+1, int(iy)+1)
	top := smoothInterp(fx, v1, v2)
	bot := smoothInterp(fx, v3, v4)
	return smoothInterp(fy, top, bot)
}

func (p *Perlin) noiseAt(x, y float64) float64 {
	xfreq, yfreq := p.XFreq, p.YFreq
	ampl := p.Persistence
	var total, maxAmp float64
	for i := 0; i < p.Octaves; i++ {
		total += interpolatedNoise(x*xfreq, y*yfreq) * ampl
		maxAmp += ampl
		xfreq *= 2
		yfreq *= 2
		ampl *= p.Persistence
	}
	if maxAmp == 0 {
		return 0
	}
	return total / maxAmp
}

func (p *Perlin) Setup(target *Surface, rop colorspace.Rop) (SpanFunc, error) {
	if err := p.BeginSetup(); err != nil {
		return nil, err
	}
	fn := colorspace.SelectSpanFunc(rop, true)
	colorMask := p.Current.Color
	if colorMask == 0 {
		colorMask = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	}
	inv := inverseTransform(p.Current)
	return func(x, y, length int, dst []colorspace.Color) {
		src := make([]colorspace.Color, length)
		for i := 0; i < length; i++ {
			fig := inv.PointTransform(geom.Point{X: float64(x + i), Y: float64(y)})
			n := (p.noiseAt(fig.X, fig.Y) + 1) / 2
			if n < 0 {
				n = 0
			}
			if n > 1 {
				n = 1
			}
			src[i] = colorspace.Interp256(int32(n*256), p.High, p.Low)
		}
		fn(dst, length, src, colorMask, nil)
	}, nil
}

func (p *Perlin) Cleanup(target *Surface) { p.EndCleanup() }
