package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

func TestRadialDistortionZeroStrengthIsIdentity(t *testing.T) {
	straight := NewChecker(colorspace.ARGB(0xff, 0xff, 0, 0), colorspace.ARGB(0xff, 0, 0, 0xff), 8, 8)
	distorted := NewChecker(colorspace.ARGB(0xff, 0xff, 0, 0), colorspace.ARGB(0xff, 0, 0, 0xff), 8, 8)
	radial := NewRadialDistortion(distorted, geom.Point{X: 8, Y: 8}, 8, 0)

	plain := newTestSurface(t, 16, 16)
	warped := newTestSurface(t, 16, 16)
	if err := Draw(plain, straight, nil, 0, 0); err != nil {
		t.Fatalf("Draw plain: %v", err)
	}
	if err := Draw(warped, radial, nil, 0, 0); err != nil {
		t.Fatalf("Draw warped: %v", err)
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want, got := readPixel(plain, x, y), readPixel(warped, x, y)
			if want != got {
				t.Fatalf("(%d,%d) = %#x, want identity passthrough %#x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestRadialDistortionPropagatesFeatureFlags(t *testing.T) {
	source := NewRectangle(0, 0, 4, 4, 0)
	radial := NewRadialDistortion(source, geom.Point{X: 2, Y: 2}, 4, 0.5)
	if radial.FeatureFlags() != source.FeatureFlags()&(FeatureTranslate|FeatureAffine|FeatureARGB8888) {
		t.Fatalf("FeatureFlags = %v, want masked-down source flags", radial.FeatureFlags())
	}
}
