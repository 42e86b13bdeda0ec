package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
)

func TestPerlinIsDeterministic(t *testing.T) {
	low := colorspace.ARGB(0xff, 0, 0, 0)
	high := colorspace.ARGB(0xff, 0xff, 0xff, 0xff)

	surfA := newTestSurface(t, 16, 16)
	surfB := newTestSurface(t, 16, 16)

	noiseA := NewPerlin(3, 0.5, 0.1, 0.1, low, high)
	noiseB := NewPerlin(3, 0.5, 0.1, 0.1, low, high)

	if err := Draw(surfA, noiseA, nil, 0, 0); err != nil {
		t.Fatalf("Draw A: %v", err)
	}
	if err := Draw(surfB, noiseB, nil, 0, 0); err != nil {
		t.Fatalf("Draw B: %v", err)
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			a, b := readPixel(surfA, x, y), readPixel(surfB, x, y)
			if a != b {
				t.Fatalf("(%d,%d) = %#x vs %#x, want identical noise fields from identical parameters", x, y, uint32(a), uint32(b))
			}
		}
	}
}

func TestPerlinOctavesClampedToAtLeastOne(t *testing.T) {
	p := NewPerlin(0, 0.5, 1, 1, colorspace.Transparent, colorspace.ARGB(0xff, 0xff, 0xff, 0xff))
	if p.Octaves != 1 {
		t.Fatalf("Octaves = %d, want clamped to 1", p.Octaves)
	}
}
