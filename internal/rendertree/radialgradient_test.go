package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

func TestRadialGradientConcentricCenterAndEdge(t *testing.T) {
	inner := colorspace.ARGB(0xff, 0xff, 0, 0)
	outer := colorspace.ARGB(0xff, 0, 0, 0xff)
	center := geom.Point{X: 8, Y: 8}
	gradient := NewRadialGradient(center, center, 8,
		[]Stop{{Position: 0, Color: inner}, {Position: 1, Color: outer}})

	surf := newTestSurface(t, 17, 17)
	if err := Draw(surf, gradient, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if got := readPixel(surf, 8, 8); got != inner {
		t.Fatalf("center (8,8) = %#x, want inner stop %#x", uint32(got), uint32(inner))
	}
	// (16,8) is exactly Radius=8 away from the center, at t=1.
	if got := readPixel(surf, 16, 8); got != outer {
		t.Fatalf("(16,8) on the radius = %#x, want outer stop %#x", uint32(got), uint32(outer))
	}
}

func TestRadialGradientSpreadPadClampsBeyondRadius(t *testing.T) {
	inner := colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	outer := colorspace.ARGB(0xff, 0, 0, 0)
	center := geom.Point{X: 2, Y: 2}
	gradient := NewRadialGradient(center, center, 2,
		[]Stop{{Position: 0, Color: inner}, {Position: 1, Color: outer}})
	gradient.Spread = SpreadPad

	surf := newTestSurface(t, 1, 1)
	if err := Draw(surf, gradient, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	// (0,0) is distance sqrt(8)=2.83 from center, well past radius 2, so
	// padding should clamp to the outer stop.
	if got := readPixel(surf, 0, 0); got != outer {
		t.Fatalf("(0,0) beyond radius = %#x, want padded outer stop %#x", uint32(got), uint32(outer))
	}
}

func TestRadialGradientWithOffsetFocalMatchesConcentricAtCenter(t *testing.T) {
	inner := colorspace.ARGB(0xff, 0xff, 0, 0)
	outer := colorspace.ARGB(0xff, 0, 0xff, 0)
	center := geom.Point{X: 10, Y: 10}
	focal := geom.Point{X: 8, Y: 10}
	gradient := NewRadialGradient(center, focal, 6,
		[]Stop{{Position: 0, Color: inner}, {Position: 1, Color: outer}})

	// At the focal point itself, t is defined as 0 regardless of offset.
	got := gradient.tAt(focal)
	if got != 0 {
		t.Fatalf("tAt(focal) = %v, want 0", got)
	}
}
