package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
)

func TestLinearGradientEndpointsMatchStops(t *testing.T) {
	black := colorspace.ARGB(0xff, 0, 0, 0)
	white := colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	gradient := NewLinearGradient(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0},
		[]Stop{{Position: 0, Color: black}, {Position: 1, Color: white}},
	)

	surf := newTestSurface(t, 11, 1)
	if err := Draw(surf, gradient, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if got := readPixel(surf, 0, 0); got != black {
		t.Fatalf("x=0 = %#x, want black stop", uint32(got))
	}
	if got := readPixel(surf, 10, 0); got != white {
		t.Fatalf("x=10 = %#x, want white stop", uint32(got))
	}
	mid := readPixel(surf, 5, 0)
	if mid.R() < 0x60 || mid.R() > 0x9f {
		t.Fatalf("x=5 R=%#x, want roughly mid-gray between black and white", mid.R())
	}
}

func TestLinearGradientSpreadPadClampsBeyondStops(t *testing.T) {
	red := colorspace.ARGB(0xff, 0xff, 0, 0)
	blue := colorspace.ARGB(0xff, 0, 0, 0xff)
	gradient := NewLinearGradient(
		geom.Point{X: 5, Y: 0}, geom.Point{X: 10, Y: 0},
		[]Stop{{Position: 0, Color: red}, {Position: 1, Color: blue}},
	)
	gradient.Spread = SpreadPad

	surf := newTestSurface(t, 5, 1)
	if err := Draw(surf, gradient, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// x=0 is before p0 (t<0), padded to the first stop's color.
	if got := readPixel(surf, 0, 0); got != red {
		t.Fatalf("x=0 = %#x, want padded first stop %#x", uint32(got), uint32(red))
	}
}

func TestLinearGradientSpreadRepeatCycles(t *testing.T) {
	red := colorspace.ARGB(0xff, 0xff, 0, 0)
	blue := colorspace.ARGB(0xff, 0, 0, 0xff)
	gradient := NewLinearGradient(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0},
		[]Stop{{Position: 0, Color: red}, {Position: 1, Color: blue}},
	)
	gradient.Spread = SpreadRepeat

	surf := newTestSurface(t, 9, 1)
	if err := Draw(surf, gradient, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// t at x=0 and x=4 (one full period later, 4px = |p1-p0|) both land on
	// the wrapped t=0 stop.
	c0, c4 := readPixel(surf, 0, 0), readPixel(surf, 4, 0)
	if c0 != c4 {
		t.Fatalf("x=0 (%#x) and x=4 (%#x) should repeat the same stop color", uint32(c0), uint32(c4))
	}
}
