package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
)

func TestStripesAlternatesBands(t *testing.T) {
	c1 := colorspace.ARGB(0xff, 0, 0xff, 0)
	c2 := colorspace.ARGB(0xff, 0xff, 0xff, 0)
	stripes := NewStripes(c1, c2, 4, 4)

	surf := newTestSurface(t, 8, 8)
	if err := Draw(surf, stripes, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	for x := 0; x < 8; x++ {
		if got := readPixel(surf, x, 2); got != c1 {
			t.Errorf("(%d,2) = %#x, want c1 %#x", x, uint32(got), uint32(c1))
		}
		if got := readPixel(surf, x, 6); got != c2 {
			t.Errorf("(%d,6) = %#x, want c2 %#x", x, uint32(got), uint32(c2))
		}
	}
}

func TestStripesZeroPeriodDegradesToColor1(t *testing.T) {
	c1 := colorspace.ARGB(0xff, 0x11, 0x22, 0x33)
	stripes := NewStripes(c1, colorspace.Transparent, 0, 0)

	surf := newTestSurface(t, 4, 4)
	if err := Draw(surf, stripes, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := readPixel(surf, 1, 1); got != c1 {
		t.Fatalf("(1,1) = %#x, want c1 %#x", uint32(got), uint32(c1))
	}
}
