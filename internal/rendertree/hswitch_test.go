package rendertree

import (
	"math"
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
)

func TestHswitchSamplesLeftAndRightOfSeam(t *testing.T) {
	left := NewSolid(colorspace.ARGB(0xff, 0xff, 0, 0))
	right := NewSolid(colorspace.ARGB(0xff, 0, 0, 0xff))
	// seam = width - width*step = 8 - 8*0.2 = 6.4, floor 6, frac 0.4: columns
	// before 6 are pure left, after 6 pure right, column 6 itself blends.
	hswitch := NewHswitch(left, right, 8, 0.2)

	surf := newTestSurface(t, 8, 1)
	if err := Draw(surf, hswitch, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	for x := 0; x < 6; x++ {
		if got := readPixel(surf, x, 0); got != colorspace.ARGB(0xff, 0xff, 0, 0) {
			t.Errorf("x=%d = %#x, want pure left", x, uint32(got))
		}
	}
	for x := 7; x < 8; x++ {
		if got := readPixel(surf, x, 0); got != colorspace.ARGB(0xff, 0, 0, 0xff) {
			t.Errorf("x=%d = %#x, want pure right", x, uint32(got))
		}
	}

	seam := float64(8) - float64(8)*0.2
	mx := math.Floor(seam)
	frac := seam - mx
	want := colorspace.Interp256(int32(frac*256), colorspace.ARGB(0xff, 0, 0, 0xff), colorspace.ARGB(0xff, 0xff, 0, 0))
	if got := readPixel(surf, 6, 0); got != want {
		t.Fatalf("seam column (6,0) = %#x, want blended %#x", uint32(got), uint32(want))
	}
}
