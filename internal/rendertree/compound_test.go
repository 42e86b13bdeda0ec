package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
)

func TestCompoundBlendsTopOverBottom(t *testing.T) {
	background := NewSolid(colorspace.ARGB(0xff, 0xff, 0, 0))
	overlay := NewSolid(colorspace.ARGB(0x80, 0, 0, 0))
	compound := NewCompound(
		Layer{Renderer: background, Rop: colorspace.Fill},
		Layer{Renderer: overlay, Rop: colorspace.Blend},
	)

	surf := newTestSurface(t, 4, 4)
	if err := Draw(surf, compound, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// The expected pixel is derived from the same Over primitive the
	// compositor itself uses, so this pins the layer ordering and rop
	// wiring rather than re-deriving blend arithmetic by hand.
	want := colorspace.Over(colorspace.ARGB(0x80, 0, 0, 0), colorspace.ARGB(0xff, 0xff, 0, 0))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := readPixel(surf, x, y); got != want {
				t.Fatalf("(%d,%d) = %#x, want %#x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestCompoundBoundsUnionsLayers(t *testing.T) {
	left := NewRectangle(0, 0, 10, 10, 0)
	right := NewRectangle(20, 20, 10, 10, 0)
	compound := NewCompound(
		Layer{Renderer: left, Rop: colorspace.Fill},
		Layer{Renderer: right, Rop: colorspace.Fill},
	)

	b := compound.DestinationBounds()
	if b.X != 0 || b.Y != 0 || b.W != 30 || b.H != 30 {
		t.Fatalf("DestinationBounds = %+v, want union covering (0,0)-(30,30)", b)
	}
}

func TestCompoundSetupFailureRollsBackEarlierLayers(t *testing.T) {
	ok := NewSolid(colorspace.ARGB(0xff, 0, 0xff, 0))
	bad := NewCompound() // an empty compound still sets up fine; use a setup-guard violation instead
	bad.setUp = true     // force BeginSetup to fail on the next call

	compound := NewCompound(
		Layer{Renderer: ok, Rop: colorspace.Fill},
		Layer{Renderer: bad, Rop: colorspace.Fill},
	)

	surf := newTestSurface(t, 2, 2)
	if err := Draw(surf, compound, nil, 0, 0); err == nil {
		t.Fatal("Draw: expected an error from the forced setup failure")
	}
	if ok.setUp {
		t.Fatal("earlier layer was not rolled back after a later layer's setup failed")
	}
}
