package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
)

func TestTransitionHalfwayBlendsBothChildren(t *testing.T) {
	source := NewSolid(colorspace.ARGB(0xff, 0xff, 0, 0))
	target := NewSolid(colorspace.ARGB(0xff, 0, 0, 0xff))
	transition := NewTransition(source, target, 0.5)

	surf := newTestSurface(t, 2, 2)
	if err := Draw(surf, transition, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := colorspace.ARGB(0xff, 0x7f, 0, 0x7f)
	if got := readPixel(surf, 0, 0); got != want {
		t.Fatalf("(0,0) = %#x, want %#x", uint32(got), uint32(want))
	}
}

func TestTransitionLevelZeroIsPureSource(t *testing.T) {
	source := NewSolid(colorspace.ARGB(0xff, 0x11, 0x22, 0x33))
	target := NewSolid(colorspace.ARGB(0xff, 0xaa, 0xbb, 0xcc))
	transition := NewTransition(source, target, 0)

	surf := newTestSurface(t, 1, 1)
	if err := Draw(surf, transition, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := colorspace.ARGB(0xff, 0x11, 0x22, 0x33)
	if got := readPixel(surf, 0, 0); got != want {
		t.Fatalf("(0,0) = %#x, want pure source %#x", uint32(got), uint32(want))
	}
}

func TestTransitionBoundsUnionsChildren(t *testing.T) {
	source := NewRectangle(0, 0, 10, 10, 0)
	target := NewRectangle(5, 5, 20, 20, 0)
	transition := NewTransition(source, target, 0.5)

	b := transition.DestinationBounds()
	if b.X != 0 || b.Y != 0 || b.W != 25 || b.H != 25 {
		t.Fatalf("DestinationBounds = %+v, want union covering (0,0)-(25,25)", b)
	}
}
