package rendertree

import (
	"errors"
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/geom"
	"github.com/rastereng/vgraphics/internal/vgerr"
)

func TestDrawSolidFillsEveryPixel(t *testing.T) {
	surf := newTestSurface(t, 32, 32)
	solid := NewSolid(colorspace.ARGB(0xff, 0x80, 0x80, 0x80))

	if err := Draw(surf, solid, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := colorspace.ARGB(0xff, 0x80, 0x80, 0x80)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if got := readPixel(surf, x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#x, want %#x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestDrawClipRestrictsWrittenArea(t *testing.T) {
	surf := newTestSurface(t, 8, 8)
	solid := NewSolid(colorspace.ARGB(0xff, 0xff, 0, 0))
	clip := geom.IntRect{X: 2, Y: 2, W: 3, H: 3}

	if err := Draw(surf, solid, &clip, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			got := readPixel(surf, x, y)
			if inside && got != colorspace.ARGB(0xff, 0xff, 0, 0) {
				t.Fatalf("pixel (%d,%d) inside clip = %#x, want red", x, y, uint32(got))
			}
			if !inside && got != colorspace.Transparent {
				t.Fatalf("pixel (%d,%d) outside clip = %#x, want untouched", x, y, uint32(got))
			}
		}
	}
}

func TestDrawDetectsMaskCycle(t *testing.T) {
	solid := NewSolid(colorspace.ARGB(0xff, 0, 0xff, 0))
	// A renderer used as its own mask is a one-node cycle.
	solid.SetMask(solid)

	surf := newTestSurface(t, 4, 4)
	err := Draw(surf, solid, nil, 0, 0)
	if err == nil {
		t.Fatal("Draw: expected cycle error, got nil")
	}
	var setupErr *vgerr.SetupError
	if !errors.As(err, &setupErr) || !errors.Is(setupErr, vgerr.ErrCycleDetected) {
		t.Fatalf("Draw: got %v, want ErrCycleDetected", err)
	}
}

func TestDrawDetectsCompoundLayerCycle(t *testing.T) {
	proxy := NewProxy(NewSolid(colorspace.ARGB(0xff, 0, 0, 0xff)))
	compound := NewCompound(Layer{Renderer: proxy, Rop: colorspace.Fill})
	// Point the proxy back at the compound that contains it.
	proxy.Wrapped = compound

	surf := newTestSurface(t, 4, 4)
	err := Draw(surf, compound, nil, 0, 0)
	if !errors.Is(err, vgerr.ErrCycleDetected) {
		t.Fatalf("Draw: got %v, want ErrCycleDetected", err)
	}
}

func TestDrawAcyclicTreeSucceeds(t *testing.T) {
	shared := NewSolid(colorspace.ARGB(0xff, 0x11, 0x22, 0x33))
	// The same renderer appears twice in the tree (diamond shape), which
	// is allowed: only back edges through a node's own ancestry are
	// cycles, not reuse of a shared leaf. The second reference is a mask,
	// which the cycle check walks but Setup does not: a renderer set up
	// twice before its Cleanup fails the setup guard.
	masked := NewSolid(colorspace.ARGB(0xff, 0x44, 0x55, 0x66))
	masked.SetMask(shared)
	compound := NewCompound(
		Layer{Renderer: shared, Rop: colorspace.Fill},
		Layer{Renderer: NewProxy(masked), Rop: colorspace.Fill},
	)

	surf := newTestSurface(t, 4, 4)
	if err := Draw(surf, compound, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
}
