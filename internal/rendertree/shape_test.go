package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/bifigure"
	"github.com/rastereng/vgraphics/internal/colorspace"
)

func TestRectangleDefaultFillIsOpaqueBlack(t *testing.T) {
	rect := NewRectangle(1, 1, 6, 6, 0)
	surf := newTestSurface(t, 8, 8)
	if err := Draw(surf, rect, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	black := colorspace.ARGB(0xff, 0, 0, 0)
	if got := readPixel(surf, 4, 4); got != black {
		t.Fatalf("(4,4) interior = %#x, want opaque black fill", uint32(got))
	}
	if got := readPixel(surf, 0, 0); got != colorspace.Transparent {
		t.Fatalf("(0,0) outside rect = %#x, want untouched", uint32(got))
	}
}

func TestRectangleFillColorOverride(t *testing.T) {
	rect := NewRectangle(0, 0, 4, 4, 0)
	rect.FillColor = colorspace.ARGB(0xff, 0, 0xff, 0)
	surf := newTestSurface(t, 4, 4)
	if err := Draw(surf, rect, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	want := colorspace.ARGB(0xff, 0, 0xff, 0)
	if got := readPixel(surf, 2, 2); got != want {
		t.Fatalf("(2,2) = %#x, want overridden fill %#x", uint32(got), uint32(want))
	}
}

func TestRectangleColorMaskModulatesFill(t *testing.T) {
	rect := NewRectangle(0, 0, 4, 4, 0)
	rect.FillColor = colorspace.ARGB(0xff, 0xff, 0xff, 0xff)
	rect.SetColorMask(colorspace.ARGB(0x80, 0x80, 0x80, 0x80))

	surf := newTestSurface(t, 4, 4)
	if err := Draw(surf, rect, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := colorspace.Mul4Sym(rect.FillColor, colorspace.ARGB(0x80, 0x80, 0x80, 0x80))
	if got := readPixel(surf, 2, 2); got != want {
		t.Fatalf("(2,2) = %#x, want mask-modulated fill %#x", uint32(got), uint32(want))
	}
}

func TestRectangleStrokeOnlyLeavesInteriorTransparent(t *testing.T) {
	rect := NewRectangle(0, 0, 10, 10, 0)
	rect.Mode = bifigure.DrawStroke
	rect.StrokeWeight = 2
	rect.StrokeColor = colorspace.ARGB(0xff, 0, 0, 0xff)

	surf := newTestSurface(t, 10, 10)
	if err := Draw(surf, rect, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := readPixel(surf, 5, 5); got != colorspace.Transparent {
		t.Fatalf("(5,5) interior = %#x, want transparent with no fill active", uint32(got))
	}
}

func TestRectangleWithStrokeExpandsDestinationBounds(t *testing.T) {
	fillOnly := NewRectangle(0, 0, 10, 10, 0)
	withStroke := NewRectangle(0, 0, 10, 10, 0)
	withStroke.Mode = bifigure.DrawFill | bifigure.DrawStroke
	withStroke.StrokeWeight = 3

	plain := fillOnly.DestinationBounds()
	stroked := withStroke.DestinationBounds()
	if stroked.X >= plain.X || stroked.Y >= plain.Y {
		t.Fatalf("stroked bounds %+v should extend past plain bounds %+v", stroked, plain)
	}
	if stroked.W <= plain.W || stroked.H <= plain.H {
		t.Fatalf("stroked bounds %+v should be larger than plain bounds %+v", stroked, plain)
	}
}

func TestCircleCenterIsFilled(t *testing.T) {
	circle := NewCircle(5, 5, 4)
	circle.FillColor = colorspace.ARGB(0xff, 0xff, 0, 0)

	surf := newTestSurface(t, 10, 10)
	if err := Draw(surf, circle, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	want := colorspace.ARGB(0xff, 0xff, 0, 0)
	if got := readPixel(surf, 5, 5); got != want {
		t.Fatalf("(5,5) center = %#x, want fill color %#x", uint32(got), uint32(want))
	}
	if got := readPixel(surf, 0, 0); got != colorspace.Transparent {
		t.Fatalf("(0,0) outside circle = %#x, want untouched", uint32(got))
	}
}
