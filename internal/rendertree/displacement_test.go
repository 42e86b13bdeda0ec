package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
)

func TestDisplacementOffsetsSampleByMapChannels(t *testing.T) {
	// Source pixel (x,y) is uniquely colored so a displaced sample can be
	// told apart from its neighbors.
	source := newTestBuffer(t, 4, 4, func(x, y int) colorspace.Color {
		return colorspace.ARGB(0xff, uint8(x*50), uint8(y*50), 0)
	})
	// Every map pixel reads R=255 (max positive X offset), G=0 (max
	// negative Y offset).
	mapBuf := newTestBuffer(t, 4, 4, func(x, y int) colorspace.Color {
		return colorspace.ARGB(0xff, 0xff, 0, 0)
	})

	disp := NewDisplacement(source, mapBuf, 2, ChannelRed, ChannelGreen)

	surf := newTestSurface(t, 4, 4)
	if err := Draw(surf, disp, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// At (1,1): dx=(255/255-0.5)*2=1, dy=(0/255-0.5)*2=-1, so the sample
	// comes from source (2,0).
	want := colorspace.ARGB(0xff, 100, 0, 0)
	if got := readPixel(surf, 1, 1); got != want {
		t.Fatalf("(1,1) = %#x, want displaced source(2,0) = %#x", uint32(got), uint32(want))
	}
}

func TestDisplacementBoundsMatchMapSize(t *testing.T) {
	source := newTestBuffer(t, 4, 4, func(x, y int) colorspace.Color { return colorspace.Transparent })
	mapBuf := newTestBuffer(t, 6, 3, func(x, y int) colorspace.Color { return colorspace.Transparent })
	disp := NewDisplacement(source, mapBuf, 1, ChannelRed, ChannelGreen)

	b := disp.DestinationBounds()
	if b.X != 0 || b.Y != 0 || b.W != 6 || b.H != 3 {
		t.Fatalf("DestinationBounds = %+v, want (0,0)-(6,3) matching the map", b)
	}
}
