package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
)

func TestProxyForwardsBoundsAndDrawing(t *testing.T) {
	wrapped := NewSolid(colorspace.ARGB(0xff, 0x10, 0x20, 0x30))
	proxy := NewProxy(wrapped)

	if proxy.Bounds() != wrapped.Bounds() {
		t.Fatalf("Bounds = %+v, want wrapped's %+v", proxy.Bounds(), wrapped.Bounds())
	}
	if proxy.DestinationBounds() != wrapped.DestinationBounds() {
		t.Fatalf("DestinationBounds = %+v, want wrapped's %+v", proxy.DestinationBounds(), wrapped.DestinationBounds())
	}
	if proxy.FeatureFlags() != wrapped.FeatureFlags() {
		t.Fatalf("FeatureFlags = %v, want wrapped's %v", proxy.FeatureFlags(), wrapped.FeatureFlags())
	}

	surf := newTestSurface(t, 2, 2)
	if err := Draw(surf, proxy, nil, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	want := colorspace.ARGB(0xff, 0x10, 0x20, 0x30)
	if got := readPixel(surf, 0, 0); got != want {
		t.Fatalf("(0,0) = %#x, want %#x", uint32(got), uint32(want))
	}
}

func TestProxyHasChangedTracksWrapped(t *testing.T) {
	wrapped := NewSolid(colorspace.ARGB(0xff, 0, 0, 0))
	proxy := NewProxy(wrapped)

	if !proxy.HasChanged() {
		t.Fatal("HasChanged: want true before first commit (never-committed state counts as changed)")
	}
	proxy.Commit()
	wrapped.Commit()
	if proxy.HasChanged() {
		t.Fatal("HasChanged: want false immediately after committing both proxy and wrapped")
	}

	wrapped.SetColorMask(colorspace.ARGB(0xff, 0xff, 0xff, 0xff))
	if !proxy.HasChanged() {
		t.Fatal("HasChanged: want true after a change to the wrapped renderer alone")
	}
}
