package rendertree

import (
	"testing"

	"github.com/rastereng/vgraphics/internal/colorspace"
	"github.com/rastereng/vgraphics/internal/surface"
)

// newTestSurface allocates a w x h ARGB8888Pre surface, the only format
// the in-process rasterizer writes directly.
func newTestSurface(t *testing.T, w, h int) *surface.Surface {
	t.Helper()
	buf, err := surface.New(colorspace.ARGB8888Pre, w, h)
	if err != nil {
		t.Fatalf("surface.New: %v", err)
	}
	return surface.New(buf)
}

func readPixel(s *surface.Surface, x, y int) colorspace.Color {
	buf := s.Buffer
	bpp := colorspace.BytesPerPixel(buf.Format)
	off := y*buf.Stride + x*bpp
	return colorspace.ARGB(buf.Data[off], buf.Data[off+1], buf.Data[off+2], buf.Data[off+3])
}

// newTestBuffer allocates a w x h ARGB8888Pre buffer and fills it via
// set, which is called once per pixel with that pixel's coordinates.
func newTestBuffer(t *testing.T, w, h int, set func(x, y int) colorspace.Color) *surface.Buffer {
	t.Helper()
	buf, err := surface.New(colorspace.ARGB8888Pre, w, h)
	if err != nil {
		t.Fatalf("surface.New: %v", err)
	}
	bpp := colorspace.BytesPerPixel(buf.Format)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := set(x, y)
			off := y*buf.Stride + x*bpp
			buf.Data[off] = c.A()
			buf.Data[off+1] = c.R()
			buf.Data[off+2] = c.G()
			buf.Data[off+3] = c.B()
		}
	}
	return buf
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func approxColor(t *testing.T, got, want colorspace.Color, tolerance uint8) {
	t.Helper()
	check := func(name string, g, w uint8) {
		if absInt(int(g)-int(w)) > int(tolerance) {
			t.Errorf("%s channel: got %#02x, want %#02x ±%d", name, g, w, tolerance)
		}
	}
	check("A", got.A(), want.A())
	check("R", got.R(), want.R())
	check("G", got.G(), want.G())
	check("B", got.B(), want.B())
}
