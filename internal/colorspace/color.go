// Package colorspace implements premultiplied ARGB8888 pixels, the
// per-pixel / per-span composition functions, and the buffer-boundary
// converters to and from the externally supported pixel formats.
package colorspace

// Color is a premultiplied ARGB8888 pixel, alpha in the high byte, the
// engine's sole internal working representation.
type Color uint32

// ARGB packs four 8-bit premultiplied channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Transparent is the zero pixel.
const Transparent Color = 0

// Mul4Sym multiplies two premultiplied colors component-wise, rounding
// as (v + v>>8) >> 8 with v = x*y + 0xff, so that 0xff * 0xff still
// maps to 0xff.
func Mul4Sym(x, y Color) Color {
	mulByte := func(a, b uint8) uint8 {
		v := uint32(a)*uint32(b) + 0xff
		return uint8((v + (v >> 8)) >> 8)
	}
	return ARGB(
		mulByte(x.A(), y.A()),
		mulByte(x.R(), y.R()),
		mulByte(x.G(), y.G()),
		mulByte(x.B(), y.B()),
	)
}

// Mul256 scales a premultiplied color by a factor in [0,256] (256 means
// unscaled).
func Mul256(factor int32, c Color) Color {
	scaleByte := func(v uint8) uint8 {
		return uint8((int32(v) * factor) >> 8)
	}
	return ARGB(scaleByte(c.A()), scaleByte(c.R()), scaleByte(c.G()), scaleByte(c.B()))
}

// Interp256 computes c1 + ((c0-c1)*a)>>8 per component, a in [0,256].
func Interp256(a int32, c0, c1 Color) Color {
	interpByte := func(v0, v1 uint8) uint8 {
		return uint8(int32(v1) + (((int32(v0) - int32(v1)) * a) >> 8)) //nolint:gosec
	}
	return ARGB(
		interpByte(c0.A(), c1.A()),
		interpByte(c0.R(), c1.R()),
		interpByte(c0.G(), c1.G()),
		interpByte(c0.B(), c1.B()),
	)
}

// Over composites src over dst under premultiplied source-over:
// dst' = src + dst*(1 - src.A).
func Over(src, dst Color) Color {
	invA := int32(256 - int32(src.A()))
	blendByte := func(s, d uint8) uint8 {
		return uint8(int32(s) + ((int32(d) * invA) >> 8))
	}
	return ARGB(
		blendByte(src.A(), dst.A()),
		blendByte(src.R(), dst.R()),
		blendByte(src.G(), dst.G()),
		blendByte(src.B(), dst.B()),
	)
}
