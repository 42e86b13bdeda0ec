package colorspace

// Rop (raster operation) selects how a span compositor combines source
// and destination pixels.
type Rop int

const (
	// Fill overwrites the destination outright.
	Fill Rop = iota
	// Blend composites the source over the destination
	// (dst = src + dst*(1-src.A)).
	Blend
)

// SpanFunc writes length pixels starting at dst[0]. src is nil when the
// span has a constant colorMask and no per-pixel source renderer; mask
// is nil when no clip mask applies. This signature is specialized to
// ARGB8888Pre destinations (the only destination format the in-process
// rasterizer ever writes — buffer format conversion happens at Surface
// boundaries, see internal/surface).
type SpanFunc func(dst []Color, length int, src []Color, colorMask Color, mask []uint8)

// fillSolid overwrites length destination pixels with colorMask,
// optionally modulated by an A8 mask.
func fillSolid(dst []Color, length int, _ []Color, colorMask Color, mask []uint8) {
	if mask == nil {
		for i := 0; i < length; i++ {
			dst[i] = colorMask
		}
		return
	}
	for i := 0; i < length; i++ {
		dst[i] = Mul256(int32(mask[i])+int32(mask[i]>>7), colorMask)
	}
}

// fillSource overwrites length destination pixels with src, modulated
// by colorMask (Mul4Sym) and optionally an A8 mask.
func fillSource(dst []Color, length int, src []Color, colorMask Color, mask []uint8) {
	full := colorMask == ARGB(0xff, 0xff, 0xff, 0xff)
	for i := 0; i < length; i++ {
		p := src[i]
		if !full {
			p = Mul4Sym(colorMask, p)
		}
		if mask != nil {
			p = Mul256(int32(mask[i])+int32(mask[i]>>7), p)
		}
		dst[i] = p
	}
}

// blendSolid composites colorMask over the destination.
func blendSolid(dst []Color, length int, _ []Color, colorMask Color, mask []uint8) {
	for i := 0; i < length; i++ {
		src := colorMask
		if mask != nil {
			src = Mul256(int32(mask[i])+int32(mask[i]>>7), src)
		}
		dst[i] = Over(src, dst[i])
	}
}

// blendSource composites src (scaled by colorMask) over the destination.
func blendSource(dst []Color, length int, src []Color, colorMask Color, mask []uint8) {
	full := colorMask == ARGB(0xff, 0xff, 0xff, 0xff)
	for i := 0; i < length; i++ {
		p := src[i]
		if !full {
			p = Mul4Sym(colorMask, p)
		}
		if mask != nil {
			p = Mul256(int32(mask[i])+int32(mask[i]>>7), p)
		}
		dst[i] = Over(p, dst[i])
	}
}

// SelectSpanFunc picks a span compositor keyed by (rop, whether a
// per-pixel source is present). The mask dimension is handled inside
// each function rather than by further specializing the table, since
// every combination needs the identical mask-modulation step.
func SelectSpanFunc(rop Rop, hasSource bool) SpanFunc {
	switch {
	case rop == Fill && !hasSource:
		return fillSolid
	case rop == Fill && hasSource:
		return fillSource
	case rop == Blend && !hasSource:
		return blendSolid
	default:
		return blendSource
	}
}
