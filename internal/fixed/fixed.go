// Package fixed implements the 16.16 fixed-point scalar used throughout
// the edge tables and scanline rasterizer, where integer arithmetic on
// a 64-bit intermediate keeps per-pixel coverage math free of floating
// point drift.
package fixed

// Point16p16 is a signed 32-bit integer holding a 16.16 fixed-point
// value: the high 16 bits are the integer part, the low 16 the
// fractional part.
type Point16p16 = int32

// One is the fixed-point representation of 1.0.
const One Point16p16 = 1 << 16

// FromInt converts an integer to 16.16 fixed point.
func FromInt(v int) Point16p16 {
	return Point16p16(v) << 16
}

// FromDouble converts a float64 to 16.16 fixed point.
func FromDouble(v float64) Point16p16 {
	return Point16p16(v * 65536.0)
}

// ToInt truncates a 16.16 fixed-point value to an integer.
func ToInt(v Point16p16) int {
	return int(v >> 16)
}

// ToDouble converts a 16.16 fixed-point value back to float64.
func ToDouble(v Point16p16) float64 {
	return float64(v) / 65536.0
}

// Mul multiplies two 16.16 values using a 64-bit intermediate so the
// product does not overflow before the shift back to 16.16.
func Mul(a, b Point16p16) Point16p16 {
	return Point16p16((int64(a) * int64(b)) >> 16)
}

// Div divides two 16.16 values using a 64-bit intermediate.
func Div(a, b Point16p16) Point16p16 {
	return Point16p16((int64(a) << 16) / int64(b))
}

// FractionalPart extracts the low 16 bits (the fractional component).
func FractionalPart(v Point16p16) Point16p16 {
	return v & 0xFFFF
}

// Mul64 multiplies two 16.16 values and returns the raw 64-bit
// intermediate without shifting back down, for callers (edge
// evaluation) that need to keep accumulating before a single final
// shift, avoiding repeated truncation error.
func Mul64(a, b Point16p16) int64 {
	return int64(a) * int64(b)
}
