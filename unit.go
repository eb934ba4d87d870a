package prng

import "math"

// IEEE-754 layout of the [1, 2) construction: exponent field at the bias,
// mantissa filled with random bits.
const (
	float64MantBits = 52
	float64One      = 0x3ff0000000000000
	float32MantBits = 23
	float32One      = 0x3f800000
)

// float64InOneTwo returns 1 + m/2^52 for a 52-bit mantissa m.
func float64InOneTwo(m uint64) float64 {
	return math.Float64frombits(float64One | m)
}

// float32InOneTwo returns 1 + m/2^23 for a 23-bit mantissa m.
func float32InOneTwo(m uint32) float32 {
	return math.Float32frombits(float32One | m)
}

func mantissa64(src BitGenerator) uint64 {
	return src.Next64() >> (64 - float64MantBits)
}

func mantissa32(src BitGenerator) uint32 {
	return src.Next32() >> (32 - float32MantBits)
}

// HalfOpenFloat64 returns one of the 2^52 evenly spaced values in [0, 1),
// using one 64-bit word.
func HalfOpenFloat64(src BitGenerator) float64 {
	return float64InOneTwo(mantissa64(src)) - 1
}

// OpenFloat64 returns one of the 2^52-1 evenly spaced values in (0, 1).
func OpenFloat64(src BitGenerator) float64 {
	for {
		if m := mantissa64(src); m != 0 {
			return float64InOneTwo(m) - 1
		}
	}
}

// HalfClosedFloat64 returns one of the 2^52 evenly spaced values in (0, 1].
func HalfClosedFloat64(src BitGenerator) float64 {
	return 2 - float64InOneTwo(mantissa64(src))
}

// ClosedFloat64 returns one of the 2^52+1 evenly spaced values in [0, 1].
// The weighted coin starts on the 12 bits the mantissa leaves unused, so a
// draw almost always costs one word. Bits left over after the coin are
// discarded; use a Unit for repeated draws.
func ClosedFloat64(src BitGenerator) float64 {
	w := src.Next64()
	pool := bitPool{
		src:      src,
		wordBits: 64,
		carry:    w << float64MantBits,
		avail:    64 - float64MantBits,
	}
	return closedFloat64(w>>(64-float64MantBits), &pool)
}

// HalfOpenFloat32 returns one of the 2^23 evenly spaced values in [0, 1),
// using one 32-bit word.
func HalfOpenFloat32(src BitGenerator) float32 {
	return float32InOneTwo(mantissa32(src)) - 1
}

// OpenFloat32 returns one of the 2^23-1 evenly spaced values in (0, 1).
func OpenFloat32(src BitGenerator) float32 {
	for {
		if m := mantissa32(src); m != 0 {
			return float32InOneTwo(m) - 1
		}
	}
}

// HalfClosedFloat32 returns one of the 2^23 evenly spaced values in (0, 1].
func HalfClosedFloat32(src BitGenerator) float32 {
	return 2 - float32InOneTwo(mantissa32(src))
}

// ClosedFloat32 returns one of the 2^23+1 evenly spaced values in [0, 1].
// The weighted coin starts on the 9 bits the mantissa leaves unused.
func ClosedFloat32(src BitGenerator) float32 {
	w := src.Next32()
	pool := bitPool{
		src:      src,
		wordBits: 32,
		carry:    uint64(w) << (64 - 32 + float32MantBits),
		avail:    32 - float32MantBits,
	}
	return closedFloat32(w>>(32-float32MantBits), &pool)
}

// closedFloat64 takes the half-open value for mantissa m, then replaces it
// with exactly 1.0 with probability 1/(2^52+1). Each of the 2^52 half-open
// values keeps probability (1/2^52)(2^52/(2^52+1)) = 1/(2^52+1), the same
// as 1.0. The coin bits must be independent of m.
func closedFloat64(m uint64, pool *bitPool) float64 {
	if pool.oneInPow2Plus1(float64MantBits) {
		return 1
	}
	return float64InOneTwo(m) - 1
}

func closedFloat32(m uint32, pool *bitPool) float32 {
	if pool.oneInPow2Plus1(float32MantBits) {
		return 1
	}
	return float32InOneTwo(m) - 1
}

// Unit draws unit-interval floats from one engine, caching the bits the
// closed-interval coin leaves over. It is not safe for concurrent use.
type Unit struct {
	src  BitGenerator
	pool bitPool
}

// NewUnit creates a Unit reading from src.
func NewUnit(src BitGenerator) *Unit {
	return &Unit{src: src, pool: newBitPool(src, 64)}
}

func (u *Unit) HalfOpen64() float64   { return HalfOpenFloat64(u.src) }
func (u *Unit) Open64() float64       { return OpenFloat64(u.src) }
func (u *Unit) HalfClosed64() float64 { return HalfClosedFloat64(u.src) }
func (u *Unit) Closed64() float64     { return closedFloat64(mantissa64(u.src), &u.pool) }

func (u *Unit) HalfOpen32() float32   { return HalfOpenFloat32(u.src) }
func (u *Unit) Open32() float32       { return OpenFloat32(u.src) }
func (u *Unit) HalfClosed32() float32 { return HalfClosedFloat32(u.src) }
func (u *Unit) Closed32() float32     { return closedFloat32(mantissa32(u.src), &u.pool) }
