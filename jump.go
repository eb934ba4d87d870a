package prng

import "fmt"

// gf2Poly is a polynomial over GF(2) of degree < 128: bit b of word w is
// the coefficient of x^(64*w+b).
type gf2Poly [2]uint64

// jumpTable describes the linear recurrence of a 128-bit engine: its
// characteristic polynomial x^128 + charLow, and x^(2^64) mod that
// polynomial, which is the polynomial SkipAhead walks.
type jumpTable struct {
	charLow gf2Poly
	jump    gf2Poly
}

var (
	// xorshift128+ 23/18/5.
	xorShiftJumps = jumpTable{
		charLow: gf2Poly{0x024f06fae9e61daf, 0x2844c5d42caf7db0},
		jump:    gf2Poly{0x8a5cd789635d2dff, 0x121fd2155c472f96},
	}

	// xorshift128+ 23/17/26.
	xorShiftLegacyJumps = jumpTable{
		charLow: gf2Poly{0xbd82fd40e01730f9, 0x01f9f801f6fd0098},
		jump:    gf2Poly{0x8c405782bca686ad, 0xc44f35946fef49c6},
	}

	// xoroshiro128+ 55/14/36.
	xoroShiroJumps = jumpTable{
		charLow: gf2Poly{0x5fd66762f0e1c001, 0x00653ced7f29f88a},
		jump:    gf2Poly{0xbeac0467eba5facb, 0xd86b048b86aa9922},
	}
)

// jumpMagnitude is log2 of the distance covered by a jumpTable.jump walk.
const jumpMagnitude = 64

func (p gf2Poly) bit(i int) uint64 {
	return p[i>>6] >> (uint(i) & 63) & 1
}

// mulMod returns a*b mod (x^128 + charLow).
func mulMod(a, b, charLow gf2Poly) gf2Poly {
	var r gf2Poly
	for i := 0; i < 128; i++ {
		if b.bit(i) == 1 {
			r[0] ^= a[0]
			r[1] ^= a[1]
		}
		carry := a[1] >> 63
		a[1] = a[1]<<1 | a[0]>>63
		a[0] <<= 1
		if carry == 1 {
			a[0] ^= charLow[0]
			a[1] ^= charLow[1]
		}
	}
	return r
}

// powX returns x^n mod (x^128 + charLow).
func powX(n uint64, charLow gf2Poly) gf2Poly {
	result := gf2Poly{1, 0}
	base := gf2Poly{2, 0}
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = mulMod(result, base, charLow)
		}
		base = mulMod(base, base, charLow)
	}
	return result
}

// state128 is the two-word state shared by the 128-bit engines.
type state128 struct {
	s0, s1 uint64
}

func (s state128) zero() bool {
	return s.s0|s.s1 == 0
}

// walk replaces s with p(T)s, where T is the transition step applies:
// the state before step k is XOR-accumulated whenever coefficient k of p
// is set. With p = x^n mod charpoly this jumps exactly n steps.
func (s *state128) walk(p gf2Poly, step func(*state128)) {
	var acc state128
	for i := 0; i < 128; i++ {
		if p.bit(i) == 1 {
			acc.s0 ^= s.s0
			acc.s1 ^= s.s1
		}
		step(s)
	}
	*s = acc
}

// seed128 draws two words at a time from src until combine yields a
// non-zero state, at most seedAttempts times.
func seed128(v Variant, src BitGenerator, combine func(a, b uint64) state128) (state128, error) {
	for attempt := 1; attempt <= seedAttempts; attempt++ {
		s := combine(src.Next64(), src.Next64())
		if !s.zero() {
			return s, nil
		}
		traceSeedRetry(v, attempt)
	}
	return state128{}, fmt.Errorf("prng: %v seed material produced an all-zero state %d times: %w",
		v, seedAttempts, ErrInvalidState)
}

func restore128(v Variant, state []byte) (state128, error) {
	var s state128
	if err := decodeWords(v, state, &s.s0, &s.s1); err != nil {
		return state128{}, err
	}
	if s.zero() {
		traceRestoreRejected(v, "zero", len(state))
		return state128{}, fmt.Errorf("prng: %v state is all zero: %w", v, ErrInvalidState)
	}
	return s, nil
}
