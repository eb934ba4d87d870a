package prng

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
)

// Range produces uniformly distributed integers over a fixed range from an
// engine, recycling unused bits across calls.
//
// Each value is a slice of the smallest bit width b with 2^b >= N. For a
// power-of-two N every slice is accepted; otherwise slices >= N are
// rejected and redrawn from the same pool, so the expected number of
// engine words per value stays below 2b/wordBits regardless of N.
//
// A Range owns its carry bits and is not safe for concurrent use.
type Range struct {
	pool bitPool
	n    uint64 // cardinality, unused when pow2
	bits uint
	pow2 bool
}

// NewRange creates a generator over [0, n) cut from 64-bit engine words.
func NewRange(src BitGenerator, n uint64) (*Range, error) {
	if n == 0 {
		return nil, fmt.Errorf("prng: empty range [0, 0): %w", ErrInvalidArgument)
	}
	r := &Range{pool: newBitPool(src, 64)}
	r.setCardinality(n)
	return r, nil
}

// NewRangeClosed creates a generator over [0, hi] cut from 64-bit words.
func NewRangeClosed(src BitGenerator, hi uint64) *Range {
	r := &Range{pool: newBitPool(src, 64)}
	if hi == math.MaxUint64 {
		r.setFull()
	} else {
		r.setCardinality(hi + 1)
	}
	return r
}

// NewRange32 creates a generator over [0, n) cut from 32-bit engine words.
func NewRange32(src BitGenerator, n uint32) (*Range, error) {
	if n == 0 {
		return nil, fmt.Errorf("prng: empty range [0, 0): %w", ErrInvalidArgument)
	}
	r := &Range{pool: newBitPool(src, 32)}
	r.setCardinality(uint64(n))
	return r, nil
}

// NewRange32Closed creates a generator over [0, hi] cut from 32-bit words.
func NewRange32Closed(src BitGenerator, hi uint32) *Range {
	r := &Range{pool: newBitPool(src, 32)}
	if hi == math.MaxUint32 {
		r.setFull()
	} else {
		r.setCardinality(uint64(hi) + 1)
	}
	return r
}

// setCardinality retargets r to [0, n), n >= 1, keeping the carry bits.
func (r *Range) setCardinality(n uint64) {
	r.n = n
	r.bits = uint(bits.Len64(n - 1))
	r.pow2 = n&(n-1) == 0
}

// setFull retargets r to every value of one engine word.
func (r *Range) setFull() {
	r.n = 0
	r.bits = r.pool.wordBits
	r.pow2 = true
}

// Max returns the largest value r can produce.
func (r *Range) Max() uint64 {
	if r.pow2 {
		return uint64(1)<<r.bits - 1
	}
	return r.n - 1
}

// Next returns the next value in range.
func (r *Range) Next() uint64 {
	if r.bits == 0 {
		return 0
	}
	for {
		v := r.pool.take(r.bits)
		if r.pow2 || v < r.n {
			return v
		}
	}
}

// below retargets r to [0, n) and draws one value.
func (r *Range) below(n uint64) uint64 {
	r.setCardinality(n)
	return r.Next()
}

// Fill sets every element of dst to a fresh value.
func (r *Range) Fill(dst []uint64) {
	for i := range dst {
		dst[i] = r.Next()
	}
}

// Values returns an endless sequence of values; stop ranging to end it.
func (r *Range) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for yield(r.Next()) {
		}
	}
}

// IntRange produces uniformly distributed signed integers over [lo, hi].
type IntRange struct {
	r  *Range
	lo int64
}

// NewIntRange creates a generator over the closed range [lo, hi].
func NewIntRange(src BitGenerator, lo, hi int64) (*IntRange, error) {
	if hi < lo {
		return nil, fmt.Errorf("prng: negative range [%d, %d]: %w", lo, hi, ErrInvalidArgument)
	}
	span := uint64(hi) - uint64(lo)
	return &IntRange{r: NewRangeClosed(src, span), lo: lo}, nil
}

// Next returns the next value in [lo, hi].
func (ir *IntRange) Next() int64 {
	return int64(uint64(ir.lo) + ir.r.Next())
}

// Uint64n returns a uniform value in [0, n) using whole 64-bit words and no
// carried bits: one slice per word, rejected while it is >= n. It panics if
// n == 0.
func Uint64n(src BitGenerator, n uint64) uint64 {
	if n == 0 {
		panic("prng: invalid argument to Uint64n")
	}
	if n == 1 {
		return 0
	}
	shift := 64 - uint(bits.Len64(n-1))
	for {
		if v := src.Next64() >> shift; v < n {
			return v
		}
	}
}

// Uint64Closed returns a uniform value in [0, hi].
func Uint64Closed(src BitGenerator, hi uint64) uint64 {
	if hi == math.MaxUint64 {
		return src.Next64()
	}
	return Uint64n(src, hi+1)
}

// Uint32n returns a uniform value in [0, n) from 32-bit words. It panics
// if n == 0.
func Uint32n(src BitGenerator, n uint32) uint32 {
	if n == 0 {
		panic("prng: invalid argument to Uint32n")
	}
	if n == 1 {
		return 0
	}
	shift := 32 - uint(bits.Len32(n-1))
	for {
		if v := src.Next32() >> shift; v < n {
			return v
		}
	}
}
