package prng

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
)

// Rand presents an engine through the narrow capability set most callers
// expect from a random source: 64-bit words, floats in [0, 1), bounded ints
// and byte streams. It satisfies math/rand/v2.Source, so
// rand.New(prng.NewRand(e)) exposes the standard library's helpers on top
// of any engine.
//
// Rand is not safe for concurrent use.
type Rand struct {
	src     BitGenerator
	indexes *Range
}

var (
	_ rand.Source = (*Rand)(nil)
	_ io.Reader   = (*Rand)(nil)
)

// NewRand wraps src.
func NewRand(src BitGenerator) *Rand {
	return &Rand{src: src, indexes: newIndexRange(src)}
}

// Uint64 returns the next 64-bit engine word.
func (r *Rand) Uint64() uint64 {
	return r.src.Next64()
}

// Float64 returns one of the 2^52 evenly spaced values in [0, 1).
func (r *Rand) Float64() float64 {
	return HalfOpenFloat64(r.src)
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic("prng: invalid argument to IntN")
	}
	return int(r.indexes.below(uint64(n)))
}

// Read fills p with engine output, eight little-endian bytes per word. It
// always returns len(p), nil.
func (r *Rand) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.src.Next64())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], r.src.Next64())
		copy(p, tail[:])
	}
	return n, nil
}
