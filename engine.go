package prng

import (
	"encoding/binary"
	"fmt"
)

// seedAttempts bounds how many times Seed and MergeSeed pull fresh material
// before giving up on a forbidden state.
const seedAttempts = 4

// BitGenerator is the only capability the engine layer requires from a
// seed source or entropy source.
type BitGenerator interface {
	Next32() uint32
	Next64() uint64
}

// Engine is a deterministic bit-stream generator with explicit state.
//
// Every draw mutates state; an Engine must not be used from several
// goroutines without external synchronization (see Synchronized).
type Engine interface {
	BitGenerator

	// Variant reports the recurrence this engine runs.
	Variant() Variant

	// Step advances the state exactly as Next64 does, discarding output.
	Step()

	// Seed replaces the state with material drawn from src.
	Seed(src BitGenerator) error

	// MergeSeed XORs material drawn from src into the current state.
	MergeSeed(src BitGenerator) error

	// SaveState returns the little-endian encoding of the state words.
	SaveState() ([]byte, error)

	// RestoreState replaces the state with a buffer produced by SaveState.
	RestoreState(state []byte) error

	// CopyStateFrom copies the state of another engine of the same variant.
	CopyStateFrom(other Engine) error

	// SkipAheadMagnitude is log2 of the distance one SkipAhead advances.
	// Zero means a single iteration; negative means SkipAhead fails.
	SkipAheadMagnitude() int

	// SkipBackMagnitude is log2 of the distance one SkipBack reverses.
	SkipBackMagnitude() int

	SkipAhead() error
	SkipBack() error
}

// NewEngine creates an unseeded engine of variant v. The 128-bit variants
// start in the all-zero state and must be seeded or restored before use.
func NewEngine(v Variant) (Engine, error) {
	switch v {
	case VariantSplitMix64:
		return NewSplitMix64(0), nil
	case VariantXorShift128Plus, VariantXorShift128PlusLegacy:
		return &XorShift128Plus{variant: v}, nil
	case VariantXoroShiro128Plus, VariantPCG:
		return &XoroShiro128Plus{variant: v}, nil
	default:
		return nil, fmt.Errorf("prng: invalid variant: %v: %w", v, ErrInvalidArgument)
	}
}

// Clone returns a new engine of the same variant holding a copy of e's state.
func Clone(e Engine) (Engine, error) {
	c, err := NewEngine(e.Variant())
	if err != nil {
		return nil, err
	}
	if err := c.CopyStateFrom(e); err != nil {
		return nil, err
	}
	return c, nil
}

// Split partitions the sequence of e into n disjoint streams. Stream 0
// starts at e's current state and stream i starts i SkipAhead jumps later.
// On return e itself has been advanced past the last stream's start, so
// further draws from e do not overlap stream n-1's start either.
func Split(e Engine, n int) ([]Engine, error) {
	if n <= 0 {
		return nil, fmt.Errorf("prng: split into %d streams: %w", n, ErrInvalidArgument)
	}
	if e.SkipAheadMagnitude() <= 0 {
		return nil, fmt.Errorf("prng: %v cannot partition its sequence: %w", e.Variant(), ErrUnsupported)
	}

	streams := make([]Engine, n)
	for i := range streams {
		c, err := Clone(e)
		if err != nil {
			return nil, err
		}
		streams[i] = c
		if err := e.SkipAhead(); err != nil {
			return nil, err
		}
	}
	return streams, nil
}

// Advancer is implemented by engines that can jump an exact number of steps.
type Advancer interface {
	Advance(n uint64)
}

// Advance moves e forward by exactly n steps, using a logarithmic-time jump
// when the engine supports one and single steps otherwise.
func Advance(e Engine, n uint64) {
	if a, ok := e.(Advancer); ok {
		a.Advance(n)
		return
	}
	for ; n > 0; n-- {
		e.Step()
	}
}

// encodeWords writes state words in little-endian order.
func encodeWords(words ...uint64) []byte {
	buf := make([]byte, 0, 8*len(words))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return buf
}

// decodeWords reads exactly len(dst) little-endian words from state.
func decodeWords(v Variant, state []byte, dst ...*uint64) error {
	if len(state) != 8*len(dst) {
		traceRestoreRejected(v, "length", len(state))
		return fmt.Errorf("prng: %v state must be %d bytes, got %d: %w",
			v, 8*len(dst), len(state), ErrInvalidArgument)
	}
	for i, p := range dst {
		*p = binary.LittleEndian.Uint64(state[8*i:])
	}
	return nil
}

// copyState moves state between engines of the same variant through the
// save/restore encoding, so wrapped engines copy like bare ones.
func copyState(dst, src Engine) error {
	if dst.Variant() != src.Variant() {
		return fmt.Errorf("prng: cannot copy %v state into %v: %w",
			src.Variant(), dst.Variant(), ErrInvalidArgument)
	}
	state, err := src.SaveState()
	if err != nil {
		return err
	}
	return dst.RestoreState(state)
}
