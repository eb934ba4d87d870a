package prng

import (
	"fmt"
	"math/bits"
)

// XoroShiro128Plus is the rotate-based xorshift generator over two 64-bit
// words. The output is s0+s1 taken before the state update.
//
// The same type backs VariantPCG, which reports its own variant but runs
// this recurrence unchanged.
type XoroShiro128Plus struct {
	state128
	variant Variant
}

// NewXoroShiro128Plus creates an engine with raw state (s0, s1).
func NewXoroShiro128Plus(s0, s1 uint64) (*XoroShiro128Plus, error) {
	g := &XoroShiro128Plus{variant: VariantXoroShiro128Plus}
	if err := g.RestoreState(encodeWords(s0, s1)); err != nil {
		return nil, err
	}
	return g, nil
}

func xoroShiroStep(s *state128) {
	x, y := s.s0, s.s1
	y ^= x
	s.s0 = bits.RotateLeft64(x, 55) ^ y ^ (y << 14)
	s.s1 = bits.RotateLeft64(y, 36)
}

func (g *XoroShiro128Plus) Variant() Variant { return g.variant }

func (g *XoroShiro128Plus) Next64() uint64 {
	out := g.s0 + g.s1
	xoroShiroStep(&g.state128)
	return out
}

// Next32 returns the high 32 bits of Next64.
func (g *XoroShiro128Plus) Next32() uint32 {
	return uint32(g.Next64() >> 32)
}

func (g *XoroShiro128Plus) Step() {
	xoroShiroStep(&g.state128)
}

// Seed replaces the state with two words from src, retrying with fresh
// words while they are both zero.
func (g *XoroShiro128Plus) Seed(src BitGenerator) error {
	s, err := seed128(g.variant, src, func(a, b uint64) state128 {
		return state128{a, b}
	})
	if err != nil {
		return err
	}
	g.state128 = s
	return nil
}

// MergeSeed XORs two words from src into the current state, retrying with
// fresh words while the result would be zero.
func (g *XoroShiro128Plus) MergeSeed(src BitGenerator) error {
	cur := g.state128
	s, err := seed128(g.variant, src, func(a, b uint64) state128 {
		return state128{cur.s0 ^ a, cur.s1 ^ b}
	})
	if err != nil {
		return err
	}
	g.state128 = s
	return nil
}

func (g *XoroShiro128Plus) SaveState() ([]byte, error) {
	return encodeWords(g.s0, g.s1), nil
}

func (g *XoroShiro128Plus) RestoreState(state []byte) error {
	s, err := restore128(g.variant, state)
	if err != nil {
		return err
	}
	g.state128 = s
	return nil
}

func (g *XoroShiro128Plus) CopyStateFrom(other Engine) error {
	return copyState(g, other)
}

func (g *XoroShiro128Plus) SkipAheadMagnitude() int { return jumpMagnitude }
func (g *XoroShiro128Plus) SkipBackMagnitude() int  { return -1 }

// SkipAhead advances the sequence by 2^64 steps.
func (g *XoroShiro128Plus) SkipAhead() error {
	g.walk(xoroShiroJumps.jump, xoroShiroStep)
	traceJump(g.variant, jumpMagnitude)
	return nil
}

func (g *XoroShiro128Plus) SkipBack() error {
	return fmt.Errorf("prng: %v cannot skip back: %w", g.variant, ErrUnsupported)
}

// Advance moves the sequence forward by exactly n steps.
func (g *XoroShiro128Plus) Advance(n uint64) {
	g.walk(powX(n, xoroShiroJumps.charLow), xoroShiroStep)
}
