package prng

import "fmt"

// XorShift128Plus is the additive xorshift generator over two 64-bit words.
// The output is s0+s1 taken before the state update, so the low bit is a
// plain linear-feedback bit; derived values use the high bits.
//
// Two shift-constant sets exist and produce unrelated streams: 23/18/5
// (VariantXorShift128Plus) and 23/17/26 (VariantXorShift128PlusLegacy).
type XorShift128Plus struct {
	state128
	variant Variant
}

// NewXorShift128Plus creates a 23/18/5 engine with raw state (s0, s1).
func NewXorShift128Plus(s0, s1 uint64) (*XorShift128Plus, error) {
	return newXorShift(VariantXorShift128Plus, s0, s1)
}

// NewXorShift128PlusLegacy creates a 23/17/26 engine with raw state (s0, s1).
func NewXorShift128PlusLegacy(s0, s1 uint64) (*XorShift128Plus, error) {
	return newXorShift(VariantXorShift128PlusLegacy, s0, s1)
}

func newXorShift(v Variant, s0, s1 uint64) (*XorShift128Plus, error) {
	g := &XorShift128Plus{variant: v}
	if err := g.RestoreState(encodeWords(s0, s1)); err != nil {
		return nil, err
	}
	return g, nil
}

func xorShiftStep(s *state128) {
	x, y := s.s0, s.s1
	x ^= x << 23
	s.s0 = y
	s.s1 = x ^ y ^ (x >> 18) ^ (y >> 5)
}

func xorShiftLegacyStep(s *state128) {
	x, y := s.s0, s.s1
	x ^= x << 23
	s.s0 = y
	s.s1 = x ^ y ^ (x >> 17) ^ (y >> 26)
}

func (g *XorShift128Plus) step() func(*state128) {
	if g.variant == VariantXorShift128PlusLegacy {
		return xorShiftLegacyStep
	}
	return xorShiftStep
}

func (g *XorShift128Plus) jumps() *jumpTable {
	if g.variant == VariantXorShift128PlusLegacy {
		return &xorShiftLegacyJumps
	}
	return &xorShiftJumps
}

func (g *XorShift128Plus) Variant() Variant { return g.variant }

func (g *XorShift128Plus) Next64() uint64 {
	out := g.s0 + g.s1
	g.step()(&g.state128)
	return out
}

// Next32 returns the high 32 bits of Next64.
func (g *XorShift128Plus) Next32() uint32 {
	return uint32(g.Next64() >> 32)
}

func (g *XorShift128Plus) Step() {
	g.step()(&g.state128)
}

// Seed replaces the state with two words from src, retrying with fresh
// words while they are both zero.
func (g *XorShift128Plus) Seed(src BitGenerator) error {
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
func (g *XorShift128Plus) MergeSeed(src BitGenerator) error {
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

func (g *XorShift128Plus) SaveState() ([]byte, error) {
	return encodeWords(g.s0, g.s1), nil
}

func (g *XorShift128Plus) RestoreState(state []byte) error {
	s, err := restore128(g.variant, state)
	if err != nil {
		return err
	}
	g.state128 = s
	return nil
}

func (g *XorShift128Plus) CopyStateFrom(other Engine) error {
	return copyState(g, other)
}

func (g *XorShift128Plus) SkipAheadMagnitude() int { return jumpMagnitude }
func (g *XorShift128Plus) SkipBackMagnitude() int  { return -1 }

// SkipAhead advances the sequence by 2^64 steps.
func (g *XorShift128Plus) SkipAhead() error {
	g.walk(g.jumps().jump, g.step())
	traceJump(g.variant, jumpMagnitude)
	return nil
}

func (g *XorShift128Plus) SkipBack() error {
	return fmt.Errorf("prng: %v cannot skip back: %w", g.variant, ErrUnsupported)
}

// Advance moves the sequence forward by exactly n steps.
func (g *XorShift128Plus) Advance(n uint64) {
	g.walk(powX(n, g.jumps().charLow), g.step())
}
