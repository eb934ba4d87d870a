package prng

const (
	// splitMixIncrement is the odd Weyl increment (2^64 / golden ratio).
	splitMixIncrement = 0x9e3779b97f4a7c15

	// splitMixSkipBits is log2 of the SkipAhead/SkipBack distance.
	splitMixSkipBits = 48

	// splitMixJump is splitMixIncrement * 2^48 mod 2^64.
	splitMixJump = (splitMixIncrement << splitMixSkipBits) & (1<<64 - 1)
)

// SplitMix64 is a 64-bit Weyl sequence whose output passes through a
// three-round avalanche mix. Every 64-bit state is valid, so seeding two
// engines with different raw values gives statistically independent streams.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 creates an engine whose state is the raw value state.
func NewSplitMix64(state uint64) *SplitMix64 {
	return &SplitMix64{state: state}
}

// splitMixMix is the output function; it does not touch the state.
func splitMixMix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (g *SplitMix64) Variant() Variant { return VariantSplitMix64 }

// Next64 advances the state and returns the mixed 64-bit output.
func (g *SplitMix64) Next64() uint64 {
	g.state += splitMixIncrement
	return splitMixMix(g.state)
}

// Next32 returns the high 32 bits of Next64.
func (g *SplitMix64) Next32() uint32 {
	return uint32(g.Next64() >> 32)
}

func (g *SplitMix64) Step() {
	g.state += splitMixIncrement
}

// Seed sets the state to the next 64-bit word of src.
func (g *SplitMix64) Seed(src BitGenerator) error {
	g.state = src.Next64()
	return nil
}

// MergeSeed XORs the next 64-bit word of src into the state.
func (g *SplitMix64) MergeSeed(src BitGenerator) error {
	g.state ^= src.Next64()
	return nil
}

func (g *SplitMix64) SaveState() ([]byte, error) {
	return encodeWords(g.state), nil
}

func (g *SplitMix64) RestoreState(state []byte) error {
	var s uint64
	if err := decodeWords(VariantSplitMix64, state, &s); err != nil {
		return err
	}
	g.state = s
	return nil
}

func (g *SplitMix64) CopyStateFrom(other Engine) error {
	return copyState(g, other)
}

func (g *SplitMix64) SkipAheadMagnitude() int { return splitMixSkipBits }
func (g *SplitMix64) SkipBackMagnitude() int  { return splitMixSkipBits }

// SkipAhead advances the sequence by 2^48 steps.
func (g *SplitMix64) SkipAhead() error {
	g.state += splitMixJump
	traceJump(VariantSplitMix64, splitMixSkipBits)
	return nil
}

// SkipBack reverses the sequence by 2^48 steps.
func (g *SplitMix64) SkipBack() error {
	g.state -= splitMixJump
	traceJump(VariantSplitMix64, -splitMixSkipBits)
	return nil
}

// Advance moves the sequence forward by exactly n steps.
func (g *SplitMix64) Advance(n uint64) {
	g.state += splitMixIncrement * n
}

// Rewind moves the sequence backward by exactly n steps.
func (g *SplitMix64) Rewind(n uint64) {
	g.state -= splitMixIncrement * n
}
