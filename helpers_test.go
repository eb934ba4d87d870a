package prng

import (
	"math"
	"testing"
)

// allVariants lists every engine variant.
var allVariants = []Variant{
	VariantSplitMix64,
	VariantXorShift128Plus,
	VariantXorShift128PlusLegacy,
	VariantXoroShiro128Plus,
	VariantPCG,
}

// newTestEngine returns an engine seeded from the test name.
func newTestEngine(t testing.TB, v Variant) Engine {
	t.Helper()
	e, err := NewSeeded(v, SeedFromString(t.Name()))
	if err != nil {
		t.Fatalf("NewSeeded(%v) error = %v", v, err)
	}
	return e
}

// countingGen counts the words drawn from an underlying generator.
type countingGen struct {
	g        BitGenerator
	n32, n64 int
}

func (c *countingGen) Next32() uint32 { c.n32++; return c.g.Next32() }
func (c *countingGen) Next64() uint64 { c.n64++; return c.g.Next64() }

// fixedGen replays words in order, repeating the last one forever.
// Next32 returns the high half of the next word.
type fixedGen struct {
	words []uint64
	i     int
}

func (f *fixedGen) Next64() uint64 {
	w := f.words[f.i]
	if f.i < len(f.words)-1 {
		f.i++
	}
	return w
}

func (f *fixedGen) Next32() uint32 { return uint32(f.Next64() >> 32) }

// chiSquare returns the chi-square statistic of counts against a flat
// expectation.
func chiSquare(counts []int, total int) float64 {
	expected := float64(total) / float64(len(counts))
	var chi float64
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}

// chiSquareLimit is a loose upper bound for a flat distribution with df
// degrees of freedom, far in the tail of the chi-square distribution.
func chiSquareLimit(df int) float64 {
	return float64(df) + 7*math.Sqrt(2*float64(df)) + 10
}
