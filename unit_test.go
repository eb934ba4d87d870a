package prng

import (
	"math"
	"testing"
)

func allZeros() *fixedGen { return &fixedGen{words: []uint64{0}} }
func allOnes() *fixedGen  { return &fixedGen{words: []uint64{math.MaxUint64}} }

func TestFloat64Bounds(t *testing.T) {
	const ulp = 1.0 / (1 << 52)

	tests := []struct {
		name string
		fn   func(BitGenerator) float64
		src  *fixedGen
		want float64
	}{
		{"HalfOpen zero", HalfOpenFloat64, allZeros(), 0},
		{"HalfOpen ones", HalfOpenFloat64, allOnes(), 1 - ulp},
		{"HalfClosed zero", HalfClosedFloat64, allZeros(), 1},
		{"HalfClosed ones", HalfClosedFloat64, allOnes(), ulp},
		{"Open ones", OpenFloat64, allOnes(), 1 - ulp},
		{"Open skips zero", OpenFloat64, &fixedGen{words: []uint64{0, 1 << 12}}, ulp},
		{"Closed zero", ClosedFloat64, allZeros(), 1},
		{"Closed ones", ClosedFloat64, allOnes(), 1 - ulp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.src); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFloat32Bounds(t *testing.T) {
	const ulp = float32(1.0 / (1 << 23))

	tests := []struct {
		name string
		fn   func(BitGenerator) float32
		src  *fixedGen
		want float32
	}{
		{"HalfOpen zero", HalfOpenFloat32, allZeros(), 0},
		{"HalfOpen ones", HalfOpenFloat32, allOnes(), 1 - ulp},
		{"HalfClosed zero", HalfClosedFloat32, allZeros(), 1},
		{"HalfClosed ones", HalfClosedFloat32, allOnes(), ulp},
		{"Open skips zero", OpenFloat32, &fixedGen{words: []uint64{0, 1 << 41}}, ulp},
		{"Closed zero", ClosedFloat32, allZeros(), 1},
		{"Closed ones", ClosedFloat32, allOnes(), 1 - ulp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.src); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// Test that every value lies on the 2^-52 grid inside its interval.
func TestUnitIntervals(t *testing.T) {
	u := NewUnit(newTestEngine(t, VariantXoroShiro128Plus))
	const draws = 100000

	check := func(name string, fn func() float64, lo, hi float64, loOK, hiOK bool) {
		var sum float64
		for i := 0; i < draws; i++ {
			v := fn()
			if v < lo || v > hi || (v == lo && !loOK) || (v == hi && !hiOK) {
				t.Fatalf("%s: %v outside interval", name, v)
			}
			if scaled := v * (1 << 52); scaled != math.Trunc(scaled) {
				t.Fatalf("%s: %v is not a multiple of 2^-52", name, v)
			}
			sum += v
		}
		if mean := sum / draws; math.Abs(mean-0.5) > 0.01 {
			t.Errorf("%s: mean %v, want about 0.5", name, mean)
		}
	}

	check("HalfOpen64", u.HalfOpen64, 0, 1, true, false)
	check("Open64", u.Open64, 0, 1, false, false)
	check("HalfClosed64", u.HalfClosed64, 0, 1, false, true)
	check("Closed64", u.Closed64, 0, 1, true, true)

	for i := 0; i < draws; i++ {
		if v := u.Open32(); v <= 0 || v >= 1 {
			t.Fatalf("Open32() = %v", v)
		}
		if v := u.HalfOpen32(); v < 0 || v >= 1 {
			t.Fatalf("HalfOpen32() = %v", v)
		}
		if v := u.HalfClosed32(); v <= 0 || v > 1 {
			t.Fatalf("HalfClosed32() = %v", v)
		}
		if v := u.Closed32(); v < 0 || v > 1 {
			t.Fatalf("Closed32() = %v", v)
		}
	}
}

func TestOneInPow2Plus1(t *testing.T) {
	const trials = 300000

	for _, e := range []uint{1, 2, 3} {
		src := &countingGen{g: NewSplitMix64(uint64(e))}
		pool := newBitPool(src, 64)
		hits := 0
		for i := 0; i < trials; i++ {
			if pool.oneInPow2Plus1(e) {
				hits++
			}
		}

		want := 1 / float64(uint(1)<<e+1)
		if got := float64(hits) / trials; math.Abs(got-want) > 0.005 {
			t.Errorf("e=%d: frequency %.4f, want %.4f", e, got, want)
		}
		if bits := float64(src.n64*64) / trials; bits > 2.1 {
			t.Errorf("e=%d: %.2f bits per coin, want about 2", e, bits)
		}
	}
}

// Test that the closed draw spends its leftover coin bits on later calls
// instead of a fresh word each time.
func TestUnitClosedReusesBits(t *testing.T) {
	src := &countingGen{g: NewSplitMix64(77)}
	u := NewUnit(src)
	const draws = 10000
	for i := 0; i < draws; i++ {
		u.Closed64()
	}
	if src.n64 > draws+draws/10 {
		t.Errorf("%d closed draws used %d words", draws, src.n64)
	}
}

// Test that the stateless closed draws start the coin on the bits the
// mantissa leaves unused instead of pulling a second word.
func TestClosedFloatWordCost(t *testing.T) {
	const draws = 100000

	src64 := &countingGen{g: NewSplitMix64(11)}
	for i := 0; i < draws; i++ {
		if v := ClosedFloat64(src64); v < 0 || v > 1 {
			t.Fatalf("ClosedFloat64() = %v", v)
		}
	}
	if src64.n64 > draws+draws/100 || src64.n32 != 0 {
		t.Errorf("ClosedFloat64: %d draws used %d Next64 and %d Next32 words", draws, src64.n64, src64.n32)
	}

	src32 := &countingGen{g: NewSplitMix64(12)}
	for i := 0; i < draws; i++ {
		if v := ClosedFloat32(src32); v < 0 || v > 1 {
			t.Fatalf("ClosedFloat32() = %v", v)
		}
	}
	if src32.n32 > draws+draws/100 || src32.n64 != 0 {
		t.Errorf("ClosedFloat32: %d draws used %d Next32 and %d Next64 words", draws, src32.n32, src32.n64)
	}
}

// Test that the coin reads the bits below the mantissa first: a word whose
// mantissa is zero but whose low bits are set fails the coin at once, even
// though every later word is zero.
func TestClosedFloatUsesLeftoverBits(t *testing.T) {
	src := &fixedGen{words: []uint64{0xfff, 0}}
	if got := ClosedFloat64(src); got != 0 {
		t.Errorf("ClosedFloat64() = %v, want 0", got)
	}

	src = &fixedGen{words: []uint64{0x1ff << 32, 0}}
	if got := ClosedFloat32(src); got != 0 {
		t.Errorf("ClosedFloat32() = %v, want 0", got)
	}
}

// Test that a closed single-precision draw returns exactly 1.0 about once
// in 2^23+1 calls.
func TestClosed32HitsOne(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long frequency test in short mode")
	}

	const draws = 1 << 27
	u := NewUnit(newTestEngine(t, VariantXoroShiro128Plus))
	ones := 0
	for i := 0; i < draws; i++ {
		if u.Closed32() == 1 {
			ones++
		}
	}

	// Expected count is draws/(2^23+1), about 16.
	expected := float64(draws) / float64(1<<23+1)
	if ones < 3 || ones > 40 {
		t.Errorf("1.0 returned %d times in %d draws, want about %.1f", ones, draws, expected)
	}
}

func BenchmarkClosedFloat64(b *testing.B) {
	u := NewUnit(NewSplitMix64(1))
	for i := 0; i < b.N; i++ {
		u.Closed64()
	}
}
