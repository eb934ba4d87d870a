package prng

import "testing"

var jumpCases = []struct {
	name  string
	table *jumpTable
	step  func(*state128)
}{
	{"xorshift128+", &xorShiftJumps, xorShiftStep},
	{"xorshift128+legacy", &xorShiftLegacyJumps, xorShiftLegacyStep},
	{"xoroshiro128+", &xoroShiroJumps, xoroShiroStep},
}

// Test that the characteristic polynomial annihilates the state sequence:
// s_128 equals the XOR of the s_i whose coefficient is set in charLow.
func TestCharacteristicPolynomial(t *testing.T) {
	for _, tc := range jumpCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, start := range []state128{{1, 0}, {0, 1}, {0x0123456789abcdef, 0xfedcba9876543210}} {
				s := start
				var acc state128
				for i := 0; i < 128; i++ {
					if tc.table.charLow.bit(i) == 1 {
						acc.s0 ^= s.s0
						acc.s1 ^= s.s1
					}
					tc.step(&s)
				}
				if acc != s {
					t.Errorf("start %x: s_128 = %x, combination = %x", start, s, acc)
				}
			}
		})
	}
}

// Test that the stored jump polynomial is x^(2^64) mod the characteristic
// polynomial.
func TestJumpPolynomial(t *testing.T) {
	for _, tc := range jumpCases {
		t.Run(tc.name, func(t *testing.T) {
			p := gf2Poly{2, 0}
			for i := 0; i < jumpMagnitude; i++ {
				p = mulMod(p, p, tc.table.charLow)
			}
			if p != tc.table.jump {
				t.Errorf("x^(2^64) = {%#x, %#x}, table has {%#x, %#x}",
					p[0], p[1], tc.table.jump[0], tc.table.jump[1])
			}
		})
	}
}

func TestPowX(t *testing.T) {
	charLow := xoroShiroJumps.charLow
	if got := powX(0, charLow); got != (gf2Poly{1, 0}) {
		t.Errorf("x^0 = %x, want 1", got)
	}
	if got := powX(64, charLow); got != (gf2Poly{0, 1}) {
		t.Errorf("x^64 = %x, want {0, 1}", got)
	}
	if got := powX(128, charLow); got != charLow {
		t.Errorf("x^128 = %x, want charLow %x", got, charLow)
	}
	a, b := powX(1000, charLow), powX(2345, charLow)
	if got, want := mulMod(a, b, charLow), powX(3345, charLow); got != want {
		t.Errorf("x^1000 * x^2345 = %x, want x^3345 = %x", got, want)
	}
}

// Test that walking x^k mod P moves the state exactly k steps.
func TestWalkMatchesSteps(t *testing.T) {
	for _, tc := range jumpCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range []uint64{1, 127, 128, 1000, 4097} {
				jumped := state128{0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9}
				stepped := jumped
				jumped.walk(powX(k, tc.table.charLow), tc.step)
				for i := uint64(0); i < k; i++ {
					tc.step(&stepped)
				}
				if jumped != stepped {
					t.Errorf("k=%d: walk = %x, steps = %x", k, jumped, stepped)
				}
			}
		})
	}
}

func TestAdvanceMatchesSteps(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.String(), func(t *testing.T) {
			a := newTestEngine(t, v)
			b, _ := Clone(a)
			Advance(a, 3000)
			for i := 0; i < 3000; i++ {
				b.Step()
			}
			if x, y := a.Next64(), b.Next64(); x != y {
				t.Errorf("Advance(3000) = %#x, 3000 steps = %#x", x, y)
			}
		})
	}
}

// Test that SkipAhead composes with Advance: two jumps of 2^64 equal one
// walk by x^(2^65).
func TestSkipAheadComposes(t *testing.T) {
	for _, tc := range jumpCases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.table.jump
			p2 := mulMod(p, p, tc.table.charLow)

			a := state128{12345, 67890}
			b := a
			a.walk(p, tc.step)
			a.walk(p, tc.step)
			b.walk(p2, tc.step)
			if a != b {
				t.Errorf("two jumps = %x, squared jump = %x", a, b)
			}
		})
	}
}

func BenchmarkSkipAhead(b *testing.B) {
	g, _ := NewXoroShiro128Plus(1, 2)
	for i := 0; i < b.N; i++ {
		g.SkipAhead()
	}
}
