package prng

// bitPool hands out uniformly random bits cut from whole engine words,
// most significant bits first. Bits left over from the last word stay in
// carry for the next request, so no entropy is discarded between draws.
//
// carry holds avail < wordBits bits, left-aligned; every bit below them is
// zero.
type bitPool struct {
	src      BitGenerator
	wordBits uint // 32 or 64
	carry    uint64
	avail    uint
}

func newBitPool(src BitGenerator, wordBits uint) bitPool {
	return bitPool{src: src, wordBits: wordBits}
}

// word returns the next engine word, left-aligned in 64 bits.
func (p *bitPool) word() uint64 {
	if p.wordBits == 32 {
		return uint64(p.src.Next32()) << 32
	}
	return p.src.Next64()
}

// take returns k random bits in the low bits of the result, 1 <= k <= wordBits.
func (p *bitPool) take(k uint) uint64 {
	if p.avail >= k {
		v := p.carry >> (64 - k)
		p.carry <<= k
		p.avail -= k
		return v
	}
	w := p.word()
	need := k - p.avail
	v := p.carry>>(64-k) | w>>(64-need)
	p.carry = w << need
	p.avail = p.wordBits - need
	return v
}

// oneInPow2Plus1 reports true with probability exactly 1/(2^e+1).
//
// Uniform bits are compared lazily against the binary expansion of
// 1/(2^e+1), which repeats with period 2e: e zeros followed by e ones. The
// first differing bit decides, so a call consumes two bits on average.
func (p *bitPool) oneInPow2Plus1(e uint) bool {
	for i := uint(0); ; i++ {
		var want uint64
		if i%(2*e) >= e {
			want = 1
		}
		if got := p.take(1); got != want {
			return got < want
		}
	}
}
