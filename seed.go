package prng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/opd-ai/go-prng/internal"
)

// seedStepPrimes supplies the offset increment of a SeedSource: the first
// prime that does not divide the material length is coprime with it, so the
// read window start visits every byte before repeating.
var seedStepPrimes = [...]int{7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61}

// SeedSource turns arbitrary seed material into a reproducible stream of
// 32- and 64-bit words.
//
// Each refill hashes, with Blake2b-512, the little-endian call counter
// followed by the material rotated to start at the current offset. The
// 64-byte digest is then consumed as little-endian words.
type SeedSource struct {
	data   []byte
	offset int
	step   int
	calls  uint64

	hasher *internal.Blake2bStream
	buf    [64]byte
	pos    int // Position in buf (0-64)
}

// SeedFromBytes creates a SeedSource over a private copy of data.
func SeedFromBytes(data []byte) *SeedSource {
	s := &SeedSource{
		data:   append([]byte(nil), data...),
		hasher: internal.NewBlake2bStream(),
		pos:    64, // Force initial generation
	}
	s.step = seedStep(len(s.data))
	return s
}

func seedStep(n int) int {
	if n <= 1 {
		return 0
	}
	for _, p := range seedStepPrimes {
		if n%p != 0 {
			return p % n
		}
	}
	return 1
}

// SeedFromString creates a SeedSource over the UTF-8 bytes of s.
func SeedFromString(s string) *SeedSource {
	return SeedFromBytes([]byte(s))
}

// Integer is the set of integer types accepted by SeedFromInts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// SeedFromInts creates a SeedSource over the little-endian encoding of
// vals, each at its natural width. Types whose underlying type is int, uint
// or uintptr are encoded as 8 bytes on every platform, so seeds reproduce
// across architectures.
func SeedFromInts[T Integer](vals ...T) *SeedSource {
	var buf []byte
	for _, v := range vals {
		size := unsafe.Sizeof(v)
		switch reflect.TypeOf(v).Kind() {
		case reflect.Int, reflect.Uint, reflect.Uintptr:
			size = 8
		}
		switch size {
		case 1:
			buf = append(buf, byte(v))
		case 2:
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		case 4:
			buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
		default:
			buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
		}
	}
	return SeedFromBytes(buf)
}

// SeedFromFloat64s creates a SeedSource over the IEEE-754 bits of vals.
func SeedFromFloat64s(vals ...float64) *SeedSource {
	buf := make([]byte, 0, 8*len(vals))
	for _, v := range vals {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return SeedFromBytes(buf)
}

// SeedFromGenerator creates a SeedSource over words 64-bit outputs of g.
func SeedFromGenerator(g BitGenerator, words int) *SeedSource {
	buf := make([]byte, 0, 8*words)
	for i := 0; i < words; i++ {
		buf = binary.LittleEndian.AppendUint64(buf, g.Next64())
	}
	return SeedFromBytes(buf)
}

// CryptoSeed creates a SeedSource over 32 bytes from crypto/rand.
func CryptoSeed() (*SeedSource, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("prng: read entropy: %w", err)
	}
	return SeedFromBytes(buf[:]), nil
}

// generate produces the next 64 bytes of seed words.
// This is called automatically when the current buffer is exhausted.
func (s *SeedSource) generate() {
	var ctr [8]byte
	binary.LittleEndian.PutUint64(ctr[:], s.calls)

	s.hasher.Reset()
	s.hasher.Write(ctr[:])
	s.hasher.Write(s.data[s.offset:])
	s.hasher.Write(s.data[:s.offset])
	s.hasher.SumInto(&s.buf)

	s.pos = 0
	s.calls++
	if len(s.data) > 0 {
		s.offset = (s.offset + s.step) % len(s.data)
	}
}

// Next32 returns the next 4 bytes as a little-endian uint32.
func (s *SeedSource) Next32() uint32 {
	if s.pos+4 > len(s.buf) {
		s.generate()
	}
	v := binary.LittleEndian.Uint32(s.buf[s.pos:])
	s.pos += 4
	return v
}

// Next64 returns the next 8 bytes as a little-endian uint64.
func (s *SeedSource) Next64() uint64 {
	if s.pos+8 > len(s.buf) {
		s.generate()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}
