package prng

import (
	"fmt"
	"iter"
)

// newIndexRange returns a Range used only through below, so one bit pool
// serves every bound a shuffle asks for.
func newIndexRange(src BitGenerator) *Range {
	return &Range{pool: newBitPool(src, 64)}
}

// Shuffle permutes s in place with the Fisher-Yates algorithm. Each of the
// len(s)! permutations is equally likely.
func Shuffle[T any](src BitGenerator, s []T) {
	r := newIndexRange(src)
	for i := len(s) - 1; i > 0; i-- {
		j := r.below(uint64(i) + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Sattolo permutes s in place into a uniformly chosen single cycle of
// length len(s). For len(s) >= 2 no element stays at its original index.
func Sattolo[T any](src BitGenerator, s []T) {
	r := newIndexRange(src)
	for i := len(s) - 1; i > 0; i-- {
		j := r.below(uint64(i))
		s[i], s[j] = s[j], s[i]
	}
}

// ShuffleInto writes the elements of seq into dst in uniformly random order
// and returns how many were written. Each new element lands on a uniformly
// chosen position among those placed so far, displacing the previous
// occupant to the end.
//
// If seq yields more than len(dst) elements, ShuffleInto stops and returns
// ErrInvalidArgument; dst then holds a random permutation of the first
// len(dst) elements.
func ShuffleInto[T any](src BitGenerator, dst []T, seq iter.Seq[T]) (int, error) {
	r := newIndexRange(src)
	n := 0
	for v := range seq {
		if n == len(dst) {
			return n, targetTooShort(len(dst))
		}
		j := r.below(uint64(n) + 1)
		dst[n] = dst[j]
		dst[j] = v
		n++
	}
	return n, nil
}

// SattoloInto writes the elements of seq into dst as a uniformly chosen
// single cycle: element k of seq never ends up at dst[k] when two or more
// elements are written. Overflow is handled as in ShuffleInto.
func SattoloInto[T any](src BitGenerator, dst []T, seq iter.Seq[T]) (int, error) {
	r := newIndexRange(src)
	n := 0
	for v := range seq {
		if n == len(dst) {
			return n, targetTooShort(len(dst))
		}
		if n == 0 {
			dst[0] = v
		} else {
			j := r.below(uint64(n))
			dst[n] = dst[j]
			dst[j] = v
		}
		n++
	}
	return n, nil
}

// ShuffleAppend appends the elements of seq to dst in uniformly random
// order. Only the appended elements are permuted; dst's existing contents
// stay in place.
func ShuffleAppend[T any](src BitGenerator, dst []T, seq iter.Seq[T]) []T {
	r := newIndexRange(src)
	base := len(dst)
	for v := range seq {
		j := base + int(r.below(uint64(len(dst)-base)+1))
		dst = appendDisplacing(dst, j, v)
	}
	return dst
}

// SattoloAppend appends the elements of seq to dst as a single cycle over
// the appended region.
func SattoloAppend[T any](src BitGenerator, dst []T, seq iter.Seq[T]) []T {
	r := newIndexRange(src)
	base := len(dst)
	for v := range seq {
		placed := len(dst) - base
		if placed == 0 {
			dst = append(dst, v)
			continue
		}
		j := base + int(r.below(uint64(placed)))
		dst = appendDisplacing(dst, j, v)
	}
	return dst
}

// appendDisplacing puts v at dst[j], moving the old dst[j] to a new last
// slot. j == len(dst) appends v directly.
func appendDisplacing[T any](dst []T, j int, v T) []T {
	if j == len(dst) {
		return append(dst, v)
	}
	dst = append(dst, dst[j])
	dst[j] = v
	return dst
}

func targetTooShort(n int) error {
	return fmt.Errorf("prng: shuffle target holds %d elements, source has more: %w", n, ErrInvalidArgument)
}
