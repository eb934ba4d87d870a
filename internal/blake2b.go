// Package internal wraps the hash primitives used to materialize seeds.
// This package wraps golang.org/x/crypto/blake2b.
package internal

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Blake2bStream provides streaming Blake2b-512 hashing.
type Blake2bStream struct {
	hasher hash.Hash
}

// NewBlake2bStream creates a new unkeyed streaming Blake2b-512 hasher.
func NewBlake2bStream() *Blake2bStream {
	// New512 only fails for keys longer than 64 bytes.
	hasher, err := blake2b.New512(nil)
	if err != nil {
		panic("internal: blake2b: " + err.Error())
	}
	return &Blake2bStream{hasher: hasher}
}

// Write adds data to the hash.
func (b *Blake2bStream) Write(data []byte) (int, error) {
	return b.hasher.Write(data)
}

// SumInto writes the current digest into dst without resetting the hash.
func (b *Blake2bStream) SumInto(dst *[64]byte) {
	b.hasher.Sum(dst[:0])
}

// Reset resets the hasher to its initial state.
func (b *Blake2bStream) Reset() {
	b.hasher.Reset()
}
