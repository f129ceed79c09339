// Package keysource generates deterministic, well-distributed 64-bit
// keys for tests and benchmarks, the same way the host's own test suite
// derives reproducible synthetic addresses: hash an incrementing seed
// with SHA3 instead of relying on math/rand's stream guarantees.
package keysource

import "golang.org/x/crypto/sha3"

// Stream produces a deterministic sequence of uint64 keys from seed. The
// same seed always yields the same sequence, which is what makes
// failures reproducible across runs.
type Stream struct {
	seed uint64
}

// New returns a key stream seeded with seed.
func New(seed uint64) *Stream { return &Stream{seed: seed} }

// Next returns the next key in the stream.
func (s *Stream) Next() uint64 {
	var b [8]byte
	for i := range b {
		b[i] = byte(s.seed >> (8 * i))
	}
	s.seed++
	sum := sha3.Sum256(b[:])
	var key uint64
	for i := 0; i < 8; i++ {
		key |= uint64(sum[i]) << (8 * i)
	}
	return key
}

// NextN returns the next n keys in the stream.
func (s *Stream) NextN(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = s.Next()
	}
	return keys
}
