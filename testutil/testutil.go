package testutil

import (
	"math/rand"

	"github.com/hupe1980/bitarr/internal/bitops"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Amount returns a signed rotation amount in [-limit, limit].
func (r *RNG) Amount(limit int) int {
	return r.rand.Intn(2*limit+1) - limit
}

// Bool returns a pseudo-random boolean.
func (r *RNG) Bool() bool {
	return r.rand.Intn(2) == 1
}

// FillBytes fills p with pseudo-random bytes.
func (r *RNG) FillBytes(p []byte) {
	for i := range p {
		p[i] = byte(r.rand.Intn(256))
	}
}

// NaiveRotate rotates the bits [offset, offset+length) of buf right by
// amount, one position at a time. It is O(length * amount) and exists only
// as a reference oracle for the masked in-place algorithm. The caller is
// responsible for range validation.
func NaiveRotate(buf []byte, offset, length, amount int) {
	if length <= 1 {
		return
	}
	steps := bitops.Mod(amount, length)
	for s := 0; s < steps; s++ {
		// Save the first bit, move every other bit one position toward
		// offset, put the saved bit at the far end.
		first := getBit(buf, offset)
		for i := offset; i+1 < offset+length; i++ {
			setBit(buf, i, getBit(buf, i+1))
		}
		setBit(buf, offset+length-1, first)
	}
}

func getBit(buf []byte, i int) bool {
	return buf[i>>3]&(1<<(i&7)) != 0
}

func setBit(buf []byte, i int, v bool) {
	mask := byte(1) << (i & 7)
	if v {
		buf[i>>3] |= mask
	} else {
		buf[i>>3] &^= mask
	}
}
