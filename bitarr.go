package bitarr

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/hupe1980/bitarr/internal/bitops"
)

// BitArray is a fixed-length packed array of bits. Bit i lives at bit
// position i%8 (counted from the least-significant bit) of byte i/8. The
// trailing padding bits of the last byte are always zero and are never
// touched after allocation.
type BitArray struct {
	bits   []byte
	size   int
	logger *Logger
}

// New creates a BitArray holding size bits, all zero. The size is fixed for
// the lifetime of the array.
func New(size int, optFns ...Option) (*BitArray, error) {
	if size < 0 || size > math.MaxInt-7 {
		return nil, &ErrInvalidSize{Size: size}
	}

	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &BitArray{
		bits:   make([]byte, (size+7)/8),
		size:   size,
		logger: opts.logger,
	}, nil
}

// Len returns the number of bits in the array.
func (b *BitArray) Len() int {
	return b.size
}

// Get returns the bit at index i.
func (b *BitArray) Get(i int) (bool, error) {
	if i < 0 || i >= b.size {
		return false, &ErrIndexOutOfRange{Index: i, Size: b.size}
	}
	return b.get(i), nil
}

// Set writes v at index i. No other bit of the containing byte is affected.
func (b *BitArray) Set(i int, v bool) error {
	if i < 0 || i >= b.size {
		return &ErrIndexOutOfRange{Index: i, Size: b.size}
	}
	b.set(i, v)
	return nil
}

// Count returns the number of set bits.
func (b *BitArray) Count() int {
	n := 0
	for _, c := range b.bits {
		n += bits.OnesCount8(c)
	}
	return n
}

// Fill sets every bit of the array to v. The padding bits of the last byte
// stay clear.
func (b *BitArray) Fill(v bool) {
	if !v {
		b.Clear()
		return
	}
	for i := range b.bits {
		b.bits[i] = 0xFF
	}
	if r := b.size & 7; r != 0 {
		b.bits[len(b.bits)-1] = bitops.BeginMask[r]
	}
}

// Clear resets every bit to zero.
func (b *BitArray) Clear() {
	for i := range b.bits {
		b.bits[i] = 0
	}
}

// String renders the underlying bytes most-significant bit first, separated
// by spaces. Intended for diagnostics.
func (b *BitArray) String() string {
	var sb strings.Builder
	for i, c := range b.bits {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08b", c)
	}
	return sb.String()
}

func (b *BitArray) get(i int) bool {
	return b.bits[i>>3]&(1<<(i&7)) != 0
}

func (b *BitArray) set(i int, v bool) {
	mask := byte(1) << (i & 7)
	if v {
		b.bits[i>>3] |= mask
	} else {
		b.bits[i>>3] &^= mask
	}
}
