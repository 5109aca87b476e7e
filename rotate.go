package bitarr

import (
	"math/bits"

	"github.com/hupe1980/bitarr/internal/bitops"
)

// Rotate rotates the bits in the window [offset, offset+length) by amount
// positions to the right; a negative amount rotates left. Bits outside the
// window are untouched. Amounts of any magnitude are accepted; full cycles
// are removed before any work happens.
//
// The window is validated before any mutation: on error the array is
// unchanged. Windows of length zero or one are identities.
func (b *BitArray) Rotate(offset, length, amount int) error {
	if offset < 0 || length < 0 || offset > b.size-length {
		return &ErrInvalidRange{Offset: offset, Length: length, Size: b.size}
	}
	if length <= 1 {
		return nil
	}

	left, err := bitops.NormalizeShift(length, amount)
	if err != nil {
		return err
	}
	if left == 0 {
		return nil
	}

	b.logger.logRotate(offset, length, amount, left)

	begin, end := offset, offset+length
	if begin>>3 == (end-1)>>3 {
		// The whole window sits in one byte: a single masked computation,
		// no bit loop.
		idx := begin >> 3
		low := begin & 7
		high := (8 - (end & 7)) & 7
		b.bits[idx] = bitops.RotateByte(b.bits[idx], low, high, length-left)
		return nil
	}

	// Three-reversal decomposition: reversing both partitions and then the
	// whole window is a rotation. The split sits length-left bits in.
	split := begin + (length - left)
	b.reverseRange(begin, split)
	b.reverseRange(split, end)
	b.reverseRange(begin, end)
	return nil
}

// reverseRange reverses the bit order of [start, end) in place. While at
// least 16 bits remain, mirrored 8-bit chunks are swapped through unaligned
// byte reads; the tail falls back to single-bit swaps.
func (b *BitArray) reverseRange(start, end int) {
	for end-start >= 16 {
		lo := b.read8(start)
		hi := b.read8(end - 8)
		b.write8(start, bits.Reverse8(hi))
		b.write8(end-8, bits.Reverse8(lo))
		start += 8
		end -= 8
	}
	for lo, hi := start, end-1; lo < hi; lo, hi = lo+1, hi-1 {
		x, y := b.get(lo), b.get(hi)
		if x != y {
			b.set(lo, y)
			b.set(hi, x)
		}
	}
}

// read8 returns the 8 bits starting at bit position pos. The caller
// guarantees pos+8 <= size.
func (b *BitArray) read8(pos int) byte {
	idx, r := pos>>3, pos&7
	if r == 0 {
		return b.bits[idx]
	}
	return b.bits[idx]>>r | b.bits[idx+1]<<(8-r)
}

// write8 stores v into the 8 bits starting at bit position pos, preserving
// the surrounding bits of both touched bytes.
func (b *BitArray) write8(pos int, v byte) {
	idx, r := pos>>3, pos&7
	if r == 0 {
		b.bits[idx] = v
		return
	}
	b.bits[idx] = b.bits[idx]&bitops.BeginMask[r] | v<<r
	b.bits[idx+1] = b.bits[idx+1]&bitops.EndMask[r] | v>>(8-r)
}
