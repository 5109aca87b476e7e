package bitops

import "errors"

// ErrInvalidLength is returned by NormalizeShift for non-positive range
// lengths.
var ErrInvalidLength = errors.New("bitops: range length must be positive")

// Mod returns n mod m with a result in [0, m), for any sign of n. Go's %
// operator follows the dividend's sign (-1 % 10 is -1), which is unusable
// for rotation amounts. m must be positive.
func Mod(n, m int) int {
	return (n%m + m) % m
}

// NormalizeShift converts a signed right-rotation amount into the canonical
// left amount in [0, length): full cycles are removed and the sign folded
// in. A one-bit range always normalizes to zero.
func NormalizeShift(length, amount int) (int, error) {
	if length <= 0 {
		return 0, ErrInvalidLength
	}
	if length == 1 {
		return 0, nil
	}
	return Mod(-amount, length), nil
}

// RotateByte rotates the bit range of c that excludes the low `low` bits
// and the high `high` bits, moving every bit of the range shift positions
// toward the low end and wrapping within the range. Bits outside the range
// are preserved. shift must be in [1, 8-low-high).
func RotateByte(c byte, low, high, shift int) byte {
	width := 8 - low - high

	// Bits at or above low+shift slide down into place; the shift lowest
	// bits of the range wrap to the top.
	moved := CleanRight(CleanLeft(c, high), low+shift) >> shift
	wrapped := CleanRight(CleanLeft(c, 8-(low+shift)), low) << (width - shift)
	kept := CleanLeft(c, 8-low) | CleanRight(c, 8-high)

	return moved | wrapped | kept
}
