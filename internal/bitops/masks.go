package bitops

// Mask tables indexed by a bit count n in [0, 8]:
//
//	BeginMask[n] keeps the low n bits of a byte    (1<<n - 1)
//	EndMask[n]   keeps the bits at or above n      (0xFF << n)
//	LeftMask[n]  clears the top n bits             (0xFF >> n)
//	RightMask[n] clears the low n bits             (0xFF << n)
var (
	BeginMask = [9]byte{0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}
	EndMask   = [9]byte{0xFF, 0xFE, 0xFC, 0xF8, 0xF0, 0xE0, 0xC0, 0x80, 0x00}
	LeftMask  = [9]byte{0xFF, 0x7F, 0x3F, 0x1F, 0x0F, 0x07, 0x03, 0x01, 0x00}
	RightMask = [9]byte{0xFF, 0xFE, 0xFC, 0xF8, 0xF0, 0xE0, 0xC0, 0x80, 0x00}
)

// CleanLeft clears the top n bits of c.
func CleanLeft(c byte, n int) byte {
	return c & LeftMask[n]
}

// CleanRight clears the low n bits of c.
func CleanRight(c byte, n int) byte {
	return c & RightMask[n]
}
