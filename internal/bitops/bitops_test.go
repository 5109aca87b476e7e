package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	tests := []struct {
		n, m, want int
	}{
		{16, 8, 0},
		{0, 8, 0},
		{7, 8, 7},
		{13, 5, 3},
		{-1, 10, 9},
		{-7, 5, 3},
		{-10, 2, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Mod(tt.n, tt.m), "Mod(%d, %d)", tt.n, tt.m)
	}
}

func TestNormalizeShift(t *testing.T) {
	tests := []struct {
		length, amount, want int
	}{
		{2, 10, 0},
		{5, 1, 4},
		{5, -1, 1},
		{5, -7, 2},
		{7, 1, 6},
		{8, 11, 5},
		{8, -11, 3},
		{6, 6, 0},
		{6, -12, 0},
		{1, 99, 0},
		{1, -99, 0},
	}

	for _, tt := range tests {
		got, err := NormalizeShift(tt.length, tt.amount)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "NormalizeShift(%d, %d)", tt.length, tt.amount)
	}
}

func TestNormalizeShiftInvalidLength(t *testing.T) {
	for _, length := range []int{0, -3} {
		_, err := NormalizeShift(length, 1)
		assert.ErrorIs(t, err, ErrInvalidLength, "length=%d", length)
	}
}

func TestRotateByte(t *testing.T) {
	tests := []struct {
		name             string
		c                byte
		low, high, shift int
		want             byte
	}{
		{"mid nibble", 0x56, 2, 2, 1, 0x6A},
		{"upper six", 0x56, 2, 0, 1, 0xAA},
		{"low pair", 0x02, 0, 6, 1, 0x01},
		{"full byte", 0x55, 0, 0, 1, 0xAA},
		{"full byte odd shift", 0x55, 0, 0, 3, 0xAA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RotateByte(tt.c, tt.low, tt.high, tt.shift))
		})
	}
}

func TestRotateBytePreservesOutsideBits(t *testing.T) {
	// Rotating the middle nibble of all-ones never disturbs the bits
	// outside the range.
	for shift := 1; shift < 4; shift++ {
		got := RotateByte(0xFF, 2, 2, shift)
		assert.Equal(t, byte(0xFF), got, "shift=%d", shift)
	}

	// Only the low pair is inside the range; the upper six bits ride along
	// untouched.
	got := RotateByte(0xAB, 0, 6, 1)
	assert.Equal(t, byte(0xAB)&0xFC, got&0xFC)
}
