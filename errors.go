package bitarr

import "fmt"

// ErrInvalidSize indicates a bit count that cannot be allocated: it is
// negative, or its byte length is not representable.
type ErrInvalidSize struct {
	Size int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid bit array size: %d", e.Size)
}

// ErrIndexOutOfRange indicates a Get or Set index at or beyond the bit
// count. The operation is rejected before any mutation.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bit index out of range: %d (size %d)", e.Index, e.Size)
}

// ErrInvalidRange indicates a rotation window [Offset, Offset+Length) that
// does not lie within [0, Size). The array is unchanged.
type ErrInvalidRange struct {
	Offset int
	Length int
	Size   int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid bit range: [%d, %d) exceeds size %d", e.Offset, e.Offset+e.Length, e.Size)
}
