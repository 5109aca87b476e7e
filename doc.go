// Package bitarr provides a fixed-length packed bit array with in-place
// sub-range rotation.
//
// A BitArray stores size bits in ceil(size/8) bytes, roughly one bit of
// memory per logical bit. Bits are addressed by logical index; reads and
// writes are constant time, and any contiguous sub-range can be rotated by a
// signed amount without allocating a temporary buffer proportional to the
// range length.
//
// # Quick Start
//
//	b, _ := bitarr.New(64)
//	b.Set(3, true)
//	v, _ := b.Get(3)              // true
//	b.Rotate(8, 16, 5)            // rotate bits [8, 24) right by 5
//	b.Rotate(8, 16, -5)           // ...and back
//
// # Rotation
//
// Rotate treats the window [offset, offset+length) as a cyclic sequence and
// moves every bit amount positions to the right (negative amounts rotate
// left). Amounts of any magnitude are accepted; full cycles are removed
// before any work happens, so Rotate(off, n, k*n) is a no-op for any k.
// Windows that fit in a single byte are rotated with one masked byte
// computation; larger windows use a three-reversal decomposition that walks
// the buffer a byte at a time. Either way the cost is O(length) bit-touches
// with O(1) auxiliary space.
//
// # Diagnostics
//
// Rotation can emit a structured debug trace through an injectable Logger:
//
//	b, _ := bitarr.New(64, bitarr.WithLogger(bitarr.NewLogger(nil)))
//
// The default logger discards everything.
//
// # Lifecycle & Concurrency
//
// A BitArray is a plain in-memory value: it is created by New, mutated only
// through Set and Rotate, and released by the garbage collector. It has no
// internal synchronization; callers sharing one across goroutines must
// serialize access themselves.
package bitarr
