// Package bitops provides the byte-granular primitives behind bitarr:
// prefix/suffix mask tables, sign-safe modulo, rotation-amount
// canonicalization and the masked single-byte rotation.
//
// All helpers operate on plain bytes and ints. The bit addressing
// convention (bit i of a byte is 1 << i) is owned by the caller.
package bitops
