// Package testutil provides testing utilities for bitarr.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic seeded RNG for reproducible randomized tests
// and a naive one-position-at-a-time rotation used as a correctness oracle
// for the masked in-place algorithm.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	rng.FillBytes(buf)          // random buffer contents
//	amount := rng.Amount(limit) // signed amount in [-limit, limit]
//
// # Reference Rotation (Ground Truth)
//
//	testutil.NaiveRotate(buf, offset, length, amount)
package testutil
