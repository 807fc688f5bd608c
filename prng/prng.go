// Package prng implements the Marsaglia family of small, deterministic
// pseudorandom generators — Cong, SHR3, MWC1, MWC2, MWC64, KISS, KISS2,
// LFSR88 and LFSR113 — each able to jump its internal state ahead by N
// steps in O(log N) time instead of by stepping N times.
//
// Every generator here is a plain, comparable struct: construction,
// stepping and jump-ahead are pure functions of the state, there is no
// shared mutable package state and no synchronization. Concurrent use
// of distinct generator values is safe; concurrent use of the SAME
// value from multiple goroutines is not, the same way concurrent
// writes to any other unsynchronized Go struct are not.
package prng

import "fmt"

// errZeroSeed is returned by constructors whose recurrence has an
// absorbing all-zero state: once every state word is zero the
// generator would never leave zero, so the all-zero seed is rejected
// rather than silently producing a degenerate constant stream.
func errZeroSeed(name string) error {
	return fmt.Errorf("prng: %s: all-zero seed is degenerate (absorbing state), use a nonzero seed", name)
}

// errSeedBelowMinimum reports a Tausworthe lane seed that does not
// meet its generator's documented per-word minimum (values below the
// minimum fail to populate all of the lane's internal taps, which
// would shorten its period).
func errSeedBelowMinimum(seed, min uint32) error {
	return fmt.Errorf("prng: seed word %d is below the required minimum %d", seed, min)
}
