// Package xmath holds the handful of generic numeric helpers shared
// across board and control, so each package doesn't redefine its own
// clamp.
package xmath

import "golang.org/x/exp/constraints"

// Clamp folds v into [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
