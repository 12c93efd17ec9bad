package ntt

import "sync/atomic"

// Transform counters, disabled by default. When enabled they tally every
// forward and inverse transform process-wide, which is useful to compare the
// transform traffic of different parameter sets.
var (
	countEnabled          atomic.Bool
	transformCount        atomic.Uint64
	inverseTransformCount atomic.Uint64
)

// EnableCount turns the transform counters on.
func EnableCount() {
	countEnabled.Store(true)
}

// DisableCount turns the transform counters off.
func DisableCount() {
	countEnabled.Store(false)
}

// ResetCount zeroes both counters.
func ResetCount() {
	transformCount.Store(0)
	inverseTransformCount.Store(0)
}

// TransformCount returns the number of forward transforms tallied while the
// counters were enabled.
func TransformCount() uint64 {
	return transformCount.Load()
}

// InverseTransformCount returns the number of inverse transforms tallied
// while the counters were enabled.
func InverseTransformCount() uint64 {
	return inverseTransformCount.Load()
}
