// Package priority defines the ordering the rest of this module reconciles
// against. The source of the values (a scheduler's expiration-time clock) is
// out of scope; this package only knows how to compare them.
package priority

import "math"

// Priority is an opaque, scheduler-assigned ordinal. Higher values mean
// higher priority.
type Priority int64

// NoWork is the sentinel for "no remaining work". It compares lower than
// every real priority, so a residual that never got raised stays NoWork.
const NoWork Priority = math.MinInt64

// Sufficient reports whether an update at updatePriority should be applied
// while rendering at renderPriority.
func Sufficient(updatePriority, renderPriority Priority) bool {
	return updatePriority >= renderPriority
}

// Max returns the higher of two priorities.
func Max(a, b Priority) Priority {
	if a > b {
		return a
	}
	return b
}
