// Package conv provides checked integer conversions for the lane kernels.
//
// Query indices and code-unit counts are narrowed into 16-bit vector lanes
// and 32-bit movemask words. These helpers bounds check before narrowing
// and panic on overflow, since an out-of-range value here is a programming
// error (the boundary package validates every argument first).
package conv

import "math"

// IntToUint16 safely converts an int to uint16.
// Panics if n < 0 or n > math.MaxUint16.
//
//go:inline
func IntToUint16(n int) uint16 {
	if n < 0 || n > math.MaxUint16 {
		panic("integer overflow: int value out of uint16 range")
	}
	return uint16(n)
}

// LaneShift converts a lane count into the movemask shift that covers it
// (two mask bits per 16-bit lane). Panics if the result does not fit a
// 32-bit mask shift.
//
//go:inline
func LaneShift(lanes int) uint {
	if lanes < 0 || lanes > 16 {
		panic("integer overflow: lane count out of movemask range")
	}
	return uint(lanes) << 1
}
