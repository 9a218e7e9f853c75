// Package imath provides the numeric toolkit shared by the imagefx filters.
//
// It contains pure functions for clamping, periodic (true) modulo,
// interpolation, easing curves, Catmull-Rom splines and premultiplication
// of packed ARGB pixels.
//
// # Pixel Layout
//
// A pixel is a uint32 holding four 8-bit channels:
//
//	bits 24..31  alpha
//	bits 16..23  red
//	bits  8..15  green
//	bits  0..7   blue
//
// Channel arithmetic is done in float64 and converted back with truncation
// toward zero, never rounding, unless a function documents otherwise.
//
// All functions are safe for concurrent use. The only functions with side
// effects are [Premultiply] and [Unpremultiply], which rewrite their
// argument in place.
package imath
