// Package filter implements the per-pixel cores of the imagefx filters.
//
// The package contains:
//   - Separable convolution that writes its output transposed, so a
//     two-dimensional blur is two identical row passes
//   - Unsharp masking with a noise threshold
//   - CMY color halftoning with rotated dot screens
//   - Fant's area-weighted scanline resampling
//
// Every function works on flat ARGB slices (see package imath for the
// layout) and processes one row or scanline per call. Image geometry,
// progress reporting and cancellation belong to the caller, which invokes
// these functions row by row.
//
// Sample positions that fall outside the image are clamped to the nearest
// edge pixel; no function reads outside the slices it is given.
package filter
