package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/imagefx/imath"
)

// ErrBadResampleMap is returned for an output map of the wrong length or
// with decreasing entries.
var ErrBadResampleMap = errors.New("filter: invalid resample map")

// ValidateMap checks that out is usable for resampling a scanline of
// length samples: it needs length+1 finite, non-decreasing entries.
func ValidateMap(out []float64, length int) error {
	if len(out) != length+1 {
		return fmt.Errorf("%w: %d entries for %d samples", ErrBadResampleMap, len(out), length)
	}
	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: entry %d is %v", ErrBadResampleMap, i, v)
		}
		if i > 0 && v < out[i-1] {
			return fmt.Errorf("%w: entry %d decreases (%v < %v)", ErrBadResampleMap, i, v, out[i-1])
		}
	}
	return nil
}

// Resampler resamples scanlines with Fant's algorithm.
//
// Source sample i covers the interval [out[i], out[i+1]) of the output
// scanline. Each output sample is the exact area-weighted average of the
// piecewise-linear source signal over its unit box, so reductions do not
// alias and enlargements interpolate smoothly.
type Resampler struct {
	length int
	// in[j] is the source position that maps to output position j.
	in []float64
}

// NewResampler prepares a resampler for scanlines of len(out)-1 samples.
func NewResampler(out []float64) (*Resampler, error) {
	n := len(out) - 1
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least 2 entries, got %d", ErrBadResampleMap, len(out))
	}
	if err := ValidateMap(out, n); err != nil {
		return nil, err
	}

	in := make([]float64, n+2)
	i := 0
	for j := 0; j < n; j++ {
		fj := float64(j)
		for i < n-1 && out[i+1] < fj {
			i++
		}
		if w := out[i+1] - out[i]; w > 0 {
			in[j] = float64(i) + (fj-out[i])/w
		} else {
			in[j] = float64(i)
		}
	}
	in[n] = float64(n)
	in[n+1] = float64(n)

	return &Resampler{length: n, in: in}, nil
}

// Len returns the scanline length.
func (r *Resampler) Len() int {
	return r.length
}

// Scanline resamples one scanline. Sample i of the source is read from
// src[offset+i*stride] and output sample i is written to
// dst[offset+i*stride], so rows use stride 1 and columns use the row
// stride. src and dst must not overlap.
func (r *Resampler) Scanline(src, dst []uint32, offset, stride int) {
	n := r.length
	sample := func(i int) [4]float64 {
		p := src[offset+min(i, n-1)*stride]
		a, rr, g, b := imath.Unpack(p)
		return [4]float64{float64(a), float64(rr), float64(g), float64(b)}
	}

	inSegment := 1.0
	outSegment := r.in[1]
	sizfac := outSegment
	var sum [4]float64

	cur := sample(0)
	next := sample(1)
	nextIndex := 2
	destIndex := offset

	for i := 1; i <= n; {
		var intensity [4]float64
		for c := range intensity {
			intensity[c] = inSegment*cur[c] + (1-inSegment)*next[c]
		}

		if inSegment < outSegment {
			// The input sample runs out first: take all of it.
			for c := range sum {
				sum[c] += intensity[c] * inSegment
			}
			outSegment -= inSegment
			inSegment = 1
			cur = next
			next = sample(nextIndex)
			nextIndex++
			continue
		}

		// The output sample is complete.
		for c := range sum {
			sum[c] += intensity[c] * outSegment
		}
		if sizfac > 0 {
			for c := range sum {
				sum[c] /= sizfac
			}
		} else {
			sum = intensity
		}
		dst[destIndex] = imath.Pack(
			channel(sum[0]), channel(sum[1]), channel(sum[2]), channel(sum[3]),
		)
		destIndex += stride

		sum = [4]float64{}
		inSegment -= outSegment
		outSegment = r.in[i+1] - r.in[i]
		sizfac = outSegment
		i++
	}
}

// channel truncates an accumulated channel value into [0, 255].
func channel(v float64) uint32 {
	return uint32(imath.Clamp(v, 0, 255))
}
