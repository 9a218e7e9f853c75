package filter

import (
	"errors"
	"fmt"
	"math"
)

// Kernel errors.
var (
	// ErrEmptyKernel is returned for a kernel without weights.
	ErrEmptyKernel = errors.New("filter: empty kernel")

	// ErrEvenKernel is returned for a kernel without a center tap.
	ErrEvenKernel = errors.New("filter: kernel length must be odd")
)

// Kernel is a one-dimensional convolution kernel. The center weight sits at
// index len/2. Weights are used as given; a kernel that should preserve
// brightness must sum to 1.
type Kernel []float64

// Validate reports whether k can be used for convolution.
func (k Kernel) Validate() error {
	if len(k) == 0 {
		return ErrEmptyKernel
	}
	if len(k)%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrEvenKernel, len(k))
	}
	for i, w := range k {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("filter: kernel weight %d is %v", i, w)
		}
	}
	return nil
}

// Radius returns the number of taps on each side of the center.
func (k Kernel) Radius() int {
	return len(k) / 2
}

// Sum returns the total of all weights.
func (k Kernel) Sum() float64 {
	var s float64
	for _, w := range k {
		s += w
	}
	return s
}

// GaussianKernel generates a normalized Gaussian kernel for the given blur
// radius in pixels.
//
// The kernel has 2*ceil(radius)+1 taps and a standard deviation of
// radius/3, so the curve has fallen to about 1% at the outermost tap.
// Taps farther than radius from the center are zero.
//
// For radius <= 0, returns the identity kernel [1].
func GaussianKernel(radius float64) Kernel {
	if radius <= 0 {
		return Kernel{1}
	}

	r := int(math.Ceil(radius))
	kernel := make(Kernel, 2*r+1)

	sigma := radius / 3
	twoSigmaSq := 2 * sigma * sigma
	sqrtSigmaPi2 := math.Sqrt(2 * math.Pi * sigma)
	radiusSq := radius * radius

	var total float64
	for i := range kernel {
		d := float64(i - r)
		if d*d <= radiusSq {
			kernel[i] = math.Exp(-(d*d)/twoSigmaSq) / sqrtSigmaPi2
		}
		total += kernel[i]
	}

	for i := range kernel {
		kernel[i] /= total
	}
	return kernel
}

// BoxKernel generates a uniform kernel of 2*radius+1 taps, each
// 1/(2*radius+1).
//
// Three passes of box blur approximate Gaussian blur well.
func BoxKernel(radius int) Kernel {
	if radius <= 0 {
		return Kernel{1}
	}

	kernel := make(Kernel, radius*2+1)
	w := 1 / float64(len(kernel))
	for i := range kernel {
		kernel[i] = w
	}
	return kernel
}

// KernelSize returns the number of taps GaussianKernel produces for radius.
func KernelSize(radius float64) int {
	if radius <= 0 {
		return 1
	}
	return 2*int(math.Ceil(radius)) + 1
}
