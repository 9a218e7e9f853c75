package filter

import (
	"errors"
	"math"
	"testing"
)

func TestGaussianKernelZeroRadius(t *testing.T) {
	kernel := GaussianKernel(0)

	if len(kernel) != 1 {
		t.Errorf("GaussianKernel(0) len = %d, want 1", len(kernel))
	}

	if kernel[0] != 1.0 {
		t.Errorf("GaussianKernel(0)[0] = %v, want 1.0", kernel[0])
	}
}

func TestGaussianKernelNegativeRadius(t *testing.T) {
	kernel := GaussianKernel(-5)

	if len(kernel) != 1 {
		t.Errorf("GaussianKernel(-5) len = %d, want 1", len(kernel))
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	radii := []float64{0.5, 1, 2, 3, 5, 10, 20}

	for _, r := range radii {
		kernel := GaussianKernel(r)

		if math.Abs(kernel.Sum()-1.0) > 1e-9 {
			t.Errorf("GaussianKernel(%v) sum = %v, want ~1.0", r, kernel.Sum())
		}
	}
}

func TestGaussianKernelSymmetric(t *testing.T) {
	kernel := GaussianKernel(5)
	n := len(kernel)

	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if math.Abs(kernel[i]-kernel[j]) > 1e-12 {
			t.Errorf("kernel[%d] = %v != kernel[%d] = %v (asymmetric)", i, kernel[i], j, kernel[j])
		}
	}
}

func TestGaussianKernelSize(t *testing.T) {
	tests := []struct {
		radius   float64
		wantSize int
	}{
		{0.5, 3},   // ceil(0.5)*2+1
		{1.0, 3},   // ceil(1)*2+1
		{2.0, 5},   // ceil(2)*2+1
		{2.5, 7},   // ceil(2.5)*2+1
		{10.0, 21}, // ceil(10)*2+1
	}

	for _, tt := range tests {
		kernel := GaussianKernel(tt.radius)
		if len(kernel) != tt.wantSize {
			t.Errorf("GaussianKernel(%v) len = %d, want %d", tt.radius, len(kernel), tt.wantSize)
		}
		if got := KernelSize(tt.radius); got != tt.wantSize {
			t.Errorf("KernelSize(%v) = %d, want %d", tt.radius, got, tt.wantSize)
		}
	}
}

func TestGaussianKernelPeakAtCenter(t *testing.T) {
	kernel := GaussianKernel(5)
	center := kernel.Radius()

	maxIdx := 0
	maxVal := kernel[0]
	for i, v := range kernel {
		if v > maxVal {
			maxVal = v
			maxIdx = i
		}
	}

	if maxIdx != center {
		t.Errorf("kernel peak at %d, want %d (center)", maxIdx, center)
	}
}

func TestGaussianKernelZeroBeyondRadius(t *testing.T) {
	// Radius 0.5 rounds the tap count up to 3, but the outer taps lie
	// beyond the radius and carry no weight.
	kernel := GaussianKernel(0.5)
	if kernel[0] != 0 || kernel[2] != 0 || kernel[1] != 1 {
		t.Errorf("GaussianKernel(0.5) = %v, want [0 1 0]", kernel)
	}
}

func TestBoxKernelZeroRadius(t *testing.T) {
	kernel := BoxKernel(0)

	if len(kernel) != 1 {
		t.Errorf("BoxKernel(0) len = %d, want 1", len(kernel))
	}

	if kernel[0] != 1.0 {
		t.Errorf("BoxKernel(0)[0] = %v, want 1.0", kernel[0])
	}
}

func TestBoxKernelUniform(t *testing.T) {
	kernel := BoxKernel(3)
	expectedSize := 7 // 3*2+1
	expectedVal := 1.0 / 7.0

	if len(kernel) != expectedSize {
		t.Errorf("BoxKernel(3) len = %d, want %d", len(kernel), expectedSize)
	}

	for i, v := range kernel {
		if math.Abs(v-expectedVal) > 1e-12 {
			t.Errorf("BoxKernel(3)[%d] = %v, want %v", i, v, expectedVal)
		}
	}
}

func TestKernelValidate(t *testing.T) {
	tests := []struct {
		name    string
		kernel  Kernel
		wantErr error
	}{
		{"identity", Kernel{1}, nil},
		{"gaussian", GaussianKernel(3), nil},
		{"empty", Kernel{}, ErrEmptyKernel},
		{"nil", nil, ErrEmptyKernel},
		{"even", Kernel{0.5, 0.5}, ErrEvenKernel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.kernel.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestKernelValidateNaN(t *testing.T) {
	if err := (Kernel{0, math.NaN(), 0}).Validate(); err == nil {
		t.Error("Validate() accepted a NaN weight")
	}
}
