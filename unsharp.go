package imagefx

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/imagefx/internal/filter"
)

// ErrInvalidAmount is returned for NaN or infinite sharpening amounts.
var ErrInvalidAmount = errors.New("imagefx: invalid amount")

// UnsharpConfig configures an unsharp mask.
type UnsharpConfig struct {
	// Radius of the Gaussian used to find edges. Zero disables sharpening.
	Radius float64

	// Amount scales the edge boost. Zero leaves the image unchanged.
	Amount float64

	// Threshold is the smallest per-channel difference from the blurred
	// image that is treated as an edge.
	Threshold int

	Alpha       bool
	Premultiply bool
	Edge        EdgeMode
}

// DefaultUnsharpConfig returns the classic settings: radius 2, amount 0.5
// and threshold 1.
func DefaultUnsharpConfig() UnsharpConfig {
	return UnsharpConfig{
		Radius:      2,
		Amount:      0.5,
		Threshold:   1,
		Alpha:       true,
		Premultiply: true,
		Edge:        EdgeClamp,
	}
}

// Validate checks the configuration.
func (c UnsharpConfig) Validate() error {
	if err := validateRadius(c.Radius); err != nil {
		return err
	}
	if math.IsNaN(c.Amount) || math.IsInf(c.Amount, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, c.Amount)
	}
	return c.Edge.Validate()
}

// Unsharp sharpens src into dst by boosting the difference between each
// pixel and a blurred copy. Alpha is taken from src unchanged.
//
// Progress counts the two blur passes (width + height units) followed by
// one unit per row of the combine pass.
func Unsharp(ctx context.Context, src, dst Region, cfg UnsharpConfig, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("unsharp: %w", err)
	}
	r, err := newRun(ctx, "unsharp", src, dst, opts)
	if err != nil {
		return err
	}
	if r.empty() {
		return nil
	}

	orig := src.GetRegion(0, 0, r.width, r.height)
	blurred := orig
	units := r.height
	if cfg.Radius > 0 {
		units += r.width + r.height
	}
	r.start(units)

	if cfg.Radius > 0 {
		k := filter.GaussianKernel(cfg.Radius)
		r.logger.Debug("imagefx: kernels", "horizontal", len(k), "vertical", len(k))
		blurred, err = convolve(r, orig, k, k, cfg.Alpha, cfg.Premultiply, cfg.Edge)
		if err != nil {
			return r.finish(err)
		}
	}

	out := make([]uint32, len(orig))
	w := r.width
	if err := r.loop(r.height, func(y int) {
		row := y * w
		filter.UnsharpRow(orig[row:row+w], blurred[row:row+w], out[row:row+w], cfg.Amount, cfg.Threshold)
	}); err != nil {
		return r.finish(err)
	}
	dst.SetRegion(0, 0, r.width, r.height, out)
	return r.finish(nil)
}
