package imagefx

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/imagefx/internal/filter"
)

// EdgeMode selects how convolution samples past the image border.
type EdgeMode = filter.EdgeMode

// Edge modes.
const (
	// EdgeClamp repeats the border pixel.
	EdgeClamp = filter.EdgeClamp
	// EdgeWrap samples from the opposite border.
	EdgeWrap = filter.EdgeWrap
)

// Configuration errors.
var (
	// ErrInvalidRadius is returned for NaN, infinite or negative radii.
	ErrInvalidRadius = errors.New("imagefx: invalid radius")

	// ErrInvalidKernel is returned for malformed convolution kernels.
	ErrInvalidKernel = errors.New("imagefx: invalid kernel")
)

// BlurConfig configures a Gaussian blur.
type BlurConfig struct {
	// Radius in pixels. Zero leaves the image unchanged.
	Radius float64

	// Alpha blurs the alpha channel. When false the output is opaque.
	Alpha bool

	// Premultiply weights color by alpha while blurring, which stops
	// transparent pixels from bleeding their color into opaque ones.
	// It has no effect unless Alpha is set.
	Premultiply bool

	// Edge selects border handling.
	Edge EdgeMode
}

// DefaultBlurConfig returns a blur with alpha and premultiplication enabled.
func DefaultBlurConfig(radius float64) BlurConfig {
	return BlurConfig{
		Radius:      radius,
		Alpha:       true,
		Premultiply: true,
		Edge:        EdgeClamp,
	}
}

// Validate checks the configuration.
func (c BlurConfig) Validate() error {
	if err := validateRadius(c.Radius); err != nil {
		return err
	}
	return c.Edge.Validate()
}

func validateRadius(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, r)
	}
	return nil
}

// Blur applies a separable Gaussian blur from src into dst.
//
// Progress counts one unit per source row and one per source column.
// When ctx is canceled the call returns ctx.Err() and dst is left untouched.
func Blur(ctx context.Context, src, dst Region, cfg BlurConfig, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("blur: %w", err)
	}
	k := filter.GaussianKernel(cfg.Radius)
	return runConvolve(ctx, "blur", src, dst, ConvolveConfig{
		Horizontal:  k,
		Vertical:    k,
		Alpha:       cfg.Alpha,
		Premultiply: cfg.Premultiply,
		Edge:        cfg.Edge,
	}, opts)
}

// ConvolveConfig configures a separable convolution.
type ConvolveConfig struct {
	// Horizontal is applied along rows. Its length must be odd.
	Horizontal []float64

	// Vertical is applied along columns. Nil reuses Horizontal.
	Vertical []float64

	Alpha       bool
	Premultiply bool
	Edge        EdgeMode
}

// Validate checks both kernels and the edge mode.
func (c ConvolveConfig) Validate() error {
	if err := filter.Kernel(c.Horizontal).Validate(); err != nil {
		return fmt.Errorf("%w: horizontal: %w", ErrInvalidKernel, err)
	}
	if c.Vertical != nil {
		if err := filter.Kernel(c.Vertical).Validate(); err != nil {
			return fmt.Errorf("%w: vertical: %w", ErrInvalidKernel, err)
		}
	}
	return c.Edge.Validate()
}

// Convolve runs a horizontal then a vertical 1-D convolution from src
// into dst. Kernels are not normalized.
func Convolve(ctx context.Context, src, dst Region, cfg ConvolveConfig, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("convolve: %w", err)
	}
	return runConvolve(ctx, "convolve", src, dst, cfg, opts)
}

func runConvolve(ctx context.Context, op string, src, dst Region, cfg ConvolveConfig, opts []Option) error {
	r, err := newRun(ctx, op, src, dst, opts)
	if err != nil {
		return err
	}
	if r.empty() {
		return nil
	}

	kh := filter.Kernel(cfg.Horizontal)
	kv := kh
	if cfg.Vertical != nil {
		kv = filter.Kernel(cfg.Vertical)
	}
	r.logger.Debug("imagefx: kernels", "horizontal", len(kh), "vertical", len(kv))

	r.start(r.width + r.height)
	out, err := convolve(r, src.GetRegion(0, 0, r.width, r.height), kh, kv,
		cfg.Alpha, cfg.Premultiply, cfg.Edge)
	if err != nil {
		return r.finish(err)
	}
	dst.SetRegion(0, 0, r.width, r.height, out)
	return r.finish(nil)
}

// convolve performs the two transposing passes over pix. The first pass
// writes a height x width buffer, the second transposes it back.
func convolve(r *run, pix []uint32, kh, kv filter.Kernel, alpha, premultiply bool, edge EdgeMode) ([]uint32, error) {
	w, h := r.width, r.height
	tmp := make([]uint32, len(pix))
	out := make([]uint32, len(pix))

	// Premultiplication is only undone when alpha survives the first pass.
	premultiply = premultiply && alpha

	first := filter.ConvolveOptions{Alpha: alpha, Premultiply: premultiply, Edge: edge}
	if err := r.loop(h, func(y int) {
		filter.ConvolveRow(kh, pix, tmp, w, h, y, first)
	}); err != nil {
		return nil, err
	}

	second := filter.ConvolveOptions{Alpha: alpha, Unpremultiply: premultiply, Edge: edge}
	if err := r.loop(w, func(x int) {
		filter.ConvolveRow(kv, tmp, out, h, w, x, second)
	}); err != nil {
		return nil, err
	}
	return out, nil
}
