package imagefx

import (
	"context"
	"fmt"

	"github.com/gogpu/imagefx/internal/filter"
)

// ResampleConfig holds the forward maps of a Fant resample. Horizontal[x]
// is the output position of the left edge of source column x and must
// hold width+1 non-decreasing entries. Vertical does the same for rows
// with height+1 entries. A nil map leaves that axis unchanged.
type ResampleConfig struct {
	Horizontal []float64
	Vertical   []float64
}

// ScaleMap returns a forward map for n samples that scales by scale about
// origin: out[i] = origin + i*scale, for i in 0..n.
func ScaleMap(n int, scale, origin float64) []float64 {
	if n < 0 {
		return nil
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = origin + float64(i)*scale
	}
	return out
}

func (c ResampleConfig) resamplers(width, height int) (h, v *filter.Resampler, err error) {
	if c.Horizontal != nil {
		if h, err = newResampler(c.Horizontal, width); err != nil {
			return nil, nil, fmt.Errorf("horizontal: %w", err)
		}
	}
	if c.Vertical != nil {
		if v, err = newResampler(c.Vertical, height); err != nil {
			return nil, nil, fmt.Errorf("vertical: %w", err)
		}
	}
	return h, v, nil
}

// newResampler builds a resampler and checks it covers n samples.
func newResampler(m []float64, n int) (*filter.Resampler, error) {
	if len(m) != n+1 {
		return nil, fmt.Errorf("%w: %d entries for %d samples", filter.ErrBadResampleMap, len(m), n)
	}
	return filter.NewResampler(m)
}

// Resample warps src into dst with area-averaging Fant resampling: the
// horizontal map is applied to every row, then the vertical map to every
// column. Output outside the mapped range keeps the nearest edge value.
//
// Progress counts one unit per row of the horizontal pass and one per
// column of the vertical pass.
func Resample(ctx context.Context, src, dst Region, cfg ResampleConfig, opts ...Option) error {
	r, err := newRun(ctx, "resample", src, dst, opts)
	if err != nil {
		return err
	}
	if r.empty() {
		return nil
	}
	hr, vr, err := cfg.resamplers(r.width, r.height)
	if err != nil {
		return fmt.Errorf("resample: %w", err)
	}

	w, h := r.width, r.height
	units := 0
	if hr != nil {
		units += h
	}
	if vr != nil {
		units += w
	}
	r.start(units)

	pix := src.GetRegion(0, 0, w, h)
	if hr != nil {
		out := make([]uint32, len(pix))
		if err := r.loop(h, func(y int) {
			hr.Scanline(pix, out, y*w, 1)
		}); err != nil {
			return r.finish(err)
		}
		pix = out
	}
	if vr != nil {
		out := make([]uint32, len(pix))
		if err := r.loop(w, func(x int) {
			vr.Scanline(pix, out, x, w)
		}); err != nil {
			return r.finish(err)
		}
		pix = out
	}
	dst.SetRegion(0, 0, w, h, pix)
	return r.finish(nil)
}
