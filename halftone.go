package imagefx

import (
	"context"
	"fmt"

	"github.com/gogpu/imagefx/internal/filter"
)

// Default screen angles in radians.
const (
	DefaultCyanAngle    = filter.DefaultCyanAngle
	DefaultMagentaAngle = filter.DefaultMagentaAngle
	DefaultYellowAngle  = filter.DefaultYellowAngle
)

// HalftoneConfig configures the CMY color halftone.
type HalftoneConfig struct {
	// DotRadius is the largest dot radius in pixels. The screen cell is
	// 2*sqrt(2)*DotRadius wide.
	DotRadius float64

	// Screen angles in radians.
	CyanAngle    float64
	MagentaAngle float64
	YellowAngle  float64
}

// DefaultHalftoneConfig returns a radius 2 screen at 108, 162 and 90 degrees.
func DefaultHalftoneConfig() HalftoneConfig {
	return HalftoneConfig{
		DotRadius:    2,
		CyanAngle:    DefaultCyanAngle,
		MagentaAngle: DefaultMagentaAngle,
		YellowAngle:  DefaultYellowAngle,
	}
}

func (c HalftoneConfig) angles() [3]float64 {
	return [3]float64{
		filter.Cyan:    c.CyanAngle,
		filter.Magenta: c.MagentaAngle,
		filter.Yellow:  c.YellowAngle,
	}
}

// ColorHalftone renders src as three rotated screens of cyan, magenta and
// yellow dots whose size follows the darkness of each channel.
//
// Rows are written to dst as they complete, one progress unit each. A
// canceled call leaves the rows finished so far in dst.
func ColorHalftone(ctx context.Context, src, dst Region, cfg HalftoneConfig, opts ...Option) error {
	h, err := filter.NewHalftone(cfg.DotRadius, cfg.angles())
	if err != nil {
		return fmt.Errorf("halftone: %w", err)
	}
	r, err := newRun(ctx, "halftone", src, dst, opts)
	if err != nil {
		return err
	}
	if r.empty() {
		return nil
	}

	r.logger.Debug("imagefx: screen", "grid", h.GridSize())
	r.start(r.height)

	pix := src.GetRegion(0, 0, r.width, r.height)
	row := make([]uint32, r.width)
	err = r.loop(r.height, func(y int) {
		h.Row(pix, r.width, r.height, y, row)
		dst.SetRegion(0, y, r.width, 1, row)
	})
	return r.finish(err)
}
