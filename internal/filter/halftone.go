package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/imagefx/imath"
)

// ErrInvalidDotRadius is returned for a halftone dot radius that is not a
// positive finite number.
var ErrInvalidDotRadius = errors.New("filter: halftone dot radius must be positive")

// Halftone screen channels, in the order of Halftone angles.
const (
	Cyan = iota
	Magenta
	Yellow
)

// Default screen angles in radians, following print conventions.
const (
	DefaultCyanAngle    = 108 * math.Pi / 180
	DefaultMagentaAngle = 162 * math.Pi / 180
	DefaultYellowAngle  = 90 * math.Pi / 180
)

// neighbours are the grid offsets examined around the snapped cell: the
// cell itself and its four face neighbours, since a large dot from an
// adjacent cell can reach into this one.
var neighbours = [5][2]float64{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

type screen struct {
	sin, cos float64
	shift    uint
}

// Halftone renders a CMY color halftone. Each of the red, green and blue
// channels is screened on its own grid, rotated by the cyan, magenta and
// yellow angle respectively, and the overlapping screens form the rosette
// pattern of print.
type Halftone struct {
	gridSize float64
	halfGrid float64
	screens  [3]screen
}

// NewHalftone creates a halftone with dots of the given maximum radius in
// pixels and per-channel screen angles in radians, indexed by Cyan,
// Magenta and Yellow.
func NewHalftone(dotRadius float64, angles [3]float64) (*Halftone, error) {
	if !(dotRadius > 0) || math.IsInf(dotRadius, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDotRadius, dotRadius)
	}

	grid := 2 * dotRadius * math.Sqrt2
	h := &Halftone{
		gridSize: grid,
		halfGrid: grid / 2,
	}
	for c, angle := range angles {
		sin, cos := math.Sincos(angle)
		h.screens[c] = screen{sin: sin, cos: cos, shift: uint(16 - 8*c)}
	}
	return h, nil
}

// GridSize returns the edge length of a screen cell.
func (h *Halftone) GridSize() float64 {
	return h.gridSize
}

// Row renders row y of the width x height source in into out, which must
// hold width pixels. Alpha is copied from the source; each color channel
// is set to 255 times the uncovered fraction of the pixel on its screen.
func (h *Halftone) Row(in []uint32, width, height, y int, out []uint32) {
	for x := 0; x < width; x++ {
		c := h.coverage(in, width, height, x, y, Cyan)
		m := h.coverage(in, width, height, x, y, Magenta)
		ye := h.coverage(in, width, height, x, y, Yellow)

		out[x] = in[y*width+x]&0xff000000 |
			uint32(255*c)<<16 |
			uint32(255*m)<<8 |
			uint32(255*ye)
	}
}

// coverage returns how far pixel (x, y) lies outside the ink of the given
// channel's screen: 0 is fully inked, 1 is untouched paper.
func (h *Halftone) coverage(in []uint32, width, height, x, y, channel int) float64 {
	s := h.screens[channel]
	fx, fy := float64(x), float64(y)

	// Rotate into screen space and snap to the nearest cell center.
	tx := fx*s.cos + fy*s.sin
	ty := -fx*s.sin + fy*s.cos
	tx = tx - imath.Mod(tx-h.halfGrid, h.gridSize) + h.halfGrid
	ty = ty - imath.Mod(ty-h.halfGrid, h.gridSize) + h.halfGrid

	f := 1.0
	for _, n := range neighbours {
		ttx := tx + n[0]*h.gridSize
		tty := ty + n[1]*h.gridSize

		// Back to image space; the dot size comes from the source there.
		ntx := ttx*s.cos - tty*s.sin
		nty := ttx*s.sin + tty*s.cos
		nx := imath.ClampInt(int(ntx), 0, width-1)
		ny := imath.ClampInt(int(nty), 0, height-1)

		l := float64(in[ny*width+nx]>>s.shift&0xff) / 255
		radius := (1 - l*l) * h.halfGrid * math.Sqrt2

		dist := math.Hypot(fx-ntx, fy-nty)
		f = min(f, 1-imath.SmoothStep(dist, dist+1, radius))
	}
	return f
}
