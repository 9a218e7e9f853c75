package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/imagefx/imath"
)

// ErrEdgeMode is returned for an edge mode the convolution does not know.
var ErrEdgeMode = errors.New("filter: unsupported edge mode")

// EdgeMode selects how samples beyond the end of a row are obtained.
type EdgeMode uint8

const (
	// EdgeClamp repeats the nearest edge pixel.
	EdgeClamp EdgeMode = iota

	// EdgeWrap tiles the row periodically.
	EdgeWrap
)

// String returns the name of the edge mode.
func (m EdgeMode) String() string {
	switch m {
	case EdgeClamp:
		return "clamp"
	case EdgeWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// Validate reports whether m is a known edge mode.
func (m EdgeMode) Validate() error {
	if m > EdgeWrap {
		return fmt.Errorf("%w: %d", ErrEdgeMode, m)
	}
	return nil
}

// ConvolveOptions controls a single convolution pass.
type ConvolveOptions struct {
	// Alpha convolves the alpha channel. When false, output alpha is 255.
	Alpha bool

	// Premultiply scales each sample's color by its alpha before weighting,
	// so transparent pixels do not bleed their color into neighbours.
	Premultiply bool

	// Unpremultiply divides the weighted color by the weighted alpha.
	// It is normally set on the last pass of a premultiplied blur.
	Unpremultiply bool

	// Edge selects the treatment of samples past the row ends.
	Edge EdgeMode
}

// ConvolveRow convolves row y of in with k and stores the result
// transposed: in is width x height, out is height x width, and pixel
// (x, y) of the result lands at out[x*height+y].
//
// Running ConvolveRow over every row twice, the second time with the
// output of the first as input and the dimensions swapped, yields a
// separable two-dimensional convolution in the original orientation.
//
// Channel sums are rounded and clamped to [0, 255].
func ConvolveRow(k Kernel, in, out []uint32, width, height, y int, opts ConvolveOptions) {
	r := k.Radius()
	row := in[y*width : y*width+width]

	for x := 0; x < width; x++ {
		var a, rr, g, b float64

		for i, f := range k {
			if f == 0 {
				continue
			}
			ix := x + i - r
			if ix < 0 || ix >= width {
				if opts.Edge == EdgeWrap {
					ix = imath.ModInt(ix, width)
				} else {
					ix = imath.ClampInt(ix, 0, width-1)
				}
			}

			pa, pr, pg, pb := imath.Unpack(row[ix])
			fr, fg, fb := float64(pr), float64(pg), float64(pb)
			if opts.Premultiply {
				a255 := float64(pa) * (1.0 / 255.0)
				fr *= a255
				fg *= a255
				fb *= a255
			}
			a += f * float64(pa)
			rr += f * fr
			g += f * fg
			b += f * fb
		}

		if opts.Unpremultiply && a != 0 && a != 255 {
			f := 255 / a
			rr *= f
			g *= f
			b *= f
		}

		ia := uint32(255)
		if opts.Alpha {
			ia = imath.ClampByte(int(a + 0.5))
		}
		out[x*height+y] = imath.Pack(ia,
			imath.ClampByte(int(rr+0.5)),
			imath.ClampByte(int(g+0.5)),
			imath.ClampByte(int(b+0.5)),
		)
	}
}
