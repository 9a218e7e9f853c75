package imagefx

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/imagefx/imath"
)

// Buffer errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("imagefx: invalid dimensions")

	// ErrInvalidStride is returned when stride is smaller than the width.
	ErrInvalidStride = errors.New("imagefx: stride too small for width")

	// ErrDataTooSmall is returned when a pixel slice cannot hold the image.
	ErrDataTooSmall = errors.New("imagefx: pixel data too small")
)

// Region is the rectangular pixel store a filter reads from and writes to.
//
// Pixels are packed ARGB words, A<<24 | R<<16 | G<<8 | B, with straight
// (non-premultiplied) color. GetRegion returns a fresh row-major slice of
// w*h pixels. SetRegion copies w*h row-major pixels into the store.
// Filters only ever address rectangles inside (0, 0, width, height).
type Region interface {
	Size() (width, height int)
	GetRegion(x, y, w, h int) []uint32
	SetRegion(x, y, w, h int, pix []uint32)
}

// PixelBuffer is an in-memory Region backed by a []uint32.
// It also implements image.Image so results can be handed to encoders.
type PixelBuffer struct {
	// Pix holds the pixels. The pixel at (x, y) is Pix[y*Stride+x].
	Pix []uint32

	Width  int
	Height int

	// Stride is the distance in pixels between vertically adjacent pixels.
	Stride int
}

// NewPixelBuffer allocates a zeroed (transparent black) buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &PixelBuffer{
		Pix:    make([]uint32, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// WrapPixels creates a buffer over existing pixel data without copying.
func WrapPixels(pix []uint32, width, height, stride int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, fmt.Errorf("%w: stride %d, width %d", ErrInvalidStride, stride, width)
	}
	if need := (height-1)*stride + width; len(pix) < need {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrDataTooSmall, len(pix), need)
	}
	return &PixelBuffer{Pix: pix, Width: width, Height: height, Stride: stride}, nil
}

// Size returns the buffer dimensions.
func (b *PixelBuffer) Size() (width, height int) {
	return b.Width, b.Height
}

// GetRegion copies the rectangle (x, y, w, h) into a new slice.
// Pixels outside the buffer read as transparent black.
func (b *PixelBuffer) GetRegion(x, y, w, h int) []uint32 {
	if w <= 0 || h <= 0 {
		return nil
	}
	out := make([]uint32, w*h)
	r := b.clip(x, y, w, h)
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		src := b.Pix[yy*b.Stride+r.Min.X : yy*b.Stride+r.Max.X]
		copy(out[(yy-y)*w+(r.Min.X-x):], src)
	}
	return out
}

// SetRegion copies pix into the rectangle (x, y, w, h).
// Pixels falling outside the buffer are dropped.
func (b *PixelBuffer) SetRegion(x, y, w, h int, pix []uint32) {
	if w <= 0 || h <= 0 {
		return
	}
	r := b.clip(x, y, w, h)
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		off := (yy-y)*w + (r.Min.X - x)
		if off >= len(pix) {
			return
		}
		n := min(r.Dx(), len(pix)-off)
		copy(b.Pix[yy*b.Stride+r.Min.X:], pix[off:off+n])
	}
}

func (b *PixelBuffer) clip(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, b.Width, b.Height))
}

// ARGB returns the packed pixel at (x, y), or 0 outside the buffer.
func (b *PixelBuffer) ARGB(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Stride+x]
}

// SetARGB stores a packed pixel. Out-of-bounds coordinates are ignored.
func (b *PixelBuffer) SetARGB(x, y int, p uint32) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Stride+x] = p
}

// Clone returns a deep copy with a packed stride.
func (b *PixelBuffer) Clone() *PixelBuffer {
	c := NewPixelBuffer(b.Width, b.Height)
	c.SetRegion(0, 0, b.Width, b.Height, b.GetRegion(0, 0, b.Width, b.Height))
	return c
}

// ColorModel implements image.Image.
func (b *PixelBuffer) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (b *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image.
func (b *PixelBuffer) At(x, y int) color.Color {
	a, r, g, bl := imath.Unpack(b.ARGB(x, y))
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(bl), A: uint8(a)}
}

// NRGBA converts the buffer to a standard library image.
func (b *PixelBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for y := 0; y < b.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Width; x++ {
			a, r, g, bl := imath.Unpack(b.Pix[y*b.Stride+x])
			i := x * 4
			row[i+0] = uint8(r)
			row[i+1] = uint8(g)
			row[i+2] = uint8(bl)
			row[i+3] = uint8(a)
		}
	}
	return img
}

// FromImage converts any image to a PixelBuffer anchored at (0, 0).
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.Copy(nrgba, image.Point{}, img, bounds, xdraw.Src, nil)
	}

	b := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.Height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < b.Width; x++ {
			i := x * 4
			b.Pix[y*b.Stride+x] = imath.Pack(
				uint32(row[i+3]), uint32(row[i+0]), uint32(row[i+1]), uint32(row[i+2]))
		}
	}
	return b
}
