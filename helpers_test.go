package imagefx

import (
	"context"
	"testing"
)

func grayPixel(v uint32) uint32 {
	return 0xff000000 | v<<16 | v<<8 | v
}

func solidBuffer(w, h int, p uint32) *PixelBuffer {
	b := NewPixelBuffer(w, h)
	for i := range b.Pix {
		b.Pix[i] = p
	}
	return b
}

// gradientBuffer fills an opaque buffer with distinct colors per pixel.
func gradientBuffer(w, h int) *PixelBuffer {
	b := NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := uint32(x*255) / uint32(max(w-1, 1))
			g := uint32(y*255) / uint32(max(h-1, 1))
			b.Pix[y*w+x] = 0xff000000 | r<<16 | g<<8 | uint32((x+y)*17&0xff)
		}
	}
	return b
}

// checkedRegion wraps a PixelBuffer and fails the test on any access that
// leaves the buffer or hands over a slice of the wrong length.
type checkedRegion struct {
	t    *testing.T
	buf  *PixelBuffer
	gets int
	sets int
}

func newCheckedRegion(t *testing.T, b *PixelBuffer) *checkedRegion {
	return &checkedRegion{t: t, buf: b}
}

func (c *checkedRegion) Size() (int, int) { return c.buf.Size() }

func (c *checkedRegion) inBounds(op string, x, y, w, h int) {
	c.t.Helper()
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > c.buf.Width || y+h > c.buf.Height {
		c.t.Errorf("%s(%d, %d, %d, %d) outside %dx%d", op, x, y, w, h, c.buf.Width, c.buf.Height)
	}
}

func (c *checkedRegion) GetRegion(x, y, w, h int) []uint32 {
	c.t.Helper()
	c.gets++
	c.inBounds("GetRegion", x, y, w, h)
	return c.buf.GetRegion(x, y, w, h)
}

func (c *checkedRegion) SetRegion(x, y, w, h int, pix []uint32) {
	c.t.Helper()
	c.sets++
	c.inBounds("SetRegion", x, y, w, h)
	if len(pix) != w*h {
		c.t.Errorf("SetRegion got %d pixels for %dx%d", len(pix), w, h)
	}
	c.buf.SetRegion(x, y, w, h, pix)
}

// recordingProgress checks the Start, UnitDone, Finished protocol.
type recordingProgress struct {
	t        *testing.T
	started  int
	total    int
	done     int
	finished int

	// cancel, when set, runs after unit cancelAt completes.
	cancel   context.CancelFunc
	cancelAt int
}

func (p *recordingProgress) Start(units int) {
	p.started++
	p.total = units
}

func (p *recordingProgress) UnitDone() {
	if p.started != 1 || p.finished != 0 {
		p.t.Errorf("UnitDone outside Start/Finished (started=%d finished=%d)", p.started, p.finished)
	}
	p.done++
	if p.done > p.total {
		p.t.Errorf("UnitDone %d exceeds total %d", p.done, p.total)
	}
	if p.cancel != nil && p.done == p.cancelAt {
		p.cancel()
	}
}

func (p *recordingProgress) Finished() {
	p.finished++
}

func (p *recordingProgress) check(wantTotal, wantDone int) {
	p.t.Helper()
	if p.started != 1 {
		p.t.Errorf("Start called %d times, want 1", p.started)
	}
	if p.finished != 1 {
		p.t.Errorf("Finished called %d times, want 1", p.finished)
	}
	if p.total != wantTotal {
		p.t.Errorf("total = %d, want %d", p.total, wantTotal)
	}
	if p.done != wantDone {
		p.t.Errorf("units done = %d, want %d", p.done, wantDone)
	}
}
