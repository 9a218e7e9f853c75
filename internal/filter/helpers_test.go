package filter

// Test helper functions shared across filter tests.

// solid returns a w*h slice filled with p.
func solid(w, h int, p uint32) []uint32 {
	pix := make([]uint32, w*h)
	for i := range pix {
		pix[i] = p
	}
	return pix
}

// gray packs an opaque gray pixel.
func gray(v uint32) uint32 {
	return 0xff000000 | v<<16 | v<<8 | v
}

// gradient returns a w*h image whose channels vary with position,
// so every channel and alpha differ between neighbours.
func gradient(w, h int) []uint32 {
	pix := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint32(128 + (x*7+y*3)%128)
			r := uint32((x * 255) / max(w-1, 1))
			g := uint32((y * 255) / max(h-1, 1))
			b := uint32((x*31 + y*17) % 256)
			pix[y*w+x] = a<<24 | r<<16 | g<<8 | b
		}
	}
	return pix
}

// convolve2D runs both transposed passes over a w x h image.
func convolve2D(k Kernel, in []uint32, w, h int, first, second ConvolveOptions) []uint32 {
	tmp := make([]uint32, w*h)
	out := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		ConvolveRow(k, in, tmp, w, h, y, first)
	}
	for x := 0; x < w; x++ {
		ConvolveRow(k, tmp, out, h, w, x, second)
	}
	return out
}
