package imath

// Unpack splits a packed ARGB pixel into its four channels.
func Unpack(p uint32) (a, r, g, b uint32) {
	return p >> 24, (p >> 16) & 0xff, (p >> 8) & 0xff, p & 0xff
}

// Pack assembles a pixel from four channels. Each channel must be in 0..255.
func Pack(a, r, g, b uint32) uint32 {
	return a<<24 | r<<16 | g<<8 | b
}

// MixColors interpolates each channel of two pixels independently,
// truncating the results.
func MixColors(t float64, c1, c2 uint32) uint32 {
	a1, r1, g1, b1 := Unpack(c1)
	a2, r2, g2, b2 := Unpack(c2)
	return Pack(
		uint32(LerpInt(t, int(a1), int(a2))),
		uint32(LerpInt(t, int(r1), int(r2))),
		uint32(LerpInt(t, int(g1), int(g2))),
		uint32(LerpInt(t, int(b1), int(b2))),
	)
}

// BilinearInterpolate blends the four corner pixels nw, ne, sw and se at the
// fractional position (x, y) inside the cell, where (0, 0) is nw and (1, 1)
// is se. Channels are interpolated independently and truncated.
func BilinearInterpolate(x, y float64, nw, ne, sw, se uint32) uint32 {
	cx := 1 - x
	cy := 1 - y

	var out uint32
	for shift := 0; shift < 32; shift += 8 {
		c0 := float64((nw >> shift) & 0xff)
		c1 := float64((ne >> shift) & 0xff)
		c2 := float64((sw >> shift) & 0xff)
		c3 := float64((se >> shift) & 0xff)

		m0 := cx*c0 + x*c1
		m1 := cx*c2 + x*c3
		out |= uint32(cy*m0+y*m1) << shift
	}
	return out
}

// BrightnessNTSC returns the NTSC luma of a pixel in 0..255, ignoring alpha.
func BrightnessNTSC(p uint32) int {
	_, r, g, b := Unpack(p)
	return int(float64(r)*0.299 + float64(g)*0.587 + float64(b)*0.114)
}

// Premultiply scales the color channels of every pixel by alpha/255 in place.
// Results are truncated.
func Premultiply(p []uint32) {
	for i, c := range p {
		a, r, g, b := Unpack(c)
		f := float64(a) * (1.0 / 255.0)
		p[i] = Pack(a, uint32(float64(r)*f), uint32(float64(g)*f), uint32(float64(b)*f))
	}
}

// Unpremultiply reverses Premultiply in place. Pixels with alpha 0 or 255
// are left untouched, and channels pushed past 255 by truncation error are
// clamped back to 255.
//
// The round trip through Premultiply and Unpremultiply is lossy: for alpha
// in 1..254 a channel c comes back as c' with c' <= c and c-c' < 255/alpha+1,
// so at most 2 below the original once alpha reaches 128.
func Unpremultiply(p []uint32) {
	for i, c := range p {
		a, r, g, b := Unpack(c)
		if a == 0 || a == 255 {
			continue
		}
		f := 255.0 / float64(a)
		p[i] = Pack(a,
			ClampByte(int(float64(r)*f)),
			ClampByte(int(float64(g)*f)),
			ClampByte(int(float64(b)*f)),
		)
	}
}
