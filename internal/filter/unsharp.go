package filter

import "github.com/gogpu/imagefx/imath"

// UnsharpRow sharpens one row of pixels against its blurred copy.
//
// For each color channel the difference d = orig - blurred is amplified to
// orig + 4*amount*d, but only where |d| >= threshold; smaller differences
// are treated as noise and the original value passes through. Alpha is
// always copied from orig. With amount 0 the row is returned unchanged.
//
// orig, blurred and out must have the same length. out may alias orig.
func UnsharpRow(orig, blurred, out []uint32, amount float64, threshold int) {
	gain := 4*amount + 1

	for i, p1 := range orig {
		p2 := blurred[i]
		out[i] = p1&0xff000000 |
			sharpen(p1>>16&0xff, p2>>16&0xff, gain, threshold)<<16 |
			sharpen(p1>>8&0xff, p2>>8&0xff, gain, threshold)<<8 |
			sharpen(p1&0xff, p2&0xff, gain, threshold)
	}
}

func sharpen(orig, blurred uint32, gain float64, threshold int) uint32 {
	d := int(orig) - int(blurred)
	if abs(d) < threshold {
		return orig
	}
	return imath.ClampByte(int(gain*float64(d) + float64(blurred)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
