package imath

import "math"

// Useful constants.
const (
	HalfPi    = math.Pi / 2
	QuarterPi = math.Pi / 4
	TwoPi     = math.Pi * 2
	Sqrt3     = 1.7320508075688772
	HalfSqrt3 = Sqrt3 / 2
)

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the unit interval.
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ClampInt limits v to the range [lo, hi].
func ClampInt(v, lo, hi int) int {
	return min(hi, max(v, lo))
}

// ClampByte limits a channel value to [0, 255].
func ClampByte(v int) uint32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint32(v)
}

// Mod returns a modulo b with the result in [0, b) for positive b,
// even when a is negative. Mod(-0.5, 2) is 1.5, where math.Mod
// would return -0.5.
func Mod(a, b float64) float64 {
	n := math.Trunc(a / b)
	a -= n * b
	if a < 0 {
		a += b
		// A tiny negative a rounds up to b itself.
		if a >= b {
			return 0
		}
	}
	return a
}

// ModInt is the integer form of Mod. b must be positive.
func ModInt(a, b int) int {
	a %= b
	if a < 0 {
		return a + b
	}
	return a
}

// Lerp linearly interpolates between a and b. t=0 gives a, t=1 gives b.
func Lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// LerpInt interpolates between two integers, truncating the result.
func LerpInt(t float64, a, b int) int {
	return int(float64(a) + t*float64(b-a))
}

// Step returns 0 for x < a and 1 otherwise.
func Step(a, x float64) float64 {
	if x < a {
		return 0
	}
	return 1
}

// Pulse returns 1 for x in [a, b) and 0 elsewhere.
func Pulse(a, b, x float64) float64 {
	if x < a || x >= b {
		return 0
	}
	return 1
}

// SmoothStep is 0 below a, 1 at or above b and follows the cubic
// Hermite curve 3t²-2t³ in between, with t = (x-a)/(b-a).
func SmoothStep(a, b, x float64) float64 {
	if x < a {
		return 0
	}
	if x >= b {
		return 1
	}
	return SmoothStep01((x - a) / (b - a))
}

// SmoothStep01 evaluates 3x²-2x³ for x already in [0, 1].
func SmoothStep01(x float64) float64 {
	return x * x * (3 - 2*x)
}

// SmootherStep01 evaluates the quintic 6x⁵-15x⁴+10x³ for x in [0, 1].
// Its first and second derivatives vanish at both ends.
func SmootherStep01(x float64) float64 {
	return x * x * x * (x*(x*6-15) + 10)
}

// SmoothPulse rises smoothly from 0 to 1 over [a1, a2], stays at 1 until
// b1 and falls smoothly back to 0 over [b1, b2].
func SmoothPulse(a1, a2, b1, b2, x float64) float64 {
	if x < a1 || x >= b2 {
		return 0
	}
	if x >= a2 {
		if x < b1 {
			return 1
		}
		return 1 - SmoothStep01((x-b1)/(b2-b1))
	}
	return SmoothStep01((x - a1) / (a2 - a1))
}

// Bias moves values in the unit interval towards 0 (b < 0.5) or 1 (b > 0.5).
// A bias of 0.5 is the identity.
func Bias(a, b float64) float64 {
	return a / ((1/b-2)*(1-a) + 1)
}

// Gain is a variant of the gamma function. A gain of 0.5 is the identity.
func Gain(a, b float64) float64 {
	c := (1/b - 2) * (1 - 2*a)
	if a < 0.5 {
		return a / (c + 1)
	}
	return (c - a) / (c - 1)
}

// CircleUp maps the unit interval onto a quarter circle bulging upwards.
func CircleUp(x float64) float64 {
	x = 1 - x
	return math.Sqrt(1 - x*x)
}

// CircleDown maps the unit interval onto a quarter circle bulging downwards.
func CircleDown(x float64) float64 {
	return 1 - math.Sqrt(1-x*x)
}

// Triangle is a periodic triangle wave with period 1 and range [0, 1].
func Triangle(x float64) float64 {
	r := Mod(x, 1)
	if r < 0.5 {
		return 2 * r
	}
	return 2 * (1 - r)
}

// ReflectTriangle folds x into [0, width) by mirroring at both edges,
// so that indices run 0..width-1, width-1..0 and so on.
func ReflectTriangle(x, width int) int {
	doubleWidth := 2 * width
	m := ModInt(x, doubleWidth)
	if m >= width {
		return doubleWidth - m - 1
	}
	return m
}
