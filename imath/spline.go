package imath

import (
	"errors"
	"fmt"
)

// Spline errors.
var (
	// ErrTooFewKnots is returned when a spline has fewer than 4 knots,
	// which leaves no span to evaluate.
	ErrTooFewKnots = errors.New("imath: too few knots in spline")

	// ErrKnotMismatch is returned when x and y knot slices differ in length.
	ErrKnotMismatch = errors.New("imath: x and y knot counts differ")
)

// Catmull-Rom basis matrix, rows give the cubic, quadratic, linear and
// constant coefficients.
var catmullRom = [4][4]float64{
	{-0.5, 1.5, -1.5, 0.5},
	{1.0, -2.5, 2.0, -0.5},
	{-0.5, 0.0, 0.5, 0.0},
	{0.0, 1.0, 0.0, 0.0},
}

// evalSpan evaluates one Catmull-Rom span at t in [0, 1]. The curve passes
// through k1 at t=0 and k2 at t=1.
func evalSpan(t, k0, k1, k2, k3 float64) float64 {
	var c [4]float64
	for i, m := range catmullRom {
		c[i] = m[0]*k0 + m[1]*k1 + m[2]*k2 + m[3]*k3
	}
	return ((c[0]*t+c[1])*t+c[2])*t + c[3]
}

// uniformSpan locates the span containing the normalized position x for a
// spline with n knots and returns it together with the local parameter.
func uniformSpan(x float64, n int) (span int, t float64) {
	x = Clamp01(x) * float64(n-3)
	span = min(int(x), n-4)
	return span, x - float64(span)
}

// knotSpan locates the span for an absolute position x against increasing
// x knots. Positions before the first interval pin to span 0 with t=0.
func knotSpan(x float64, xs []float64) (span int, t float64) {
	numSpans := len(xs) - 3
	for span = 0; span < numSpans; span++ {
		if xs[span+1] > x {
			break
		}
	}
	if w := xs[span+1] - xs[span]; w != 0 {
		t = (x - xs[span]) / w
	}
	span--
	if span < 0 {
		return 0, 0
	}
	return span, t
}

func checkKnots(n int) error {
	if n < 4 {
		return fmt.Errorf("%w: got %d", ErrTooFewKnots, n)
	}
	return nil
}

// Spline is a uniform Catmull-Rom spline over scalar knots.
type Spline struct {
	knots []float64
}

// NewSpline returns a spline through the given knots. The first and last
// knots only shape the ends: the curve runs from knots[1] to knots[n-2].
// The knots are copied.
func NewSpline(knots []float64) (*Spline, error) {
	if err := checkKnots(len(knots)); err != nil {
		return nil, err
	}
	return &Spline{knots: append([]float64(nil), knots...)}, nil
}

// At evaluates the spline at x, which is clamped to [0, 1].
func (s *Spline) At(x float64) float64 {
	v, _, _ := s.eval(x)
	return v
}

// AtClamped evaluates the spline at x and clamps the result between the
// two inner knots of the evaluated span, removing overshoot.
func (s *Spline) AtClamped(x float64) float64 {
	v, k1, k2 := s.eval(x)
	if v < k1 {
		return k1
	}
	if v > k2 {
		return k2
	}
	return v
}

func (s *Spline) eval(x float64) (v, k1, k2 float64) {
	span, t := uniformSpan(x, len(s.knots))
	k := s.knots[span : span+4]
	return evalSpan(t, k[0], k[1], k[2], k[3]), k[1], k[2]
}

// KnotSpline is a Catmull-Rom spline over non-uniformly spaced knots.
type KnotSpline struct {
	xs, ys []float64
}

// NewKnotSpline returns a spline through the points (xs[i], ys[i]).
// xs must be non-decreasing.
func NewKnotSpline(xs, ys []float64) (*KnotSpline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x, %d y", ErrKnotMismatch, len(xs), len(ys))
	}
	if err := checkKnots(len(xs)); err != nil {
		return nil, err
	}
	return &KnotSpline{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}, nil
}

// At evaluates the spline at the absolute position x.
func (s *KnotSpline) At(x float64) float64 {
	span, t := knotSpan(x, s.xs)
	k := s.ys[span : span+4]
	return evalSpan(t, k[0], k[1], k[2], k[3])
}

// ColorSpline is a uniform Catmull-Rom spline through ARGB colors. Each
// channel is interpolated on its own.
type ColorSpline struct {
	knots []uint32
}

// NewColorSpline returns a color spline through the given knots.
func NewColorSpline(knots []uint32) (*ColorSpline, error) {
	if err := checkKnots(len(knots)); err != nil {
		return nil, err
	}
	return &ColorSpline{knots: append([]uint32(nil), knots...)}, nil
}

// At evaluates the spline at x, which is clamped to [0, 1].
func (s *ColorSpline) At(x float64) uint32 {
	span, t := uniformSpan(x, len(s.knots))
	return evalColorSpan(t, s.knots[span:span+4])
}

// ColorKnotSpline is a color spline over non-uniformly spaced integer
// positions, as used by gradient editors.
type ColorKnotSpline struct {
	xs []float64
	ys []uint32
}

// NewColorKnotSpline returns a color spline through (xs[i], ys[i]).
func NewColorKnotSpline(xs []int, ys []uint32) (*ColorKnotSpline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x, %d y", ErrKnotMismatch, len(xs), len(ys))
	}
	if err := checkKnots(len(xs)); err != nil {
		return nil, err
	}
	fx := make([]float64, len(xs))
	for i, x := range xs {
		fx[i] = float64(x)
	}
	return &ColorKnotSpline{xs: fx, ys: append([]uint32(nil), ys...)}, nil
}

// At evaluates the spline at position x.
func (s *ColorKnotSpline) At(x int) uint32 {
	span, t := knotSpan(float64(x), s.xs)
	return evalColorSpan(t, s.ys[span:span+4])
}

func evalColorSpan(t float64, k []uint32) uint32 {
	var v uint32
	for shift := 0; shift < 32; shift += 8 {
		n := evalSpan(t,
			float64((k[0]>>shift)&0xff),
			float64((k[1]>>shift)&0xff),
			float64((k[2]>>shift)&0xff),
			float64((k[3]>>shift)&0xff),
		)
		v |= ClampByte(int(n)) << shift
	}
	return v
}
