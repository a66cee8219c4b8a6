package reveal

import (
	"fmt"
	"math"
)

// Easing maps transition progress in [0,1] onto eased progress in
// [0,1]. Implementations satisfy Ease(0) == 0 and Ease(1) == 1 and are
// non-decreasing.
type Easing interface {
	Ease(t float64) float64
	// CSS returns the equivalent CSS timing function.
	CSS() string
}

// Linear returns the identity easing.
func Linear() Easing { return linear{} }

type linear struct{}

func (linear) Ease(t float64) float64 { return clamp01(t) }

func (linear) CSS() string { return "linear" }

// Ease is the CSS "ease" curve.
func Ease() Easing { return CubicBezier(0.25, 0.1, 0.25, 1) }

// EaseOut is the CSS "ease-out" curve.
func EaseOut() Easing { return CubicBezier(0, 0, 0.58, 1) }

// EaseInOut is the CSS "ease-in-out" curve.
func EaseInOut() Easing { return CubicBezier(0.42, 0, 0.58, 1) }

// CubicBezier returns a CSS-style cubic Bézier easing. Control points are
// clamped to [0,1] on both axes, which keeps the curve monotonic and
// inside the unit square.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return cubicBezier{
		x1: clamp01(x1),
		y1: clamp01(y1),
		x2: clamp01(x2),
		y2: clamp01(y2),
	}
}

type cubicBezier struct {
	x1, y1, x2, y2 float64
}

const (
	bezierEpsilon      = 1e-7
	bezierNewtonRounds = 8
)

func (b cubicBezier) Ease(t float64) float64 {
	t = clamp01(t)
	if t == 0 || t == 1 {
		return t
	}
	return clamp01(bezierCoord(b.solveX(t), b.y1, b.y2))
}

func (b cubicBezier) CSS() string {
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", b.x1, b.y1, b.x2, b.y2)
}

// solveX finds s with x(s) == x. Newton first, bisection when the
// slope flattens out.
func (b cubicBezier) solveX(x float64) float64 {
	s := x
	for i := 0; i < bezierNewtonRounds; i++ {
		diff := bezierCoord(s, b.x1, b.x2) - x
		if math.Abs(diff) < bezierEpsilon {
			return s
		}
		slope := bezierSlope(s, b.x1, b.x2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		s -= diff / slope
	}

	lo, hi := 0.0, 1.0
	s = x
	for lo < hi {
		v := bezierCoord(s, b.x1, b.x2)
		if math.Abs(v-x) < bezierEpsilon {
			return s
		}
		if x > v {
			lo = s
		} else {
			hi = s
		}
		next := (lo + hi) / 2
		if next == s {
			break
		}
		s = next
	}
	return s
}

// bezierCoord evaluates one axis of a cubic Bézier anchored at 0 and 1.
func bezierCoord(s, p1, p2 float64) float64 {
	c := 3 * p1
	b := 3*(p2-p1) - c
	a := 1 - c - b
	return ((a*s+b)*s + c) * s
}

func bezierSlope(s, p1, p2 float64) float64 {
	c := 3 * p1
	b := 3*(p2-p1) - c
	a := 1 - c - b
	return (3*a*s+2*b)*s + c
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
