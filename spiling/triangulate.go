package spiling

import (
	"math"
	"math/cmplx"

	"github.com/e-matteson/lapstrake"
)

// triangulate finds the point at distance x from p1 and distance y from p2,
// counter-clockwise of the ray p1→p2.
//
// If p1 and p2 coincide there is no direction to measure from and the point
// is put at -x along the X axis. If x is zero the point is found by pivoting
// around p2 instead, which avoids dividing by x.
func triangulate(p1, p2 lapstrake.Pair, x, y float64) lapstrake.Pair {
	l := p1.Distance(p2)
	if lapstrake.Is0(10 * l) {
		tracer().Debugf("triangulate: coincident pivots at %v", p1)
		return p1 + lapstrake.P(-x, 0)
	}
	if lapstrake.Is0(x) {
		cos := lapstrake.Clamp((l*l+y*y-x*x)/(2*l*y), -1, 1)
		angle := -math.Acos(cos)
		return p2 + (p1 - p2).Scaled(1 / l).Rotated(angle).Scaled(y)
	}
	cos := lapstrake.Clamp((l*l+x*x-y*y)/(2*l*x), -1, 1)
	angle := math.Acos(cos)
	return p1 + (p2 - p1).Scaled(1 / l).Rotated(angle).Scaled(x)
}

// finite is a predicate: are both parts of p proper numbers?
func finite(p lapstrake.Pair) bool {
	return !cmplx.IsNaN(p.C()) && !cmplx.IsInf(p.C())
}
