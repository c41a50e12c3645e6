package catmull

import (
	"fmt"
	"math"

	"github.com/e-matteson/lapstrake"
)

// NewSegment creates a centripetal segment through four control points.
// Consecutive control points must not coincide.
func NewSegment(points [4]lapstrake.P3) *Segment {
	seg := &Segment{points: points}
	for i := 1; i < 4; i++ {
		// centripetal: alpha = 1/2
		seg.knots[i] = seg.knots[i-1] + math.Sqrt(points[i].Distance(points[i-1]))
	}
	tracer().Debugf("segment knots = %v", seg.knots)
	return seg
}

// Knots returns the parameters t0..t3 of the control points.
func (seg *Segment) Knots() [4]float64 {
	return seg.knots
}

// Sample returns resolution points, evenly spaced in the parameter of the
// chosen knot interval. With includeEnd the interval end point is appended,
// making resolution+1 points. Adjacent intervals share their end points, so
// chained samples omit it everywhere but at the very end.
func (seg *Segment) Sample(part Part, resolution int, includeEnd bool) []lapstrake.P3 {
	samples := make([]lapstrake.P3, 0, resolution+1)
	for k := 0; k < resolution; k++ {
		f := float64(k) / float64(resolution)
		samples = append(samples, seg.At(part, f))
	}
	if includeEnd {
		samples = append(samples, seg.At(part, 1.0))
	}
	return samples
}

// At evaluates the segment at fraction f ∈ [0,1] of a knot interval.
func (seg *Segment) At(part Part, f float64) lapstrake.P3 {
	i := int(part)
	t := seg.knots[i] + f*(seg.knots[i+1]-seg.knots[i])
	return seg.compute(t, part != Middle)
}

// compute runs the Barry-Goldman pyramid at parameter t. For the outer
// intervals the last blend spans [t0,t3] instead of [t1,t2].
func (seg *Segment) compute(t float64, outer bool) lapstrake.P3 {
	p := seg.points
	a1 := seg.blend(0, 1, p[0], p[1], t)
	a2 := seg.blend(1, 2, p[1], p[2], t)
	a3 := seg.blend(2, 3, p[2], p[3], t)
	b1 := seg.blend(0, 2, a1, a2, t)
	b2 := seg.blend(1, 3, a2, a3, t)
	if outer {
		return seg.blend(0, 3, b1, b2, t)
	}
	return seg.blend(1, 2, b1, b2, t)
}

func (seg *Segment) blend(i, j int, p, q lapstrake.P3, t float64) lapstrake.P3 {
	ti, tj := seg.knots[i], seg.knots[j]
	left := p.Mul((tj - t) / (tj - ti))
	right := q.Mul((t - ti) / (tj - ti))
	return left.Add(right)
}

func (seg *Segment) String() string {
	return fmt.Sprintf("%v .. %v .. %v .. %v", seg.points[0], seg.points[1],
		seg.points[2], seg.points[3])
}
