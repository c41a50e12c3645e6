package catmull

import (
	"fmt"
	"sort"

	"github.com/e-matteson/lapstrake"
)

// New fits a spline through points, sampling every knot interval with
// resolution points. Consecutive points closer than
// lapstrake.EqualityThreshold are collapsed first; at least 4 distinct points
// have to remain.
//
// The first window of four points contributes its first interval, every
// window its middle interval, and the last window its last interval,
// including the end point. The resulting polyline has resolution·(N−1)+1
// samples for N distinct points.
func New(points []lapstrake.P3, resolution int) (*Spline, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidResolution, resolution)
	}
	for i, pt := range points {
		if pt.IsNaN() {
			return nil, fmt.Errorf("%w at point %d", ErrInvalidPoint, i)
		}
	}
	pts := lapstrake.RemoveDuplicates(points, lapstrake.EqualityThreshold)
	n := len(pts)
	if n < 4 {
		return nil, fmt.Errorf("%w: got %d of %d", ErrTooFewPoints, n, len(points))
	}
	samples := make([]lapstrake.P3, 0, resolution*(n-1)+1)
	for i := 0; i < n-3; i++ {
		seg := NewSegment([4]lapstrake.P3{pts[i], pts[i+1], pts[i+2], pts[i+3]})
		if i == 0 {
			samples = append(samples, seg.Sample(First, resolution, false)...)
		}
		samples = append(samples, seg.Sample(Middle, resolution, false)...)
		if i == n-4 {
			samples = append(samples, seg.Sample(Last, resolution, true)...)
		}
	}
	spline := &Spline{
		points:     pts,
		samples:    samples,
		resolution: resolution,
		length:     lapstrake.Polyline(samples),
	}
	tracer().Debugf("spline through %d points: %d samples, length %.4f",
		n, len(samples), spline.length)
	return spline, nil
}

// MustNew is a compatibility helper which panics on construction errors.
func MustNew(points []lapstrake.P3, resolution int) *Spline {
	s, err := New(points, resolution)
	if err != nil {
		panic(err)
	}
	return s
}

// N returns the number of (distinct) points the spline passes through.
func (sp *Spline) N() int {
	return len(sp.points)
}

// Points returns a copy of the points the spline passes through.
func (sp *Spline) Points() []lapstrake.P3 {
	return append([]lapstrake.P3(nil), sp.points...)
}

// Resolution returns the samples per knot interval given at construction.
func (sp *Spline) Resolution() int {
	return sp.resolution
}

// Sample returns a copy of the polyline computed at construction.
func (sp *Spline) Sample() []lapstrake.P3 {
	return append([]lapstrake.P3(nil), sp.samples...)
}

// Resample returns resolution+1 points along the spline, evenly spaced by
// arc length, including both ends.
func (sp *Spline) Resample(resolution int) []lapstrake.P3 {
	if resolution < 1 {
		panic(fmt.Sprintf("cannot resample spline with resolution %d", resolution))
	}
	points := make([]lapstrake.P3, resolution+1)
	for k := 0; k <= resolution; k++ {
		points[k] = sp.AtT(float64(k) / float64(resolution))
	}
	return points
}

// Length returns the length of the sampled polyline.
func (sp *Spline) Length() float64 {
	return sp.length
}

// AtLen returns the point at arc length dist from the start of the spline,
// measured along the sampled polyline. It panics for distances outside
// [0, Length()].
func (sp *Spline) AtLen(dist float64) lapstrake.P3 {
	if dist < 0 {
		panic(fmt.Sprintf("negative arc length %g on spline", dist))
	}
	length := 0.0
	prev := sp.samples[0]
	for _, pt := range sp.samples[1:] {
		delta := pt.Distance(prev)
		if length+delta >= dist {
			if delta == 0 {
				return prev
			}
			t := (dist - length) / delta
			return prev.Lerp(pt, t)
		}
		length += delta
		prev = pt
	}
	if dist-length <= lapstrake.Epsilon {
		return prev
	}
	panic(fmt.Sprintf("arc length %g beyond end of spline (length %g)", dist, length))
}

// AtT returns the point a fraction f of the way along the spline.
func (sp *Spline) AtT(f float64) lapstrake.P3 {
	return sp.AtLen(f * sp.length)
}

// AtX returns the sample whose fore-aft coordinate is nearest to x.
//
// This is a binary search, not a root finder: it assumes the samples are
// ordered by X, which holds only approximately for curved lines. Values
// outside the sampled range give the nearer end point.
func (sp *Spline) AtX(x float64) lapstrake.P3 {
	n := len(sp.samples)
	ascending := sp.samples[n-1].X >= sp.samples[0].X
	i := sort.Search(n, func(i int) bool {
		if ascending {
			return sp.samples[i].X >= x
		}
		return sp.samples[i].X <= x
	})
	switch {
	case i == 0:
		return sp.samples[0]
	case i == n:
		tracer().Debugf("x = %g is beyond the end of spline", x)
		return sp.samples[n-1]
	}
	if absDiff(sp.samples[i].X, x) < absDiff(sp.samples[i-1].X, x) {
		return sp.samples[i]
	}
	return sp.samples[i-1]
}
