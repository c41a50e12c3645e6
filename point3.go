package lapstrake

import (
	"fmt"
	"math"
)

// P3 is a point on the hull. X runs fore-aft, Y is the half-breadth from the
// centerline and Z the height above base.
type P3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 is a quick notation for constructing a 3D point.
func Pt3(x, y, z float64) P3 {
	return P3{X: x, Y: y, Z: z}
}

func (p P3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// Add returns p+q.
func (p P3) Add(q P3) P3 {
	return P3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p-q.
func (p P3) Sub(q P3) P3 {
	return P3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Mul scales p by a.
func (p P3) Mul(a float64) P3 {
	return P3{p.X * a, p.Y * a, p.Z * a}
}

// Lerp linearly interpolates between p (t=0) and q (t=1).
func (p P3) Lerp(q P3, t float64) P3 {
	return p.Mul(1 - t).Add(q.Mul(t))
}

// Distance returns the euclidean distance between two points.
func (p P3) Distance(q P3) float64 {
	d := p.Sub(q)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Equal compares two points within Epsilon.
func (p P3) Equal(q P3) bool {
	return Is0(p.X-q.X) && Is0(p.Y-q.Y) && Is0(p.Z-q.Z)
}

// IsNaN is a predicate: has p an undefined coordinate?
func (p P3) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

// Polyline length of a sequence of points.
func Polyline(points []P3) float64 {
	l := 0.0
	for i := 1; i < len(points); i++ {
		l += points[i].Distance(points[i-1])
	}
	return l
}

// RemoveDuplicates collapses runs of consecutive points closer than
// threshold, keeping the first point of each run. The argument is unchanged.
func RemoveDuplicates(points []P3, threshold float64) []P3 {
	if len(points) == 0 {
		return nil
	}
	good := make([]P3, 1, len(points))
	good[0] = points[0]
	for _, pt := range points[1:] {
		if pt.Distance(good[len(good)-1]) < threshold {
			tracer().Debugf("dropping near-duplicate point %v", pt)
			continue
		}
		good = append(good, pt)
	}
	return good
}

// Extents returns the component-wise minimum and maximum of a point set.
func Extents(points []P3) (min P3, max P3) {
	if len(points) == 0 {
		return
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min = P3{math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z)}
		max = P3{math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z)}
	}
	return
}
