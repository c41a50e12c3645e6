package catmull

import (
	"errors"

	"github.com/e-matteson/lapstrake"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'catmull'
func tracer() tracing.Trace {
	return tracing.Select("catmull")
}

var (
	// ErrTooFewPoints indicates fewer than 4 distinct points for a spline.
	ErrTooFewPoints = errors.New("spline needs at least 4 distinct points")
	// ErrInvalidResolution indicates a sampling resolution below 1.
	ErrInvalidResolution = errors.New("spline resolution must be at least 1")
	// ErrInvalidPoint indicates a point coordinate contains NaN.
	ErrInvalidPoint = errors.New("spline has invalid point coordinate")
)

// Part selects one of the three knot intervals of a Segment.
// Whenever possible, use the middle one.
type Part int8

// The knot intervals of a segment.
const (
	First  Part = iota // [t0,t1], outer
	Middle             // [t1,t2], true Catmull-Rom
	Last               // [t2,t3], outer
)

func (p Part) String() string {
	switch p {
	case First:
		return "first"
	case Middle:
		return "middle"
	case Last:
		return "last"
	}
	return "<unknown part>"
}

// Segment is a cubic centripetal interpolation between four points.
type Segment struct {
	points [4]lapstrake.P3 // control points P0..P3
	knots  [4]float64      // parameter at which each control point is hit
}

// Spline is a chain of segments through any number (≥4) of points.
type Spline struct {
	points     []lapstrake.P3 // input points, after collapsing duplicates
	samples    []lapstrake.P3 // dense polyline, computed at construction
	resolution int            // samples per knot interval
	length     float64        // polyline length of samples
}
