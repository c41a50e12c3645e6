package spiling

import (
	"errors"

	"github.com/e-matteson/lapstrake"
	"github.com/e-matteson/lapstrake/catmull"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'spiling'
func tracer() tracing.Trace {
	return tracing.Select("spiling")
}

// ErrDegenerateFlattening indicates that unrolling produced an undefined
// point, i.e. a triangle without any usable edge.
var ErrDegenerateFlattening = errors.New("plank cannot be flattened")

// DefaultLayoutGap is the clearance between stacked flattened planks, in
// feet, unless configured otherwise.
func DefaultLayoutGap() float64 {
	return 2 * lapstrake.EqualityThreshold
}

// Plank is a strip of the hull between two boundary curves. It lives at its
// position on the hull, in 3D.
type Plank struct {
	top        *catmull.Spline // upper boundary
	bottom     *catmull.Spline // lower boundary
	resolution int             // number of triangle pairs when flattening
}

// FlattenedPlank is a plank unrolled onto the plane. Top and bottom
// boundaries have the same number of points; point i of the top line faces
// point i of the bottom line.
type FlattenedPlank struct {
	top    []lapstrake.Pair
	bottom []lapstrake.Pair
}

// edges are the 3D lengths of a strip between index i and i+1.
type edges struct {
	top      float64 // top[i] – top[i+1]
	diagonal float64 // bottom[i] – top[i+1]
	rung     float64 // top[i+1] – bottom[i+1]
	bottom   float64 // bottom[i] – bottom[i+1]
}
