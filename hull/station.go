package hull

import (
	"sort"

	"github.com/e-matteson/lapstrake"
	"github.com/e-matteson/lapstrake/catmull"
	"github.com/pkg/errors"
)

// Station is a cross-section of the hull at a fore-aft position: the
// measured reference points, bottom to top, and a spline through them.
type Station struct {
	name     string
	position float64
	points   []lapstrake.P3
	spline   *catmull.Spline
}

// NewStation creates a station from reference points in any order. Points
// are sorted by height and points closer than lapstrake.EqualityThreshold
// to the one below are dropped. At least 4 distinct points are needed.
func NewStation(name string, position float64, points []lapstrake.P3, resolution int) (*Station, error) {
	pts := make([]lapstrake.P3, len(points))
	copy(pts, points)
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].Z < pts[j].Z
	})
	pts = lapstrake.RemoveDuplicates(pts, lapstrake.EqualityThreshold)
	sp, err := catmull.New(pts, resolution)
	if err != nil {
		return nil, errors.Wrapf(err, "station %q", name)
	}
	tracer().Debugf("station %q at %g with %d points", name, position, len(pts))
	return &Station{
		name:     name,
		position: position,
		points:   pts,
		spline:   sp,
	}, nil
}

// Name returns the name of the station.
func (st *Station) Name() string {
	return st.name
}

// Position returns the fore-aft position of the station.
func (st *Station) Position() float64 {
	return st.position
}

// Points returns a copy of the reference points, bottom to top.
func (st *Station) Points() []lapstrake.P3 {
	return append([]lapstrake.P3(nil), st.points...)
}

// Spline returns the curve of the station.
func (st *Station) Spline() *catmull.Spline {
	return st.spline
}

// AtT returns the point a fraction f of the way along the station's curve,
// measured from the bottom.
func (st *Station) AtT(f float64) lapstrake.P3 {
	return st.spline.AtT(f)
}

func (st *Station) String() string {
	return st.name
}
