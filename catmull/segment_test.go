package catmull

import (
	"testing"

	"github.com/e-matteson/lapstrake"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func assertNear(t *testing.T, want, got lapstrake.P3, delta float64) {
	t.Helper()
	if want.Distance(got) > delta {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// control points at distances 1, 4, 1 give knots 0, 1, 3, 4
func squareKnotSegment() *Segment {
	return NewSegment([4]lapstrake.P3{
		lapstrake.Pt3(0, 0, 0),
		lapstrake.Pt3(1, 0, 0),
		lapstrake.Pt3(1, 4, 0),
		lapstrake.Pt3(1, 4, 1),
	})
}

func TestCentripetalKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := squareKnotSegment()
	assert.Equal(t, [4]float64{0, 1, 3, 4}, seg.Knots())
}

func TestSegmentHitsControlPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := squareKnotSegment()
	assertNear(t, seg.points[0], seg.At(First, 0), 1e-12)
	assertNear(t, seg.points[1], seg.At(First, 1), 1e-12)
	assertNear(t, seg.points[1], seg.At(Middle, 0), 1e-12)
	assertNear(t, seg.points[2], seg.At(Middle, 1), 1e-12)
	assertNear(t, seg.points[2], seg.At(Last, 0), 1e-12)
	assertNear(t, seg.points[3], seg.At(Last, 1), 1e-12)
}

func TestOuterIntervalBlendsOverAllKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := squareKnotSegment()
	// hand-computed pyramid at t = 0.5, final blend over [t0,t3]
	assertNear(t, lapstrake.Pt3(61.0/96.0, -0.375, 5.0/96.0), seg.At(First, 0.5), 1e-9)
}

func TestCollinearSegmentIsStraight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegment([4]lapstrake.P3{
		lapstrake.Pt3(0, 0, 0),
		lapstrake.Pt3(1, 0, 0),
		lapstrake.Pt3(2, 0, 0),
		lapstrake.Pt3(3, 0, 0),
	})
	samples := seg.Sample(Middle, 4, false)
	assert.Len(t, samples, 4)
	for k, x := range []float64{1, 1.25, 1.5, 1.75} {
		assertNear(t, lapstrake.Pt3(x, 0, 0), samples[k], 1e-12)
	}
	samples = seg.Sample(Last, 4, true)
	assert.Len(t, samples, 5)
	assertNear(t, lapstrake.Pt3(3, 0, 0), samples[4], 1e-12)
}

func TestPartString(t *testing.T) {
	assert.Equal(t, "middle", Middle.String())
	assert.Equal(t, "<unknown part>", Part(7).String())
}
