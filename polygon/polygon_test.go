package polygon

import (
	"testing"

	"github.com/e-matteson/lapstrake"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(lapstrake.P(0, 0)).Knot(lapstrake.P(1, 3)).Knot(lapstrake.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
	assert.Equal(t, lapstrake.P(0, 0), pg.Z(3))
	assert.InDelta(t, 4.5, pg.Area(), 1e-12)
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(lapstrake.P(0, 5), lapstrake.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	ll, ur := box.BoundingBox()
	assert.Equal(t, lapstrake.P(0, 1), ll)
	assert.Equal(t, lapstrake.P(4, 5), ur)
	assert.InDelta(t, 16.0, box.Area(), 1e-12)
}

func TestCycleNeedsThreeKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Panics(t, func() { NullPolygon().Knot(lapstrake.P(0, 0)).Cycle() })
}

func TestFromPairsDropsClosingPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := FromPairs([]lapstrake.Pair{
		lapstrake.P(0, 0), lapstrake.P(2, 0), lapstrake.P(2, 1), lapstrake.P(0, 1), lapstrake.P(0, 0),
	})
	assert.Equal(t, 4, pg.N())
	assert.True(t, pg.IsCycle())
}

func TestOverlap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(lapstrake.P(0, 0), lapstrake.P(2, 2))
	b := Box(lapstrake.P(1, 1), lapstrake.P(3, 3))
	c := Box(lapstrake.P(0, 3), lapstrake.P(2, 4))
	assert.InDelta(t, 1.0, a.Intersection(b), 1e-9)
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}
