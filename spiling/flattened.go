package spiling

import (
	"fmt"

	"github.com/e-matteson/lapstrake"
	"github.com/e-matteson/lapstrake/polygon"
	"github.com/paulmach/orb"
)

// NewFlattenedPlank creates a flattened plank from its two boundaries, which
// must have the same number of points.
func NewFlattenedPlank(top, bottom []lapstrake.Pair) *FlattenedPlank {
	if len(top) != len(bottom) {
		panic(fmt.Sprintf("flattened plank has %d top points but %d bottom points",
			len(top), len(bottom)))
	}
	fp := &FlattenedPlank{
		top:    make([]lapstrake.Pair, len(top)),
		bottom: make([]lapstrake.Pair, len(bottom)),
	}
	copy(fp.top, top)
	copy(fp.bottom, bottom)
	return fp
}

// Top returns a copy of the upper boundary.
func (fp *FlattenedPlank) Top() []lapstrake.Pair {
	return append([]lapstrake.Pair(nil), fp.top...)
}

// Bottom returns a copy of the lower boundary.
func (fp *FlattenedPlank) Bottom() []lapstrake.Pair {
	return append([]lapstrake.Pair(nil), fp.bottom...)
}

// N is the number of points on each boundary.
func (fp *FlattenedPlank) N() int {
	return len(fp.top)
}

// Outline is the closed boundary of the plank: the top line, the bottom line
// in reverse, and the first top point again.
func (fp *FlattenedPlank) Outline() []lapstrake.Pair {
	outline := make([]lapstrake.Pair, 0, 2*len(fp.top)+1)
	outline = append(outline, fp.top...)
	for i := len(fp.bottom) - 1; i >= 0; i-- {
		outline = append(outline, fp.bottom[i])
	}
	if len(fp.top) > 0 {
		outline = append(outline, fp.top[0])
	}
	return outline
}

// Bound returns the 2D bounding box of the plank.
func (fp *FlattenedPlank) Bound() orb.Bound {
	ls := make(orb.LineString, 0, len(fp.top)+len(fp.bottom))
	for _, p := range fp.top {
		ls = append(ls, orb.Point{p.X(), p.Y()})
	}
	for _, p := range fp.bottom {
		ls = append(ls, orb.Point{p.X(), p.Y()})
	}
	return ls.Bound()
}

// Length is the length of the top edge.
func (fp *FlattenedPlank) Length() float64 {
	l := 0.0
	for i := 1; i < len(fp.top); i++ {
		l += fp.top[i].Distance(fp.top[i-1])
	}
	return l
}

// Oriented returns a copy of the plank, rotated around its first top point
// so that the chord of the top edge runs horizontally to the right.
func (fp *FlattenedPlank) Oriented() *FlattenedPlank {
	if len(fp.top) < 2 {
		return NewFlattenedPlank(fp.top, fp.bottom)
	}
	left, right := fp.top[0], fp.top[len(fp.top)-1]
	theta := -(right - left).Angle()
	return fp.transformed(lapstrake.RotationAround(left, theta))
}

// Shifted returns a copy of the plank, moved up by dy.
func (fp *FlattenedPlank) Shifted(dy float64) *FlattenedPlank {
	return fp.transformed(lapstrake.Translation(lapstrake.P(0, dy)))
}

func (fp *FlattenedPlank) transformed(t lapstrake.AT) *FlattenedPlank {
	moved := &FlattenedPlank{
		top:    make([]lapstrake.Pair, len(fp.top)),
		bottom: make([]lapstrake.Pair, len(fp.bottom)),
	}
	for i, p := range fp.top {
		moved.top[i] = t.Transform(p)
	}
	for i, p := range fp.bottom {
		moved.bottom[i] = t.Transform(p)
	}
	return moved
}

// Polygon returns the outline as a closed polygon.
func (fp *FlattenedPlank) Polygon() *polygon.Polygon {
	return polygon.FromPairs(fp.Outline())
}
