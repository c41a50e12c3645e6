// Package polygon deals with closed 2D outlines, such as flattened planks
// laid out on a sheet of material. Clipping is done by polyclip-go, an
// implementation of the Martinez-Rueda-Feito algorithm.
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/e-matteson/lapstrake"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a closed outline. The closing edge from the last knot back to
// the first one is implicit.
type Polygon struct {
	knots  []lapstrake.Pair
	cyclic bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
//
//	pg := NullPolygon().Knot(lapstrake.P(0,0)).Knot(lapstrake.P(1,3)).Knot(lapstrake.P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a corner. Part of builder functionality.
func (pg *Polygon) Knot(p lapstrake.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if pg.N() < 3 {
		panic("cannot close polygon with less than 3 knots")
	}
	pg.cyclic = true
	return pg
}

// FromPairs creates a closed polygon from an outline. A repeated first
// point at the end of the outline is dropped.
func FromPairs(outline []lapstrake.Pair) *Polygon {
	pg := NullPolygon()
	for i, p := range outline {
		if i == len(outline)-1 && i > 0 && p.Equal(outline[0]) {
			break
		}
		pg.Knot(p)
	}
	return pg.Cycle()
}

// Box creates a rectangle from two opposite corners.
func Box(p1, p2 lapstrake.Pair) *Polygon {
	ll := lapstrake.P(math.Min(p1.X(), p2.X()), math.Min(p1.Y(), p2.Y()))
	ur := lapstrake.P(math.Max(p1.X(), p2.X()), math.Max(p1.Y(), p2.Y()))
	return NullPolygon().Knot(ll).Knot(lapstrake.P(ur.X(), ll.Y())).
		Knot(ur).Knot(lapstrake.P(ll.X(), ur.Y())).Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Z returns the knot at position (i mod N).
func (pg *Polygon) Z(i int) lapstrake.Pair {
	return pg.knots[((i%pg.N())+pg.N())%pg.N()]
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cyclic
}

// Area returns the (unsigned) area, by the shoelace formula.
func (pg *Polygon) Area() float64 {
	return math.Abs(signedArea(pg.contour()))
}

// BoundingBox returns the lower left and upper right corner.
func (pg *Polygon) BoundingBox() (lapstrake.Pair, lapstrake.Pair) {
	r := polyclip.Polygon{pg.contour()}.BoundingBox()
	return lapstrake.P(r.Min.X, r.Min.Y), lapstrake.P(r.Max.X, r.Max.Y)
}

// Intersection returns the area shared by two polygons.
func (pg *Polygon) Intersection(other *Polygon) float64 {
	subject := polyclip.Polygon{pg.contour()}
	clipping := polyclip.Polygon{other.contour()}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	area := 0.0
	for _, c := range result {
		area += math.Abs(signedArea(c))
	}
	L().Debugf("intersection of %d and %d knots: %d contours, area %g",
		pg.N(), other.N(), len(result), area)
	return area
}

// Overlaps is a predicate: do two polygons share a region of non-zero area?
// Touching edges do not count.
func (pg *Polygon) Overlaps(other *Polygon) bool {
	ll1, ur1 := pg.BoundingBox()
	ll2, ur2 := other.BoundingBox()
	if ur1.X() <= ll2.X() || ur2.X() <= ll1.X() || ur1.Y() <= ll2.Y() || ur2.Y() <= ll1.Y() {
		return false
	}
	return pg.Intersection(other) > lapstrake.Epsilon
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pg.N())
	for _, p := range pg.knots {
		c = append(c, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

func signedArea(c polyclip.Contour) float64 {
	a := 0.0
	for i := range c {
		j := (i + 1) % len(c)
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return a / 2
}

// AsString returns a polygon as a (debugging) string.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.knots {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(fmt.Sprintf("(%.4g,%.4g)", p.X(), p.Y()))
	}
	if pg.cyclic {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
