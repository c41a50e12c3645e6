package spiling

import (
	"fmt"

	"github.com/e-matteson/lapstrake"
	"github.com/e-matteson/lapstrake/catmull"
	"github.com/pkg/errors"
)

// NewPlank creates a plank between two lines of hull points, fitting a
// spline through each. Flattening will use ((len(bottom)+len(top))/2)·resolution
// triangle pairs.
func NewPlank(bottom, top []lapstrake.P3, resolution int) (*Plank, error) {
	bot, err := catmull.New(bottom, resolution)
	if err != nil {
		return nil, errors.Wrap(err, "bottom line")
	}
	tp, err := catmull.New(top, resolution)
	if err != nil {
		return nil, errors.Wrap(err, "top line")
	}
	return &Plank{
		top:        tp,
		bottom:     bot,
		resolution: ((len(bottom) + len(top)) / 2) * resolution,
	}, nil
}

// Top returns the upper boundary curve.
func (p *Plank) Top() *catmull.Spline {
	return p.top
}

// Bottom returns the lower boundary curve.
func (p *Plank) Bottom() *catmull.Spline {
	return p.bottom
}

// Resolution returns the number of strips used for flattening.
func (p *Plank) Resolution() int {
	return p.resolution
}

// Outline returns the plank's boundary in 3D: the top line, then the bottom
// line reversed, closing at the first top point.
func (p *Plank) Outline() []lapstrake.P3 {
	top := p.top.Sample()
	bottom := p.bottom.Sample()
	outline := make([]lapstrake.P3, 0, len(top)+len(bottom)+1)
	outline = append(outline, top...)
	for i := len(bottom) - 1; i >= 0; i-- {
		outline = append(outline, bottom[i])
	}
	return append(outline, top[0])
}

// Flatten unrolls the plank onto the plane. The first top point is placed at
// the origin and the first bottom point straight below it, at +y.
func (p *Plank) Flatten() (*FlattenedPlank, error) {
	left, strips := p.strips()
	top := make([]lapstrake.Pair, 0, len(strips)+1)
	bottom := make([]lapstrake.Pair, 0, len(strips)+1)
	topPt, botPt := lapstrake.P(0, 0), lapstrake.P(0, left)
	top = append(top, topPt)
	bottom = append(bottom, botPt)
	for i, e := range strips {
		newTop := triangulate(topPt, botPt, e.top, e.diagonal)
		newBot := triangulate(newTop, botPt, e.rung, e.bottom)
		if !finite(newTop) || !finite(newBot) {
			return nil, fmt.Errorf("%w: undefined point in strip %d", ErrDegenerateFlattening, i)
		}
		top = append(top, newTop)
		bottom = append(bottom, newBot)
		topPt, botPt = newTop, newBot
	}
	tracer().Debugf("flattened plank into %d strips", len(strips))
	return &FlattenedPlank{top: top, bottom: bottom}, nil
}

// strips returns the length of the leftmost edge, then the edge lengths of
// each strip from left to right.
func (p *Plank) strips() (float64, []edges) {
	top := p.top.Resample(p.resolution)
	bot := p.bottom.Resample(p.resolution)
	if len(top) != len(bot) {
		panic(fmt.Sprintf("plank has %d top points but %d bottom points", len(top), len(bot)))
	}
	strips := make([]edges, len(top)-1)
	for i := range strips {
		strips[i] = edges{
			top:      top[i].Distance(top[i+1]),
			diagonal: bot[i].Distance(top[i+1]),
			rung:     top[i+1].Distance(bot[i+1]),
			bottom:   bot[i].Distance(bot[i+1]),
		}
	}
	return top[0].Distance(bot[0]), strips
}
