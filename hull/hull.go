package hull

import (
	"fmt"

	"github.com/e-matteson/lapstrake"
	"github.com/e-matteson/lapstrake/catmull"
	"github.com/e-matteson/lapstrake/spiling"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
)

// DefaultResolution is the number of samples per spline segment if no
// other resolution is configured.
const DefaultResolution = 10

// HallucinationSteps is the number of intervals along a station at which
// fairing lines run across the hull. Made-up stations have one point more.
const HallucinationSteps = 10

// Hull is a lofted hull: its stations in fore-aft order and the lines
// fairing them, plus the table of where planks go.
type Hull struct {
	stations   []*Station
	byName     map[string]*Station
	index      *treemap.Map // position → []*Station
	heights    []float64
	breadths   []float64
	wale       []lapstrake.Pair
	planks     PlankTable
	resolution int
	layoutGap  float64
	fairing    []*catmull.Spline
	fairingErr error
}

// Option configures a hull.
type Option func(*Hull)

// WithResolution sets the number of samples per spline segment.
func WithResolution(resolution int) Option {
	return func(h *Hull) {
		h.resolution = resolution
	}
}

// WithLayoutGap sets the clearance between flattened planks.
func WithLayoutGap(gap float64) Option {
	return func(h *Hull) {
		h.layoutGap = gap
	}
}

// New lofts a hull from a table of offsets. planks may be nil for a hull
// without planking.
//
// Every station needs a position, a breadth and a height for the sheer, and
// enough further measurements to make up at least 4 distinct points.
func New(offsets *Offsets, planks *PlankTable, opts ...Option) (*Hull, error) {
	h := &Hull{
		byName:     make(map[string]*Station),
		index:      treemap.NewWith(utils.Float64Comparator),
		resolution: DefaultResolution,
		layoutGap:  spiling.DefaultLayoutGap(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.resolution < 1 {
		return nil, fmt.Errorf("%w: %d", catmull.ErrInvalidResolution, h.resolution)
	}
	if planks != nil {
		h.planks = *planks
	}
	for i, name := range offsets.Stations {
		st, err := h.loft(offsets, i, name)
		if err != nil {
			return nil, err
		}
		if _, dup := h.byName[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStation, name)
		}
		h.byName[name] = st
		var sts []*Station
		if v, found := h.index.Get(st.Position()); found {
			sts = v.([]*Station)
		}
		h.index.Put(st.Position(), append(sts, st))
	}
	for _, v := range h.index.Values() {
		h.stations = append(h.stations, v.([]*Station)...)
	}
	h.heights, h.breadths = gridLines(offsets)
	h.fairing, h.fairingErr = h.fairingLines()
	if h.fairingErr != nil {
		tracer().Infof("cannot fair %d stations: %v", len(h.stations), h.fairingErr)
	}
	return h, nil
}

// loft collects the reference points of station index i.
func (h *Hull) loft(offsets *Offsets, i int, name string) (*Station, error) {
	missing := func(what string, line Line) error {
		return errors.Wrapf(fmt.Errorf("%w: %s of %v", ErrMissingMeasurement, what, line),
			"station %q", name)
	}
	sheerPos, ok := lookup(offsets.Positions, i, SheerLine())
	if !ok {
		return nil, missing("position", SheerLine())
	}
	sheerBreadth, ok := lookup(offsets.Breadths, i, SheerLine())
	if !ok {
		return nil, missing("breadth", SheerLine())
	}
	sheerHeight, ok := lookup(offsets.Heights, i, SheerLine())
	if !ok {
		return nil, missing("height", SheerLine())
	}
	points := []lapstrake.P3{lapstrake.Pt3(sheerPos, sheerBreadth, sheerHeight)}
	for _, row := range offsets.Heights {
		z := row.Cell(i)
		if IsOmitted(z) {
			continue
		}
		switch row.Line.Kind {
		case Wale:
			h.wale = append(h.wale, lapstrake.P(sheerPos, z))
		case Buttock:
			points = append(points, lapstrake.Pt3(sheerPos, row.Line.Offset, z))
		}
	}
	for _, row := range offsets.Breadths {
		y := row.Cell(i)
		if IsOmitted(y) || row.Line.Kind != WaterLine {
			continue
		}
		x, ok := lookup(offsets.Positions, i, row.Line)
		if !ok {
			x = sheerPos
		}
		points = append(points, lapstrake.Pt3(x, y, row.Line.Offset))
	}
	return NewStation(name, sheerPos, points, h.resolution)
}

// gridLines collects the heights of all waterlines and the half-breadths of
// all buttocks of a table.
func gridLines(offsets *Offsets) (heights, breadths []float64) {
	for _, row := range offsets.Breadths {
		if row.Line.Kind == WaterLine {
			heights = append(heights, row.Line.Offset)
		}
	}
	for _, row := range offsets.Heights {
		if row.Line.Kind == Buttock {
			breadths = append(breadths, row.Line.Offset)
		}
	}
	return
}

// Resolution returns the number of samples per spline segment.
func (h *Hull) Resolution() int {
	return h.resolution
}

// LayoutGap returns the clearance between flattened planks.
func (h *Hull) LayoutGap() float64 {
	return h.layoutGap
}

// Stations returns the stations in fore-aft order.
func (h *Hull) Stations() []*Station {
	return append([]*Station(nil), h.stations...)
}

// Station returns a station by name.
func (h *Hull) Station(name string) (*Station, error) {
	st, ok := h.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, name)
	}
	return st, nil
}

// Bracket returns the nearest stations at or before x and at or after x.
// Either one is nil if x lies outside the stations.
func (h *Hull) Bracket(x float64) (before, after *Station) {
	if _, v := h.index.Floor(x); v != nil {
		sts := v.([]*Station)
		before = sts[len(sts)-1]
	}
	if _, v := h.index.Ceiling(x); v != nil {
		after = v.([]*Station)[0]
	}
	return
}

// Bounds returns the extents of all reference points.
func (h *Hull) Bounds() (min, max lapstrake.P3) {
	var all []lapstrake.P3
	for _, st := range h.stations {
		all = append(all, st.points...)
	}
	return lapstrake.Extents(all)
}

// Heights returns the heights of the waterlines.
func (h *Hull) Heights() []float64 {
	return append([]float64(nil), h.heights...)
}

// Breadths returns the half-breadths of the buttocks.
func (h *Hull) Breadths() []float64 {
	return append([]float64(nil), h.breadths...)
}

// Wale returns the measured points of the wale as (position, height).
func (h *Hull) Wale() []lapstrake.Pair {
	return append([]lapstrake.Pair(nil), h.wale...)
}
