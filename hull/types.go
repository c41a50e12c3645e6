package hull

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hull'
func tracer() tracing.Trace {
	return tracing.Select("hull")
}

// Errors returned while assembling a hull or locating points on it.
var (
	ErrMissingMeasurement = errors.New("missing measurement")
	ErrStationNotFound    = errors.New("station not found")
	ErrDuplicateStation   = errors.New("duplicate station name")
	ErrFractionRange      = errors.New("fraction out of range [0,1]")
	ErrPlankNotFound      = errors.New("plank not found")
)

// Omitted marks a cell of a table which has not been measured.
var Omitted = math.NaN()

// IsOmitted is a predicate: is a table cell left blank?
func IsOmitted(x float64) bool {
	return math.IsNaN(x)
}

// LineKind is the kind of a reference line along the hull.
type LineKind int8

// Reference lines of a table of offsets.
const (
	Sheer     LineKind = iota // top edge of the hull
	Wale                      // height of the wale; not used for lofting
	Buttock                   // constant half-breadth
	WaterLine                 // constant height above base
)

func (k LineKind) String() string {
	switch k {
	case Sheer:
		return "sheer"
	case Wale:
		return "wale"
	case Buttock:
		return "buttock"
	case WaterLine:
		return "waterline"
	}
	return "<unknown line>"
}

// Line is a reference line. Buttocks carry their half-breadth as Offset,
// waterlines their height.
type Line struct {
	Kind   LineKind
	Offset float64
}

// SheerLine is the top edge of the hull.
func SheerLine() Line {
	return Line{Kind: Sheer}
}

// WaleLine is the line of the wale.
func WaleLine() Line {
	return Line{Kind: Wale}
}

// ButtockLine is the line of constant half-breadth b.
func ButtockLine(b float64) Line {
	return Line{Kind: Buttock, Offset: b}
}

// WaterLineAt is the line of constant height h.
func WaterLineAt(h float64) Line {
	return Line{Kind: WaterLine, Offset: h}
}

func (l Line) String() string {
	if l.Kind == Buttock || l.Kind == WaterLine {
		return fmt.Sprintf("%s %g", l.Kind, l.Offset)
	}
	return l.Kind.String()
}

// Row is a row of a table of offsets: the measurements along one line, one
// cell per station.
type Row struct {
	Line  Line
	Cells []float64
}

// Cell returns the measurement at station index i. Cells missing at the end
// of a row count as omitted.
func (r Row) Cell(i int) float64 {
	if i < 0 || i >= len(r.Cells) {
		return Omitted
	}
	return r.Cells[i]
}

// Offsets is a table of offsets.
//
// Positions are keyed by the sheer or a waterline, heights by the sheer, the
// wale or a buttock, breadths by the sheer or a waterline.
type Offsets struct {
	Stations  []string
	Positions []Row
	Heights   []Row
	Breadths  []Row
}

// lookup finds the first measurement along line at station index i.
func lookup(rows []Row, i int, line Line) (float64, bool) {
	for _, r := range rows {
		if r.Line == line {
			if x := r.Cell(i); !IsOmitted(x) {
				return x, true
			}
		}
	}
	return Omitted, false
}

// BoundaryStation is a column of a plank table. It is either a measured
// station, given by name, or a fore-aft position where a station will be
// made up.
type BoundaryStation struct {
	name     string
	position float64
}

// AtStation refers to a measured station.
func AtStation(name string) BoundaryStation {
	return BoundaryStation{name: name, position: Omitted}
}

// AtPosition refers to a fore-aft position.
func AtPosition(x float64) BoundaryStation {
	return BoundaryStation{position: x}
}

// Name returns the station name, if bs refers to a measured station.
func (bs BoundaryStation) Name() (string, bool) {
	return bs.name, IsOmitted(bs.position)
}

// Position returns the fore-aft position, if bs refers to one.
func (bs BoundaryStation) Position() (float64, bool) {
	return bs.position, !IsOmitted(bs.position)
}

func (bs BoundaryStation) String() string {
	if x, ok := bs.Position(); ok {
		return fmt.Sprintf("position %g", x)
	}
	return fmt.Sprintf("station %q", bs.name)
}

// PlankTable tells where planks lie on the hull. Rows come in pairs, bottom
// boundary first; a cell is the fraction of the way along the station's
// curve, 0 at the bottom and 1 at the sheer. Omitted cells are skipped.
type PlankTable struct {
	Stations []BoundaryStation
	Rows     [][]float64
}
