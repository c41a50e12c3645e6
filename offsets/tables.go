package offsets

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/e-matteson/lapstrake/hull"
	"github.com/e-matteson/lapstrake/unit"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrUnknownSection is returned for a row of data.csv which should start a
// section but does not name one.
var ErrUnknownSection = errors.New("unknown section")

type section int8

const (
	noSection section = iota
	positions
	heights
	breadths
)

func (s section) String() string {
	switch s {
	case positions:
		return "Fore-Aft Position"
	case heights:
		return "Height"
	case breadths:
		return "Breadth"
	}
	return "<none>"
}

func sectionNamed(name string) section {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fore-aft position":
		return positions
	case "height":
		return heights
	case "breadth":
		return breadths
	}
	return noSection
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// ReadOffsets reads a table of offsets in the format of data.csv. All
// unreadable cells are reported.
func ReadOffsets(r io.Reader) (*hull.Offsets, error) {
	records, err := newReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("missing header row with station names")
	}
	o := &hull.Offsets{Stations: trimmed(records[0][1:])}
	var errs *multierror.Error
	current := noSection
	for n, rec := range records[1:] {
		lineno := n + 2
		if blank(rec) {
			continue
		}
		if s := sectionNamed(rec[0]); s != noSection {
			current = s
			continue
		}
		if current == noSection || !isDataRow(rec) {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w %q, expected one of %v, %v, %v",
				lineno, ErrUnknownSection, rec[0], positions, heights, breadths))
			return nil, errs
		}
		line, err := parseLine(current, rec[0])
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "line %d", lineno))
			continue
		}
		row := hull.Row{Line: line, Cells: make([]float64, len(rec)-1)}
		for j, cell := range rec[1:] {
			f, ok, err := unit.ParseOpt(cell)
			switch {
			case err != nil:
				errs = multierror.Append(errs, errors.Wrapf(err, "line %d, column %d", lineno, j+2))
			case ok:
				row.Cells[j] = f.Float()
			default:
				row.Cells[j] = hull.Omitted
			}
		}
		switch current {
		case positions:
			o.Positions = append(o.Positions, row)
		case heights:
			o.Heights = append(o.Heights, row)
		case breadths:
			o.Breadths = append(o.Breadths, row)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	tracer().Debugf("read %d stations: %d position, %d height and %d breadth rows",
		len(o.Stations), len(o.Positions), len(o.Heights), len(o.Breadths))
	return o, nil
}

// parseLine reads the line a row of section s measures along.
func parseLine(s section, text string) (hull.Line, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if key == "sheer" {
		return hull.SheerLine(), nil
	}
	if key == "wale" && s == heights {
		return hull.WaleLine(), nil
	}
	f, err := unit.Parse(key)
	if err != nil {
		return hull.Line{}, errors.Wrapf(err, "unreadable line %q in section %v", text, s)
	}
	if s == heights {
		return hull.ButtockLine(f.Float()), nil
	}
	return hull.WaterLineAt(f.Float()), nil
}

// ReadPlanks reads a plank table in the format of planks.csv. All
// unreadable cells are reported.
func ReadPlanks(r io.Reader) (*hull.PlankTable, error) {
	records, err := newReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("missing header row with stations")
	}
	pt := &hull.PlankTable{}
	for _, name := range trimmed(records[0][1:]) {
		if f, err := unit.Parse(name); err == nil {
			pt.Stations = append(pt.Stations, hull.AtPosition(f.Float()))
		} else {
			pt.Stations = append(pt.Stations, hull.AtStation(name))
		}
	}
	var errs *multierror.Error
	for n, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		row := make([]float64, len(rec)-1)
		for j, cell := range trimmed(rec[1:]) {
			f, err := parseFraction(cell)
			if err != nil {
				errs = multierror.Append(errs, errors.Wrapf(err, "line %d, column %d", n+2, j+2))
			}
			row[j] = f
		}
		pt.Rows = append(pt.Rows, row)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	tracer().Debugf("read %d plank rows over %d stations", len(pt.Rows), len(pt.Stations))
	return pt, nil
}

func parseFraction(text string) (float64, error) {
	if text == unit.OmittedMark {
		return hull.Omitted, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return hull.Omitted, err
	}
	if !(f >= 0 && f <= 1) {
		return hull.Omitted, fmt.Errorf("%w: read fraction %g", hull.ErrFractionRange, f)
	}
	return f, nil
}

// isDataRow is a predicate: does a row carry measurements?
func isDataRow(rec []string) bool {
	return len(rec) >= 2 && strings.TrimSpace(rec[1]) != ""
}

func blank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func trimmed(cells []string) []string {
	t := make([]string, len(cells))
	for i, c := range cells {
		t[i] = strings.TrimSpace(c)
	}
	return t
}
