package hull

import (
	"github.com/e-matteson/lapstrake"
	"github.com/e-matteson/lapstrake/catmull"
	"github.com/e-matteson/lapstrake/unit"
	"github.com/pkg/errors"
)

// fairingLines runs a line across the hull for every fraction
// k/HallucinationSteps, through the point at that fraction on every station.
func (h *Hull) fairingLines() ([]*catmull.Spline, error) {
	lines := make([]*catmull.Spline, 0, HallucinationSteps+1)
	for k := 0; k <= HallucinationSteps; k++ {
		t := float64(k) / HallucinationSteps
		points := make([]lapstrake.P3, len(h.stations))
		for i, st := range h.stations {
			points[i] = st.AtT(t)
		}
		line, err := catmull.New(points, h.resolution)
		if err != nil {
			return nil, errors.Wrapf(err, "fairing line at %g", t)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Hallucinate makes up a station at fore-aft position x, from the points
// where the fairing lines cross x. The station is named after its position.
// A hull with fewer than 4 stations cannot make up stations.
func (h *Hull) Hallucinate(x float64) (*Station, error) {
	if h.fairingErr != nil {
		return nil, h.fairingErr
	}
	points := make([]lapstrake.P3, len(h.fairing))
	for i, line := range h.fairing {
		points[i] = line.AtX(x)
	}
	tracer().Debugf("made up station at %g", x)
	return NewStation(unit.FromFloat(x).String(), x, points, h.resolution)
}
