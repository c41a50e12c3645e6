package hull

import (
	"context"
	"fmt"

	"github.com/e-matteson/lapstrake"
	"github.com/e-matteson/lapstrake/spiling"
	"github.com/pkg/errors"
)

// resolve finds or makes up the station a plank table column refers to.
func (h *Hull) resolve(bs BoundaryStation) (*Station, error) {
	if x, ok := bs.Position(); ok {
		return h.Hallucinate(x)
	}
	name, _ := bs.Name()
	return h.Station(name)
}

// GetPoint returns the point a fraction f of the way along a station, which
// is either measured or made up.
func (h *Hull) GetPoint(f float64, bs BoundaryStation) (lapstrake.P3, error) {
	if !(f >= 0 && f <= 1) {
		return lapstrake.P3{}, fmt.Errorf("%w: %g", ErrFractionRange, f)
	}
	st, err := h.resolve(bs)
	if err != nil {
		return lapstrake.P3{}, err
	}
	return st.AtT(f), nil
}

// PlankCount is the number of planks in the plank table.
func (h *Hull) PlankCount() int {
	return len(h.planks.Rows) / 2
}

// Planks returns all planks of the plank table, bottom to top.
func (h *Hull) Planks() ([]*spiling.Plank, error) {
	if len(h.planks.Rows)%2 != 0 {
		tracer().Infof("ignoring unpaired last row of plank table")
	}
	cols := make(map[int]*Station)
	planks := make([]*spiling.Plank, 0, h.PlankCount())
	for i := 0; i < h.PlankCount(); i++ {
		p, err := h.plank(i, cols)
		if err != nil {
			return nil, err
		}
		planks = append(planks, p)
	}
	return planks, nil
}

// Plank returns plank number i, counting from the bottom.
func (h *Hull) Plank(i int) (*spiling.Plank, error) {
	if i < 0 || i >= h.PlankCount() {
		return nil, fmt.Errorf("%w: %d of %d", ErrPlankNotFound, i, h.PlankCount())
	}
	return h.plank(i, make(map[int]*Station))
}

// plank builds plank i. cols caches the stations of the table's columns.
func (h *Hull) plank(i int, cols map[int]*Station) (*spiling.Plank, error) {
	bottom, err := h.boundary(h.planks.Rows[2*i], cols)
	if err != nil {
		return nil, errors.Wrapf(err, "plank %d: bottom boundary", i)
	}
	top, err := h.boundary(h.planks.Rows[2*i+1], cols)
	if err != nil {
		return nil, errors.Wrapf(err, "plank %d: top boundary", i)
	}
	p, err := spiling.NewPlank(bottom, top, h.resolution)
	if err != nil {
		return nil, errors.Wrapf(err, "plank %d", i)
	}
	return p, nil
}

func (h *Hull) boundary(row []float64, cols map[int]*Station) ([]lapstrake.P3, error) {
	var points []lapstrake.P3
	for j, bs := range h.planks.Stations {
		if j >= len(row) || IsOmitted(row[j]) {
			continue
		}
		f := row[j]
		if !(f >= 0 && f <= 1) {
			return nil, fmt.Errorf("%w: %g at %v", ErrFractionRange, f, bs)
		}
		st, ok := cols[j]
		if !ok {
			var err error
			if st, err = h.resolve(bs); err != nil {
				return nil, err
			}
			cols[j] = st
		}
		points = append(points, st.AtT(f))
	}
	return points, nil
}

// FlattenedPlanks flattens all planks and lays them out, stacked bottom to
// top with the configured gap.
func (h *Hull) FlattenedPlanks(ctx context.Context) ([]*spiling.FlattenedPlank, error) {
	planks, err := h.Planks()
	if err != nil {
		return nil, err
	}
	flat, err := spiling.FlattenAll(ctx, planks)
	if err != nil {
		return nil, err
	}
	return spiling.Layout(flat, h.layoutGap), nil
}
