package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-matteson/lapstrake"
	"github.com/e-matteson/lapstrake/hull"
	"github.com/e-matteson/lapstrake/spiling"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxPlank(y float64) *spiling.FlattenedPlank {
	return spiling.NewFlattenedPlank(
		[]lapstrake.Pair{lapstrake.P(0, y), lapstrake.P(2, y), lapstrake.P(4, y)},
		[]lapstrake.Pair{lapstrake.P(0, y+1), lapstrake.P(2, y+1), lapstrake.P(4, y+1)},
	)
}

func TestPlanksGeoJSON(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	data, err := PlanksGeoJSON([]*spiling.FlattenedPlank{boxPlank(0), boxPlank(1.5)})
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	f := fc.Features[1]
	assert.Equal(t, 1.0, f.Properties["plank"])
	assert.Equal(t, 4.0, f.Properties["length"])
	poly, ok := f.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)
	ring := poly[0]
	assert.Len(t, ring, 7)
	assert.True(t, ring.Closed())
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 1.5}, Max: orb.Point{4, 2.5}}, ring.Bound())
}

func TestWritePlanksDXF(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := filepath.Join(t.TempDir(), "planks.dxf")
	require.NoError(t, WritePlanksDXF(path, []*spiling.FlattenedPlank{boxPlank(0), boxPlank(1.5)}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), PlankLayer)
	polylines := lwPolylines(string(data))
	require.Len(t, polylines, 2)
	for _, codes := range polylines {
		assert.Equal(t, "6", codes["90"], "vertex count")
		assert.Equal(t, "1", codes["70"], "closed flag")
	}
}

// lwPolylines returns the group codes of every LWPOLYLINE entity in a DXF
// text, last value per code.
func lwPolylines(dxfText string) []map[string]string {
	lines := strings.Split(strings.ReplaceAll(dxfText, "\r\n", "\n"), "\n")
	var result []map[string]string
	var current map[string]string
	for i := 0; i+1 < len(lines); i += 2 {
		code, value := strings.TrimSpace(lines[i]), strings.TrimSpace(lines[i+1])
		if code == "0" {
			current = nil
			if value == "LWPOLYLINE" {
				current = make(map[string]string)
				result = append(result, current)
			}
			continue
		}
		if current != nil {
			current[code] = value
		}
	}
	return result
}

func TestWriteStationsDXF(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pos := []float64{2, 4, 6, 8}
	o := &hull.Offsets{
		Stations:  []string{"1", "2", "3", "4"},
		Positions: []hull.Row{{Line: hull.SheerLine(), Cells: pos}},
		Heights: []hull.Row{
			{Line: hull.SheerLine(), Cells: []float64{3, 2.8, 2.8, 3}},
			{Line: hull.ButtockLine(0.5), Cells: []float64{0.3, 0.2, 0.2, 0.3}},
		},
		Breadths: []hull.Row{
			{Line: hull.SheerLine(), Cells: []float64{2, 2.5, 2.5, 2}},
			{Line: hull.WaterLineAt(1), Cells: []float64{1.2, 1.6, 1.6, 1.2}},
			{Line: hull.WaterLineAt(2), Cells: []float64{1.7, 2.2, 2.2, 1.7}},
		},
	}
	h, err := hull.New(o, nil, hull.WithResolution(4))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "stations.dxf")
	require.NoError(t, WriteStationsDXF(path, h))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LINE")
	assert.Contains(t, string(data), StationLayer)
	assert.Contains(t, string(data), GridLayer)
	flat, err := h.FlattenedPlanks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, flat)
}
