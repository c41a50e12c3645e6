package offsets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-matteson/lapstrake/hull"
	"github.com/e-matteson/lapstrake/unit"
	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataCSV = `Station,A,B,C,D,E
Fore-Aft Position
sheer,2-0-0,4-0-0,6-0-0,8-0-0,10-0-0
Height
sheer,3-0-0,2-9-4,2-8-3,2-9-4,3-1-1
wale,2-7-1,2-6-0,2-4-6,2-6-0,2-8-3
0-6-0,0-3-5,0-2-3,0-2-3,0-3-0,0-6-0
1-0-0,0-9-5,0-7-1,0-6-5,0-7-1,1-0-0
Breadth
sheer,2-0-0,2-6-0,2-7-1,2-4-6,1-9-5
1-6-0,1-7-1,2-0-0,2-1-1,1-10-6,1-2-3
2-2-3,1-10-1,2-3-5,2-4-6,2-2-3,1-6-0
`

const planksCSV = `Plank,A,B,C,7-0-0,D,E
1 bottom,0,0,0,0,0,0
1 top,0.3,0.3,0.3,0.3,0.3,0.3
2 bottom,0.3,0.3,0.3,x,0.3,0.3
2 top,0.6,0.6,0.6,0.6,0.6,0.6
`

const configYAML = "resolution: 8\nlayout_gap: 0.05\n"

func writeDir(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := writeDir(t, map[string]string{
		DataFile:   dataCSV,
		PlanksFile: planksCSV,
		ConfigFile: configYAML,
	})
	desc, err := Load(dir)
	require.NoError(t, err)
	o := desc.Offsets
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, o.Stations)
	require.Len(t, o.Positions, 1)
	require.Len(t, o.Heights, 4)
	require.Len(t, o.Breadths, 3)
	assert.Equal(t, hull.WaleLine(), o.Heights[1].Line)
	assert.Equal(t, hull.ButtockLine(0.5), o.Heights[2].Line)
	assert.Equal(t, hull.WaterLineAt(1.5), o.Breadths[1].Line)
	assert.InDelta(t, 2+7.0/12+1.0/96, o.Breadths[0].Cells[2], 1e-12)
	pt := desc.Planks
	require.Len(t, pt.Stations, 6)
	x, ok := pt.Stations[3].Position()
	assert.True(t, ok)
	assert.Equal(t, 7.0, x)
	name, ok := pt.Stations[0].Name()
	assert.True(t, ok)
	assert.Equal(t, "A", name)
	require.Len(t, pt.Rows, 4)
	assert.True(t, hull.IsOmitted(pt.Rows[2][3]))
	assert.Equal(t, Config{Resolution: 8, LayoutGap: 0.05}, desc.Config)
	h, err := desc.Hull()
	require.NoError(t, err)
	assert.Len(t, h.Stations(), 5)
	assert.Equal(t, 8, h.Resolution())
	assert.Equal(t, 0.05, h.LayoutGap())
	planks, err := h.Planks()
	require.NoError(t, err)
	assert.Len(t, planks, 2)
}

func TestLoadReportsAllFiles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Load(t.TempDir())
	require.Error(t, err)
	for _, name := range []string{DataFile, PlanksFile, ConfigFile} {
		assert.Contains(t, err.Error(), name)
	}
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadOffsetsAggregatesErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bad := strings.Replace(dataCSV, "0-2-3,0-2-3", "0-2-3,0-2", 1)
	bad = strings.Replace(bad, "1-10-1", "1-10-one", 1)
	_, err := ReadOffsets(strings.NewReader(bad))
	require.Error(t, err)
	assert.ErrorIs(t, err, unit.ErrMalformed)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "line 7, column 4")
}

func TestReadOffsetsUnknownSection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := ReadOffsets(strings.NewReader("Station,A\nDiagonal,1-0-0\n"))
	assert.ErrorIs(t, err, ErrUnknownSection)
	_, err = ReadOffsets(strings.NewReader("Station,A\nHeight\nbilge,1-0-0\n"))
	assert.ErrorIs(t, err, unit.ErrMalformed)
}

func TestReadPlanks(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := ReadPlanks(strings.NewReader("Plank,A,B\n1,0.2,1.5\n1,x,-1\n"))
	assert.ErrorIs(t, err, hull.ErrFractionRange)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
	pt, err := ReadPlanks(strings.NewReader("Plank,A,B\n\n1,0.2,x\n"))
	require.NoError(t, err)
	require.Len(t, pt.Rows, 1)
	assert.Equal(t, 0.2, pt.Rows[0][0])
	assert.True(t, hull.IsOmitted(pt.Rows[0][1]))
}

func TestReadConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := ReadConfig(strings.NewReader("resolution: 12\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, c.Resolution)
	assert.Zero(t, c.LayoutGap)
	_, err = ReadConfig(strings.NewReader("resolution: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ReadConfig(strings.NewReader("resolution: [1, 2]\n"))
	assert.Error(t, err)
}
