/*
Package offsets loads a hull description from a directory.

The directory holds three files:

	data.csv     the table of offsets
	planks.csv   where planks lie on the hull
	config.yaml  configuration

In data.csv the first row names the stations. It is followed by sections,
each introduced by a row with one of the names "Fore-Aft Position", "Height"
or "Breadth" in its first cell. The rows of a section start with the line
they measure along: "sheer", "wale" (heights only) or a measurement.
Measurements are written as 2-3-4 for 2' 3 4/8", or "x" if omitted.

In planks.csv the first row names the stations or gives fore-aft positions.
Every further row holds fractions between 0 and 1, or "x". Rows come in
pairs, the bottom boundary of a plank first.
*/
package offsets

import (
	"os"
	"path/filepath"

	"github.com/e-matteson/lapstrake/hull"
	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer writes to trace with key 'offsets'
func tracer() tracing.Trace {
	return tracing.Select("offsets")
}

// File names within a hull directory.
const (
	DataFile   = "data.csv"
	PlanksFile = "planks.csv"
	ConfigFile = "config.yaml"
)

// Description is everything needed to loft and plank a hull.
type Description struct {
	Offsets *hull.Offsets
	Planks  *hull.PlankTable
	Config  Config
}

// Load reads the three files of a hull directory. Errors of all files are
// reported together.
func Load(dir string) (*Description, error) {
	desc := &Description{}
	var errs *multierror.Error
	var err error
	if err = readFile(dir, DataFile, func(f *os.File) (err error) {
		desc.Offsets, err = ReadOffsets(f)
		return
	}); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err = readFile(dir, PlanksFile, func(f *os.File) (err error) {
		desc.Planks, err = ReadPlanks(f)
		return
	}); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err = readFile(dir, ConfigFile, func(f *os.File) (err error) {
		desc.Config, err = ReadConfig(f)
		return
	}); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err = errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return desc, nil
}

func readFile(dir, name string, read func(*os.File) error) error {
	path := filepath.Join(dir, name)
	tracer().Infof("loading file %s", path)
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", name)
	}
	defer f.Close()
	return errors.Wrapf(read(f), "failed to load %s", name)
}

// Hull lofts the hull of a description.
func (d *Description) Hull() (*hull.Hull, error) {
	opts := []hull.Option{hull.WithResolution(d.Config.Resolution)}
	if d.Config.LayoutGap > 0 {
		opts = append(opts, hull.WithLayoutGap(d.Config.LayoutGap))
	}
	return hull.New(d.Offsets, d.Planks, opts...)
}
