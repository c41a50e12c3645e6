// Command lapstrake lofts a hull from a directory of tables and writes plank
// patterns and station curves.
//
//	lapstrake -dir boat -dxf planks.dxf -geojson planks.json
//
// The directory holds data.csv, planks.csv and config.yaml, see package
// offsets.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/e-matteson/lapstrake/export"
	"github.com/e-matteson/lapstrake/hull"
	"github.com/e-matteson/lapstrake/offsets"
	"github.com/e-matteson/lapstrake/unit"
	"github.com/npillmayer/schuko/tracing"
)

var traceKeys = []string{"lapstrake", "catmull", "hull", "spiling", "polygon", "offsets", "export"}

func main() {
	dir := flag.String("dir", "", "directory with data.csv, planks.csv and config.yaml")
	dxfPath := flag.String("dxf", "", "write flattened planks to this DXF file")
	stationsPath := flag.String("stations", "", "write station curves to this DXF file")
	geojsonPath := flag.String("geojson", "", "write flattened planks to this GeoJSON file")
	stationAt := flag.String("station-at", "", "print a station made up at this position (like 7-6-0)")
	verbose := flag.Bool("v", false, "trace debug output")
	flag.Parse()
	if *dir == "" {
		flag.Usage()
		os.Exit(2)
	}
	level := tracing.LevelInfo
	if *verbose {
		level = tracing.LevelDebug
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	if err := run(*dir, *dxfPath, *stationsPath, *geojsonPath, *stationAt); err != nil {
		fmt.Fprintf(os.Stderr, "lapstrake: %v\n", err)
		os.Exit(1)
	}
}

func run(dir, dxfPath, stationsPath, geojsonPath, stationAt string) error {
	desc, err := offsets.Load(dir)
	if err != nil {
		return err
	}
	h, err := desc.Hull()
	if err != nil {
		return err
	}
	min, max := h.Bounds()
	fmt.Printf("%d stations from %v to %v, %d planks\n",
		len(h.Stations()), unit.FromFloat(min.X), unit.FromFloat(max.X), h.PlankCount())
	if stationAt != "" {
		if err := printStation(h, stationAt); err != nil {
			return err
		}
	}
	if stationsPath != "" {
		if err := export.WriteStationsDXF(stationsPath, h); err != nil {
			return err
		}
	}
	if dxfPath == "" && geojsonPath == "" {
		return nil
	}
	planks, err := h.FlattenedPlanks(context.Background())
	if err != nil {
		return err
	}
	for i, p := range planks {
		fmt.Printf("plank %d: length %v\n", i, unit.FromFloat(p.Length()))
	}
	if dxfPath != "" {
		if err := export.WritePlanksDXF(dxfPath, planks); err != nil {
			return err
		}
	}
	if geojsonPath != "" {
		data, err := export.PlanksGeoJSON(planks)
		if err != nil {
			return err
		}
		if err := os.WriteFile(geojsonPath, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

func printStation(h *hull.Hull, at string) error {
	pos, err := unit.Parse(at)
	if err != nil {
		return err
	}
	st, err := h.Hallucinate(pos.Float())
	if err != nil {
		return err
	}
	fmt.Printf("station at %v:\n", st.Name())
	for _, p := range st.Points() {
		fmt.Printf("  breadth %v, height %v\n", unit.FromFloat(p.Y), unit.FromFloat(p.Z))
	}
	return nil
}
