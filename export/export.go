/*
Package export writes flattened planks and station curves to files for
printing and cutting.

DXF drawings are written with github.com/yofu/dxf, GeoJSON with
github.com/paulmach/orb. Coordinates are in feet.
*/
package export

import (
	"github.com/e-matteson/lapstrake"
	"github.com/e-matteson/lapstrake/hull"
	"github.com/e-matteson/lapstrake/spiling"
	"github.com/npillmayer/schuko/tracing"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"
)

// tracer writes to trace with key 'export'
func tracer() tracing.Trace {
	return tracing.Select("export")
}

// Layer names of the DXF drawings.
const (
	PlankLayer   = "planks"
	StationLayer = "stations"
	GridLayer    = "grid"
)

// WritePlanksDXF writes the outline of every plank as a closed polyline.
func WritePlanksDXF(path string, planks []*spiling.FlattenedPlank) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	d.AddLayer(PlankLayer, color.Red, dxf.DefaultLineType, true)
	for _, p := range planks {
		if p.N() == 0 {
			continue
		}
		outline := p.Outline()
		outline = outline[:len(outline)-1]
		lwp := entity.NewLwPolyline(len(outline))
		for j, pt := range outline {
			lwp.Vertices[j] = []float64{pt.X(), pt.Y()}
		}
		lwp.Close()
		d.AddEntity(lwp)
	}
	tracer().Infof("writing %d planks to %s", len(planks), path)
	return errors.Wrapf(d.SaveAs(path), "writing %s", path)
}

// WriteStationsDXF writes the curve of every station as 3D lines, together
// with the waterlines and buttocks of the table of offsets at the foremost
// station.
func WriteStationsDXF(path string, h *hull.Hull) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	d.AddLayer(GridLayer, color.Blue, dxf.DefaultLineType, false)
	d.AddLayer(StationLayer, color.Red, dxf.DefaultLineType, true)
	for _, st := range h.Stations() {
		if err := polyline3(d, st.Spline().Sample()); err != nil {
			return errors.Wrapf(err, "station %q", st.Name())
		}
	}
	d.ChangeLayer(GridLayer)
	min, max := h.Bounds()
	for _, z := range h.Heights() {
		if err := polyline3(d, []lapstrake.P3{{X: min.X, Z: z}, {X: min.X, Y: max.Y, Z: z}}); err != nil {
			return errors.Wrapf(err, "waterline %g", z)
		}
	}
	for _, y := range h.Breadths() {
		if err := polyline3(d, []lapstrake.P3{{X: min.X, Y: y}, {X: min.X, Y: y, Z: max.Z}}); err != nil {
			return errors.Wrapf(err, "buttock %g", y)
		}
	}
	tracer().Infof("writing %d stations to %s", len(h.Stations()), path)
	return errors.Wrapf(d.SaveAs(path), "writing %s", path)
}

func polyline3(d *drawing.Drawing, points []lapstrake.P3) error {
	for i := 1; i < len(points); i++ {
		p, q := points[i-1], points[i]
		if _, err := d.Line(p.X, p.Y, p.Z, q.X, q.Y, q.Z); err != nil {
			return err
		}
	}
	return nil
}

// PlankFeatures returns the planks as polygon features, with properties
// "plank" (the index) and "length" (of the top edge).
func PlankFeatures(planks []*spiling.FlattenedPlank) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, p := range planks {
		outline := p.Outline()
		ring := make(orb.Ring, len(outline))
		for j, pt := range outline {
			ring[j] = orb.Point{pt.X(), pt.Y()}
		}
		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties["plank"] = i
		feature.Properties["length"] = p.Length()
		fc.Append(feature)
	}
	return fc
}

// PlanksGeoJSON encodes the planks as a GeoJSON feature collection.
func PlanksGeoJSON(planks []*spiling.FlattenedPlank) ([]byte, error) {
	return PlankFeatures(planks).MarshalJSON()
}
