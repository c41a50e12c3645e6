package catmull

import (
	"fmt"
	"math"
	"strings"

	"github.com/e-matteson/lapstrake"
)

// AsString returns the points of a spline as a (debugging) string.
// With samples set, the dense polyline is included on a second line.
//
//	(0,0,0) .. (0,1,1) .. (0,2,1.5) .. (0,3,3)
func AsString(sp *Spline, samples bool) string {
	var b strings.Builder
	for i, pt := range sp.points {
		if i > 0 {
			b.WriteString(" .. ")
		}
		b.WriteString(ptstring(pt))
	}
	if samples {
		b.WriteString(fmt.Sprintf("\n  %d samples:", len(sp.samples)))
		for _, pt := range sp.samples {
			b.WriteString(" ")
			b.WriteString(ptstring(pt))
		}
	}
	return b.String()
}

func ptstring(p lapstrake.P3) string {
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(p.X), round(p.Y), round(p.Z))
}

func round(x float64) float64 {
	return math.Round(x*10000.0) / 10000.0
}

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}
