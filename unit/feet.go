/*
Package unit reads and writes hull measurements.

Boatbuilders write lengths as feet, inches and eighths of an inch. A table
of offsets uses the notation 2-3-4 for 2' 3 4/8", and an "x" for a
measurement which has been omitted. Internally all lengths are float64
feet.
*/
package unit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformed is returned for text which is not a feet-inches-eighths
// measurement.
var ErrMalformed = errors.New("malformed measurement")

// ErrOmitted is returned if a required measurement is marked as omitted.
var ErrOmitted = errors.New("required measurement omitted")

// OmittedMark marks an omitted measurement in a table.
const OmittedMark = "x"

// Feet is a length in feet, inches and eighths of an inch.
type Feet struct {
	Negative bool
	Feet     int
	Inches   int
	Eighths  int
}

// Parse reads a measurement in the format 2-3-4. All three parts must be
// present, even if they are zero.
func Parse(text string) (Feet, error) {
	f, ok, err := ParseOpt(text)
	if err != nil {
		return Feet{}, err
	}
	if !ok {
		return Feet{}, ErrOmitted
	}
	return f, nil
}

// ParseOpt reads a measurement in the format 2-3-4, or "x" for an omitted
// one. ok is false for omitted measurements.
func ParseOpt(text string) (f Feet, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == OmittedMark {
		return Feet{}, false, nil
	}
	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return Feet{}, false, fmt.Errorf("%w: '%s' does not have exactly 3 parts, expected formatting like 3-4-5 for 3' 4 5/8\"",
			ErrMalformed, text)
	}
	var n [3]int
	for i, part := range parts {
		if n[i], err = strconv.Atoi(part); err != nil || n[i] < 0 {
			return Feet{}, false, fmt.Errorf("%w: unable to read number '%s' in '%s'",
				ErrMalformed, part, text)
		}
	}
	return Feet{Feet: n[0], Inches: n[1], Eighths: n[2]}, true, nil
}

// FromFloat converts a length in feet, rounded to the nearest eighth of an
// inch.
func FromFloat(x float64) Feet {
	eighths := int(math.Round(math.Abs(x) * 96))
	return Feet{
		Negative: x < 0 && eighths > 0,
		Feet:     eighths / 96,
		Inches:   (eighths % 96) / 8,
		Eighths:  eighths % 8,
	}
}

// Float returns the length in feet.
func (f Feet) Float() float64 {
	x := float64(f.Feet) + float64(f.Inches)/12 + float64(f.Eighths)/96
	if f.Negative {
		return -x
	}
	return x
}

// String pretty prints a length, like 2' 3 4/8".
func (f Feet) String() string {
	var s string
	switch {
	case f.Feet == 0 && f.Inches == 0 && f.Eighths == 0:
		return "0'"
	case f.Feet == 0 && f.Eighths == 0:
		s = fmt.Sprintf("%d\"", f.Inches)
	case f.Feet == 0:
		s = fmt.Sprintf("%d %d/8\"", f.Inches, f.Eighths)
	case f.Eighths == 0:
		s = fmt.Sprintf("%d' %d\"", f.Feet, f.Inches)
	default:
		s = fmt.Sprintf("%d' %d %d/8\"", f.Feet, f.Inches, f.Eighths)
	}
	if f.Negative {
		return "-" + s
	}
	return s
}

// Debug prints a length in table notation, like 2-3-4.
func (f Feet) Debug() string {
	s := fmt.Sprintf("%d-%d-%d", f.Feet, f.Inches, f.Eighths)
	if f.Negative {
		return "-" + s
	}
	return s
}
