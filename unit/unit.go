// Package unit converts measurements between screen and physical units.
//
// Canvas geometry is stored in pixels. Physical units (mm, cm, in, pt) are
// related to pixels through a resolution in dots per inch, so a conversion
// always names the DPI on both sides.
package unit

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// DefaultDPI is the resolution assumed when none is given (CSS pixel).
const DefaultDPI = 96.0

// Unit is a unit of length.
type Unit uint8

// Supported units.
const (
	Px Unit = iota
	Mm
	Cm
	In
	Pt
)

// ErrUnknownUnit is returned when a unit suffix or name is not recognized.
var ErrUnknownUnit = errors.New("unit: unknown unit")

// ErrInvalidLength is returned by ParseLength for malformed input.
var ErrInvalidLength = errors.New("unit: invalid length")

var unitNames = [...]string{
	Px: "px",
	Mm: "mm",
	Cm: "cm",
	In: "in",
	Pt: "pt",
}

// String returns the unit suffix, e.g. "mm".
func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", u)
}

// Parse returns the unit named by s ("px", "mm", ...). The empty string
// is pixels, as in SVG user units.
func Parse(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Px, nil
	}
	for u, name := range unitNames {
		if name == s {
			return Unit(u), nil
		}
	}
	return Px, fmt.Errorf("%w %q", ErrUnknownUnit, s)
}

// perInch is how many of the unit fit into one inch. Pixels depend on DPI
// and are handled separately.
func (u Unit) perInch() float64 {
	switch u {
	case Mm:
		return 25.4
	case Cm:
		return 2.54
	case In:
		return 1
	case Pt:
		return 72
	default:
		return 0
	}
}

// toInches converts value in u at dpi to inches.
func toInches(value float64, u Unit, dpi float64) float64 {
	if u == Px {
		return value / dpi
	}
	return value / u.perInch()
}

// fromInches converts inches to u at dpi.
func fromInches(inches float64, u Unit, dpi float64) float64 {
	if u == Px {
		return inches * dpi
	}
	return inches * u.perInch()
}

// Convert converts value from unit from (at fromDPI) to unit to (at toDPI).
// Non-positive DPI values fall back to DefaultDPI.
func Convert(value float64, from Unit, fromDPI float64, to Unit, toDPI float64) float64 {
	if fromDPI <= 0 {
		fromDPI = DefaultDPI
	}
	if toDPI <= 0 {
		toDPI = DefaultDPI
	}
	if from == to && fromDPI == toDPI {
		return value
	}
	return fromInches(toInches(value, from, fromDPI), to, toDPI)
}

// ToPx converts value in u at dpi to pixels.
func ToPx(value float64, u Unit, dpi float64) float64 {
	return Convert(value, u, dpi, Px, dpi)
}

// ParseLength parses an SVG/CSS length such as "12", "12.5px" or "3cm".
// It returns the numeric value and its unit. Percentages and font relative
// units are rejected with ErrUnknownUnit.
func ParseLength(s string) (float64, Unit, error) {
	b := []byte(strings.TrimSpace(s))
	if len(b) == 0 {
		return 0, Px, fmt.Errorf("%w: empty", ErrInvalidLength)
	}
	v, n := strconv.ParseFloat(b)
	if n == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, Px, fmt.Errorf("%w %q", ErrInvalidLength, s)
	}
	u, err := Parse(string(b[n:]))
	if err != nil {
		return 0, Px, err
	}
	return v, u, nil
}

// ParseLengthPx parses a length and converts it to pixels at dpi.
func ParseLengthPx(s string, dpi float64) (float64, error) {
	v, u, err := ParseLength(s)
	if err != nil {
		return 0, err
	}
	return ToPx(v, u, dpi), nil
}
