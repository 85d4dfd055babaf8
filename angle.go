package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AngleMode selects the unit trigonometric functions use for angles. The zero
// value is Degrees.
type AngleMode int8

const (
	Degrees AngleMode = iota
	Radians
)

func (m AngleMode) String() string {
	switch m {
	case Degrees:
		return "DEG"
	case Radians:
		return "RAD"
	default:
		return "AngleMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Toggle returns the other angle mode.
func (m AngleMode) Toggle() AngleMode {
	if m == Degrees {
		return Radians
	}
	return Degrees
}

// toRadians converts an angle in m to radians.
func (m AngleMode) toRadians(x float64) float64 {
	if m == Degrees {
		return x * math.Pi / 180
	}
	return x
}

// fromRadians converts an angle in radians to m.
func (m AngleMode) fromRadians(x float64) float64 {
	if m == Degrees {
		return x * 180 / math.Pi
	}
	return x
}

// ErrAngleMode is returned when parsing an unrecognized angle mode name.
var ErrAngleMode = errors.New("angle mode must be deg or rad")

// ParseAngleMode parses an angle mode name. It accepts deg, degrees, rad,
// and radians in any case.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	default:
		return Degrees, fmt.Errorf("%w, not %q", ErrAngleMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m AngleMode) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseAngleMode.
func (m *AngleMode) UnmarshalText(text []byte) error {
	v, err := ParseAngleMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Set parses s into m, so that *AngleMode can be used as a command-line flag
// value.
func (m *AngleMode) Set(s string) error {
	return m.UnmarshalText([]byte(s))
}

// Type names the flag value type.
func (m *AngleMode) Type() string {
	return "angle"
}
