// Package direction defines the directional enumerations: Direction,
// Axis and Corner. These are the only declarations in typekit that exist
// at runtime; everything else erases to plain values. All three marshal
// as text, so they work unchanged in JSON, YAML and TOML documents.
package direction

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/typekit/pkg/errors"
	"github.com/arthur-debert/typekit/pkg/geom"
)

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Directions returns all directions in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// IsValid reports whether d is one of the declared directions.
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Axis returns the axis the direction moves along.
func (d Direction) Axis() Axis {
	if d == Left || d == Right {
		return Horizontal
	}
	return Vertical
}

// Delta returns the unit step for the direction in screen coordinates
// (y grows down).
func (d Direction) Delta() geom.Point {
	switch d {
	case Up:
		return geom.Pt(0, -1)
	case Down:
		return geom.Pt(0, 1)
	case Left:
		return geom.Pt(-1, 0)
	case Right:
		return geom.Pt(1, 0)
	default:
		return geom.Point{}
	}
}

// String returns the lowercase name, or "direction(N)" for out-of-range
// values.
func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection converts a name to a Direction. Matching is
// case-insensitive.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return Up, errors.Newf(errors.ErrEnumParse, "unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, errors.Newf(errors.ErrEnumValue, "cannot marshal direction(%d)", int(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
