package direction

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/typekit/pkg/errors"
)

// Axis is one of the two screen axes.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

var axisNames = [...]string{
	Horizontal: "horizontal",
	Vertical:   "vertical",
}

// Axes returns both axes in declaration order.
func Axes() []Axis {
	return []Axis{Horizontal, Vertical}
}

// IsValid reports whether a is one of the declared axes.
func (a Axis) IsValid() bool {
	return a == Horizontal || a == Vertical
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Directions returns the two directions that move along a.
func (a Axis) Directions() [2]Direction {
	if a == Horizontal {
		return [2]Direction{Left, Right}
	}
	return [2]Direction{Up, Down}
}

func (a Axis) String() string {
	if !a.IsValid() {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

// ParseAxis converts a name to an Axis. Matching is case-insensitive.
func ParseAxis(s string) (Axis, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range axisNames {
		if n == name {
			return Axis(a), nil
		}
	}
	return Horizontal, errors.Newf(errors.ErrEnumParse, "unknown axis %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, errors.Newf(errors.ErrEnumValue, "cannot marshal axis(%d)", int(a))
	}
	return []byte(axisNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
